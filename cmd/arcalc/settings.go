// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/arcalc/algebra"
)

// settings is the YAML settings file; flags override its fields.
//
//	allowed: [p, "23", "31", "12", ...]
//	metric: "+---"
//	division: into
type settings struct {
	Allowed  []string `yaml:"allowed"`
	Metric   string   `yaml:"metric"`
	Division string   `yaml:"division"`
}

// loadSettings reads path; an empty path yields empty settings.
func loadSettings(path string) (settings, error) {
	var s settings
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}

	return s, nil
}

// config builds the algebra configuration, falling back to the defaults
// for every field left empty.
func (s settings) config() (*algebra.Config, error) {
	allowed := algebra.DefaultAllowed()
	if len(s.Allowed) > 0 {
		allowed = s.Allowed
	}
	metric := algebra.DefaultMetric
	if s.Metric != "" {
		m, err := algebra.ParseMetric(s.Metric)
		if err != nil {
			return nil, err
		}
		metric = m
	}
	division := algebra.DefaultDivision
	if s.Division != "" {
		d, err := algebra.ParseDivision(s.Division)
		if err != nil {
			return nil, err
		}
		division = d
	}

	return algebra.NewConfig(allowed, metric, division)
}

// splitLabels accepts "p,23,31" as well as "p 23 31".
func splitLabels(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
}
