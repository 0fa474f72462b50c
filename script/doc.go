// SPDX-License-Identifier: MIT

// Package script runs line-oriented calculation scripts against an
// eval.Context.
//
// A script is read line by line, each line trimmed:
//
//	(blank)                 echoed as a blank line
//	# text                  echoed unchanged
//	// ALLOWED: p 23 31 ... replace the allowed ordering
//	// METRIC: +---         replace the metric
//	// SIMPLIFIED           cancel terms when printing the next line
//	// TEX                  print the next line as LaTeX
//	// FACTORED             print the next line grouped by alpha
//	name = {1 2 3}          define a MultiVector
//	name = <0 1 2 3>        define a differential operator
//	name = expr             evaluate expr and bind the result to name
//	name                    print the value bound to name
//
// The first ALLOWED and METRIC directives also seed the configuration the
// run starts with; when absent the Runner defaults are used and a matching
// directive line is printed at the top of the report.
//
// A failing line is reported as a *LineError; the run continues with the
// next line and all failures are returned together.
package script
