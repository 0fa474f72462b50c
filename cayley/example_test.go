// SPDX-License-Identifier: MIT

package cayley_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/arcalc/algebra"
	"github.com/katalvlaran/arcalc/cayley"
)

// ExampleTable_SignDistribution prints the five sign blocks of the product table.
func ExampleTable_SignDistribution() {
	tbl, err := cayley.Build(context.Background(), algebra.DefaultConfig(), cayley.Full)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(tbl.NegativeCount())
	fmt.Println(tbl.SignDistribution())
	// Output:
	// 112
	//  ∂e |□ □ □ □|  ∂Ξ |□ □ □ □|   ∇ |□ □ ■ ■|  ∇• |■ ■ □ □|  ∇x |□ □ □ □|
	//     |□ □ □ □|     |□ □ □ □|     |□ □ ■ ■|     |■ ■ □ □|     |□ □ □ □|
	//     |□ ■ □ ■|     |■ □ ■ □|     |□ ■ ■ □|     |□ ■ ■ □|     |□ ■ □ ■|
	//     |□ ■ □ ■|     |■ □ ■ □|     |□ ■ ■ □|     |□ ■ ■ □|     |□ ■ □ ■|
}
