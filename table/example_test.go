// SPDX-License-Identifier: MIT

package table_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/orbital/table"
)

// ExampleGenerate computes the table for n <= 3 and reads back the 3s row.
func ExampleGenerate() {
	opts := table.DefaultOptions()
	opts.MaxN = 3
	tb, err := table.Generate(context.Background(), opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("3s nodes:  %.4f\n", tb.Nodes[2][0])
	fmt.Printf("3s maxima: %.4f\n", tb.Maxima[2][0])
	// Output:
	// 3s nodes:  [1.2679 4.7321]
	// 3s maxima: [2.3542 7.6458]
}
