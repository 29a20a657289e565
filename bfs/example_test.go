package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/roadpath/bfs"
	"github.com/katalvlaran/roadpath/builder"
)

// ExampleFewestStops finds the delivery with the fewest road segments,
// which is not the shortest one.
func ExampleFewestStops() {
	res, err := bfs.FewestStops(builder.Warehouse(), "W", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res)
	// Output: W → A → C (cost 30)
}
