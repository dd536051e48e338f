package distancemap_test

import (
	"fmt"

	"github.com/katalvlaran/cardinalgrid/cardinal"
	"github.com/katalvlaran/cardinalgrid/distancemap"
	"github.com/katalvlaran/cardinalgrid/grid"
)

// ExamplePopulateContext_PopulateApproach floods a 5x1 open corridor from
// its left end and reports the distance to its right end.
func ExamplePopulateContext_PopulateApproach() {
	size := grid.NewSize(5, 1)
	openGrid := cardinal.CanEnterFunc(func(c grid.Coord) bool {
		return c.X >= 0 && c.X < size.W && c.Y == 0
	})

	dm := distancemap.New(size)
	p := distancemap.NewPopulateContext()
	p.Add(grid.NewCoord(0, 0))
	p.PopulateApproach(openGrid, 10, dm)

	d, ok := dm.Distance(grid.NewCoord(4, 0))
	fmt.Println(d, ok)
	// Output:
	// 4 true
}
