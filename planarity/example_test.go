package planarity_test

import (
	"fmt"

	"github.com/Eduardo-zampirolli/planfilt/planarity"
)

// ExampleIsPlanar checks the two classic minimal non-planar graphs.
func ExampleIsPlanar() {
	k5 := [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
		{1, 2}, {1, 3}, {1, 4},
		{2, 3}, {2, 4},
		{3, 4},
	}
	k33 := [][2]int{
		{0, 3}, {0, 4}, {0, 5},
		{1, 3}, {1, 4}, {1, 5},
		{2, 3}, {2, 4}, {2, 5},
	}
	k4 := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	fmt.Println("K5: ", planarity.IsPlanar(5, k5))
	fmt.Println("K3,3:", planarity.IsPlanar(6, k33))
	fmt.Println("K4: ", planarity.IsPlanar(4, k4))

	// Output:
	// K5:  false
	// K3,3: false
	// K4:  true
}

// ExampleOracle inserts edges one by one; the insertion completing the
// five-clique is refused and the graph stays planar.
func ExampleOracle() {
	o := planarity.NewOracle(5)
	accepted := 0
	for u := 0; u < 5; u++ {
		for v := u + 1; v < 5; v++ {
			if o.TryInsert(u, v) {
				accepted++
			}
		}
	}
	fmt.Printf("accepted %d of 10, edges now %d\n", accepted, o.EdgeCount())

	// Output:
	// accepted 9 of 10, edges now 9
}
