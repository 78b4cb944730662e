package elastic_test

import (
	"fmt"

	"github.com/katalvlaran/tscluster/elastic"
	"github.com/katalvlaran/tscluster/series"
)

// ExampleDTW_Alignment warps [1,2,3] onto [1,2,2,3] at zero cost by
// repeating the middle element, and shows the recovered path.
func ExampleDTW_Alignment() {
	a := series.MustNew([]float64{1, 2, 3})
	b := series.MustNew([]float64{1, 2, 2, 3})

	dist, path, err := elastic.NewDTW(-1).Alignment(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("distance:", dist)
	fmt.Println("path:", path)
	// Output:
	// distance: 0
	// path: [{0 0} {1 1} {1 2} {2 3}]
}

// ExampleEuclidean_Distance compares two equal-length sequences
// lock-step.
func ExampleEuclidean_Distance() {
	dist, err := elastic.NewEuclidean().Distance(
		series.MustNew([]float64{0, 0, 0}),
		series.MustNew([]float64{0, 0, 1}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)
	// Output: 1
}

// ExampleLCSS_Distance scores the shared ordered subsequence under an
// ε threshold.
func ExampleLCSS_Distance() {
	dist, err := elastic.NewLCSS(-1, 0).Distance(
		series.MustNew([]float64{1, 2, 3, 4}),
		series.MustNew([]float64{1, 2, 5, 4}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)
	// Output: 0.25
}

// ExampleDerivative shows the Keogh–Pazzani transform of a ramp.
func ExampleDerivative() {
	d, err := elastic.Derivative(series.MustNew([]float64{0, 1, 2, 3, 4}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(d.Values())
	// Output: [1 1 1]
}
