package gaussian_test

import (
	"fmt"

	"github.com/causalgo/sempler/gaussian"
)

// ExampleNormal_Marginal extracts a sub-distribution: the joint law over
// variables {0, 1} of a 3-variable Gaussian.
func ExampleNormal_Marginal() {
	n, _ := gaussian.New(
		[]float64{1, 2, 3},
		[][]float64{
			{1, 2, 4},
			{2, 6, 5},
			{4, 5, 1},
		},
	)

	m, _ := n.Marginal(0, 1)
	fmt.Println(m.Mean())
	fmt.Println(m.CovarianceAt(0, 0), m.CovarianceAt(0, 1), m.CovarianceAt(1, 1))
	// Output:
	// [1 2]
	// 1 2 6
}

// ExampleNormal_Regress reads the exact population regression of variable 0
// on variables {1, 2} off the joint law — no data, no estimation noise.
func ExampleNormal_Regress() {
	n, _ := gaussian.New(
		[]float64{1, 2, 3},
		[][]float64{
			{1, 2, 4},
			{2, 6, 5},
			{4, 5, 1},
		},
	)

	coefs, intercept, _ := n.Regress(0, []int{1, 2})
	fmt.Printf("beta = [%.4f %.4f], intercept = %.4f\n", coefs[0], coefs[1], intercept)
	// Output:
	// beta = [0.9474 -0.7368], intercept = 1.3158
}
