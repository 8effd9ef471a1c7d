package dknn_test

import (
	"fmt"

	"github.com/yyyoichi/dknn"
)

func Example_classify() {
	// Two classes anchored by their first training points
	clf, err := dknn.New(2)
	if err != nil {
		fmt.Printf("Error creating classifier: %v\n", err)
		return
	}

	// Feed one labeled batch; each sample moves its class centroid and
	// tunes that class's decision boundary
	err = clf.Train(dknn.Batch{
		{Point: dknn.Point{X: 0, Y: 0}, Class: 0},
		{Point: dknn.Point{X: 1, Y: 1}, Class: 0},
		{Point: dknn.Point{X: 10, Y: 10}, Class: 1},
		{Point: dknn.Point{X: 11, Y: 9}, Class: 1},
	})
	if err != nil {
		fmt.Printf("Error training: %v\n", err)
		return
	}

	// An unlabeled query point near the first cluster
	class := clf.Classify(dknn.Point{X: 0.5, Y: 0.5})
	fmt.Printf("query belongs to class %d\n", class)

	// Output:
	// query belongs to class 0
}
