package partknn_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/partknn"
	"github.com/hupe1980/partknn/dataset"
)

func exampleDataset() *dataset.Dataset {
	ds, err := dataset.New([]dataset.Row{
		{0, 1}, {1, 2}, {0, 3}, {1, 10},
		{0, 11}, {1, 12}, {0, 20}, {1, 21},
	})
	if err != nil {
		log.Fatal(err)
	}
	return ds
}

// Example_classify demonstrates a partitioned classification of a detached query.
func Example_classify() {
	clf, err := partknn.New(
		partknn.WithK(3),
		partknn.WithPartitions(2),
		partknn.WithCutoff(2),
	)
	if err != nil {
		log.Fatal(err)
	}

	res, err := clf.Classify(context.Background(), exampleDataset(), dataset.NewQuery([]float64{0, 2.5}))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("zeros=%d ones=%d prediction=%d (%s)\n", res.Zeros, res.Ones, res.Prediction, res.ClassName())
	fmt.Println("neighbors:", res.Neighbors.Origins())
	// Output:
	// zeros=2 ones=1 prediction=0 (Negative)
	// neighbors: [1 2 4]
}

// Example_queryFromRow demonstrates that a query taken from the dataset is not its own neighbor.
func Example_queryFromRow() {
	ds := exampleDataset()
	q, err := dataset.QueryFromRow(ds, 7)
	if err != nil {
		log.Fatal(err)
	}

	clf, err := partknn.New(partknn.WithK(3), partknn.WithPartitions(2), partknn.WithCutoff(3))
	if err != nil {
		log.Fatal(err)
	}

	res, err := clf.Classify(context.Background(), ds, q)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("neighbors:", res.Neighbors.Origins())
	// Output:
	// neighbors: [6 5 4]
}

// Example_reference demonstrates the serial classifier used as ground truth.
func Example_reference() {
	res, err := partknn.Reference(context.Background(), exampleDataset(), dataset.NewQuery([]float64{0, 2.5}), 3)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Neighbors.Origins(), res.Prediction)
	// Output: [1 2 0] 0
}
