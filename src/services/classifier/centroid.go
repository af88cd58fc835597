package classifier

import "gonum.org/v1/gonum/stat"

// Centroid predicts the class whose mean feature vector is nearest in
// Euclidean distance.
type Centroid struct {
	classes   []int
	centroids [][]float64
}

func (c *Centroid) Name() string { return NearestCentroid }

func (c *Centroid) Fit(X [][]float64, y []int) error {
	width, err := validateTrainingSet(X, y)
	if err != nil {
		return err
	}
	classes, rows := groupByClass(y)
	c.classes = classes
	c.centroids = make([][]float64, len(classes))
	for k, class := range classes {
		c.centroids[k] = make([]float64, width)
		for j := 0; j < width; j++ {
			c.centroids[k][j] = stat.Mean(column(X, rows[class], j), nil)
		}
	}
	return nil
}

func (c *Centroid) Predict(x []float64) (int, error) {
	if len(c.classes) == 0 {
		return 0, ErrNotFitted
	}
	if err := CheckLength(len(x), len(c.centroids[0])); err != nil {
		return 0, err
	}
	best, bestDist := 0, -1.0
	for k, centroid := range c.centroids {
		d := 0.0
		for j, v := range x {
			diff := v - centroid[j]
			d += diff * diff
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = k, d
		}
	}
	return c.classes[best], nil
}

func (c *Centroid) Classes() []int {
	return append([]int(nil), c.classes...)
}
