// Package classifier implements the supervised models behind career predictions.
package classifier

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrInvalidVectorLength = errors.New("invalid feature vector length")
	ErrNotFitted           = errors.New("classifier is not fitted")
	ErrEmptyTrainingSet    = errors.New("empty training set")
)

const (
	GaussianNB      = "gaussian_nb"
	NearestCentroid = "nearest_centroid"
)

// Classifier is a fitted-in-place supervised model. Predict must be
// deterministic: ties resolve to the lowest class id.
type Classifier interface {
	Name() string
	Fit(X [][]float64, y []int) error
	Predict(x []float64) (int, error)
	Classes() []int
}

// New returns an unfitted classifier by algorithm name.
func New(algorithm string) (Classifier, error) {
	switch algorithm {
	case GaussianNB, "":
		return &NaiveBayes{}, nil
	case NearestCentroid:
		return &Centroid{}, nil
	}
	return nil, fmt.Errorf("unknown algorithm %q", algorithm)
}

// CheckLength returns a descriptive ErrInvalidVectorLength when got != want.
func CheckLength(got, want int) error {
	if got != want {
		return fmt.Errorf("%w: got %d values, want %d", ErrInvalidVectorLength, got, want)
	}
	return nil
}

// Accuracy is the share of rows in X that predict to y.
func Accuracy(c Classifier, X [][]float64, y []int) (float64, error) {
	if len(X) == 0 {
		return 0, ErrEmptyTrainingSet
	}
	correct := 0
	for i, x := range X {
		got, err := c.Predict(x)
		if err != nil {
			return 0, err
		}
		if got == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(X)), nil
}

func validateTrainingSet(X [][]float64, y []int) (int, error) {
	if len(X) == 0 {
		return 0, ErrEmptyTrainingSet
	}
	if len(X) != len(y) {
		return 0, fmt.Errorf("got %d rows and %d labels", len(X), len(y))
	}
	width := len(X[0])
	if width == 0 {
		return 0, errors.New("training rows have no features")
	}
	for i, row := range X {
		if len(row) != width {
			return 0, fmt.Errorf("row %d: %w", i, CheckLength(len(row), width))
		}
	}
	return width, nil
}

// groupByClass returns the sorted class ids and the row indexes of each.
func groupByClass(y []int) ([]int, map[int][]int) {
	rows := make(map[int][]int)
	for i, label := range y {
		rows[label] = append(rows[label], i)
	}
	classes := make([]int, 0, len(rows))
	for c := range rows {
		classes = append(classes, c)
	}
	sort.Ints(classes)
	return classes, rows
}

func column(X [][]float64, rows []int, j int) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = X[r][j]
	}
	return out
}

func allRows(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
