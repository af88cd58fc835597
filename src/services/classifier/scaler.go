package classifier

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// StandardScaler centres each feature on its training mean and divides by
// its population standard deviation. Constant features keep scale 1.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func FitScaler(X [][]float64) (*StandardScaler, error) {
	width, err := validateTrainingSet(X, make([]int, len(X)))
	if err != nil {
		return nil, err
	}
	rows := allRows(len(X))
	s := &StandardScaler{Mean: make([]float64, width), Scale: make([]float64, width)}
	for j := 0; j < width; j++ {
		mean, variance := stat.PopMeanVariance(column(X, rows, j), nil)
		s.Mean[j] = mean
		s.Scale[j] = 1
		if variance > 0 {
			s.Scale[j] = math.Sqrt(variance)
		}
	}
	return s, nil
}

func (s *StandardScaler) Transform(x []float64) ([]float64, error) {
	if err := CheckLength(len(x), len(s.Mean)); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	for j, v := range x {
		out[j] = (v - s.Mean[j]) / s.Scale[j]
	}
	return out, nil
}

func (s *StandardScaler) TransformAll(X [][]float64) ([][]float64, error) {
	out := make([][]float64, len(X))
	for i, x := range X {
		t, err := s.Transform(x)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}
