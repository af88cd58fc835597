package classifier

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// varSmoothing is added to every class variance as a share of the largest
// feature variance, so constant features never divide by zero.
const varSmoothing = 1e-9

// NaiveBayes is a Gaussian Naive Bayes classifier with class priors taken
// from label frequencies.
type NaiveBayes struct {
	classes  []int
	logPrior []float64
	mean     [][]float64
	variance [][]float64
}

func (nb *NaiveBayes) Name() string { return GaussianNB }

func (nb *NaiveBayes) Fit(X [][]float64, y []int) error {
	width, err := validateTrainingSet(X, y)
	if err != nil {
		return err
	}

	all := allRows(len(X))
	maxVar := 0.0
	for j := 0; j < width; j++ {
		_, v := stat.PopMeanVariance(column(X, all, j), nil)
		maxVar = math.Max(maxVar, v)
	}
	epsilon := varSmoothing * maxVar
	if epsilon == 0 {
		epsilon = varSmoothing
	}

	classes, rows := groupByClass(y)
	nb.classes = classes
	nb.logPrior = make([]float64, len(classes))
	nb.mean = make([][]float64, len(classes))
	nb.variance = make([][]float64, len(classes))
	for k, c := range classes {
		idx := rows[c]
		nb.logPrior[k] = math.Log(float64(len(idx)) / float64(len(X)))
		nb.mean[k] = make([]float64, width)
		nb.variance[k] = make([]float64, width)
		for j := 0; j < width; j++ {
			m, v := stat.PopMeanVariance(column(X, idx, j), nil)
			nb.mean[k][j] = m
			nb.variance[k][j] = v + epsilon
		}
	}
	return nil
}

func (nb *NaiveBayes) Predict(x []float64) (int, error) {
	scores, err := nb.LogLikelihoods(x)
	if err != nil {
		return 0, err
	}
	best := 0
	for k := 1; k < len(scores); k++ {
		if scores[k] > scores[best] {
			best = k
		}
	}
	return nb.classes[best], nil
}

// LogLikelihoods returns the joint log likelihood of x per class, in Classes order.
func (nb *NaiveBayes) LogLikelihoods(x []float64) ([]float64, error) {
	if len(nb.classes) == 0 {
		return nil, ErrNotFitted
	}
	if err := CheckLength(len(x), len(nb.mean[0])); err != nil {
		return nil, err
	}
	out := make([]float64, len(nb.classes))
	for k := range nb.classes {
		ll := nb.logPrior[k]
		for j, v := range x {
			variance := nb.variance[k][j]
			d := v - nb.mean[k][j]
			ll -= 0.5 * (math.Log(2*math.Pi*variance) + d*d/variance)
		}
		out[k] = ll
	}
	return out, nil
}

func (nb *NaiveBayes) Classes() []int {
	return append([]int(nil), nb.classes...)
}
