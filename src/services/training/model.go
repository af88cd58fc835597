// Package training fits the career classifier from the dataset and keeps
// the model being served.
package training

import (
	"fmt"
	"time"

	"Backend-Career-Advisor/src/models"
	"Backend-Career-Advisor/src/services/classifier"
	"Backend-Career-Advisor/src/services/dataset"

	"github.com/google/uuid"
)

// Options controls one training run.
type Options struct {
	Algorithm string
	TestSize  float64
	Seed      int64
}

// Model is a fitted scaler and classifier pair. It is read-only after Fit
// and safe to share between requests.
type Model struct {
	scaler *classifier.StandardScaler
	clf    classifier.Classifier
	info   models.ModelInfo
}

// Fit standardizes the training part of ds, fits the classifier on it and
// scores the hold-out part when there is one.
func Fit(ds *dataset.Dataset, opts Options) (*Model, error) {
	clf, err := classifier.New(opts.Algorithm)
	if err != nil {
		return nil, err
	}

	train, test := ds.Split(opts.TestSize, opts.Seed)

	scaler, err := classifier.FitScaler(train.Features)
	if err != nil {
		return nil, fmt.Errorf("fit scaler: %w", err)
	}
	X, err := scaler.TransformAll(train.Features)
	if err != nil {
		return nil, err
	}
	if err := clf.Fit(X, train.Labels); err != nil {
		return nil, fmt.Errorf("fit %s: %w", clf.Name(), err)
	}

	m := &Model{
		scaler: scaler,
		clf:    clf,
		info: models.ModelInfo{
			Version:     uuid.NewString(),
			Algorithm:   clf.Name(),
			Columns:     append([]string(nil), ds.Columns...),
			Classes:     clf.Classes(),
			TrainRows:   train.Len(),
			TestRows:    test.Len(),
			DroppedRows: ds.Dropped,
			TrainedAt:   time.Now().UTC(),
		},
	}

	if test.Len() > 0 {
		Xt, err := scaler.TransformAll(test.Features)
		if err != nil {
			return nil, err
		}
		acc, err := classifier.Accuracy(clf, Xt, test.Labels)
		if err != nil {
			return nil, fmt.Errorf("score hold-out: %w", err)
		}
		m.info.Accuracy = &acc
	}
	return m, nil
}

// Width is the feature vector length the model accepts.
func (m *Model) Width() int {
	return len(m.scaler.Mean)
}

// Predict returns the class id for one raw (unscaled) feature vector.
func (m *Model) Predict(v models.FeatureVector) (int, error) {
	if err := classifier.CheckLength(len(v), m.Width()); err != nil {
		return 0, err
	}
	x, err := m.scaler.Transform(v.Floats())
	if err != nil {
		return 0, err
	}
	return m.clf.Predict(x)
}

func (m *Model) Version() string {
	return m.info.Version
}

func (m *Model) Info() models.ModelInfo {
	info := m.info
	info.Columns = append([]string(nil), m.info.Columns...)
	info.Classes = append([]int(nil), m.info.Classes...)
	return info
}
