package training

import (
	"context"
	"fmt"
	"sync"
	"time"

	"Backend-Career-Advisor/src/logger"
	"Backend-Career-Advisor/src/metrics"
	"Backend-Career-Advisor/src/services/dataset"
)

type Config struct {
	DatasetPath string
	LabelColumn string
	Width       int
	Options     Options
}

// Trainer loads the dataset, fits a model and installs it in the registry.
// Runs are serialized.
type Trainer struct {
	config   Config
	registry *Registry
	logger   logger.Logger
	mu       sync.Mutex
}

func NewTrainer(config Config, registry *Registry, log logger.Logger) *Trainer {
	return &Trainer{
		config:   config,
		registry: registry,
		logger:   log.WithFields(map[string]interface{}{"component": "trainer"}),
	}
}

func (t *Trainer) Registry() *Registry {
	return t.registry
}

// Train retrains from datasetPath, or from the configured dataset when empty.
func (t *Trainer) Train(ctx context.Context, datasetPath string) (*Model, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if datasetPath == "" {
		datasetPath = t.config.DatasetPath
	}

	start := time.Now()
	ds, err := dataset.Load(datasetPath, t.config.LabelColumn, t.config.Width)
	if err != nil {
		metrics.ModelTrainings.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	m, err := Fit(ds, t.config.Options)
	if err != nil {
		metrics.ModelTrainings.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("train model: %w", err)
	}
	m.info.DatasetPath = datasetPath

	t.registry.Swap(m)
	metrics.ModelTrainings.WithLabelValues("succeeded").Inc()

	fields := map[string]interface{}{
		"version":   m.info.Version,
		"algorithm": m.info.Algorithm,
		"trainRows": m.info.TrainRows,
		"testRows":  m.info.TestRows,
		"dropped":   m.info.DroppedRows,
		"duration":  time.Since(start).String(),
	}
	if m.info.Accuracy != nil {
		fields["accuracy"] = *m.info.Accuracy
		metrics.ModelAccuracy.Set(*m.info.Accuracy)
	}
	t.logger.Info("model trained", fields)
	return m, nil
}
