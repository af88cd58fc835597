package cmd

import (
	"context"
	"fmt"
	"strings"

	"Backend-Career-Advisor/src/config"
	"Backend-Career-Advisor/src/logger"
	"Backend-Career-Advisor/src/models"
	"Backend-Career-Advisor/src/services/encoder"
	"Backend-Career-Advisor/src/services/questionnaire"
	"Backend-Career-Advisor/src/services/training"

	"github.com/spf13/cobra"
)

// runtime is the state every command starts from.
type runtime struct {
	cfg      *config.Config
	log      logger.Logger
	encoder  *encoder.Encoder
	registry *training.Registry
	trainer  *training.Trainer
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var dirs []string
	if dir, _ := cmd.Flags().GetString("config"); dir != "" {
		dirs = append(dirs, dir)
	}
	cfg, err := config.Load(dirs...)
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("dataset"); p != "" {
		cfg.Dataset.Path = p
	}
	return cfg, nil
}

func newEncoder(cfg *config.Config) (*encoder.Encoder, error) {
	if len(cfg.Likert.Levels) == 0 {
		return encoder.Default(), nil
	}
	levels := make([]models.LikertLevel, len(cfg.Likert.Levels))
	for i, l := range cfg.Likert.Levels {
		levels[i] = models.LikertLevel{Label: l.Label, Value: l.Value}
	}
	return encoder.New(levels)
}

// bootstrap loads configuration and trains the initial model. A missing or
// corrupt dataset is returned as an error so the command exits non-zero.
func bootstrap(cmd *cobra.Command, log logger.Logger) (*runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	}

	enc, err := newEncoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("likert levels: %w", err)
	}
	for _, group := range enc.Collisions() {
		log.Warn("likert labels share an ordinal", map[string]interface{}{
			"labels": strings.Join(group, ", "),
		})
	}

	registry := training.NewRegistry()
	trainer := training.NewTrainer(training.Config{
		DatasetPath: cfg.Dataset.Path,
		LabelColumn: cfg.Dataset.LabelColumn,
		Width:       questionnaire.Size,
		Options: training.Options{
			Algorithm: cfg.Model.Algorithm,
			TestSize:  cfg.Model.TestSize,
			Seed:      cfg.Model.Seed,
		},
	}, registry, log)

	if _, err := trainer.Train(cmdContext(cmd), ""); err != nil {
		return nil, fmt.Errorf("initial training failed: %w", err)
	}

	return &runtime{cfg: cfg, log: log, encoder: enc, registry: registry, trainer: trainer}, nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
