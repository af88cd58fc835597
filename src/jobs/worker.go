package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"Backend-Career-Advisor/src/logger"
	"Backend-Career-Advisor/src/services/training"

	"github.com/hibiken/asynq"
)

// Worker runs retrain tasks against the shared trainer.
type Worker struct {
	trainer *training.Trainer
	logger  logger.Logger
}

func NewWorker(trainer *training.Trainer, log logger.Logger) *Worker {
	return &Worker{
		trainer: trainer,
		logger:  log.WithFields(map[string]interface{}{"component": "worker"}),
	}
}

func (w *Worker) HandleRetrainTask(ctx context.Context, t *asynq.Task) error {
	var payload RetrainPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		w.logger.WithError(err).Error("payload decode error", nil)
		return fmt.Errorf("decode retrain payload: %v: %w", err, asynq.SkipRetry)
	}

	w.logger.Info("retrain task started", map[string]interface{}{
		"dataset":      payload.DatasetPath,
		"requested_by": payload.RequestedBy,
	})

	m, err := w.trainer.Train(ctx, payload.DatasetPath)
	if err != nil {
		w.logger.WithError(err).Error("retrain task failed", nil)
		return err
	}

	w.logger.Info("retrain task finished", map[string]interface{}{"version": m.Version()})
	return nil
}

func (w *Worker) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRetrainModel, w.HandleRetrainTask)
	return mux
}

// NewServer builds the asynq server that consumes retrain tasks.
func NewServer(redisOpt asynq.RedisClientOpt) *asynq.Server {
	return asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 1,
		Queues:      map[string]int{"default": 1},
	})
}
