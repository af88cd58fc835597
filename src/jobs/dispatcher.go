package jobs

import (
	"context"

	"Backend-Career-Advisor/src/services/training"

	"github.com/hibiken/asynq"
)

// RetrainResult tells the caller whether the retrain ran inline or was queued.
type RetrainResult struct {
	Queued  bool   `json:"queued"`
	TaskID  string `json:"taskId,omitempty"`
	Version string `json:"version,omitempty"`
}

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Dispatcher queues retrains when a broker is available and otherwise
// trains synchronously.
type Dispatcher struct {
	client  Enqueuer
	trainer *training.Trainer
}

// NewDispatcher accepts a nil client.
func NewDispatcher(client Enqueuer, trainer *training.Trainer) *Dispatcher {
	return &Dispatcher{client: client, trainer: trainer}
}

func (d *Dispatcher) Retrain(ctx context.Context, datasetPath, requestedBy string) (*RetrainResult, error) {
	if d.client == nil {
		m, err := d.trainer.Train(ctx, datasetPath)
		if err != nil {
			return nil, err
		}
		return &RetrainResult{Version: m.Version()}, nil
	}

	task, err := NewRetrainTask(datasetPath, requestedBy)
	if err != nil {
		return nil, err
	}
	info, err := d.client.EnqueueContext(ctx, task)
	if err != nil {
		return nil, err
	}
	return &RetrainResult{Queued: true, TaskID: info.ID}, nil
}
