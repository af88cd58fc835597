package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeRetrainModel = "model:retrain"

type RetrainPayload struct {
	DatasetPath string `json:"dataset_path,omitempty"`
	RequestedBy string `json:"requested_by"`
}

func NewRetrainTask(datasetPath, requestedBy string) (*asynq.Task, error) {
	payload, err := json.Marshal(RetrainPayload{DatasetPath: datasetPath, RequestedBy: requestedBy})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRetrainModel, payload, asynq.MaxRetry(3), asynq.Timeout(5*time.Minute)), nil
}
