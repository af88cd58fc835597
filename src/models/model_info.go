package models

import "time"

// ModelInfo describes the classifier currently serving predictions.
type ModelInfo struct {
	Version     string    `json:"version"`
	Algorithm   string    `json:"algorithm"`
	DatasetPath string    `json:"datasetPath"`
	Columns     []string  `json:"columns"`
	Classes     []int     `json:"classes"`
	TrainRows   int       `json:"trainRows"`
	TestRows    int       `json:"testRows"`
	DroppedRows int       `json:"droppedRows"`
	Accuracy    *float64  `json:"accuracy,omitempty"`
	TrainedAt   time.Time `json:"trainedAt"`
}
