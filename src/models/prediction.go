package models

import "time"

// FeatureVector holds one encoded answer per question, in question order.
type FeatureVector []int

// Floats converts the vector for the classifier.
func (v FeatureVector) Floats() []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

// FeatureValue is the debug view of one encoded answer.
type FeatureValue struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Value    int    `json:"value"`
}

type Prediction struct {
	ID           string         `json:"id"`
	ClassID      int            `json:"classId"`
	Role         string         `json:"role"`
	Vector       FeatureVector  `json:"vector"`
	Features     []FeatureValue `json:"features"`
	ModelVersion string         `json:"modelVersion"`
	Cached       bool           `json:"cached"`
	CreatedAt    time.Time      `json:"createdAt"`
}
