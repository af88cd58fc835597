package models

import "time"

// Submission is the stored history record of one completed assessment.
type Submission struct {
	ID           string        `bson:"_id" json:"id"`
	Responses    []Response    `bson:"responses" json:"responses"`
	Vector       FeatureVector `bson:"vector" json:"vector"`
	ClassID      int           `bson:"classId" json:"classId"`
	Role         string        `bson:"role" json:"role"`
	ModelVersion string        `bson:"modelVersion" json:"modelVersion"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
}

type Response struct {
	QuestionIndex int    `bson:"questionIndex" json:"questionIndex"`
	Answer        string `bson:"answer" json:"answer"`
	Value         int    `bson:"value" json:"value"`
}

// SubmissionStats is the admin summary of stored assessments.
type SubmissionStats struct {
	Total int64       `json:"total"`
	Roles []RoleCount `json:"roles"`
}
