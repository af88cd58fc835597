package models

// Role is a career label the classifier can predict.
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// RoleCount is one bucket of the submission histogram.
type RoleCount struct {
	ClassID int    `bson:"_id" json:"classId"`
	Role    string `bson:"-" json:"role"`
	Count   int64  `bson:"count" json:"count"`
}
