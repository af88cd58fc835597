package models

// Question is one prompt of the skills assessment. Index is its position
// in the questionnaire and the feature column it feeds.
type Question struct {
	Index  int    `json:"index"`
	Key    string `json:"key"`
	Prompt string `json:"prompt"`
}

// LikertLevel maps an answer label to its ordinal.
type LikertLevel struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Questionnaire is what the assessment page renders.
type Questionnaire struct {
	Questions []Question `json:"questions"`
	Options   []string   `json:"options"`
}
