// Package encoder turns Likert answer labels into ordinal features.
package encoder

import (
	"errors"
	"fmt"
	"strings"

	"Backend-Career-Advisor/src/models"
)

// DefaultLevels is the scale the training data was encoded with.
// Average and Intermediate share ordinal 3.
var DefaultLevels = []models.LikertLevel{
	{Label: "Not Interested", Value: 0},
	{Label: "Poor", Value: 1},
	{Label: "Beginner", Value: 2},
	{Label: "Average", Value: 3},
	{Label: "Intermediate", Value: 3},
	{Label: "Excellent", Value: 4},
	{Label: "Professional", Value: 5},
}

// Encoder is safe for concurrent use once built.
type Encoder struct {
	levels []models.LikertLevel
	index  map[string]int
}

// New validates a scale: labels are unique and non-empty, ordinals are
// non-negative and never decrease in scale order.
func New(levels []models.LikertLevel) (*Encoder, error) {
	if len(levels) == 0 {
		return nil, errors.New("likert scale has no levels")
	}
	index := make(map[string]int, len(levels))
	prev := -1
	for i, lvl := range levels {
		label := strings.TrimSpace(lvl.Label)
		if label == "" {
			return nil, fmt.Errorf("likert level %d has an empty label", i)
		}
		if _, dup := index[label]; dup {
			return nil, fmt.Errorf("likert label %q listed twice", label)
		}
		if lvl.Value < 0 {
			return nil, fmt.Errorf("likert label %q has negative value %d", label, lvl.Value)
		}
		if lvl.Value < prev {
			return nil, fmt.Errorf("likert label %q breaks scale order (%d after %d)", label, lvl.Value, prev)
		}
		prev = lvl.Value
		index[label] = lvl.Value
	}
	out := make([]models.LikertLevel, len(levels))
	copy(out, levels)
	return &Encoder{levels: out, index: index}, nil
}

var defaultEncoder = mustNew(DefaultLevels)

func mustNew(levels []models.LikertLevel) *Encoder {
	e, err := New(levels)
	if err != nil {
		panic(err)
	}
	return e
}

// Default returns the encoder for DefaultLevels.
func Default() *Encoder {
	return defaultEncoder
}

// Encode uses the default scale.
func Encode(answer string) int {
	return defaultEncoder.Encode(answer)
}

// Encode returns the ordinal of answer; empty or unknown labels encode to 0.
func (e *Encoder) Encode(answer string) int {
	if v, ok := e.index[strings.TrimSpace(answer)]; ok {
		return v
	}
	return 0
}

// Known reports whether answer is one of the scale labels.
func (e *Encoder) Known(answer string) bool {
	_, ok := e.index[strings.TrimSpace(answer)]
	return ok
}

// EncodeAll encodes answers in order.
func (e *Encoder) EncodeAll(answers []string) models.FeatureVector {
	out := make(models.FeatureVector, len(answers))
	for i, a := range answers {
		out[i] = e.Encode(a)
	}
	return out
}

// Options lists the labels in scale order.
func (e *Encoder) Options() []string {
	out := make([]string, len(e.levels))
	for i, lvl := range e.levels {
		out[i] = lvl.Label
	}
	return out
}

// Collisions groups labels that share an ordinal, e.g. [["Average" "Intermediate"]].
func (e *Encoder) Collisions() [][]string {
	var out [][]string
	for i := 0; i < len(e.levels); {
		j := i + 1
		for j < len(e.levels) && e.levels[j].Value == e.levels[i].Value {
			j++
		}
		if j-i > 1 {
			group := make([]string, 0, j-i)
			for _, lvl := range e.levels[i:j] {
				group = append(group, lvl.Label)
			}
			out = append(out, group)
		}
		i = j
	}
	return out
}
