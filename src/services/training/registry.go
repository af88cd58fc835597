package training

import (
	"errors"
	"sync/atomic"
)

var ErrNoModel = errors.New("no model has been trained")

// Registry holds the model currently serving predictions. Swaps are atomic
// so requests never observe a half-trained model.
type Registry struct {
	current atomic.Pointer[Model]
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Current() (*Model, error) {
	m := r.current.Load()
	if m == nil {
		return nil, ErrNoModel
	}
	return m, nil
}

// Swap installs m and returns the previous model, if any.
func (r *Registry) Swap(m *Model) *Model {
	return r.current.Swap(m)
}
