package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"Backend-Career-Advisor/src/logger"
	"Backend-Career-Advisor/src/services/training"
	"Backend-Career-Advisor/src/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrainer(t *testing.T) (*training.Trainer, *training.Registry) {
	t.Helper()
	reg := training.NewRegistry()
	tr := training.NewTrainer(training.Config{
		DatasetPath: testutil.WriteDataset(t, 4),
		LabelColumn: "Role",
		Width:       15,
		Options:     training.Options{TestSize: 0.25, Seed: 1},
	}, reg, logger.NewTestLogger(t))
	return tr, reg
}

func TestNewRetrainTask(t *testing.T) {
	task, err := NewRetrainTask("data/x.csv", "admin")
	require.NoError(t, err)
	assert.Equal(t, TypeRetrainModel, task.Type())

	var p RetrainPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, RetrainPayload{DatasetPath: "data/x.csv", RequestedBy: "admin"}, p)
}

func TestHandleRetrainTask(t *testing.T) {
	tr, reg := newTrainer(t)
	w := NewWorker(tr, logger.NewTestLogger(t))

	task, err := NewRetrainTask("", "admin")
	require.NoError(t, err)
	require.NoError(t, w.HandleRetrainTask(context.Background(), task))

	m, err := reg.Current()
	require.NoError(t, err)
	assert.NotEmpty(t, m.Version())
}

func TestHandleRetrainTask_BadPayload(t *testing.T) {
	tr, _ := newTrainer(t)
	w := NewWorker(tr, logger.NewNoOpLogger())

	err := w.HandleRetrainTask(context.Background(), asynq.NewTask(TypeRetrainModel, []byte("{")))
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleRetrainTask_MissingDataset(t *testing.T) {
	tr, _ := newTrainer(t)
	w := NewWorker(tr, logger.NewNoOpLogger())

	task, err := NewRetrainTask("/does/not/exist.csv", "admin")
	require.NoError(t, err)
	assert.Error(t, w.HandleRetrainTask(context.Background(), task))
}

func TestDispatcher_Synchronous(t *testing.T) {
	tr, reg := newTrainer(t)
	d := NewDispatcher(nil, tr)

	res, err := d.Retrain(context.Background(), "", "admin")
	require.NoError(t, err)
	assert.False(t, res.Queued)

	m, err := reg.Current()
	require.NoError(t, err)
	assert.Equal(t, m.Version(), res.Version)
}

func TestDispatcher_Enqueues(t *testing.T) {
	mr := miniredis.RunT(t)
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	tr, reg := newTrainer(t)
	d := NewDispatcher(client, tr)

	res, err := d.Retrain(context.Background(), "", "admin")
	require.NoError(t, err)
	assert.True(t, res.Queued)
	assert.NotEmpty(t, res.TaskID)

	// nothing trained inline
	_, err = reg.Current()
	assert.ErrorIs(t, err, training.ErrNoModel)
}
