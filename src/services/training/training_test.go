package training

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"Backend-Career-Advisor/src/logger"
	"Backend-Career-Advisor/src/models"
	"Backend-Career-Advisor/src/services/classifier"
	"Backend-Career-Advisor/src/services/dataset"
	"Backend-Career-Advisor/src/services/roles"
	"Backend-Career-Advisor/src/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Parse(strings.NewReader(testutil.DatasetCSV(6)), "Role", 15)
	require.NoError(t, err)
	return ds
}

func TestFit_ReportsShape(t *testing.T) {
	m, err := Fit(fixture(t), Options{Algorithm: classifier.GaussianNB, TestSize: 0.25, Seed: 7})
	require.NoError(t, err)

	info := m.Info()
	assert.Equal(t, 15, m.Width())
	assert.Equal(t, classifier.GaussianNB, info.Algorithm)
	assert.Equal(t, 96, info.TrainRows+info.TestRows)
	assert.Equal(t, 24, info.TestRows)
	assert.Equal(t, 1, info.DroppedRows)
	assert.NotEmpty(t, info.Version)
	require.NotNil(t, info.Accuracy)
	assert.GreaterOrEqual(t, *info.Accuracy, 0.0)
	assert.LessOrEqual(t, *info.Accuracy, 1.0)
}

func TestFit_NoHoldout(t *testing.T) {
	m, err := Fit(fixture(t), Options{Algorithm: classifier.NearestCentroid})
	require.NoError(t, err)
	assert.Nil(t, m.Info().Accuracy)
	assert.Len(t, m.Info().Classes, 16)
}

func TestFit_UnknownAlgorithm(t *testing.T) {
	_, err := Fit(fixture(t), Options{Algorithm: "svm"})
	assert.Error(t, err)
}

func TestModel_Predict(t *testing.T) {
	m, err := Fit(fixture(t), Options{Algorithm: classifier.GaussianNB, TestSize: 0.3, Seed: 42})
	require.NoError(t, err)

	allPro := models.FeatureVector{5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5}
	first, err := m.Predict(allPro)
	require.NoError(t, err)
	assert.True(t, roles.Known(first))

	again, err := m.Predict(allPro)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	_, err = m.Predict(models.FeatureVector{5, 5})
	assert.ErrorIs(t, err, classifier.ErrInvalidVectorLength)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	_, err := r.Current()
	assert.ErrorIs(t, err, ErrNoModel)

	m := &Model{}
	assert.Nil(t, r.Swap(m))
	got, err := r.Current()
	require.NoError(t, err)
	assert.Same(t, m, got)
	assert.Same(t, m, r.Swap(&Model{}))
}

func TestTrainer_Train(t *testing.T) {
	path := testutil.WriteDataset(t, 6)
	reg := NewRegistry()
	tr := NewTrainer(Config{
		DatasetPath: path,
		LabelColumn: "Role",
		Width:       15,
		Options:     Options{Algorithm: classifier.GaussianNB, TestSize: 0.3, Seed: 42},
	}, reg, logger.NewTestLogger(t))

	m, err := tr.Train(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, path, m.Info().DatasetPath)

	current, err := reg.Current()
	require.NoError(t, err)
	assert.Same(t, m, current)
}

func TestTrainer_MissingDatasetKeepsModel(t *testing.T) {
	reg := NewRegistry()
	tr := NewTrainer(Config{
		DatasetPath: testutil.WriteDataset(t, 4),
		LabelColumn: "Role",
		Width:       15,
	}, reg, logger.NewNoOpLogger())

	first, err := tr.Train(context.Background(), "")
	require.NoError(t, err)

	_, err = tr.Train(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	current, err := reg.Current()
	require.NoError(t, err)
	assert.Same(t, first, current)
}

func TestTrainer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tr := NewTrainer(Config{DatasetPath: "unused.csv", LabelColumn: "Role"}, NewRegistry(), logger.NewNoOpLogger())
	_, err := tr.Train(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}
