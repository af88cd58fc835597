package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"Backend-Career-Advisor/src/services/assessment"
	"Backend-Career-Advisor/src/testutil"
	"Backend-Career-Advisor/src/utils"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// flag values survive between Execute calls on the shared command tree
	answer := predictCmd.Flags().Lookup("answer")
	require.NoError(t, answer.Value.(pflag.SliceValue).Replace(nil))
	answer.Changed = false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func answerArgs(labels []string) []string {
	var out []string
	for _, l := range labels {
		out = append(out, "--answer", l)
	}
	return out
}

func TestPredict(t *testing.T) {
	dataset := testutil.WriteDataset(t, 5)
	args := append([]string{"predict", "--config", t.TempDir(), "--dataset", dataset}, answerArgs(testutil.Answers("Professional"))...)

	out, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Predicted role: ")
	assert.Contains(t, out, "Feature vector: [5 5 5 5 5 5 5 5 5 5 5 5 5 5 5]")
}

func TestPredict_Unanswered(t *testing.T) {
	dataset := testutil.WriteDataset(t, 5)
	args := append([]string{"predict", "--config", t.TempDir(), "--dataset", dataset}, answerArgs(testutil.Answers("Poor")[:14])...)

	_, err := execute(t, args...)
	assert.ErrorIs(t, err, assessment.ErrUnanswered)
}

func TestEvaluate(t *testing.T) {
	dataset := testutil.WriteDataset(t, 5)

	out, err := execute(t, "evaluate", "--config", t.TempDir(), "--dataset", dataset)
	require.NoError(t, err)
	assert.Contains(t, out, "Algorithm:    gaussian_nb")
	assert.Contains(t, out, "Accuracy:     ")
	assert.Contains(t, out, "1 dropped")
}

func TestMissingDatasetFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.csv")

	_, err := execute(t, "evaluate", "--config", t.TempDir(), "--dataset", missing)
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	out, err := execute(t, "hash-password", "s3cret")
	require.NoError(t, err)
	hash := strings.TrimSpace(out)
	assert.True(t, utils.CheckPassword(hash, "s3cret"))

	rootCmd.SetIn(strings.NewReader("from-stdin\n"))
	t.Cleanup(func() { rootCmd.SetIn(nil) })
	out, err = execute(t, "hash-password")
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword(strings.TrimSpace(out), "from-stdin"))

	rootCmd.SetIn(strings.NewReader(""))
	_, err = execute(t, "hash-password")
	assert.Error(t, err)
}
