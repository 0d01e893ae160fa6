package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWorkers(t *testing.T) {
	assert.Positive(t, DefaultWorkers())
}

func TestRunBatch_RunsEveryProject(t *testing.T) {
	dir := t.TempDir()
	in := writeProject(t, exampleProject)

	var projects []*Project
	for i := 0; i < 5; i++ {
		out := filepath.Join(dir, fmt.Sprintf("out%d.object", i))
		projects = append(projects, NewProject(in, out, projectConfig(), nil))
	}

	results, err := RunBatch(context.Background(), projects, 2)
	require.NoError(t, err)
	require.Len(t, results, 5)

	for i, res := range results {
		assert.Equal(t, 2, res.Objects)
		data, err := os.ReadFile(filepath.Join(dir, fmt.Sprintf("out%d.object", i)))
		require.NoError(t, err)
		assert.Equal(t, expectedExample, string(data))
	}
}

func TestRunBatch_DefaultWorkers(t *testing.T) {
	in := writeProject(t, exampleProject)
	w := &memWriter{}

	_, err := RunBatch(context.Background(), []*Project{NewProject(in, "a.object", projectConfig(), w)}, 0)
	require.NoError(t, err)
	assert.Equal(t, expectedExample, w.files["a.object"])
}

func TestRunBatch_ReportsFailure(t *testing.T) {
	in := writeProject(t, exampleProject)

	projects := []*Project{
		NewProject(in, "", projectConfig(), &memWriter{}),
	}

	_, err := RunBatch(context.Background(), projects, 1)
	require.Error(t, err)

	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "job 1")
}

func TestRunBatch_Empty(t *testing.T) {
	results, err := RunBatch(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}
