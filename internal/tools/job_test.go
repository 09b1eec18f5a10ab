package tools

import (
	"testing"

	"github.com/mugiliam/saasbench/internal/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJob(t *testing.T) {
	t.Run("with schedule and tasks", func(t *testing.T) {
		ctx, _ := sequentialIds("job")
		state := workspace.NewState()
		newState, resp := CreateJob(ctx, state, Args{
			"name":     "nightly_etl",
			"schedule": "0 2 * * *",
			"tasks": []any{
				map[string]any{"notebook_path": "/Users/ada/etl"},
			},
		})
		require.NotContains(t, resp, "error")
		assert.Equal(t, "job-0001", resp["job_id"])

		j, ok := newState.Jobs["job-0001"]
		require.True(t, ok)
		assert.Equal(t, "nightly_etl", j.Name)
		assert.Equal(t, "0 2 * * *", j.Schedule)
		require.Len(t, j.Tasks, 1)
		assert.Equal(t, "/Users/ada/etl", j.Tasks[0]["notebook_path"])
		assert.Empty(t, state.Jobs)
	})

	t.Run("schedule optional", func(t *testing.T) {
		ctx, _ := sequentialIds("job")
		newState, resp := CreateJob(ctx, workspace.NewState(), Args{"name": "adhoc"})
		require.NotContains(t, resp, "error")
		j := newState.Jobs["job-0001"]
		assert.Empty(t, j.Schedule)
		assert.Empty(t, j.Tasks)
	})

	t.Run("missing name", func(t *testing.T) {
		ctx, _ := sequentialIds("job")
		_, resp := CreateJob(ctx, workspace.NewState(), Args{})
		assert.Equal(t, "name is required", resp["error"])
	})
}

func TestListJobs(t *testing.T) {
	ctx, _ := sequentialIds("job")
	state := workspace.NewState()
	var resp Response
	for _, name := range []string{"etl", "report"} {
		state, resp = CreateJob(ctx, state, Args{"name": name})
		require.NotContains(t, resp, "error")
	}

	_, resp = ListJobs(ctx, state, Args{})
	list, ok := resp["jobs"].([]Response)
	require.True(t, ok)
	require.Len(t, list, 2)
	assert.Equal(t, "job-0001", list[0]["job_id"])
	assert.Equal(t, "etl", list[0]["name"])
	assert.Equal(t, 0, list[0]["task_count"])
	assert.Equal(t, "job-0002", list[1]["job_id"])
}
