package tools

import (
	"context"
	"sort"
	"time"

	"github.com/mugiliam/saasbench/internal/common"
	"github.com/mugiliam/saasbench/internal/workspace"
)

// ListJobs lists all scheduled jobs, ordered by job id.
func ListJobs(ctx context.Context, state *workspace.State, args Args) (*workspace.State, Response) {
	ids := make([]string, 0, len(state.Jobs))
	for id := range state.Jobs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	jobList := make([]Response, 0, len(ids))
	for _, id := range ids {
		j := state.Jobs[id]
		jobList = append(jobList, Response{
			"job_id":     j.JobID,
			"name":       j.Name,
			"schedule":   j.Schedule,
			"task_count": len(j.Tasks),
		})
	}
	return state, Response{"jobs": jobList}
}

// CreateJob creates a job with a fresh generated id. The schedule is an
// optional cron expression; tasks are stored uninterpreted.
func CreateJob(ctx context.Context, state *workspace.State, args Args) (*workspace.State, Response) {
	name := args.str("name")
	schedule := args.str("schedule")

	if name == "" {
		return state, errorf("name is required")
	}

	var tasks []map[string]any
	for _, raw := range args.list("tasks") {
		if task, ok := raw.(map[string]any); ok {
			tasks = append(tasks, task)
		}
	}

	jobID := common.IdGeneratorFromContext(ctx)()
	newJob := workspace.Job{
		JobID:     jobID,
		Name:      name,
		Schedule:  schedule,
		Tasks:     tasks,
		CreatedAt: time.Now(),
	}
	newState := state.WithJob(jobID, newJob)
	return newState, Response{"success": true, "job_id": jobID}
}
