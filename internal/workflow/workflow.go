// Description: This file contains the Workflow record consumed by the bench
// core. How the record was produced (tutorial scraping, LLM extraction) is
// somebody else's problem; the core only needs initial/goal states and the
// ordered steps with their expected state changes.
package workflow

import (
	"encoding/json"

	"github.com/mugiliam/common/apperrors"
	"github.com/mugiliam/saasbench/internal/workspace"
)

var (
	ErrWorkflowError    apperrors.Error = apperrors.New("error in processing workflow")
	ErrWorkflowNotFound apperrors.Error = ErrWorkflowError.New("workflow file not found")
	ErrInvalidWorkflow  apperrors.Error = ErrWorkflowError.New("invalid workflow schema")
	ErrInvalidState     apperrors.Error = ErrWorkflowError.New("invalid workspace state")
)

// APICall names the tool a step maps to, with its parameters.
type APICall struct {
	Tool       string         `json:"tool"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// Step is one unit of a workflow. ExpectedStateChange is a partial
// state patch applied by deep merge during replay visualization.
type Step struct {
	StepID              int            `json:"step_id"`
	Description         string         `json:"description"`
	Method              string         `json:"method" validate:"omitempty,oneof=sql ui api"`
	SQLCommand          string         `json:"sql_command,omitempty"`
	APICall             APICall        `json:"api_call"`
	ExpectedStateChange map[string]any `json:"expected_state_change,omitempty"`
	Verification        map[string]any `json:"verification,omitempty"`
}

// Workflow is one task definition, persisted as a single YAML document.
// Initial and goal states are kept as raw mappings so partially specified
// states survive a round trip; use the *WorkspaceState accessors to get
// typed states.
type Workflow struct {
	ID            string           `json:"id" validate:"required"`
	SourceURL     string           `json:"source_url,omitempty"`
	Title         string           `json:"title" validate:"required"`
	Tier          int              `json:"tier,omitempty"`
	Platforms     []string         `json:"platforms"`
	Description   string           `json:"description"`
	Prerequisites []string         `json:"prerequisites,omitempty"`
	InitialState  map[string]any   `json:"initial_state,omitempty"`
	GoalState     map[string]any   `json:"goal_state"`
	Steps         []Step           `json:"steps"`
	Milestones    []map[string]any `json:"milestones,omitempty"`
	Minefields    []map[string]any `json:"minefields,omitempty"`
}

// stateFromMap converts a raw state mapping into a typed workspace state.
func stateFromMap(m map[string]any, name string) (*workspace.State, apperrors.Error) {
	if m == nil {
		return workspace.NewState(), nil
	}
	if ok, reason := ValidateStateShape(m, name); !ok {
		return nil, ErrInvalidState.Msg(reason)
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, ErrInvalidState.Err(err)
	}
	state := workspace.NewState()
	if err := json.Unmarshal(data, state); err != nil {
		return nil, ErrInvalidState.Err(err)
	}
	return state, nil
}

// InitialWorkspaceState returns the typed initial state, empty when the
// workflow leaves it unspecified.
func (w *Workflow) InitialWorkspaceState() (*workspace.State, apperrors.Error) {
	return stateFromMap(w.InitialState, "initial_state")
}

// GoalWorkspaceState returns the typed goal state.
func (w *Workflow) GoalWorkspaceState() (*workspace.State, apperrors.Error) {
	return stateFromMap(w.GoalState, "goal_state")
}
