// Description: This file contains the workflow YAML loader. Structural
// problems (malformed YAML, schema violations, unrecognized state keys) are
// load-time failures that abort loading; they are a different error class
// from the runtime tool errors and never produce a partial Workflow.
package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mugiliam/common/apperrors"
	"github.com/rs/zerolog/log"
	"github.com/xeipuuv/gojsonschema"
	"sigs.k8s.io/yaml"
)

// workflowSchema is the JSON Schema every workflow document must satisfy
// before it is decoded into a Workflow.
const workflowSchema = `{
	"type": "object",
	"required": ["id", "title", "goal_state", "steps"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"source_url": {"type": "string"},
		"title": {"type": "string", "minLength": 1},
		"tier": {"type": "integer", "minimum": 1, "maximum": 5},
		"platforms": {"type": "array", "items": {"type": "string"}},
		"description": {"type": "string"},
		"prerequisites": {"type": "array", "items": {"type": "string"}},
		"initial_state": {"type": "object"},
		"goal_state": {"type": "object"},
		"steps": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["step_id", "description"],
				"properties": {
					"step_id": {"type": "integer"},
					"description": {"type": "string"},
					"method": {"type": "string", "enum": ["sql", "ui", "api"]},
					"sql_command": {"type": "string"},
					"api_call": {"type": "object"},
					"expected_state_change": {"type": "object"},
					"verification": {"type": "object"}
				}
			}
		},
		"milestones": {"type": "array"},
		"minefields": {"type": "array"}
	}
}`

var stateCollectionKeys = map[string]bool{
	"catalogs":       true,
	"schemas":        true,
	"tables":         true,
	"notebooks":      true,
	"clusters":       true,
	"jobs":           true,
	"permissions":    true,
	"active_catalog": true,
}

var v = validator.New()

// ValidateStateShape checks that a raw state mapping only uses recognized
// resource-collection names (or the active_catalog scalar).
func ValidateStateShape(stateMap map[string]any, stateName string) (bool, string) {
	for key := range stateMap {
		if !stateCollectionKeys[key] {
			return false, fmt.Sprintf("%s has unrecognized resource key '%s'", stateName, key)
		}
	}
	return true, ""
}

// Load reads and validates one workflow YAML file. With validateStates set,
// initial_state and goal_state must each independently satisfy the
// workspace state shape.
func Load(ctx context.Context, path string, validateStates bool) (*Workflow, apperrors.Error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrWorkflowNotFound.Msg(path)
		}
		return nil, ErrWorkflowError.Err(err)
	}

	jsonDoc, err := yaml.YAMLToJSON(raw)
	if err != nil {
		return nil, ErrInvalidWorkflow.Err(err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(workflowSchema),
		gojsonschema.NewBytesLoader(jsonDoc),
	)
	if err != nil {
		return nil, ErrInvalidWorkflow.Err(err)
	}
	if !result.Valid() {
		reasons := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			reasons = append(reasons, desc.String())
		}
		return nil, ErrInvalidWorkflow.Msg(strings.Join(reasons, "; "))
	}

	wf := &Workflow{}
	if err := json.Unmarshal(jsonDoc, wf); err != nil {
		return nil, ErrInvalidWorkflow.Err(err)
	}
	if err := v.Struct(wf); err != nil {
		return nil, ErrInvalidWorkflow.Err(err)
	}

	if validateStates {
		if wf.InitialState != nil {
			if ok, reason := ValidateStateShape(wf.InitialState, "initial_state"); !ok {
				return nil, ErrInvalidState.Msg(reason)
			}
		}
		if wf.GoalState != nil {
			if ok, reason := ValidateStateShape(wf.GoalState, "goal_state"); !ok {
				return nil, ErrInvalidState.Msg(reason)
			}
		}
	}

	return wf, nil
}

// LoadDir loads every *.yaml workflow in a directory, sorted by filename.
// Files that fail to load are logged and skipped; a missing directory is an
// empty result, not an error.
func LoadDir(ctx context.Context, dir string) []*Workflow {
	entries, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("dir", dir).Msg("failed to scan workflow directory")
		return nil
	}
	sort.Strings(entries)

	var workflows []*Workflow
	for _, path := range entries {
		wf, loadErr := Load(ctx, path, true)
		if loadErr != nil {
			log.Ctx(ctx).Error().Err(loadErr).Str("path", path).Msg("failed to load workflow")
			continue
		}
		workflows = append(workflows, wf)
	}
	return workflows
}
