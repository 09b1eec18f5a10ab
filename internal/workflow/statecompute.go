// Description: This file contains the replay-side state computation: deep
// merging step patches onto the initial state to reconstruct the expected
// state at any point in a workflow.
package workflow

// deepCopy clones nested map/slice values so merged states never alias the
// workflow's own mappings.
func deepCopy(value any) any {
	switch v := value.(type) {
	case map[string]any:
		clone := make(map[string]any, len(v))
		for key, val := range v {
			clone[key] = deepCopy(val)
		}
		return clone
	case []any:
		clone := make([]any, len(v))
		for i, val := range v {
			clone[i] = deepCopy(val)
		}
		return clone
	default:
		return v
	}
}

// DeepMerge merges update into base recursively; map values merge key by
// key, anything else is replaced, with update taking precedence.
func DeepMerge(base, update map[string]any) map[string]any {
	result, _ := deepCopy(base).(map[string]any)
	if result == nil {
		result = make(map[string]any)
	}
	for key, value := range update {
		if existing, ok := result[key].(map[string]any); ok {
			if patch, ok := value.(map[string]any); ok {
				result[key] = DeepMerge(existing, patch)
				continue
			}
		}
		result[key] = deepCopy(value)
	}
	return result
}

// StateAtStep computes the expected raw state at a step index: 0 is the
// initial state, -1 the goal state, N the state after step N.
func (w *Workflow) StateAtStep(stepIndex int) map[string]any {
	if stepIndex == -1 {
		if clone, ok := deepCopy(w.GoalState).(map[string]any); ok {
			return clone
		}
		return map[string]any{}
	}

	state, _ := deepCopy(w.InitialState).(map[string]any)
	if state == nil {
		state = map[string]any{}
	}
	if stepIndex == 0 {
		return state
	}

	for _, step := range w.Steps {
		if step.StepID <= stepIndex && len(step.ExpectedStateChange) > 0 {
			state = DeepMerge(state, step.ExpectedStateChange)
		}
	}
	return state
}

// StateBeforeStep computes the expected raw state before the given step id.
func (w *Workflow) StateBeforeStep(stepID int) map[string]any {
	if stepID <= 1 {
		return w.StateAtStep(0)
	}
	state := w.StateAtStep(0)
	for _, step := range w.Steps {
		if step.StepID < stepID && len(step.ExpectedStateChange) > 0 {
			state = DeepMerge(state, step.ExpectedStateChange)
		}
	}
	return state
}

// StateAfterStep computes the expected raw state after the given step id.
func (w *Workflow) StateAfterStep(stepID int) map[string]any {
	return w.StateAtStep(stepID)
}
