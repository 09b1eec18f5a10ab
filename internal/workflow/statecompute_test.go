package workflow

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeepMerge(t *testing.T) {
	tests := []struct {
		name     string
		base     map[string]any
		update   map[string]any
		expected map[string]any
	}{
		{
			name:     "disjoint keys",
			base:     map[string]any{"a": 1},
			update:   map[string]any{"b": 2},
			expected: map[string]any{"a": 1, "b": 2},
		},
		{
			name:     "update wins on scalar conflict",
			base:     map[string]any{"a": 1},
			update:   map[string]any{"a": 2},
			expected: map[string]any{"a": 2},
		},
		{
			name: "nested maps merge key by key",
			base: map[string]any{
				"catalogs": map[string]any{"main": map[string]any{"owner": "admin"}},
			},
			update: map[string]any{
				"catalogs": map[string]any{"sales": map[string]any{"owner": "data_team"}},
			},
			expected: map[string]any{
				"catalogs": map[string]any{
					"main":  map[string]any{"owner": "admin"},
					"sales": map[string]any{"owner": "data_team"},
				},
			},
		},
		{
			name:     "scalar replaces map",
			base:     map[string]any{"a": map[string]any{"x": 1}},
			update:   map[string]any{"a": "gone"},
			expected: map[string]any{"a": "gone"},
		},
		{
			name:     "list replaced wholesale",
			base:     map[string]any{"a": []any{1, 2}},
			update:   map[string]any{"a": []any{3}},
			expected: map[string]any{"a": []any{3}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			result := DeepMerge(tt.base, tt.update)
			if diff := cmp.Diff(tt.expected, result); diff != "" {
				t.Errorf("unexpected merge result (-expected +actual):\n%s", diff)
			}
		})
	}
}

func TestDeepMergeDoesNotAliasInputs(t *testing.T) {
	base := map[string]any{"nested": map[string]any{"a": 1}}
	update := map[string]any{"nested": map[string]any{"b": 2}}

	result := DeepMerge(base, update)
	result["nested"].(map[string]any)["a"] = 99

	assert.Equal(t, 1, base["nested"].(map[string]any)["a"])
	assert.Equal(t, 2, update["nested"].(map[string]any)["b"])
}

func stepPatchWorkflow() *Workflow {
	return &Workflow{
		ID:    "w",
		Title: "t",
		InitialState: map[string]any{
			"catalogs": map[string]any{},
		},
		GoalState: map[string]any{
			"catalogs": map[string]any{
				"sales": map[string]any{"owner": "admin"},
			},
			"schemas": map[string]any{
				"sales.default": map[string]any{"catalog_name": "sales"},
			},
		},
		Steps: []Step{
			{
				StepID: 1,
				ExpectedStateChange: map[string]any{
					"catalogs": map[string]any{"sales": map[string]any{"owner": "admin"}},
				},
			},
			{
				StepID: 2,
				ExpectedStateChange: map[string]any{
					"schemas": map[string]any{"sales.default": map[string]any{"catalog_name": "sales"}},
				},
			},
		},
	}
}

func TestStateAtStep(t *testing.T) {
	w := stepPatchWorkflow()

	t.Run("index zero is initial", func(t *testing.T) {
		state := w.StateAtStep(0)
		assert.Empty(t, state["catalogs"])
		assert.NotContains(t, state, "schemas")
	})

	t.Run("index minus one is goal", func(t *testing.T) {
		state := w.StateAtStep(-1)
		if diff := cmp.Diff(w.GoalState, state); diff != "" {
			t.Errorf("goal state mismatch:\n%s", diff)
		}
	})

	t.Run("after first step", func(t *testing.T) {
		state := w.StateAtStep(1)
		catalogs, ok := state["catalogs"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, catalogs, "sales")
		assert.NotContains(t, state, "schemas")
	})

	t.Run("after all steps matches goal", func(t *testing.T) {
		state := w.StateAtStep(2)
		if diff := cmp.Diff(w.GoalState, state); diff != "" {
			t.Errorf("final merged state mismatch:\n%s", diff)
		}
	})
}

func TestStateBeforeAndAfterStep(t *testing.T) {
	w := stepPatchWorkflow()

	before := w.StateBeforeStep(2)
	assert.Contains(t, before, "catalogs")
	assert.NotContains(t, before, "schemas")

	after := w.StateAfterStep(2)
	assert.Contains(t, after, "schemas")

	assert.NotContains(t, w.StateBeforeStep(1), "schemas")
}
