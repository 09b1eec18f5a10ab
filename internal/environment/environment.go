// Description: This file contains the Environment, the orchestration layer
// between a calling agent and the tool library. One Environment owns one
// current-state reference plus two append-only logs; instances are
// independent and never share state, so parallel rollouts need no locking.
package environment

import (
	"context"
	"fmt"

	"github.com/mugiliam/saasbench/internal/common"
	"github.com/mugiliam/saasbench/internal/tools"
	"github.com/mugiliam/saasbench/internal/workspace"
	"github.com/rs/zerolog/log"
)

// EntryType tags one conversation log entry.
type EntryType string

const (
	EntryToolCall     EntryType = "tool_call"
	EntryUserMessage  EntryType = "user_message"
	EntryAgentMessage EntryType = "agent_message"
)

// Entry is one record in the conversation log.
type Entry struct {
	Type     EntryType      `json:"type"`
	Tool     tools.ToolName `json:"tool,omitempty"`
	Args     tools.Args     `json:"args,omitempty"`
	Response tools.Response `json:"response,omitempty"`
	Content  string         `json:"content,omitempty"`
}

// Environment orchestrates state transitions and tool execution.
type Environment struct {
	state        *workspace.State
	snapshots    []*workspace.State
	conversation []Entry
}

// New creates an environment seeded with the given state, or an empty
// workspace when nil.
func New(initial *workspace.State) *Environment {
	if initial == nil {
		initial = workspace.NewState()
	}
	return &Environment{
		state:     initial,
		snapshots: []*workspace.State{initial},
	}
}

// ExecuteTool dispatches one tool call, replaces the current state, and
// records the call in the conversation log. Every failure mode surfaces as
// an error response; nothing raises past this boundary.
func (e *Environment) ExecuteTool(ctx context.Context, name tools.ToolName, args tools.Args) (response tools.Response) {
	fn, lookupErr := tools.Lookup(name)
	if lookupErr != nil {
		log.Ctx(ctx).Debug().
			Str("session_id", common.SessionIdFromContext(ctx)).
			Str("tool", string(name)).
			Msg("unknown tool")
		return tools.Response{"error": fmt.Sprintf("Unknown tool: %s", name)}
	}

	newState, response, execErr := invoke(ctx, fn, e.state, args)
	if execErr != nil {
		log.Ctx(ctx).Error().
			Str("session_id", common.SessionIdFromContext(ctx)).
			Str("tool", string(name)).
			Err(execErr).
			Msg("tool execution failed")
		return tools.Response{"error": fmt.Sprintf("Tool execution failed: %s", execErr)}
	}

	e.state = newState
	e.snapshots = append(e.snapshots, newState)
	e.record(Entry{Type: EntryToolCall, Tool: name, Args: args, Response: response})
	return response
}

// invoke runs the tool and converts a panic into an error so no internal
// failure can escape ExecuteTool.
func invoke(ctx context.Context, fn tools.Func, state *workspace.State, args tools.Args) (newState *workspace.State, response tools.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			newState = state
			response = nil
			err = fmt.Errorf("%v", r)
		}
	}()
	newState, response = fn(ctx, state, args)
	return newState, response, nil
}

func (e *Environment) record(entry Entry) {
	e.conversation = append(e.conversation, entry)
}

// State returns the current workspace state.
func (e *Environment) State() *workspace.State {
	return e.state
}

// Reset clears history and state back to a fresh (or supplied) initial state.
func (e *Environment) Reset(initial *workspace.State) {
	if initial == nil {
		initial = workspace.NewState()
	}
	e.state = initial
	e.snapshots = []*workspace.State{initial}
	e.conversation = nil
}

// ToolSpecs returns the parameter specs for every available tool.
func (e *Environment) ToolSpecs() []tools.Spec {
	return tools.AllSpecs()
}

// ConversationHistory returns a copy of the conversation log.
func (e *Environment) ConversationHistory() []Entry {
	history := make([]Entry, len(e.conversation))
	copy(history, e.conversation)
	return history
}

// StateSnapshots returns a copy of the snapshot history for debugging.
func (e *Environment) StateSnapshots() []*workspace.State {
	snapshots := make([]*workspace.State, len(e.snapshots))
	copy(snapshots, e.snapshots)
	return snapshots
}

// AddUserMessage appends a user message to the conversation log.
func (e *Environment) AddUserMessage(message string) {
	e.record(Entry{Type: EntryUserMessage, Content: message})
}

// AddAgentMessage appends an agent message to the conversation log.
func (e *Environment) AddAgentMessage(message string) {
	e.record(Entry{Type: EntryAgentMessage, Content: message})
}
