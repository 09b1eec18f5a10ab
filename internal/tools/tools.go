// Description: This file defines the tool function contract shared by every
// operation in the library. A tool is a pure function over the immutable
// workspace state: precondition failures return the original state with an
// error response, successes return a new state with exactly one collection
// replaced.
package tools

import (
	"context"
	"fmt"

	"github.com/mugiliam/saasbench/internal/workspace"
)

// Args carries the raw tool arguments. Values follow JSON decoding
// conventions (float64 numbers, []any arrays, map[string]any objects).
type Args map[string]any

// Response is the payload returned to the caller. Error responses carry a
// single "error" key; success responses carry "success": true plus the
// canonical keys affected.
type Response map[string]any

// Func executes one operation against the current state.
type Func func(ctx context.Context, state *workspace.State, args Args) (*workspace.State, Response)

// errorf builds the uniform error response. The state accompanying it is
// always the caller's state, untouched.
func errorf(format string, a ...any) Response {
	return Response{"error": fmt.Sprintf(format, a...)}
}

// str returns the named argument as a string, or "" when absent or not a
// string. Empty and missing are deliberately indistinguishable: both fail
// the required-argument checks.
func (a Args) str(key string) string {
	s, _ := a[key].(string)
	return s
}

// strOr returns the named argument or the default when it is absent or empty.
func (a Args) strOr(key, def string) string {
	if s := a.str(key); s != "" {
		return s
	}
	return def
}

// intOr returns the named argument as an int, accepting the float64 form
// JSON decoding produces.
func (a Args) intOr(key string, def int) int {
	switch n := a[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return def
}

// list returns the named argument as a []any, or nil.
func (a Args) list(key string) []any {
	l, _ := a[key].([]any)
	return l
}
