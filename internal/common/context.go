// Description: This file contains the context package which is used to set and retrieve data from the context.
package common

import (
	"context"

	"github.com/google/uuid"
)

// ctxSessionIdKeyType represents the key type for the session ID in the context.
type ctxSessionIdKeyType string

const ctxSessionIdKey ctxSessionIdKeyType = "SaasBenchSessionId"

// ctxIdGeneratorKeyType represents the key type for the identifier generator in the context.
type ctxIdGeneratorKeyType string

const ctxIdGeneratorKey ctxIdGeneratorKeyType = "SaasBenchIdGenerator"

// IdGenerator produces unique identifiers for clusters and jobs. Tests
// install a deterministic generator through the context.
type IdGenerator func() string

// SetSessionIdInContext sets the session ID in the provided context.
func SetSessionIdInContext(ctx context.Context, sessionId string) context.Context {
	return context.WithValue(ctx, ctxSessionIdKey, sessionId)
}

// SessionIdFromContext retrieves the session ID from the provided context.
func SessionIdFromContext(ctx context.Context) string {
	if sessionId, ok := ctx.Value(ctxSessionIdKey).(string); ok {
		return sessionId
	}
	return ""
}

// SetIdGeneratorInContext sets the identifier generator in the provided context.
func SetIdGeneratorInContext(ctx context.Context, gen IdGenerator) context.Context {
	return context.WithValue(ctx, ctxIdGeneratorKey, gen)
}

// IdGeneratorFromContext retrieves the identifier generator from the provided
// context, falling back to random UUIDs.
func IdGeneratorFromContext(ctx context.Context) IdGenerator {
	if gen, ok := ctx.Value(ctxIdGeneratorKey).(IdGenerator); ok && gen != nil {
		return gen
	}
	return uuid.NewString
}
