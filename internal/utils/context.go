// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and run id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ActorCtxKey is the key used to store the authenticated operator name in
// the context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ActorCtxKey, "ops")
var ActorCtxKey = contextKey("actor")

// GetActorFromContext retrieves the operator name from the context.
//
// Returns ok == false when the value is missing, empty or has an unexpected
// type.
func GetActorFromContext(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(ActorCtxKey).(string)
	return actor, ok && actor != ""
}
