// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, JWT validation, and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// ActorIDCtxKey is the key used to store the authenticated administrator id
// in the context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ActorIDCtxKey, "admin-42")
var ActorIDCtxKey = contextKey("actorID")

// GetActorIDFromContext retrieves the administrator id from the context.
//
// Returns the actor id and an ok flag:
//   - ok == true: a non-empty string value is found
//   - ok == false: value is missing, empty, or has an unexpected type
func GetActorIDFromContext(ctx context.Context) (string, bool) {
	actorID, ok := ctx.Value(ActorIDCtxKey).(string)
	return actorID, ok && actorID != ""
}

// WithActorID returns a copy of ctx carrying actorID.
func WithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, ActorIDCtxKey, actorID)
}
