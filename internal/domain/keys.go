package domain

import "context"

// ContextKey is used for context value keys to avoid collisions
type ContextKey string

const (
	KeyActorID   ContextKey = "actor_id"
	KeyActorRole ContextKey = "actor_role"
	keyActor     ContextKey = "actor"
)

// WithActor stows the current actor in the context for downstream layers.
func WithActor(ctx context.Context, actor *Actor) context.Context {
	ctx = context.WithValue(ctx, keyActor, actor)
	ctx = context.WithValue(ctx, KeyActorID, actor.ID)
	ctx = context.WithValue(ctx, KeyActorRole, string(actor.Role))
	return ctx
}

// ActorFromContext returns the current actor, or nil when no one is logged
// in. Callers must treat nil as "deny", never as an error condition.
func ActorFromContext(ctx context.Context) *Actor {
	actor, _ := ctx.Value(keyActor).(*Actor)
	return actor
}
