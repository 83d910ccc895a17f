package session

import (
	"context"

	"github.com/hanifadr/reimbursement-hub/internal/user"
)

type ctxKey string

const actorKey ctxKey = "actor"

// ContextWithActor attaches the resolved acting user to the request
// context.
func ContextWithActor(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, actorKey, u)
}

// ActorFromContext returns the acting user, or nil when the session
// had not resolved by the time the request came in.
func ActorFromContext(ctx context.Context) *user.User {
	if u, ok := ctx.Value(actorKey).(*user.User); ok {
		return u
	}
	return nil
}
