package middleware

import (
	"net/http"

	"github.com/hanifadr/reimbursement-hub/internal"
	"github.com/hanifadr/reimbursement-hub/internal/session"
	"github.com/hanifadr/reimbursement-hub/internal/user"
)

// SessionAPI resolves the process-wide current actor.
type SessionAPI interface {
	CurrentActor() (*user.User, error)
}

// ActorMiddleware attaches the current actor to the request context.
// While the session is still loading requests pass through without an
// actor; actor-requiring handlers reject them individually so that
// health, metrics and the session endpoints keep working.
func ActorMiddleware(sessions SessionAPI) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := sessions.CurrentActor()
			if err == nil && actor != nil {
				ctx := session.ContextWithActor(r.Context(), actor)
				ctx = internal.ContextWithActorID(ctx, actor.ID)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}
