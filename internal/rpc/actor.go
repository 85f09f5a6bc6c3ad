package rpc

import (
	"context"
	"net/http"

	"github.com/vmkteam/zenrpc/v2"
)

// ActorHeader carries the editor id set by the auth proxy.
const ActorHeader = "X-Actor-ID"

type actorKey struct{}

var errActorRequired = zenrpc.NewStringError(http.StatusUnauthorized, "actor required")

// WithActor puts the editor id from ActorHeader into the request context for write methods.
func WithActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if actor := r.Header.Get(ActorHeader); actor != "" {
			r = r.WithContext(context.WithValue(r.Context(), actorKey{}, actor))
		}
		next.ServeHTTP(w, r)
	})
}

func actorFromContext(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(actorKey{}).(string)
	return actor, ok && actor != ""
}
