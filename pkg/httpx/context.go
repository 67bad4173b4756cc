package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUserID holds the authenticated user's id (int64).
	CtxKeyUserID ctxKey = "user_id"
)

// UserIDFromContext returns the authenticated user id, or false when the
// request did not pass through the authn middleware.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(CtxKeyUserID).(int64)
	return id, ok
}
