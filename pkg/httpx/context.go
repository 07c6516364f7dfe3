package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUserID carries the authenticated actor id through the request
	// context.
	CtxKeyUserID ctxKey = "user_id"
)

// UserIDFromContext returns the authenticated actor id, or "" for anonymous
// requests.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// ContextWithUserID injects an actor id, mainly for tests.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxKeyUserID, userID)
}
