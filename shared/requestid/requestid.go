// Package requestid carries the X-Request-Id of an incoming request through a context so
// inter-service clients can forward it.
package requestid

import "context"

const Header = "X-Request-Id"

type ctxKey struct{}

// WithID returns a new context carrying id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request id stored in ctx, or "" when there is none.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
