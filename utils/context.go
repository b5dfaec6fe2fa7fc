package utils

import "context"

type requesterKey struct{}

// WithRequesterID attaches the acting user's id to ctx.
func WithRequesterID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requesterKey{}, id)
}

// RequesterIDFromContext returns the acting user's id, or "" if none is set.
func RequesterIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requesterKey{}).(string)
	return id
}
