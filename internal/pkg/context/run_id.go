package context

import "context"

type runIDKey struct{}

func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

func GetRunID(ctx context.Context) string {
	v := ctx.Value(runIDKey{})
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
