package http

import "context"

type key string

const projectToken key = "token"

// GetTokenFromContext returns the project token a request was authenticated with.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(projectToken)
	token, ok := val.(string)
	return token, ok
}

// WithToken stores a project token in the context
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, projectToken, token)
}
