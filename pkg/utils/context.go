package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

func SetRequestID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, RequestIDKey, id.String())
}

// GetRequestID returns the request ID set by the logger middleware, or "".
func GetRequestID(ctx context.Context) string {
	val := ctx.Value(RequestIDKey)
	if val == nil {
		return ""
	}

	id, _ := val.(string)
	return id
}
