// Package net provides request-context helpers shared by http transport code
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequestID stashes a request id where chi middleware can find it
func WithRequestID(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return ctx
}

// RequestID returns the request id on the context, or ""
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}
