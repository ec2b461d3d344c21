package greet

import (
	"context"

	"github.com/segmentio/ksuid"
)

type key int

const (
	requestIDContextKey = key(iota + 1)
)

func NewContextWithRequestID(ctx context.Context, id ksuid.KSUID) context.Context {
	return context.WithValue(ctx, requestIDContextKey, id)
}

func RequestIDFromContext(ctx context.Context) ksuid.KSUID {
	id, ok := ctx.Value(requestIDContextKey).(ksuid.KSUID)
	if !ok {
		return ksuid.Nil
	}

	return id
}
