package greet_test

import (
	"context"
	"testing"

	"github.com/innermond/greet"
	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
)

func TestDefaultGreeting(t *testing.T) {
	g := greet.DefaultGreeting()

	assert.Equal(t, 200, g.Status)
	assert.Equal(t, "text/plain", g.ContentType)
	assert.Equal(t, []byte("Hello from Python!"), g.Body)
	assert.Len(t, g.Body, 18)
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Equal(t, ksuid.Nil, greet.RequestIDFromContext(context.Background()))

	id := ksuid.New()
	ctx := greet.NewContextWithRequestID(context.Background(), id)
	assert.Equal(t, id, greet.RequestIDFromContext(ctx))
}
