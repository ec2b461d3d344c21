package static

import (
	"context"
	"testing"

	"github.com/innermond/greet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreetingService_Greeting(t *testing.T) {
	s := NewGreetingService()

	t.Run("fixed", func(t *testing.T) {
		g, err := s.Greeting(context.Background())
		require.NoError(t, err)
		assert.Equal(t, greet.DefaultGreeting(), g)
	})

	t.Run("body is not shared", func(t *testing.T) {
		g, err := s.Greeting(context.Background())
		require.NoError(t, err)
		g.Body[0] = 'J'

		g, err = s.Greeting(context.Background())
		require.NoError(t, err)
		assert.Equal(t, greet.GreetingBody, string(g.Body))
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := s.Greeting(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, greet.EINTERNAL, greet.ErrorCode(err))
	})
}
