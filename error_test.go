package greet_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/innermond/greet"
	"github.com/stretchr/testify/assert"
)

func TestError_Code(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Equal(t, "", greet.ErrorCode(nil))
		assert.Equal(t, "", greet.ErrorMessage(nil))
	})

	t.Run("coded", func(t *testing.T) {
		err := greet.Errorf(greet.ENOTIMPLEMENTED, "Unsupported method (%q)", "POST")
		assert.Equal(t, greet.ENOTIMPLEMENTED, greet.ErrorCode(err))
		assert.Equal(t, `Unsupported method ("POST")`, greet.ErrorMessage(err))
	})

	t.Run("wrapped by fmt", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", greet.Errorf(greet.EINVALID, "bad"))
		assert.Equal(t, greet.EINVALID, greet.ErrorCode(err))
		assert.Equal(t, "bad", greet.ErrorMessage(err))
	})

	t.Run("plain error is internal", func(t *testing.T) {
		err := errors.New("boom")
		assert.Equal(t, greet.EINTERNAL, greet.ErrorCode(err))
		assert.Equal(t, "internal", greet.ErrorMessage(err))
	})
}

func TestError_Wrap(t *testing.T) {
	cause := errors.New("cause")
	err := greet.Errorf(greet.EINTERNAL, "greeting").Wrap(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Equal(t, "greet error: Code: internal Message: greeting", err.Error())
}
