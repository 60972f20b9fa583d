package middlewares_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradise-realestate/relay/middlewares"
)

func TestErrorTypes(t *testing.T) {
	t.Parallel()

	t.Run("timeout unwraps cause", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("wrapped: %w", &middlewares.TimeoutError{Duration: time.Second, Err: context.DeadlineExceeded})

		te, ok := middlewares.AsTimeoutError(err)
		require.True(t, ok)
		assert.Equal(t, time.Second, te.Duration)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("panic error through chain", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("wrapped: %w", &middlewares.PanicError{Value: 42})

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		assert.Equal(t, 42, pe.Value)
	})

	t.Run("unrelated errors", func(t *testing.T) {
		t.Parallel()

		_, ok := middlewares.AsPanicError(errors.New("x"))
		assert.False(t, ok)
		_, ok = middlewares.AsTimeoutError(nil)
		assert.False(t, ok)
	})
}
