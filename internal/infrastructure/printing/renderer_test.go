package printing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderError(t *testing.T) {
	t.Run("formats message with cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := NewRenderError(ErrCodeRenderFailed, "rendering failed", cause)

		assert.Equal(t, "rendering failed: boom", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("formats message without cause", func(t *testing.T) {
		err := NewRenderError(ErrCodeRenderTimeout, "timed out", nil)

		assert.Equal(t, "timed out", err.Error())
	})
}

func TestChromedpRenderer_Validation(t *testing.T) {
	renderer, err := NewChromedpRenderer(nil)
	require.NoError(t, err)
	defer renderer.Close()

	t.Run("rejects nil request", func(t *testing.T) {
		result, err := renderer.Render(context.Background(), nil)

		assert.Nil(t, result)
		var renderErr *RenderError
		require.ErrorAs(t, err, &renderErr)
		assert.Equal(t, ErrCodeInvalidHTML, renderErr.Code)
	})

	t.Run("rejects empty HTML", func(t *testing.T) {
		result, err := renderer.Render(context.Background(), &RenderRequest{HTML: "   "})

		assert.Nil(t, result)
		var renderErr *RenderError
		require.ErrorAs(t, err, &renderErr)
		assert.Equal(t, ErrCodeInvalidHTML, renderErr.Code)
	})
}
