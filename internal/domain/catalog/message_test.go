package catalog

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("creates active category", func(t *testing.T) {
		category, err := NewCategory("Aniversário")
		require.NoError(t, err)
		assert.Equal(t, "Aniversário", category.Name)
		assert.True(t, category.Active)
		assert.NotEmpty(t, category.ID)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewCategory("  ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("deactivate hides from pickers", func(t *testing.T) {
		category, err := NewCategory("Romântica")
		require.NoError(t, err)
		category.Deactivate()
		assert.False(t, category.Active)
		category.Activate()
		assert.True(t, category.Active)
	})
}

func TestNewMessage(t *testing.T) {
	categoryID := uuid.New()

	t.Run("creates active message", func(t *testing.T) {
		message, err := NewMessage(categoryID, "Feliz Aniversário", "Parabéns pelo seu dia!")
		require.NoError(t, err)
		assert.Equal(t, categoryID, message.CategoryID)
		assert.Equal(t, "Feliz Aniversário", message.Title)
		assert.True(t, message.Active)
	})

	t.Run("fails with nil category", func(t *testing.T) {
		_, err := NewMessage(uuid.Nil, "Título", "Corpo")
		require.Error(t, err)
	})

	t.Run("fails with empty title", func(t *testing.T) {
		_, err := NewMessage(categoryID, "", "Corpo")
		require.Error(t, err)
	})

	t.Run("fails with empty body", func(t *testing.T) {
		_, err := NewMessage(categoryID, "Título", "   ")
		require.Error(t, err)
	})
}

func TestMessageSnippet(t *testing.T) {
	categoryID := uuid.New()

	t.Run("short body is returned whole", func(t *testing.T) {
		message, err := NewMessage(categoryID, "Curta", "Uma mensagem curta.")
		require.NoError(t, err)
		assert.Equal(t, "Uma mensagem curta.", message.Snippet())
	})

	t.Run("long body is truncated to 160 runes", func(t *testing.T) {
		body := strings.Repeat("ã", 200)
		message, err := NewMessage(categoryID, "Longa", body)
		require.NoError(t, err)

		snippet := message.Snippet()
		assert.Equal(t, strings.Repeat("ã", SnippetLength)+"…", snippet)
	})
}
