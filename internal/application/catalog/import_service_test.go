package catalog

import (
	"context"
	"testing"

	"github.com/diskmensagem/backend/internal/domain/catalog"
	"github.com/diskmensagem/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleArchive = `Categoria: Aniversário
Título: Parabéns
Que este dia seja repleto de alegria
e muitos anos de vida.
---
Título: Mais um ano
O tempo passa e você só melhora.
---
Categoria: Romântica
Título: Declaração
Meu amor por você cresce a cada dia.
---
`

func TestImportService_Import(t *testing.T) {
	ctx := context.Background()

	t.Run("creates categories and messages from archive text", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		messageRepo := new(MockMessageRepository)
		service := NewImportService(categoryRepo, messageRepo, zap.NewNop())

		categoryRepo.On("FindByName", ctx, "Aniversário").Return(nil, shared.ErrNotFound)
		categoryRepo.On("FindByName", ctx, "Romântica").Return(nil, shared.ErrNotFound)
		categoryRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil)
		messageRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Message")).Return(nil)

		result, err := service.Import(ctx, ImportRequest{Text: sampleArchive})

		require.NoError(t, err)
		assert.Equal(t, 2, result.CategoriesCreated)
		assert.Equal(t, 3, result.MessagesCreated)
		assert.Empty(t, result.Skipped)
		categoryRepo.AssertNumberOfCalls(t, "Save", 2)
		messageRepo.AssertNumberOfCalls(t, "Save", 3)
	})

	t.Run("reuses existing categories by name", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		messageRepo := new(MockMessageRepository)
		service := NewImportService(categoryRepo, messageRepo, zap.NewNop())

		existing, err := catalog.NewCategory("Aniversário")
		require.NoError(t, err)
		categoryRepo.On("FindByName", ctx, "Aniversário").Return(existing, nil)
		messageRepo.On("Save", ctx, mock.MatchedBy(func(m *catalog.Message) bool {
			return m.CategoryID == existing.ID
		})).Return(nil)

		result, importErr := service.Import(ctx, ImportRequest{Text: "Categoria: Aniversário\nTítulo: Parabéns\nTexto da mensagem\n---\n"})

		require.NoError(t, importErr)
		assert.Equal(t, 0, result.CategoriesCreated)
		assert.Equal(t, 1, result.MessagesCreated)
		categoryRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("skips malformed entries without aborting", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		messageRepo := new(MockMessageRepository)
		service := NewImportService(categoryRepo, messageRepo, zap.NewNop())

		categoryRepo.On("FindByName", ctx, "Aniversário").Return(nil, shared.ErrNotFound)
		categoryRepo.On("Save", ctx, mock.Anything).Return(nil)
		messageRepo.On("Save", ctx, mock.Anything).Return(nil)

		text := "Título: Sem categoria\nTexto perdido\n---\nCategoria: Aniversário\nTítulo: Válida\nTexto\n---\nTítulo: Sem corpo\n---\n"
		result, err := service.Import(ctx, ImportRequest{Text: text})

		require.NoError(t, err)
		assert.Equal(t, 1, result.MessagesCreated)
		assert.Len(t, result.Skipped, 2)
	})

	t.Run("rejects text without any entries", func(t *testing.T) {
		service := NewImportService(new(MockCategoryRepository), new(MockMessageRepository), zap.NewNop())

		result, err := service.Import(ctx, ImportRequest{Text: "   \n  \n"})

		assert.Nil(t, result)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMPTY_IMPORT", domainErr.Code)
	})
}

func TestParseArchive(t *testing.T) {
	t.Run("parses entries with multi-line bodies", func(t *testing.T) {
		entries, skipped := parseArchive(sampleArchive)

		require.Len(t, entries, 3)
		assert.Empty(t, skipped)
		assert.Equal(t, "Aniversário", entries[0].category)
		assert.Equal(t, "Parabéns", entries[0].title)
		assert.Contains(t, entries[0].body, "repleto de alegria")
		assert.Contains(t, entries[0].body, "muitos anos de vida")
		assert.Equal(t, "Romântica", entries[2].category)
	})

	t.Run("a new category header closes the open entry", func(t *testing.T) {
		text := "Categoria: A\nTítulo: Um\nCorpo um\nCategoria: B\nTítulo: Dois\nCorpo dois\n"

		entries, skipped := parseArchive(text)

		require.Len(t, entries, 2)
		assert.Empty(t, skipped)
		assert.Equal(t, "A", entries[0].category)
		assert.Equal(t, "B", entries[1].category)
	})

	t.Run("reports stray text outside entries", func(t *testing.T) {
		_, skipped := parseArchive("linha solta\nCategoria: A\nTítulo: Um\nCorpo\n---\n")

		require.Len(t, skipped, 1)
		assert.Contains(t, skipped[0], "line 1")
	})
}
