package catalog

import (
	"context"
	"errors"

	"github.com/diskmensagem/backend/internal/domain/catalog"
	"github.com/diskmensagem/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CatalogService handles category and message management
type CatalogService struct {
	categoryRepo catalog.CategoryRepository
	messageRepo  catalog.MessageRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(categoryRepo catalog.CategoryRepository, messageRepo catalog.MessageRepository) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		messageRepo:  messageRepo,
	}
}

// =============================================================================
// Categories
// =============================================================================

// CreateCategory creates a new category with a unique name
func (s *CatalogService) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	if _, err := s.categoryRepo.FindByName(ctx, req.Name); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this name already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	category, err := catalog.NewCategory(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// UpdateCategory renames or toggles a category
func (s *CatalogService) UpdateCategory(ctx context.Context, categoryID uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != category.Name {
		if _, err := s.categoryRepo.FindByName(ctx, *req.Name); err == nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this name already exists")
		} else if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if err := category.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Active != nil {
		if *req.Active {
			category.Activate()
		} else {
			category.Deactivate()
		}
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// DeleteCategory removes a category that has no messages left
func (s *CatalogService) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return err
	}

	filter := shared.Filter{Filters: map[string]interface{}{"category_id": categoryID}}
	count, err := s.messageRepo.Count(ctx, filter)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("CATEGORY_IN_USE", "Category still has messages")
	}

	return s.categoryRepo.Delete(ctx, categoryID)
}

// ListCategories returns all categories for the admin console
func (s *CatalogService) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}
	return ToCategoryResponses(categories), nil
}

// ListActiveCategories returns the categories shown to customers
func (s *CatalogService) ListActiveCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponses(categories), nil
}

// =============================================================================
// Messages
// =============================================================================

// CreateMessage creates a message under an existing active category
func (s *CatalogService) CreateMessage(ctx context.Context, req CreateMessageRequest) (*MessageResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CATEGORY", "Category does not exist")
		}
		return nil, err
	}
	if !category.Active {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category is not active")
	}

	message, err := catalog.NewMessage(req.CategoryID, req.Title, req.Body)
	if err != nil {
		return nil, err
	}

	if err := s.messageRepo.Save(ctx, message); err != nil {
		return nil, err
	}

	response := ToMessageResponse(message)
	return &response, nil
}

// UpdateMessage edits a message's text or visibility
func (s *CatalogService) UpdateMessage(ctx context.Context, messageID uuid.UUID, req UpdateMessageRequest) (*MessageResponse, error) {
	message, err := s.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil || req.Body != nil {
		title := message.Title
		body := message.Body
		if req.Title != nil {
			title = *req.Title
		}
		if req.Body != nil {
			body = *req.Body
		}
		if err := message.Update(title, body); err != nil {
			return nil, err
		}
	}
	if req.Active != nil {
		if *req.Active {
			message.Activate()
		} else {
			message.Deactivate()
		}
	}

	if err := s.messageRepo.Save(ctx, message); err != nil {
		return nil, err
	}

	response := ToMessageResponse(message)
	return &response, nil
}

// DeleteMessage removes a message from the catalog. Orders keep their
// message reference; listings simply stop resolving it.
func (s *CatalogService) DeleteMessage(ctx context.Context, messageID uuid.UUID) error {
	return s.messageRepo.Delete(ctx, messageID)
}

// ListMessages returns messages for the admin console
func (s *CatalogService) ListMessages(ctx context.Context, filter MessageListFilter) (*shared.Paginated[MessageResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.CategoryID != nil {
		domainFilter.Filters["category_id"] = *filter.CategoryID
	}

	messages, err := s.messageRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.messageRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToMessageResponses(messages), total, filter.Page, filter.PageSize)
	return &result, nil
}

// ListPublicMessages returns active messages as snippets for customers
func (s *CatalogService) ListPublicMessages(ctx context.Context, categoryID *uuid.UUID, search string) ([]PublicMessageResponse, error) {
	messages, err := s.messageRepo.Query(ctx, catalog.MessageQuery{
		CategoryID: categoryID,
		Search:     search,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, err
	}
	return ToPublicMessageResponses(messages), nil
}

// GetMessage returns one message with its full body
func (s *CatalogService) GetMessage(ctx context.Context, messageID uuid.UUID) (*MessageResponse, error) {
	message, err := s.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	response := ToMessageResponse(message)
	return &response, nil
}
