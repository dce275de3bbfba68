package catalog

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/diskmensagem/backend/internal/domain/catalog"
	"github.com/diskmensagem/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Markers of the plain-text catalog format the business keeps its
// message archive in.
const (
	categoryMarker = "Categoria:"
	titleMarker    = "Título:"
	entrySeparator = "---"
)

// ImportService loads a plain-text message archive into the catalog
type ImportService struct {
	categoryRepo catalog.CategoryRepository
	messageRepo  catalog.MessageRepository
	logger       *zap.Logger
}

// NewImportService creates a new ImportService
func NewImportService(categoryRepo catalog.CategoryRepository, messageRepo catalog.MessageRepository, logger *zap.Logger) *ImportService {
	return &ImportService{
		categoryRepo: categoryRepo,
		messageRepo:  messageRepo,
		logger:       logger,
	}
}

// parsedEntry is one message parsed from the archive text
type parsedEntry struct {
	category string
	title    string
	body     string
	line     int
}

// Import parses the archive text and creates the categories and
// messages it describes. Existing categories are reused by name;
// malformed entries are skipped and reported, never fatal.
func (s *ImportService) Import(ctx context.Context, req ImportRequest) (*ImportResult, error) {
	entries, skipped := parseArchive(req.Text)
	if len(entries) == 0 && len(skipped) == 0 {
		return nil, shared.NewDomainError("EMPTY_IMPORT", "No catalog entries found in text")
	}

	result := &ImportResult{Skipped: skipped}
	categories := make(map[string]*catalog.Category)

	for _, entry := range entries {
		category, ok := categories[entry.category]
		if !ok {
			existing, err := s.categoryRepo.FindByName(ctx, entry.category)
			switch {
			case err == nil:
				category = existing
			case errors.Is(err, shared.ErrNotFound):
				category, err = catalog.NewCategory(entry.category)
				if err != nil {
					result.Skipped = append(result.Skipped, fmt.Sprintf("line %d: %v", entry.line, err))
					continue
				}
				if err := s.categoryRepo.Save(ctx, category); err != nil {
					return nil, err
				}
				result.CategoriesCreated++
			default:
				return nil, err
			}
			categories[entry.category] = category
		}

		message, err := catalog.NewMessage(category.ID, entry.title, entry.body)
		if err != nil {
			result.Skipped = append(result.Skipped, fmt.Sprintf("line %d: %v", entry.line, err))
			continue
		}
		if err := s.messageRepo.Save(ctx, message); err != nil {
			return nil, err
		}
		result.MessagesCreated++
	}

	s.logger.Info("Catalog import finished",
		zap.Int("categories_created", result.CategoriesCreated),
		zap.Int("messages_created", result.MessagesCreated),
		zap.Int("skipped", len(result.Skipped)))

	return result, nil
}

// parseArchive walks the text line by line, collecting entries and
// reporting the lines it cannot place.
func parseArchive(text string) ([]parsedEntry, []string) {
	var (
		entries  []parsedEntry
		skipped  []string
		category string
		title    string
		body     []string
		line     int
		entryAt  int
	)

	flush := func() {
		if title == "" {
			return
		}
		entry := parsedEntry{
			category: category,
			title:    title,
			body:     strings.TrimSpace(strings.Join(body, "\n")),
			line:     entryAt,
		}
		switch {
		case entry.category == "":
			skipped = append(skipped, fmt.Sprintf("line %d: message %q has no category", entry.line, entry.title))
		case entry.body == "":
			skipped = append(skipped, fmt.Sprintf("line %d: message %q has no body", entry.line, entry.title))
		default:
			entries = append(entries, entry)
		}
		title = ""
		body = nil
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(raw, categoryMarker):
			flush()
			category = strings.TrimSpace(strings.TrimPrefix(raw, categoryMarker))
		case strings.HasPrefix(raw, titleMarker):
			flush()
			title = strings.TrimSpace(strings.TrimPrefix(raw, titleMarker))
			entryAt = line
		case raw == entrySeparator:
			flush()
		case raw == "":
			// blank lines inside a body are kept out; the archive uses
			// separators, not spacing, to delimit entries
		default:
			if title == "" {
				skipped = append(skipped, fmt.Sprintf("line %d: text outside any entry", line))
				continue
			}
			body = append(body, raw)
		}
	}
	flush()

	return entries, skipped
}
