package record

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"alcatelz/internal/domain/block"
)

// Factory - фабрика записей для публикации
type Factory struct {
	newName func() string
}

// NewFactory создает новую фабрику
func NewFactory() *Factory {
	return &Factory{newName: func() string { return uuid.NewString() }}
}

// Validate проверяет запрос на публикацию
func (f *Factory) Validate(req ContributeRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidData)
	}
	if strings.TrimSpace(req.CategoryName) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidData)
	}
	if len(req.Blocks) == 0 {
		return fmt.Errorf("%w: at least one block is required", ErrInvalidData)
	}
	seen := make(map[string]struct{}, len(req.Blocks))
	for i, b := range req.Blocks {
		if !b.Type.Supported() {
			return fmt.Errorf("%w: block %d: %w: %s", ErrInvalidData, i, block.ErrUnsupportedTag, b.Type)
		}
		if b.ID == "" {
			continue
		}
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("%w: duplicate block id %q", ErrInvalidData, b.ID)
		}
		seen[b.ID] = struct{}{}
	}
	return nil
}

// PrepareResource подготавливает запись ресурса к сохранению.
// Порядок блоков перенумеровывается, содержимое сериализуется в JSON.
func (f *Factory) PrepareResource(req ContributeRequest, now time.Time) (*Record, error) {
	if err := f.Validate(req); err != nil {
		return nil, err
	}

	blocks := block.Renumber(req.Blocks)
	for i := range blocks {
		blocks[i].Type = blocks[i].Type.Canonical()
		if blocks[i].ID == "" {
			blocks[i].ID = uuid.NewString()
		}
	}
	content, err := block.Encode(blocks)
	if err != nil {
		return nil, fmt.Errorf("prepare resource: %w", err)
	}

	return &Record{
		RecordName:   f.newName(),
		RecordType:   TypeResource,
		Title:        strings.TrimSpace(req.Title),
		Author:       strings.TrimSpace(req.Author),
		Summary:      strings.TrimSpace(req.Summary),
		CategoryName: strings.TrimSpace(req.CategoryName),
		CreatedBy:    strings.TrimSpace(req.CreatedBy),
		Content:      content,
		CreatedAt:    now.UTC(),
	}, nil
}
