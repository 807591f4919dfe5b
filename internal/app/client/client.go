package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"alcatelz/internal/app/client/config"
	"alcatelz/internal/domain/block"
	"alcatelz/internal/domain/record"
	"alcatelz/internal/infrastructure/markdown"
)

type App struct {
	config    *config.Config
	log       *slog.Logger
	api       *httpClient
	drafts    DraftStore
	renderer  *block.Renderer
	markdown  block.MarkdownRenderer
	blocks    *block.Factory
	records   *record.Factory
	publisher *PublishService
	now       func() time.Time
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.DataPath), 0o700); err != nil {
		log.Warn("Не удалось создать директорию данных", "error", err)
	}

	// Инициализируем локальное хранилище (используем SQLite)
	var drafts DraftStore
	sqliteStorage, err := NewSQLiteStorage(cfg.DataPath, log)
	if err != nil {
		log.Warn("Не удалось инициализировать SQLite, используем память", "error", err)
		drafts = NewMemoryStorage()
	} else {
		drafts = sqliteStorage
	}

	return NewWithStore(cfg, log, drafts), nil
}

// NewWithStore собирает приложение поверх готового хранилища черновиков
func NewWithStore(cfg *config.Config, log *slog.Logger, drafts DraftStore) *App {
	app := &App{
		config:   cfg,
		log:      log,
		api:      NewHTTPClient(cfg, log),
		drafts:   drafts,
		renderer: block.NewRenderer(log),
		markdown: markdown.New(),
		blocks:   block.NewFactory(),
		records:  record.NewFactory(),
		now:      time.Now,
	}
	app.publisher = NewPublishService(app)
	return app
}

func (a *App) Config() *config.Config {
	return a.config
}

func (a *App) Close() error {
	return a.drafts.Close()
}

// CheckConnection проверяет соединение с сервером
func (a *App) CheckConnection(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return a.api.HealthCheck(ctx)
}

// ==================== Browse ====================

func (a *App) Resources(ctx context.Context, query string) (*record.Listing, error) {
	return a.api.Resources(ctx, query)
}

func (a *App) Resource(ctx context.Context, name string, view record.View) (*record.Page, error) {
	return a.api.Resource(ctx, name, view)
}

func (a *App) Shared(ctx context.Context, id string, view record.View) (*record.Page, error) {
	return a.api.Shared(ctx, id, view)
}

func (a *App) Categories(ctx context.Context) ([]record.Category, error) {
	return a.api.Categories(ctx)
}

func (a *App) Category(ctx context.Context, name, query string) (*record.CategoryPage, error) {
	return a.api.Category(ctx, name, query)
}

// ==================== Drafts ====================

// NewDraft создает пустой черновик
func (a *App) NewDraft(title, category, author string) (*Draft, error) {
	now := a.now().UTC()
	d := &Draft{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(title),
		Author:       strings.TrimSpace(author),
		CategoryName: strings.TrimSpace(category),
		Blocks:       []block.Block{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := a.drafts.Save(d); err != nil {
		return nil, err
	}
	a.log.Debug("Черновик создан", "draft_id", d.ID)
	return d, nil
}

func (a *App) Drafts() ([]*Draft, error) {
	return a.drafts.List()
}

func (a *App) Draft(id string) (*Draft, error) {
	return a.drafts.Get(id)
}

func (a *App) DeleteDraft(id string) error {
	return a.drafts.Delete(id)
}

// AddBlock добавляет блок в конец черновика
func (a *App) AddBlock(draftID string, typ block.Type, content string) (*Draft, block.Block, error) {
	d, err := a.editable(draftID)
	if err != nil {
		return nil, block.Block{}, err
	}
	b, err := a.blocks.Create(typ, content, len(d.Blocks))
	if err != nil {
		return nil, block.Block{}, err
	}
	d.Blocks = append(d.Blocks, b)
	if err := a.touch(d); err != nil {
		return nil, block.Block{}, err
	}
	return d, b, nil
}

// UpdateBlock заменяет содержимое блока
func (a *App) UpdateBlock(draftID, blockID, content string) (*Draft, error) {
	d, err := a.editable(draftID)
	if err != nil {
		return nil, err
	}
	for i := range d.Blocks {
		if d.Blocks[i].ID == blockID {
			d.Blocks[i].Content = content
			return d, a.touch(d)
		}
	}
	return nil, fmt.Errorf("блок %s не найден", blockID)
}

func (a *App) MoveBlock(draftID string, from, to int) (*Draft, error) {
	d, err := a.editable(draftID)
	if err != nil {
		return nil, err
	}
	blocks, err := block.Move(d.Blocks, from, to)
	if err != nil {
		return nil, err
	}
	d.Blocks = blocks
	return d, a.touch(d)
}

func (a *App) RemoveBlock(draftID, blockID string) (*Draft, error) {
	d, err := a.editable(draftID)
	if err != nil {
		return nil, err
	}
	blocks, found := block.Remove(d.Blocks, blockID)
	if !found {
		return nil, fmt.Errorf("блок %s не найден", blockID)
	}
	d.Blocks = blocks
	return d, a.touch(d)
}

// Preview отрисовывает черновик локально так же, как это сделает сервер
func (a *App) Preview(draftID string, view record.View) (*record.Page, error) {
	d, err := a.drafts.Get(draftID)
	if err != nil {
		return nil, err
	}

	blocks := block.Search(block.Renumber(d.Blocks), view.Query)
	ctx := block.Context{
		Theme:        view.Theme,
		Markdown:     a.markdown,
		Toggles:      block.NewToggleState(view.Expanded...),
		CodeLanguage: block.DefaultCodeLanguage,
	}

	page := &record.Page{
		RecordName:   d.ID,
		RecordType:   record.TypeResource,
		Title:        d.Title,
		Author:       d.Author,
		Summary:      d.Summary,
		CategoryName: d.CategoryName,
		CreatedBy:    d.CreatedBy,
		CreatedAt:    d.CreatedAt,
		Blocks:       a.renderer.RenderAll(blocks, ctx),
		Total:        len(d.Blocks),
	}
	if len(blocks) == 0 && strings.TrimSpace(view.Query) != "" {
		page.Message = record.MessageNoMatches
	}
	return page, nil
}

// Publish отправляет один черновик на сервер
func (a *App) Publish(ctx context.Context, draftID string) (string, error) {
	d, err := a.drafts.Get(draftID)
	if err != nil {
		return "", err
	}
	return a.publisher.publish(ctx, d)
}

// PublishPending отправляет все неопубликованные черновики
func (a *App) PublishPending(ctx context.Context) (*PublishResult, error) {
	return a.publisher.PublishPending(ctx)
}

func (a *App) editable(id string) (*Draft, error) {
	d, err := a.drafts.Get(id)
	if err != nil {
		return nil, err
	}
	if d.Published() {
		return nil, fmt.Errorf("черновик %s уже опубликован как %s", id, d.PublishedAs)
	}
	return d, nil
}

func (a *App) touch(d *Draft) error {
	d.UpdatedAt = a.now().UTC()
	return a.drafts.Save(d)
}

type appKey struct{}

// WithApp кладет приложение в контекст команды
func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

func FromContext(ctx context.Context) (*App, error) {
	app, ok := ctx.Value(appKey{}).(*App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}
