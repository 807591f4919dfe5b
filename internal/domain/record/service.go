package record

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/exp/slog"

	"alcatelz/internal/domain/block"
	"alcatelz/internal/domain/search"
)

const trendingLimit = 5

// Service implements the community, category, resource and shared pages
// on top of a record store.
type Service struct {
	repo         Repository
	factory      *Factory
	decoder      *block.Decoder
	renderer     *block.Renderer
	markdown     block.MarkdownRenderer
	codeLanguage string
	now          func() time.Time
	log          *slog.Logger
}

type Servicer interface {
	List(ctx context.Context, query string) (*Listing, error)
	Categories(ctx context.Context) ([]Category, error)
	Category(ctx context.Context, name, query string) (*CategoryPage, error)
	Find(ctx context.Context, recordName string, view View) (*Page, error)
	Shared(ctx context.Context, id string, view View) (*Page, error)
	Contribute(ctx context.Context, req ContributeRequest) (string, error)
}

type Option func(*Service)

// WithMarkdown sets the renderer used for Markdown and Table blocks.
func WithMarkdown(md block.MarkdownRenderer) Option {
	return func(s *Service) { s.markdown = md }
}

func WithCodeLanguage(lang string) Option {
	return func(s *Service) {
		if lang != "" {
			s.codeLanguage = lang
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, factory *Factory, log *slog.Logger, opts ...Option) *Service {
	if log == nil {
		log = slog.Default()
	}
	s := &Service{
		repo:         repo,
		factory:      factory,
		decoder:      block.NewDecoder(log),
		renderer:     block.NewRenderer(log),
		codeLanguage: block.DefaultCodeLanguage,
		now:          time.Now,
		log:          log.With("component", "record_service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List builds the community listing: resources matching query by title, newest
// first, the newest matches as trending, and the categories in use.
func (s *Service) List(ctx context.Context, query string) (*Listing, error) {
	records, err := s.resources(ctx)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}

	all := make([]ResourceItem, 0, len(records))
	for _, r := range records {
		all = append(all, newResourceItem(r))
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	matched := search.Filter(all, query, func(it ResourceItem) string { return it.Title })
	trending := matched
	if len(trending) > trendingLimit {
		trending = trending[:trendingLimit]
	}
	out := &Listing{
		Resources:  matched,
		Trending:   trending,
		Categories: categoriesOf(records),
		Total:      len(matched),
	}
	if len(matched) == 0 {
		out.Message = "No resources found."
	}
	return out, nil
}

// Categories returns the categories used by resources, or the built-in list
// when none is in use.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	records, err := s.resources(ctx)
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}
	return categoriesOf(records), nil
}

// Category lists the resources whose category equals name ignoring case,
// filtered by title.
func (s *Service) Category(ctx context.Context, name, query string) (*CategoryPage, error) {
	records, err := s.resources(ctx)
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", name, err)
	}

	var inCategory []ResourceItem
	for _, r := range records {
		if search.EqualFold(r.CategoryName, name) {
			inCategory = append(inCategory, newResourceItem(r))
		}
	}
	matched := search.Filter(inCategory, query, func(it ResourceItem) string { return it.Title })
	if matched == nil {
		matched = []ResourceItem{}
	}

	page := &CategoryPage{
		Category:  Category{Name: name, Description: Describe(name), Count: len(inCategory)},
		Resources: matched,
	}
	if len(matched) == 0 {
		if search.Normalize(query) != "" {
			page.Message = fmt.Sprintf("No resources match your search in the %s category.", name)
		} else {
			page.Message = fmt.Sprintf("There are no resources available in the %s category yet. Check back later or contribute your own!", name)
		}
	}
	return page, nil
}

// Find renders a resource page. Expiry is checked before the content is looked at.
func (s *Service) Find(ctx context.Context, recordName string, view View) (*Page, error) {
	rec, err := s.repo.FetchByName(ctx, TypeResource, recordName)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", recordName, storeError(err))
	}
	if rec.Expired(s.now()) {
		return nil, fmt.Errorf("find %s: %w", recordName, ErrExpired)
	}
	return s.page(rec, nil, view), nil
}

// Shared renders a shared page together with its images.
func (s *Service) Shared(ctx context.Context, id string, view View) (*Page, error) {
	rec, err := s.repo.FetchByName(ctx, TypeSharedPage, id)
	if err != nil {
		return nil, fmt.Errorf("shared %s: %w", id, storeError(err))
	}
	if rec.Expired(s.now()) {
		return nil, fmt.Errorf("shared %s: %w", id, ErrExpired)
	}

	assets, err := s.repo.QueryByField(ctx, TypeSharedImage, FieldSharedPageID, id)
	if err != nil {
		return nil, fmt.Errorf("shared %s images: %w", id, storeError(err))
	}
	images := ImageMap(assets)
	s.log.Debug("resolved shared page images", "page", id, "assets", len(assets), "images", len(images))

	return s.page(rec, images, view), nil
}

// Contribute validates and publishes a user authored resource.
func (s *Service) Contribute(ctx context.Context, req ContributeRequest) (string, error) {
	rec, err := s.factory.PrepareResource(req, s.now())
	if err != nil {
		return "", fmt.Errorf("contribute: %w", err)
	}

	name, err := s.repo.Create(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("contribute: %w", storeError(err))
	}
	s.log.Info("resource published",
		"record_name", name,
		"category", rec.CategoryName,
		"blocks", len(req.Blocks),
	)
	return name, nil
}

func (s *Service) page(rec *Record, images block.ImageMap, view View) *Page {
	blocks := s.decoder.Decode(rec.Content)
	matched := block.Search(blocks, view.Query)

	ctx := block.Context{
		Theme:        view.Theme,
		Images:       images,
		Markdown:     s.markdown,
		Toggles:      block.NewToggleState(view.Expanded...),
		CodeLanguage: s.codeLanguage,
	}

	p := &Page{
		RecordName:   rec.RecordName,
		RecordType:   rec.RecordType,
		Title:        orDefault(rec.Title, defaultTitle),
		Author:       orDefault(rec.Author, defaultAuthor),
		Summary:      rec.Summary,
		CategoryName: orDefault(rec.CategoryName, defaultCategory),
		CreatedBy:    rec.CreatedBy,
		CreatedAt:    rec.CreatedAt,
		Blocks:       s.renderer.RenderAll(matched, ctx),
		Total:        len(blocks),
	}
	if len(matched) == 0 && search.Normalize(view.Query) != "" {
		p.Message = MessageNoMatches
	}
	return p
}

// resources fetches all resources, dropping malformed and expired ones.
func (s *Service) resources(ctx context.Context) ([]Record, error) {
	records, err := s.repo.FetchByType(ctx, TypeResource)
	if err != nil {
		return nil, storeError(err)
	}

	now := s.now()
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.RecordName == "" {
			s.log.Warn("skipping record without name", "title", r.Title)
			continue
		}
		if r.Expired(now) {
			s.log.Debug("skipping expired record", "record_name", r.RecordName)
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func categoriesOf(records []Record) []Category {
	if derived := DeriveCategories(records); len(derived) > 0 {
		return derived
	}
	return FallbackCategories()
}

// storeError keeps ErrNotFound and ErrInvalidData and marks anything else as a fetch failure.
func storeError(err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidData) || errors.Is(err, ErrFetch) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrFetch, err)
}
