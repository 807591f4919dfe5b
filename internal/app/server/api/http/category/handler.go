package category

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"alcatelz/internal/app/server/api/http/problem"
	"alcatelz/internal/domain/record"
)

type Handler struct {
	service    record.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service record.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		service:    service,
		log:        log.With("component", "category_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.showOp(), h.show)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	categories, err := h.service.Categories(ctx)
	if err != nil {
		return nil, problem.From(h.log, err, record.MessageNotFound)
	}
	return &listOutput{Body: listResponse{Categories: categories}}, nil
}

func (h *Handler) show(ctx context.Context, input *showInput) (*showOutput, error) {
	page, err := h.service.Category(ctx, input.Name, input.Query)
	if err != nil {
		return nil, problem.From(h.log, err, record.MessageNotFound)
	}
	return &showOutput{Body: page}, nil
}
