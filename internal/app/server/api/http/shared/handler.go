package shared

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
		log:        log.With("component", "shared_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.findOp(), h.find)
}

func (h *Handler) find(ctx context.Context, input *findInput) (*findOutput, error) {
	page, err := h.service.Shared(ctx, input.ID, input.view())
	if err != nil {
		return nil, problem.From(h.log, err, record.MessageSharedNotFound)
	}
	return &findOutput{Body: page}, nil
}
