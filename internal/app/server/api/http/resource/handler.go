package resource

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
		log:        log.With("component", "resource_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.createOp(), h.create)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	listing, err := h.service.List(ctx, input.Query)
	if err != nil {
		return nil, problem.From(h.log, err, record.MessageNotFound)
	}
	return &listOutput{Body: listing}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*findOutput, error) {
	page, err := h.service.Find(ctx, input.RecordName, input.view())
	if err != nil {
		return nil, problem.From(h.log, err, record.MessageNotFound)
	}
	return &findOutput{Body: page}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	name, err := h.service.Contribute(ctx, input.Body)
	if err != nil {
		return nil, problem.From(h.log, err, record.MessageNotFound)
	}
	return &createOutput{
		Body: createResponse{
			RecordName: name,
			Status:     "Ok",
		},
	}, nil
}
