package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const pingTimeout = 3 * time.Second

// Pinger reports whether the record store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	store      Pinger
	storeName  string
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(store Pinger, storeName string, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		store:      store,
		storeName:  storeName,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
	huma.Register(api, h.readinessOp(), h.readiness)
}

func (h *Handler) healthCheck(_ context.Context, _ *struct{}) (*Output, error) {
	h.log.Debug("health check request received")

	return &Output{
		Body: Response{
			Status: "OK",
		},
	}, nil
}

func (h *Handler) readiness(ctx context.Context, _ *struct{}) (*Output, error) {
	if h.store != nil {
		ctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()

		if err := h.store.Ping(ctx); err != nil {
			h.log.Error("record store unavailable", "store", h.storeName, "error", err)
			return nil, huma.Error503ServiceUnavailable("record store unavailable")
		}
	}

	return &Output{
		Body: Response{
			Status: "OK",
			Store:  h.storeName,
		},
	}, nil
}
