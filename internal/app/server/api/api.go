// GET  /api/v1/health                           # Проверка живости
// GET  /api/v1/health/ready                     # Доступность хранилища записей
// GET  /api/v1/resources?q=                     # Лента сообщества
// POST /api/v1/resources                        # Опубликовать ресурс
// GET  /api/v1/resources/{recordName}           # Страница ресурса
// GET  /api/v1/categories                       # Категории
// GET  /api/v1/categories/{name}/resources?q=   # Ресурсы категории
// GET  /api/v1/shared/{id}                      # Общая страница

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"

	categoryAPI "alcatelz/internal/app/server/api/http/category"
	healthAPI "alcatelz/internal/app/server/api/http/health"
	"alcatelz/internal/app/server/api/http/middleware"
	"alcatelz/internal/app/server/api/http/middleware/logger"
	resourceAPI "alcatelz/internal/app/server/api/http/resource"
	sharedAPI "alcatelz/internal/app/server/api/http/shared"
	"alcatelz/internal/domain/record"
)

const (
	title   = "Alcatelz API"
	version = "1.0.0"
)

// Deps - зависимости HTTP слоя
type Deps struct {
	Service   record.Servicer
	Store     healthAPI.Pinger
	StoreName string
	Log       *slog.Logger
}

type Handlers struct {
	Health   *healthAPI.Handler
	Resource *resourceAPI.Handler
	Category *categoryAPI.Handler
	Shared   *sharedAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(deps Deps) *chi.Mux {
	if deps.Log == nil {
		deps.Log = slog.Default()
	}

	mux := chi.NewMux()
	mux.Use(chimw.RequestID, chimw.RealIP, chimw.Recoverer)

	API := humachi.New(mux, huma.DefaultConfig(title, version))

	h := handlers(deps)
	h.Health.SetupRoutes(API)
	h.Resource.SetupRoutes(API)
	h.Category.SetupRoutes(API)
	h.Shared.SetupRoutes(API)

	return mux
}

func handlers(deps Deps) *Handlers {
	loggerMW := logger.New(deps.Log)
	middlewares := middleware.NewContainer(loggerMW.Middleware())

	return &Handlers{
		Health:   healthAPI.NewHandler(deps.Store, deps.StoreName, deps.Log, middlewares.With()),
		Resource: resourceAPI.NewHandler(deps.Service, deps.Log, middlewares.With()),
		Category: categoryAPI.NewHandler(deps.Service, deps.Log, middlewares.With()),
		Shared:   sharedAPI.NewHandler(deps.Service, deps.Log, middlewares.With()),
	}
}
