package category

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "categories-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories",
		Summary:     "Список категорий",
		Tags:        []string{"categories"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) showOp() huma.Operation {
	return huma.Operation{
		OperationID: "categories-show",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories/{name}/resources",
		Summary:     "Ресурсы категории",
		Tags:        []string{"categories"},
		Middlewares: h.middleware,
	}
}
