package shared

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "shared-find",
		Method:      http.MethodGet,
		Path:        "/api/v1/shared/{id}",
		Summary:     "Общая страница",
		Description: "Возвращает общую страницу с изображениями, найденными по sharedPageId.",
		Tags:        []string{"shared"},
		Middlewares: h.middleware,
	}
}
