package resource

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "resources-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/resources",
		Summary:     "Список ресурсов сообщества",
		Description: "Возвращает ресурсы, подходящие под поиск, первые ресурсы как trending и категории.",
		Tags:        []string{"resources"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "resources-find",
		Method:      http.MethodGet,
		Path:        "/api/v1/resources/{recordName}",
		Summary:     "Страница ресурса",
		Description: "Декодирует содержимое записи и возвращает блоки в виде payload для отображения.",
		Tags:        []string{"resources"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "resources-create",
		Method:        http.MethodPost,
		Path:          "/api/v1/resources",
		Summary:       "Опубликовать ресурс",
		Tags:          []string{"resources"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}
