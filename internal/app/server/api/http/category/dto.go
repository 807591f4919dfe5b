package category

import (
	"alcatelz/internal/domain/record"
)

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Categories []record.Category `json:"categories"`
}

type showInput struct {
	Name  string `path:"name" doc:"Название категории, без учета регистра"`
	Query string `query:"q" doc:"Поиск по названию ресурса"`
}

type showOutput struct {
	Body *record.CategoryPage
}
