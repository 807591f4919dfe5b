package shared

import (
	"alcatelz/internal/domain/block"
	"alcatelz/internal/domain/record"
)

type findInput struct {
	ID       string   `path:"id" doc:"ID общей страницы"`
	Query    string   `query:"q" doc:"Поиск по содержимому блоков"`
	Theme    string   `query:"theme" enum:"light,dark" default:"light" doc:"Тема оформления"`
	Expanded []string `query:"expanded" doc:"ID раскрытых toggle блоков"`
}

func (in *findInput) view() record.View {
	return record.View{
		Query:    in.Query,
		Theme:    block.ParseTheme(in.Theme),
		Expanded: in.Expanded,
	}
}

type findOutput struct {
	Body *record.Page
}
