package resource

import (
	"alcatelz/internal/domain/block"
	"alcatelz/internal/domain/record"
)

type listInput struct {
	Query string `query:"q" doc:"Поиск по названию, без учета регистра"`
}

type listOutput struct {
	Body *record.Listing
}

type findInput struct {
	RecordName string   `path:"recordName" doc:"Имя записи ресурса"`
	Query      string   `query:"q" doc:"Поиск по содержимому блоков"`
	Theme      string   `query:"theme" enum:"light,dark" default:"light" doc:"Тема оформления"`
	Expanded   []string `query:"expanded" doc:"ID раскрытых toggle блоков"`
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

type createInput struct {
	Body record.ContributeRequest
}

type createOutput struct {
	Body createResponse
}

type createResponse struct {
	RecordName string `json:"recordName"`
	Status     string `json:"status"`
}
