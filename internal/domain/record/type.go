package record

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

type Type string

const (
	TypeResource    Type = "CD_ResourceEntity"
	TypeSharedPage  Type = "SharedPage"
	TypeSharedImage Type = "SharedImage"
)

func (Type) Schema(_ huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type: huma.TypeString,
		Enum: []any{
			string(TypeResource),
			string(TypeSharedPage),
			string(TypeSharedImage),
		},
		Description: "Record type in the store",
		Examples:    []any{string(TypeResource)},
	}
}

// Validate реализует интерфейс huma.Validatable.
func (t Type) Validate() error {
	switch t {
	case TypeResource, TypeSharedPage, TypeSharedImage:
		return nil
	}
	return fmt.Errorf("unknown record type: %s", t)
}

func (t Type) String() string {
	return string(t)
}

// DisplayName возвращает человекочитаемое название типа.
func (t Type) DisplayName() string {
	switch t {
	case TypeResource:
		return "Resource"
	case TypeSharedPage:
		return "Shared page"
	case TypeSharedImage:
		return "Shared image"
	default:
		return "Unknown"
	}
}
