package block

import (
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// Type is the block tag exactly as it is persisted.
type Type string

const (
	TypeText         Type = "Text"
	TypeCode         Type = "Code"
	TypeMarkdown     Type = "Markdown"
	TypeTodo         Type = "To-Do"
	TypeImage        Type = "image"
	TypeDivider      Type = "Divider"
	TypeResource     Type = "Resource"
	TypeQuote        Type = "Quote"
	TypeVideo        Type = "Video"
	TypeBookmark     Type = "Bookmark"
	TypeTable        Type = "Table"
	TypeHeader2      Type = "Header2"
	TypeHeader3      Type = "Header3"
	TypeCaption      Type = "Caption"
	TypeSubPage      Type = "SubPage"
	TypeFile         Type = "File"
	TypeHeaderToggle Type = "HeaderToggle"
	TypeNormalToggle Type = "NormalToggle"
)

// Kind is the closed set of block variants a Type resolves to.
type Kind int

const (
	KindUnsupported Kind = iota
	KindText
	KindCode
	KindMarkdown
	KindTodo
	KindImage
	KindDivider
	KindResource
	KindQuote
	KindVideo
	KindBookmark
	KindTable
	KindHeader2
	KindHeader3
	KindCaption
	KindSubPage
	KindFile
	KindHeaderToggle
	KindNormalToggle
)

// kindTags holds the canonical tag of every supported kind.
var kindTags = map[Kind]Type{
	KindText:         TypeText,
	KindCode:         TypeCode,
	KindMarkdown:     TypeMarkdown,
	KindTodo:         TypeTodo,
	KindImage:        TypeImage,
	KindDivider:      TypeDivider,
	KindResource:     TypeResource,
	KindQuote:        TypeQuote,
	KindVideo:        TypeVideo,
	KindBookmark:     TypeBookmark,
	KindTable:        TypeTable,
	KindHeader2:      TypeHeader2,
	KindHeader3:      TypeHeader3,
	KindCaption:      TypeCaption,
	KindSubPage:      TypeSubPage,
	KindFile:         TypeFile,
	KindHeaderToggle: TypeHeaderToggle,
	KindNormalToggle: TypeNormalToggle,
}

// lookup is keyed by the lower-cased tag.
var lookup = func() map[string]Kind {
	m := make(map[string]Kind, len(kindTags)+2)
	for k, t := range kindTags {
		m[strings.ToLower(string(t))] = k
	}
	// spellings seen in older content
	m["todo"] = KindTodo
	m["divider"] = KindDivider
	return m
}()

// Kinds returns every supported kind, Unsupported excluded.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindTags))
	for k := KindText; k <= KindNormalToggle; k++ {
		out = append(out, k)
	}
	return out
}

// Kind resolves the tag case-insensitively. Unknown tags resolve to KindUnsupported.
func (t Type) Kind() Kind {
	if k, ok := lookup[strings.ToLower(strings.TrimSpace(string(t)))]; ok {
		return k
	}
	return KindUnsupported
}

// Supported reports whether the tag names a known kind.
func (t Type) Supported() bool {
	return t.Kind() != KindUnsupported
}

// Canonical returns the canonical spelling of a known tag, or the tag itself.
func (t Type) Canonical() Type {
	if k := t.Kind(); k != KindUnsupported {
		return kindTags[k]
	}
	return t
}

func (t Type) String() string {
	return string(t)
}

// Schema describes the tag for huma. The set is open, so no enum is enforced.
func (Type) Schema(_ huma.Registry) *huma.Schema {
	examples := make([]any, 0, len(kindTags))
	for _, k := range Kinds() {
		examples = append(examples, string(kindTags[k]))
	}
	return &huma.Schema{
		Type:        huma.TypeString,
		Description: "Block type tag, matched case-insensitively",
		Examples:    examples,
	}
}

// Type returns the canonical tag of the kind. Unsupported has no tag of its own.
func (k Kind) Type() Type {
	return kindTags[k]
}

func (k Kind) String() string {
	if k == KindUnsupported {
		return "Unsupported"
	}
	return string(kindTags[k])
}

// Label returns the caption shown above a rendered block.
func (k Kind) Label() string {
	switch k {
	case KindText:
		return "Text"
	case KindCode:
		return "Code"
	case KindMarkdown:
		return "Markdown"
	case KindTodo:
		return "To-Do"
	case KindImage:
		return "Image"
	case KindDivider:
		return ""
	case KindResource:
		return "Resource"
	case KindQuote:
		return "Quote"
	case KindVideo:
		return "Video"
	case KindBookmark:
		return "Bookmark"
	case KindTable:
		return "Table"
	case KindHeader2, KindHeader3:
		return "Heading"
	case KindCaption:
		return "Caption"
	case KindSubPage:
		return "Sub Page"
	case KindFile:
		return "File"
	case KindHeaderToggle, KindNormalToggle:
		return "Toggle"
	default:
		return "Unsupported"
	}
}
