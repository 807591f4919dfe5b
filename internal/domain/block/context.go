package block

import (
	"strings"
)

// Theme selects presentation colors. It never affects the data model.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps anything but "dark" to the light theme.
func ParseTheme(s string) Theme {
	if strings.EqualFold(strings.TrimSpace(s), string(ThemeDark)) {
		return ThemeDark
	}
	return ThemeLight
}

func (t Theme) Dark() bool {
	return t == ThemeDark
}

// MarkdownRenderer converts markdown source to HTML.
type MarkdownRenderer interface {
	Render(source string) (string, error)
}

// ToggleState holds the expanded flag of toggle blocks by block id.
// It belongs to one page view; missing ids are collapsed.
type ToggleState map[string]bool

// NewToggleState returns a state with the given ids expanded.
func NewToggleState(expanded ...string) ToggleState {
	s := make(ToggleState, len(expanded))
	for _, id := range expanded {
		if id = strings.TrimSpace(id); id != "" {
			s[id] = true
		}
	}
	return s
}

func (s ToggleState) Expanded(id string) bool {
	return s[id]
}

// Toggle flips the state of id and returns the new value.
func (s *ToggleState) Toggle(id string) bool {
	expanded := !s.Expanded(id)
	s.Set(id, expanded)
	return expanded
}

// Set works on a zero ToggleState too.
func (s *ToggleState) Set(id string, expanded bool) {
	if !expanded {
		delete(*s, id)
		return
	}
	if *s == nil {
		*s = make(ToggleState)
	}
	(*s)[id] = true
}

const DefaultCodeLanguage = "swift"

// Context carries everything a renderer may consult besides the block.
type Context struct {
	Theme        Theme
	Images       ImageMap
	Markdown     MarkdownRenderer
	Toggles      ToggleState
	CodeLanguage string
}

func (c Context) codeLanguage() string {
	if c.CodeLanguage != "" {
		return c.CodeLanguage
	}
	return DefaultCodeLanguage
}

func (c Context) codeBackground() string {
	if c.Theme.Dark() {
		return "#2d2d2d"
	}
	return "#f3f4f6"
}
