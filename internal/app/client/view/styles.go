// Package view renders server pages and local drafts for the terminal.
package view

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"alcatelz/internal/domain/block"
)

const defaultWidth = 80

// palette - цвета одной темы
type palette struct {
	primary lipgloss.Color
	accent  lipgloss.Color
	muted   lipgloss.Color
	warning lipgloss.Color
	errorC  lipgloss.Color
	surface lipgloss.Color
	text    lipgloss.Color
	border  lipgloss.Color
}

var (
	lightPalette = palette{
		primary: lipgloss.Color("#6D28D9"),
		accent:  lipgloss.Color("#047857"),
		muted:   lipgloss.Color("#6B7280"),
		warning: lipgloss.Color("#B45309"),
		errorC:  lipgloss.Color("#B91C1C"),
		surface: lipgloss.Color("#F3F4F6"),
		text:    lipgloss.Color("#111827"),
		border:  lipgloss.Color("#9CA3AF"),
	}
	darkPalette = palette{
		primary: lipgloss.Color("#A78BFA"),
		accent:  lipgloss.Color("#10B981"),
		muted:   lipgloss.Color("#9CA3AF"),
		warning: lipgloss.Color("#F59E0B"),
		errorC:  lipgloss.Color("#F87171"),
		surface: lipgloss.Color("#2D2D2D"),
		text:    lipgloss.Color("#F9FAFB"),
		border:  lipgloss.Color("#6B7280"),
	}
)

// Styles - набор стилей для одной темы и ширины терминала
type Styles struct {
	Theme block.Theme
	Width int

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Heading2 lipgloss.Style
	Heading3 lipgloss.Style
	Quote    lipgloss.Style
	Caption  lipgloss.Style
	Code     lipgloss.Style
	Link     lipgloss.Style
	Done     lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Card     lipgloss.Style
	Border   lipgloss.Style
}

func NewStyles(theme block.Theme, width int) Styles {
	if width <= 0 {
		width = defaultWidth
	}
	p := lightPalette
	if theme.Dark() {
		p = darkPalette
	}

	return Styles{
		Theme: theme,
		Width: width,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true),
		Label: lipgloss.NewStyle().
			Foreground(p.muted).
			Bold(true),
		Body:  lipgloss.NewStyle().Foreground(p.text),
		Muted: lipgloss.NewStyle().Foreground(p.muted),
		Heading2: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(p.text),
		Heading3: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.text),
		Quote: lipgloss.NewStyle().
			Italic(true).
			Foreground(p.text).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(p.primary).
			PaddingLeft(1),
		Caption: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true),
		Code: lipgloss.NewStyle().
			Foreground(p.text).
			Background(p.surface).
			Padding(0, 1),
		Link:    lipgloss.NewStyle().Foreground(p.accent).Underline(true),
		Done:    lipgloss.NewStyle().Foreground(p.muted).Strikethrough(true),
		Warning: lipgloss.NewStyle().Foreground(p.warning),
		Error:   lipgloss.NewStyle().Foreground(p.errorC).Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		Border: lipgloss.NewStyle().Foreground(p.border),
	}
}

// ResolveTheme переводит настройку клиента в тему страницы.
// auto спрашивает у терминала цвет фона.
func ResolveTheme(setting string) block.Theme {
	switch strings.ToLower(strings.TrimSpace(setting)) {
	case "dark":
		return block.ThemeDark
	case "light":
		return block.ThemeLight
	}
	if lipgloss.HasDarkBackground() {
		return block.ThemeDark
	}
	return block.ThemeLight
}

// TerminalWidth возвращает ширину stdout или значение по умолчанию
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
