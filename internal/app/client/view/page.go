package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"alcatelz/internal/domain/block"
	"alcatelz/internal/domain/record"
)

// Page рисует страницу ресурса или общую страницу
func (s Styles) Page(p *record.Page) string {
	var b strings.Builder

	b.WriteString(s.Title.Render(p.Title))
	b.WriteString("\n")
	meta := []string{p.Author, p.CategoryName}
	if !p.CreatedAt.IsZero() {
		meta = append(meta, p.CreatedAt.Format("2006-01-02"))
	}
	b.WriteString(s.Subtitle.Render(strings.Join(nonEmpty(meta), " · ")))
	b.WriteString("\n")
	if p.Summary != "" {
		b.WriteString(s.Body.Width(s.Width).Render(p.Summary))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if p.Message != "" {
		b.WriteString(s.Warning.Render(p.Message))
		b.WriteString("\n")
	}

	for _, payload := range p.Blocks {
		b.WriteString(s.Block(payload))
		b.WriteString("\n\n")
	}

	if len(p.Blocks) != p.Total {
		b.WriteString(s.Muted.Render(fmt.Sprintf("%d of %d blocks", len(p.Blocks), p.Total)))
		b.WriteString("\n")
	}
	return b.String()
}

// Block рисует один блок по его виду
func (s Styles) Block(p block.Payload) string {
	kind := block.Type(p.Kind).Kind()
	aux := p.Aux
	if aux == nil {
		aux = &block.Auxiliary{}
	}
	wrap := s.Body.Width(s.Width)

	switch kind {
	case block.KindText:
		return wrap.Render(p.DisplayContent)
	case block.KindQuote:
		return s.Quote.Width(s.Width - 2).Render(p.DisplayContent)
	case block.KindCaption:
		return s.Caption.Width(s.Width).Render(p.DisplayContent)
	case block.KindCode:
		return s.code(p, aux.Code)
	case block.KindMarkdown:
		// терминал не показывает HTML, выводим исходник
		if aux.Markdown != nil {
			return wrap.Render(aux.Markdown.Source)
		}
		return wrap.Render(p.DisplayContent)
	case block.KindTodo:
		return s.todo(aux.Todo)
	case block.KindImage:
		return s.image(aux.Image)
	case block.KindDivider:
		return s.Border.Render(strings.Repeat("─", s.Width))
	case block.KindResource:
		return s.resource(p, aux.Resource)
	case block.KindVideo:
		return s.video(aux.Video)
	case block.KindBookmark:
		if bm := aux.Bookmark; bm != nil {
			return "🔖 " + bm.Label + " " + s.Link.Render(bm.URL)
		}
	case block.KindTable:
		return s.table(p, aux.Table)
	case block.KindHeader2:
		return s.Heading2.Render(p.DisplayContent)
	case block.KindHeader3:
		return s.Heading3.Render(p.DisplayContent)
	case block.KindSubPage:
		if sp := aux.SubPage; sp != nil {
			out := "↳ " + sp.Title
			if sp.Href != "" {
				out += " " + s.Link.Render(sp.Href)
			}
			return out
		}
	case block.KindFile:
		if f := aux.File; f != nil {
			out := "📎 " + f.Name
			if f.URL != "" {
				out += " " + s.Link.Render(f.URL)
			}
			return out
		}
	case block.KindHeaderToggle, block.KindNormalToggle:
		return s.toggle(aux.Toggle)
	case block.KindUnsupported:
		if u := aux.Unsupported; u != nil {
			return s.Warning.Render(u.Message)
		}
	}
	return wrap.Render(p.DisplayContent)
}

func (s Styles) code(p block.Payload, code *block.CodeData) string {
	lang := block.DefaultCodeLanguage
	if code != nil && code.Language != "" {
		lang = code.Language
	}
	body := s.Code.Width(s.Width).Render(p.DisplayContent)
	return s.Label.Render(lang) + "\n" + body
}

func (s Styles) todo(items []block.TodoItem) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		if it.IsCompleted {
			lines = append(lines, "[x] "+s.Done.Render(it.Text))
			continue
		}
		lines = append(lines, "[ ] "+s.Body.Render(it.Text))
	}
	return strings.Join(lines, "\n")
}

func (s Styles) image(img *block.ImageData) string {
	if img == nil {
		return ""
	}
	if !img.Available {
		return s.Warning.Render("🖼  " + img.Message)
	}
	return "🖼  " + s.Link.Render(img.URL)
}

func (s Styles) resource(p block.Payload, res *block.ResourceData) string {
	if res == nil {
		return s.Body.Render(p.DisplayContent)
	}
	if card := res.Card; card != nil {
		lines := nonEmpty([]string{
			s.Title.Render(card.Title),
			s.Subtitle.Render(strings.Join(nonEmpty([]string{card.Author, card.Category}), " · ")),
			card.Summary,
			card.Content,
		})
		return s.Card.Width(s.Width - 2).Render(strings.Join(lines, "\n"))
	}
	if res.Href != "" {
		return res.Text + " " + s.Link.Render(res.Href)
	}
	return s.Body.Render(res.Text)
}

func (s Styles) video(v *block.VideoData) string {
	if v == nil {
		return ""
	}
	if v.Message != "" {
		return s.Warning.Render("▶ " + v.Message)
	}
	target := v.EmbedURL
	if target == "" {
		target = v.Source
	}
	return "▶ " + s.Link.Render(target)
}

func (s Styles) table(p block.Payload, data *block.TableData) string {
	if data == nil || (len(data.Header) == 0 && len(data.Rows) == 0) {
		return s.Body.Render(p.DisplayContent)
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		Rows(data.Rows...)
	if len(data.Header) > 0 {
		t = t.Headers(data.Header...)
	}
	return t.String()
}

func (s Styles) toggle(t *block.ToggleData) string {
	if t == nil {
		return ""
	}
	title := t.Title
	if t.Heading {
		title = s.Heading3.Render(title)
	}
	if !t.Expanded {
		return "▸ " + title
	}
	out := "▾ " + title
	if t.Body != "" {
		out += "\n" + s.Body.Width(s.Width-2).PaddingLeft(2).Render(t.Body)
	}
	return out
}

func nonEmpty(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
