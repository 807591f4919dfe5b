package block

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

type renderFunc func(b Block, ctx Context) Payload

// Renderer maps blocks to payloads by kind. Every tag has a renderer:
// unknown tags use the Unsupported one.
type Renderer struct {
	table map[Kind]renderFunc
	log   *slog.Logger
}

func NewRenderer(log *slog.Logger) *Renderer {
	if log == nil {
		log = slog.Default()
	}
	r := &Renderer{log: log.With("component", "block_renderer")}
	r.table = map[Kind]renderFunc{
		KindText:         renderText,
		KindCode:         renderCode,
		KindMarkdown:     renderMarkdown,
		KindTodo:         renderTodo,
		KindImage:        renderImage,
		KindDivider:      renderDivider,
		KindResource:     renderResource,
		KindQuote:        renderLiteral,
		KindVideo:        renderVideo,
		KindBookmark:     renderBookmark,
		KindTable:        renderTable,
		KindHeader2:      renderHeading,
		KindHeader3:      renderHeading,
		KindCaption:      renderLiteral,
		KindSubPage:      renderSubPage,
		KindFile:         renderFile,
		KindHeaderToggle: renderToggle,
		KindNormalToggle: renderToggle,
		KindUnsupported:  renderUnsupported,
	}
	return r
}

// Render produces the payload of b. A failing renderer degrades to the
// literal content of that block only.
func (r *Renderer) Render(b Block, ctx Context) (p Payload) {
	kind := b.Kind()
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("block renderer panicked",
				"block_id", b.ID,
				"type", string(b.Type),
				"panic", fmt.Sprint(rec),
			)
			p = literalPayload(b, kind)
		}
	}()

	fn, ok := r.table[kind]
	if !ok {
		fn = renderUnsupported
	}
	return fn(b, ctx)
}

// RenderAll renders blocks in sequence.
func (r *Renderer) RenderAll(blocks []Block, ctx Context) []Payload {
	out := make([]Payload, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, r.Render(b, ctx))
	}
	return out
}

func newPayload(b Block, kind Kind, display string) Payload {
	return Payload{
		ID:             b.ID,
		Type:           b.Type,
		Kind:           kind.String(),
		Label:          kind.Label(),
		DisplayContent: display,
	}
}

func literalPayload(b Block, kind Kind) Payload {
	return newPayload(b, kind, b.Content)
}

func renderLiteral(b Block, _ Context) Payload {
	return literalPayload(b, b.Kind())
}

func renderText(b Block, _ Context) Payload {
	p := literalPayload(b, KindText)
	p.Aux = &Auxiliary{Copyable: true}
	return p
}

func renderCode(b Block, ctx Context) Payload {
	p := literalPayload(b, KindCode)
	p.Aux = &Auxiliary{
		Copyable: true,
		Code: &CodeData{
			Language:   ctx.codeLanguage(),
			Background: ctx.codeBackground(),
		},
	}
	return p
}

func renderMarkdown(b Block, ctx Context) Payload {
	md := &MarkdownData{Source: b.Content}
	display := b.Content
	if ctx.Markdown != nil {
		if html, err := ctx.Markdown.Render(b.Content); err == nil {
			md.HTML = html
			display = html
		}
	}
	p := newPayload(b, KindMarkdown, display)
	p.Aux = &Auxiliary{Markdown: md}
	return p
}

func renderTodo(b Block, _ Context) Payload {
	items := ParseTodo(b.Content)
	lines := make([]string, 0, len(items))
	for _, it := range items {
		mark := "[ ]"
		if it.IsCompleted {
			mark = "[x]"
		}
		lines = append(lines, mark+" "+it.Text)
	}
	p := newPayload(b, KindTodo, strings.Join(lines, "\n"))
	p.Aux = &Auxiliary{Todo: items}
	return p
}

func renderImage(b Block, ctx Context) Payload {
	img := ResolveImage(b.Content, ctx.Images)
	display := img.URL
	if !img.Available {
		display = img.Message
	}
	p := newPayload(b, KindImage, display)
	p.Aux = &Auxiliary{Image: &img}
	return p
}

func renderDivider(b Block, _ Context) Payload {
	return newPayload(b, KindDivider, "")
}

func renderResource(b Block, _ Context) Payload {
	res := ParseResource(b.Content)
	display := res.Text
	if res.Card != nil {
		display = res.Card.Title
		if display == "" {
			display = res.Card.Content
		}
	}
	p := newPayload(b, KindResource, display)
	p.Aux = &Auxiliary{Resource: &res}
	return p
}

func renderVideo(b Block, _ Context) Payload {
	v := ParseVideo(b.Content)
	display := v.Source
	if display == "" {
		display = v.Message
	}
	p := newPayload(b, KindVideo, display)
	p.Aux = &Auxiliary{Video: &v}
	return p
}

func renderBookmark(b Block, _ Context) Payload {
	bm := ParseBookmark(b.Content)
	p := newPayload(b, KindBookmark, bm.Label)
	p.Aux = &Auxiliary{Bookmark: &bm}
	return p
}

func renderTable(b Block, ctx Context) Payload {
	t := ParseTable(b.Content)
	if ctx.Markdown != nil {
		if html, err := ctx.Markdown.Render(b.Content); err == nil {
			t.HTML = html
		}
	}
	p := literalPayload(b, KindTable)
	p.Aux = &Auxiliary{Table: &t}
	return p
}

func renderHeading(b Block, _ Context) Payload {
	kind := b.Kind()
	level := 2
	if kind == KindHeader3 {
		level = 3
	}
	text := strings.TrimSpace(b.Content)
	p := newPayload(b, kind, text)
	p.Aux = &Auxiliary{Heading: &HeadingData{Level: level, Text: text}}
	return p
}

func renderToggle(b Block, ctx Context) Payload {
	kind := b.Kind()
	title, body := ParseToggle(b.Content)
	t := ToggleData{
		Title:    title,
		Expanded: ctx.Toggles.Expanded(b.ID),
		Heading:  kind == KindHeaderToggle,
	}
	if t.Expanded {
		t.Body = body
	}
	p := newPayload(b, kind, title)
	p.Aux = &Auxiliary{Toggle: &t}
	return p
}

func renderSubPage(b Block, _ Context) Payload {
	sp := ParseSubPage(b.Content)
	p := newPayload(b, KindSubPage, sp.Title)
	p.Aux = &Auxiliary{SubPage: &sp}
	return p
}

func renderFile(b Block, _ Context) Payload {
	f := ParseFile(b.Content)
	p := newPayload(b, KindFile, f.Name)
	p.Aux = &Auxiliary{File: &f}
	return p
}

func renderUnsupported(b Block, _ Context) Payload {
	raw := strings.TrimSpace(string(b.Type))
	if raw == "" {
		raw = "Unknown"
	}
	p := newPayload(b, KindUnsupported, b.Content)
	p.Label = raw + " (Unsupported)"
	p.Aux = &Auxiliary{Unsupported: &UnsupportedData{
		RawType: raw,
		Message: raw + " content is not available",
	}}
	return p
}
