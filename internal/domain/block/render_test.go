package block

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMarkdown struct {
	html string
	err  error
}

func (s stubMarkdown) Render(string) (string, error) {
	return s.html, s.err
}

func TestRenderer_Todo(t *testing.T) {
	r := NewRenderer(nil)

	checked := r.Render(Block{ID: "t1", Type: TypeTodo, Content: `[{"id":"a","isCompleted":true,"text":"x"}]`}, Context{})
	require.NotNil(t, checked.Aux)
	require.Len(t, checked.Aux.Todo, 1)
	assert.True(t, checked.Aux.Todo[0].IsCompleted)
	assert.Equal(t, "x", checked.Aux.Todo[0].Text)
	assert.Equal(t, "[x] x", checked.DisplayContent)

	lines := r.Render(Block{ID: "t2", Type: TypeTodo, Content: "a\nb"}, Context{})
	require.Len(t, lines.Aux.Todo, 2)
	assert.Equal(t, "a", lines.Aux.Todo[0].Text)
	assert.False(t, lines.Aux.Todo[0].IsCompleted)
	assert.Equal(t, "b", lines.Aux.Todo[1].Text)
	assert.False(t, lines.Aux.Todo[1].IsCompleted)
}

func TestRenderer_Unsupported(t *testing.T) {
	r := NewRenderer(nil)

	var p Payload
	assert.NotPanics(t, func() {
		p = r.Render(Block{ID: "u", Type: "totally-unknown", Content: "raw stuff"}, Context{})
	})

	assert.Equal(t, "Unsupported", p.Kind)
	assert.Equal(t, "totally-unknown (Unsupported)", p.Label)
	assert.Equal(t, "raw stuff", p.DisplayContent)
	require.NotNil(t, p.Aux.Unsupported)
	assert.Equal(t, "totally-unknown content is not available", p.Aux.Unsupported.Message)
	assert.Equal(t, "totally-unknown", p.Aux.Unsupported.RawType)
}

func TestRenderer_Image(t *testing.T) {
	r := NewRenderer(nil)
	b := Block{ID: "i", Type: TypeImage, Content: "[Image: SharedImage:abc]"}

	resolved := r.Render(b, Context{Images: ImageMap{"abc": "https://x/y.png"}})
	require.NotNil(t, resolved.Aux.Image)
	assert.True(t, resolved.Aux.Image.Available)
	assert.Equal(t, "https://x/y.png", resolved.Aux.Image.URL)
	assert.Equal(t, "https://x/y.png", resolved.DisplayContent)

	missing := r.Render(b, Context{Images: ImageMap{}})
	assert.False(t, missing.Aux.Image.Available)
	assert.Equal(t, "abc", missing.Aux.Image.Reference)
	assert.Contains(t, missing.DisplayContent, "not available")
	assert.Contains(t, missing.DisplayContent, "abc")
}

func TestRenderer_CaseInsensitiveDispatch(t *testing.T) {
	r := NewRenderer(nil)

	tests := []struct {
		typ  Type
		kind string
	}{
		{"text", "Text"},
		{"CODE", "Code"},
		{"to-do", "To-Do"},
		{"Image", "image"},
		{"header2", "Header2"},
		{" NormalToggle ", "NormalToggle"},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			p := r.Render(Block{ID: "x", Type: tt.typ, Content: "c"}, Context{})
			assert.Equal(t, tt.kind, p.Kind)
			assert.Equal(t, tt.typ, p.Type)
		})
	}
}

func TestRenderer_EveryKind(t *testing.T) {
	r := NewRenderer(nil)

	for _, k := range Kinds() {
		p := r.Render(Block{ID: "id", Type: k.Type(), Content: "content"}, Context{})
		assert.Equal(t, k.String(), p.Kind)
		assert.Equal(t, "id", p.ID)
	}
}

func TestRenderer_Code(t *testing.T) {
	r := NewRenderer(nil)
	b := Block{ID: "c", Type: TypeCode, Content: "let x = 1"}

	dark := r.Render(b, Context{Theme: ThemeDark})
	require.NotNil(t, dark.Aux.Code)
	assert.True(t, dark.Aux.Copyable)
	assert.Equal(t, "swift", dark.Aux.Code.Language)
	assert.Equal(t, "#2d2d2d", dark.Aux.Code.Background)
	assert.Equal(t, "let x = 1", dark.DisplayContent)

	light := r.Render(b, Context{Theme: ThemeLight, CodeLanguage: "go"})
	assert.Equal(t, "go", light.Aux.Code.Language)
	assert.Equal(t, "#f3f4f6", light.Aux.Code.Background)
}

func TestRenderer_Markdown(t *testing.T) {
	r := NewRenderer(nil)
	b := Block{ID: "m", Type: TypeMarkdown, Content: "# Title"}

	rendered := r.Render(b, Context{Markdown: stubMarkdown{html: "<h1>Title</h1>"}})
	assert.Equal(t, "<h1>Title</h1>", rendered.DisplayContent)
	assert.Equal(t, "# Title", rendered.Aux.Markdown.Source)

	failed := r.Render(b, Context{Markdown: stubMarkdown{err: errors.New("broken")}})
	assert.Equal(t, "# Title", failed.DisplayContent)
	assert.Empty(t, failed.Aux.Markdown.HTML)

	none := r.Render(b, Context{})
	assert.Equal(t, "# Title", none.DisplayContent)
}

func TestRenderer_Toggle(t *testing.T) {
	r := NewRenderer(nil)
	b := Block{ID: "tg", Type: TypeHeaderToggle, Content: "Details\nhidden body"}

	collapsed := r.Render(b, Context{})
	require.NotNil(t, collapsed.Aux.Toggle)
	assert.Equal(t, "Details", collapsed.DisplayContent)
	assert.False(t, collapsed.Aux.Toggle.Expanded)
	assert.Empty(t, collapsed.Aux.Toggle.Body)
	assert.True(t, collapsed.Aux.Toggle.Heading)

	state := NewToggleState()
	assert.True(t, state.Toggle("tg"))
	expanded := r.Render(b, Context{Toggles: state})
	assert.True(t, expanded.Aux.Toggle.Expanded)
	assert.Equal(t, "hidden body", expanded.Aux.Toggle.Body)

	assert.False(t, state.Toggle("tg"))
	assert.False(t, state.Expanded("tg"))
}

func TestToggleState_ZeroValue(t *testing.T) {
	var state ToggleState

	assert.False(t, state.Expanded("a"))
	assert.True(t, state.Toggle("a"))
	assert.True(t, state.Expanded("a"))

	state.Set("b", true)
	state.Set("a", false)
	assert.Equal(t, ToggleState{"b": true}, state)

	var ctx Context
	ctx.Toggles.Set("c", true)
	assert.True(t, ctx.Toggles.Expanded("c"))
}

func TestRenderer_PanicIsContainedToBlock(t *testing.T) {
	r := NewRenderer(nil)
	r.table[KindQuote] = func(Block, Context) Payload { panic("bad renderer") }

	out := r.RenderAll([]Block{
		{ID: "q", Type: TypeQuote, Content: "quoted"},
		{ID: "t", Type: TypeText, Content: "fine"},
	}, Context{})

	require.Len(t, out, 2)
	assert.Equal(t, "quoted", out[0].DisplayContent)
	assert.Equal(t, "Quote", out[0].Kind)
	assert.Equal(t, "fine", out[1].DisplayContent)
}

func TestRenderer_Divider(t *testing.T) {
	p := NewRenderer(nil).Render(Block{ID: "d", Type: TypeDivider, Content: "ignored"}, Context{})

	assert.Empty(t, p.DisplayContent)
	assert.Empty(t, p.Label)
	assert.Nil(t, p.Aux)
}

func TestRenderer_Resource(t *testing.T) {
	r := NewRenderer(nil)

	card := r.Render(Block{ID: "r", Type: TypeResource, Content: `{"title":"Guide","author":"Ann"}`}, Context{})
	require.NotNil(t, card.Aux.Resource.Card)
	assert.Equal(t, "Guide", card.DisplayContent)
	assert.Equal(t, "Ann", card.Aux.Resource.Card.Author)

	link := r.Render(Block{ID: "r", Type: TypeResource, Content: "rec-42"}, Context{})
	assert.Nil(t, link.Aux.Resource.Card)
	assert.Equal(t, "/resource/rec-42", link.Aux.Resource.Href)

	broken := r.Render(Block{ID: "r", Type: TypeResource, Content: `{"title":`}, Context{})
	assert.Nil(t, broken.Aux.Resource.Card)
	assert.Equal(t, `{"title":`, broken.DisplayContent)
}

func TestRenderer_Heading(t *testing.T) {
	r := NewRenderer(nil)

	h3 := r.Render(Block{ID: "h", Type: TypeHeader3, Content: " Setup "}, Context{})

	require.NotNil(t, h3.Aux.Heading)
	assert.Equal(t, 3, h3.Aux.Heading.Level)
	assert.Equal(t, "Setup", h3.DisplayContent)
	assert.Equal(t, "Heading", h3.Label)
}
