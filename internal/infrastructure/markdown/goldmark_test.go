package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := New()

	tests := []struct {
		name     string
		source   string
		contains []string
	}{
		{"heading", "# Title", []string{"<h1", "Title</h1>"}},
		{"emphasis", "some **bold** text", []string{"<strong>bold</strong>"}},
		{"table", "| A | B |\n| --- | --- |\n| 1 | 2 |", []string{"<table>", "<th>A</th>", "<td>2</td>"}},
		{"task list", "- [x] done", []string{`type="checkbox"`, "done"}},
		{"raw html escaped", "<script>alert(1)</script>", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := r.Render(tt.source)
			require.NoError(t, err)
			for _, c := range tt.contains {
				assert.Contains(t, html, c)
			}
			assert.NotContains(t, html, "<script>")
		})
	}
}

func TestRenderer_RenderBlank(t *testing.T) {
	html, err := New().Render("  \n ")

	require.NoError(t, err)
	assert.Empty(t, html)
}
