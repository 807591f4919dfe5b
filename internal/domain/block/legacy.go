package block

import (
	"strconv"
	"strings"
)

// legacyMarkers are the paragraph prefixes older clients wrote before each block.
var legacyMarkers = []struct {
	prefix string
	typ    Type
}{
	{"To-Do:", TypeTodo},
	{"Code:", TypeCode},
	{"Markdown:", TypeMarkdown},
	{"Quote:", TypeQuote},
	{"Video:", TypeVideo},
	{"Bookmark:", TypeBookmark},
}

// LegacyText accepts plain text with blocks separated by blank lines.
// Paragraph order is the block order.
type LegacyText struct{}

func (LegacyText) Name() string { return "legacy-text" }

func (LegacyText) Decode(content string) ([]Block, error) {
	if looksLikeJSON(content) {
		return nil, ErrNotLegacyText
	}

	paragraphs := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n\n")
	blocks := make([]Block, 0, len(paragraphs))
	for _, p := range paragraphs {
		p = strings.Trim(p, "\n")
		if strings.TrimSpace(p) == "" {
			continue
		}
		typ, body := classifyParagraph(p)
		n := len(blocks)
		blocks = append(blocks, Block{
			ID:      "legacy-" + strconv.Itoa(n),
			Type:    typ,
			Content: body,
			Order:   n,
		})
	}
	if len(blocks) == 0 {
		return nil, ErrEmptyContent
	}
	return blocks, nil
}

func classifyParagraph(p string) (Type, string) {
	head := strings.TrimLeft(p, " \t")

	switch {
	case strings.HasPrefix(head, "New Text Block"):
		return TypeText, p
	case strings.HasPrefix(head, "----") && strings.Trim(strings.TrimSpace(head), "-") == "":
		return TypeDivider, ""
	case strings.HasPrefix(head, "[Image:"):
		if _, ok := ParseImageRef(head); ok {
			return TypeImage, strings.TrimSpace(head)
		}
		return TypeText, p
	}

	for _, m := range legacyMarkers {
		if strings.HasPrefix(head, m.prefix) {
			body := strings.TrimLeft(head[len(m.prefix):], " \t")
			return m.typ, strings.TrimPrefix(body, "\n")
		}
	}
	return TypeText, p
}

// looksLikeJSON reports content that is structured data rather than prose,
// so a malformed JSON payload is not shown as text. "[Image: ...]" is prose.
func looksLikeJSON(content string) bool {
	s := strings.TrimSpace(content)
	if s == "" {
		return false
	}
	switch s[0] {
	case '{':
		return true
	case '[':
		rest := strings.TrimLeft(s[1:], " \t\r\n")
		if rest == "" {
			return true
		}
		c := rest[0]
		return c == '{' || c == '[' || c == '"' || c == ']' || c == '-' || (c >= '0' && c <= '9')
	}
	return false
}
