package block

import (
	"encoding/json"
	"net/url"
	"path"
	"regexp"
	"strings"
)

// VideoData is the interpreted Video block.
type VideoData struct {
	Source   string `json:"source,omitempty"`
	EmbedURL string `json:"embedUrl,omitempty"`
	Message  string `json:"message,omitempty"`
}

const videoNoSource = "No video source provided"

// ParseVideo derives an embeddable player URL for known hosts.
func ParseVideo(content string) VideoData {
	src := strings.TrimSpace(content)
	if src == "" {
		return VideoData{Message: videoNoSource}
	}
	return VideoData{Source: src, EmbedURL: embedURL(src)}
}

func embedURL(src string) string {
	u, err := url.Parse(src)
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch host {
	case "youtube.com", "m.youtube.com":
		if strings.HasPrefix(u.Path, "/embed/") {
			return src
		}
		if id := u.Query().Get("v"); id != "" {
			return "https://www.youtube.com/embed/" + id
		}
		if strings.HasPrefix(u.Path, "/shorts/") {
			return "https://www.youtube.com/embed/" + strings.TrimPrefix(u.Path, "/shorts/")
		}
	case "youtu.be":
		if id := strings.Trim(u.Path, "/"); id != "" {
			return "https://www.youtube.com/embed/" + id
		}
	case "vimeo.com":
		if id := strings.Trim(u.Path, "/"); id != "" {
			return "https://player.vimeo.com/video/" + id
		}
	}
	return ""
}

// BookmarkData is the interpreted Bookmark block.
type BookmarkData struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

var markdownLinkPattern = regexp.MustCompile(`^\[([^\]]*)\]\(([^)\s]+)\)$`)

// ParseBookmark accepts "[label](url)", "label\nurl" or a bare URL.
func ParseBookmark(content string) BookmarkData {
	s := strings.TrimSpace(content)
	if m := markdownLinkPattern.FindStringSubmatch(s); m != nil {
		label := strings.TrimSpace(m[1])
		if label == "" {
			label = hostOf(m[2])
		}
		return BookmarkData{Label: label, URL: m[2]}
	}
	if first, rest, ok := strings.Cut(s, "\n"); ok {
		rest = strings.TrimSpace(rest)
		if isHTTPURL(rest) {
			return BookmarkData{Label: strings.TrimSpace(first), URL: rest}
		}
	}
	return BookmarkData{Label: hostOf(s), URL: s}
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// TableData is a parsed markdown table.
type TableData struct {
	Header []string   `json:"header,omitempty"`
	Rows   [][]string `json:"rows,omitempty"`
	HTML   string     `json:"html,omitempty"`
}

var tableSeparatorPattern = regexp.MustCompile(`^\|?\s*:?-{3,}:?\s*(\|\s*:?-{3,}:?\s*)*\|?$`)

// ParseTable splits a markdown table into cells. The first row is the header
// when a separator line follows it.
func ParseTable(content string) TableData {
	var rows [][]string
	headerRows := 0
	for _, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if tableSeparatorPattern.MatchString(line) {
			if len(rows) == 1 {
				headerRows = 1
			}
			continue
		}
		rows = append(rows, splitRow(line))
	}
	var t TableData
	if headerRows == 1 {
		t.Header = rows[0]
		rows = rows[1:]
	}
	t.Rows = rows
	return t
}

func splitRow(line string) []string {
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	cells := strings.Split(line, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// HeadingData is an interpreted Header2 or Header3 block.
type HeadingData struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// ToggleData is an interpreted toggle. Body is empty while collapsed.
type ToggleData struct {
	Title    string `json:"title"`
	Body     string `json:"body,omitempty"`
	Expanded bool   `json:"expanded"`
	Heading  bool   `json:"heading"`
}

type wireToggle struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ParseToggle splits toggle content into title and body.
func ParseToggle(content string) (title, body string) {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "{") {
		var w wireToggle
		if err := json.Unmarshal([]byte(trimmed), &w); err == nil {
			return w.Title, w.Content
		}
	}
	title, body, _ = strings.Cut(trimmed, "\n")
	return strings.TrimSpace(title), strings.TrimSpace(body)
}

// SubPageData links to a nested page.
type SubPageData struct {
	Title string `json:"title"`
	Href  string `json:"href,omitempty"`
}

type wireSubPage struct {
	Title      string `json:"title"`
	RecordName string `json:"recordName"`
	ID         string `json:"id"`
}

// ParseSubPage accepts {"title","recordName"} JSON or a plain title.
func ParseSubPage(content string) SubPageData {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "{") {
		var w wireSubPage
		if err := json.Unmarshal([]byte(trimmed), &w); err == nil {
			ref := w.RecordName
			if ref == "" {
				ref = w.ID
			}
			title := w.Title
			if title == "" {
				title = ref
			}
			return SubPageData{Title: title, Href: ResourceHref(ref)}
		}
	}
	if isHTTPURL(trimmed) {
		return SubPageData{Title: hostOf(trimmed), Href: trimmed}
	}
	return SubPageData{Title: trimmed}
}

// FileData is an attached file reference.
type FileData struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// ParseFile accepts "[name](url)", a URL or a bare file name.
func ParseFile(content string) FileData {
	s := strings.TrimSpace(content)
	if m := markdownLinkPattern.FindStringSubmatch(s); m != nil {
		return FileData{Name: m[1], URL: m[2]}
	}
	if isHTTPURL(s) {
		name := s
		if u, err := url.Parse(s); err == nil {
			if base := path.Base(u.Path); base != "." && base != "/" {
				name = base
			}
		}
		return FileData{Name: name, URL: s}
	}
	return FileData{Name: s}
}
