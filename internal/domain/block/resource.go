package block

import (
	"encoding/json"
	"net/url"
	"strings"
)

// ResourceCard is the metadata a Resource block may embed.
type ResourceCard struct {
	Title    string `json:"title,omitempty"`
	Author   string `json:"author,omitempty"`
	Summary  string `json:"summary,omitempty"`
	Content  string `json:"content,omitempty"`
	Category string `json:"category,omitempty"`
}

// ResourceData is the interpreted Resource block. Card is nil when the
// content is plain text, in which case Text and Href describe a link.
type ResourceData struct {
	Card *ResourceCard `json:"card,omitempty"`
	Text string        `json:"text,omitempty"`
	Href string        `json:"href,omitempty"`
}

// ParseResource interprets Resource content as a metadata card or a link.
func ParseResource(content string) ResourceData {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "{") {
		var card ResourceCard
		if err := json.Unmarshal([]byte(trimmed), &card); err == nil {
			return ResourceData{Card: &card}
		}
	}
	return ResourceData{Text: content, Href: ResourceHref(trimmed)}
}

// ResourceHref links external URLs directly and anything else to a resource page.
func ResourceHref(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(ref), "http") {
		return ref
	}
	return "/resource/" + url.PathEscape(ref)
}
