package block

import (
	"regexp"
	"strings"
)

// ImageMap maps SharedImage record names to asset URLs.
type ImageMap map[string]string

// URL returns the asset URL of id, if resolved.
func (m ImageMap) URL(id string) (string, bool) {
	if m == nil {
		return "", false
	}
	u, ok := m[id]
	return u, ok && u != ""
}

var (
	sharedImagePattern = regexp.MustCompile(`\[Image:\s*SharedImage:\s*([^\]\s]+)\s*\]`)
	localImagePattern  = regexp.MustCompile(`\[Image:\s*([^\]]*[^\]\s])\s*\]`)
)

// ImageRef is a parsed image marker. Exactly one of SharedID and Path is set.
type ImageRef struct {
	SharedID string
	Path     string
}

// ParseImageRef extracts the first image marker from content.
func ParseImageRef(content string) (ImageRef, bool) {
	if m := sharedImagePattern.FindStringSubmatch(content); m != nil {
		return ImageRef{SharedID: m[1]}, true
	}
	if m := localImagePattern.FindStringSubmatch(content); m != nil {
		return ImageRef{Path: m[1]}, true
	}
	return ImageRef{}, false
}

// Reference is the literal the marker points at.
func (r ImageRef) Reference() string {
	if r.SharedID != "" {
		return r.SharedID
	}
	return r.Path
}

// ImageData is the resolved form of an image block.
type ImageData struct {
	URL       string `json:"url,omitempty"`
	Reference string `json:"reference"`
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
}

const imageUnavailable = "Image not available"

// ResolveImage resolves image content against images. Unresolvable
// references produce a placeholder naming the literal reference.
func ResolveImage(content string, images ImageMap) ImageData {
	trimmed := strings.TrimSpace(content)

	if ref, ok := ParseImageRef(trimmed); ok {
		if ref.SharedID != "" {
			if u, ok := images.URL(ref.SharedID); ok {
				return ImageData{URL: u, Reference: ref.SharedID, Available: true}
			}
		}
		return unavailableImage(ref.Reference())
	}

	if isHTTPURL(trimmed) {
		return ImageData{URL: trimmed, Reference: trimmed, Available: true}
	}
	if u, ok := images.URL(trimmed); ok {
		return ImageData{URL: u, Reference: trimmed, Available: true}
	}
	return unavailableImage(trimmed)
}

func unavailableImage(ref string) ImageData {
	msg := imageUnavailable
	if ref != "" {
		msg += ": " + ref
	}
	return ImageData{Reference: ref, Message: msg}
}

func isHTTPURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
