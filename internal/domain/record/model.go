package record

import (
	"strings"
	"time"
)

// Record is a content item as returned by the store.
type Record struct {
	RecordName     string            `json:"recordName"`
	RecordType     Type              `json:"recordType"`
	Title          string            `json:"title,omitempty"`
	Author         string            `json:"author,omitempty"`
	Summary        string            `json:"summary,omitempty"`
	CategoryName   string            `json:"categoryName,omitempty"`
	CreatedBy      string            `json:"createdBy,omitempty"`
	Content        string            `json:"content,omitempty"`
	ExpirationDate *time.Time        `json:"expirationDate,omitempty"`
	Fields         map[string]string `json:"fields,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// Expired reports whether the record has an expiration date before now.
func (r *Record) Expired(now time.Time) bool {
	return r.ExpirationDate != nil && r.ExpirationDate.Before(now)
}

// Field returns a named field, looking at the typed fields first.
func (r *Record) Field(name string) string {
	switch name {
	case FieldTitle:
		return r.Title
	case FieldAuthor:
		return r.Author
	case FieldSummary:
		return r.Summary
	case FieldCategoryName:
		return r.CategoryName
	case FieldCreatedBy:
		return r.CreatedBy
	case FieldContent:
		return r.Content
	}
	return r.Fields[name]
}

// Field names known to every store.
const (
	FieldTitle        = "title"
	FieldAuthor       = "author"
	FieldSummary      = "summary"
	FieldCategoryName = "categoryName"
	FieldCreatedBy    = "createdBy"
	FieldContent      = "content"
	FieldExpiration   = "expirationDate"
	FieldSharedPageID = "sharedPageId"
	FieldImageAsset   = "imageAsset"
	FieldImageURL     = "imageURL"
	FieldFileURL      = "fileURL"
	FieldDownloadURL  = "downloadURL"
)

const (
	defaultTitle    = "Untitled"
	defaultAuthor   = "Unknown"
	defaultCategory = "Uncategorized"
)

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
