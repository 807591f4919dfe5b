package record

import (
	"time"

	"alcatelz/internal/domain/block"
)

// ResourceItem is a resource as shown in listings, with display defaults applied.
type ResourceItem struct {
	RecordName   string    `json:"recordName"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	Summary      string    `json:"summary,omitempty"`
	CategoryName string    `json:"categoryName"`
	CreatedBy    string    `json:"createdBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func newResourceItem(r Record) ResourceItem {
	return ResourceItem{
		RecordName:   r.RecordName,
		Title:        orDefault(r.Title, defaultTitle),
		Author:       orDefault(r.Author, defaultAuthor),
		Summary:      r.Summary,
		CategoryName: orDefault(r.CategoryName, defaultCategory),
		CreatedBy:    r.CreatedBy,
		CreatedAt:    r.CreatedAt,
	}
}

// Listing is the community page.
type Listing struct {
	Resources  []ResourceItem `json:"resources"`
	Trending   []ResourceItem `json:"trending"`
	Categories []Category     `json:"categories"`
	Total      int            `json:"total"`
	Message    string         `json:"message,omitempty"`
}

// CategoryPage lists the resources of one category.
type CategoryPage struct {
	Category  Category       `json:"category"`
	Resources []ResourceItem `json:"resources"`
	Message   string         `json:"message,omitempty"`
}

// Page is a rendered resource or shared page.
type Page struct {
	RecordName   string          `json:"recordName"`
	RecordType   Type            `json:"recordType"`
	Title        string          `json:"title"`
	Author       string          `json:"author"`
	Summary      string          `json:"summary,omitempty"`
	CategoryName string          `json:"categoryName"`
	CreatedBy    string          `json:"createdBy,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	Blocks       []block.Payload `json:"blocks"`
	Total        int             `json:"total"`
	Message      string          `json:"message,omitempty"`
}

// View holds the per-request presentation options of a page.
type View struct {
	Query    string
	Theme    block.Theme
	Expanded []string
}

// ContributeRequest is a user authored resource.
type ContributeRequest struct {
	Title        string        `json:"title"`
	Author       string        `json:"author,omitempty"`
	Summary      string        `json:"summary,omitempty"`
	CategoryName string        `json:"categoryName"`
	CreatedBy    string        `json:"createdBy,omitempty"`
	Blocks       []block.Block `json:"blocks"`
}
