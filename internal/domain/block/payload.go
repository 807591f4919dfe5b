package block

// Payload is the presentation form of one block. It carries everything a
// presentation layer needs without parsing Content again.
type Payload struct {
	ID             string     `json:"id"`
	Type           Type       `json:"type"`
	Kind           string     `json:"kind"`
	Label          string     `json:"label,omitempty"`
	DisplayContent string     `json:"displayContent"`
	Aux            *Auxiliary `json:"auxiliaryData,omitempty"`
}

// Auxiliary holds the kind specific part of a payload. Only the field
// matching the payload kind is set.
type Auxiliary struct {
	Copyable    bool             `json:"copyable,omitempty"`
	Code        *CodeData        `json:"code,omitempty"`
	Markdown    *MarkdownData    `json:"markdown,omitempty"`
	Todo        []TodoItem       `json:"todo,omitempty"`
	Image       *ImageData       `json:"image,omitempty"`
	Resource    *ResourceData    `json:"resource,omitempty"`
	Video       *VideoData       `json:"video,omitempty"`
	Bookmark    *BookmarkData    `json:"bookmark,omitempty"`
	Table       *TableData       `json:"table,omitempty"`
	Heading     *HeadingData     `json:"heading,omitempty"`
	Toggle      *ToggleData      `json:"toggle,omitempty"`
	SubPage     *SubPageData     `json:"subPage,omitempty"`
	File        *FileData        `json:"file,omitempty"`
	Unsupported *UnsupportedData `json:"unsupported,omitempty"`
}

type CodeData struct {
	Language   string `json:"language"`
	Background string `json:"background"`
}

// MarkdownData keeps the source next to the rendered HTML. HTML is empty
// when no renderer was available or it failed.
type MarkdownData struct {
	Source string `json:"source"`
	HTML   string `json:"html,omitempty"`
}

type UnsupportedData struct {
	RawType string `json:"rawType"`
	Message string `json:"message"`
}
