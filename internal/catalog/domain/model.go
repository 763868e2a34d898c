package domain

// ProjectType distinguishes shared source snippets from downloadable files.
type ProjectType string

const (
	TypeCode ProjectType = "CODE"
	TypeFile ProjectType = "FILE"
)

// Project represents a single shared code or file entry in the catalog.
// JSON field names match the persisted storage layout, so a marshalled
// collection round-trips byte-compatible with what the web client wrote.
type Project struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Language   string      `json:"language"`
	Type       ProjectType `json:"type"`
	Content    string      `json:"content"`
	Notes      string      `json:"notes,omitempty"`
	PreviewURL string      `json:"previewUrl"`
	Likes      int         `json:"likes"`
	Downloads  int         `json:"downloads"`
	AuthorID   string      `json:"authorId"`
	CreatedAt  int64       `json:"createdAt"` // unix milliseconds
}
