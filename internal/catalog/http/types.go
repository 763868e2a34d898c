package http

import "github.com/silverhold/codehub-backend/internal/catalog/domain"

type createProjectReq struct {
	Name       string             `json:"name"`
	Language   string             `json:"language"`
	Type       domain.ProjectType `json:"type"`
	Content    string             `json:"content"`
	Notes      string             `json:"notes,omitempty"`
	PreviewURL string             `json:"previewUrl"`
}
