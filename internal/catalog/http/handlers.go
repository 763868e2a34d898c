package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/silverhold/codehub-backend/internal/catalog/domain"
	"github.com/silverhold/codehub-backend/internal/catalog/service"
)

// Handler exposes the project catalog over HTTP.
type Handler struct {
	catalog *service.CatalogService
}

// New creates a new catalog handler.
func New(catalog *service.CatalogService) *Handler {
	return &Handler{catalog: catalog}
}

func (h *Handler) list(c *gin.Context) {
	items := h.catalog.List(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

// like and download tolerate unknown ids: the counter bump is a silent no-op
// so stale catalog pages never surface errors.
func (h *Handler) like(c *gin.Context) {
	h.catalog.Like(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) download(c *gin.Context) {
	h.catalog.RecordDownload(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) create(c *gin.Context) {
	var req createProjectReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	if req.Type != domain.TypeCode && req.Type != domain.TypeFile {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "type must be CODE or FILE"})
		return
	}

	p := h.catalog.Add(c.Request.Context(), domain.Project{
		Name:       strings.TrimSpace(req.Name),
		Language:   strings.TrimSpace(req.Language),
		Type:       req.Type,
		Content:    req.Content,
		Notes:      req.Notes,
		PreviewURL: req.PreviewURL,
	}, c.GetString("admin_id"))

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	h.catalog.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) mine(c *gin.Context) {
	items := h.catalog.ListByAuthor(c.GetString("admin_id"))
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}
