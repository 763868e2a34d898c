package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/silverhold/codehub-backend/internal/auth/domain"
	"github.com/silverhold/codehub-backend/internal/auth/service"
)

// Handler exposes login, logout, session introspection and profile editing.
type Handler struct {
	auth *service.AuthService
}

// New creates a new auth handler.
func New(auth *service.AuthService) *Handler {
	return &Handler{auth: auth}
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Username) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	admin, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// No lockout and no backoff: a failed attempt just reports the
		// rejection message the client shows for a few seconds.
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Invalid credentials access restricted."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "admin": admin.Sanitized()})
}

func (h *Handler) logout(c *gin.Context) {
	h.auth.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) me(c *gin.Context) {
	admin := h.auth.Current()
	if admin == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "not logged in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "admin": admin.Sanitized()})
}

func (h *Handler) updateProfile(c *gin.Context) {
	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	admin, err := h.auth.UpdateProfile(c.Request.Context(), service.UpdateProfileRequest{
		Name:        req.Name,
		PhotoURL:    req.PhotoURL,
		Quote:       req.Quote,
		Hashtags:    req.Hashtags,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		switch err {
		case domain.ErrNoSession:
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "not logged in"})
		case domain.ErrPasswordMismatch:
			c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": "Old password incorrect!"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "admin": admin.Sanitized()})
}

func (h *Handler) listAdmins(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "admins": h.auth.Admins()})
}
