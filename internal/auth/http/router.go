package http

import "github.com/gin-gonic/gin"

// Register attaches auth routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup, requireSession gin.HandlerFunc) {
	rg.POST("/login", h.login)
	rg.POST("/logout", h.logout)
	rg.GET("/me", h.me)
	rg.PUT("/profile", requireSession, h.updateProfile)
}

// RegisterAdmins attaches the public admin profile listing.
func (h *Handler) RegisterAdmins(rg *gin.RouterGroup) {
	rg.GET("", h.listAdmins)
}
