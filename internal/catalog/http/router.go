package http

import "github.com/gin-gonic/gin"

// Register attaches catalog routes to the given router group. requireSession
// guards the admin-only mutations.
func (h *Handler) Register(rg *gin.RouterGroup, requireSession gin.HandlerFunc) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.POST("/:id/like", h.like)
	rg.POST("/:id/download", h.download)

	rg.POST("", requireSession, h.create)
	rg.DELETE("/:id", requireSession, h.delete)
	rg.GET("/mine", requireSession, h.mine)
}
