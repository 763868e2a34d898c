package http

import "github.com/gin-gonic/gin"

// Register attaches chat routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.post)
	rg.GET("/stream", h.StreamMessages)
}
