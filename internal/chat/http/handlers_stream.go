package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StreamMessages pushes chat messages to the client using Server-Sent Events
// (SSE). The full log is sent once, then the handler polls the in-memory log
// and forwards anything appended since, including simulated replies that fire
// after the poster disconnected.
func (h *Handler) StreamMessages(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // nginx: disable buffering

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "streaming unsupported"})
		return
	}

	// Send the current log as the initial event. Log and watermark come from
	// one snapshot so an append racing the subscription is never skipped.
	messages, watermark := h.chat.Snapshot()
	initial, _ := json.Marshal(gin.H{"messages": messages})
	fmt.Fprintf(c.Writer, "event: initial\ndata: %s\n\n", string(initial))
	flusher.Flush()

	ctx := c.Request.Context()

	// Keep-alive pings
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	// Poll for appended messages
	pollTicker := time.NewTicker(500 * time.Millisecond)
	defer pollTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Client disconnected
			return

		case <-ticker.C:
			fmt.Fprint(c.Writer, ": keep-alive\n\n")
			flusher.Flush()

		case <-pollTicker.C:
			tail, next := h.chat.Tail(watermark)
			if len(tail) == 0 {
				continue
			}
			watermark = next

			for _, msg := range tail {
				data, _ := json.Marshal(gin.H{"message": msg})
				fmt.Fprintf(c.Writer, "event: message\ndata: %s\n\n", string(data))
			}
			flusher.Flush()
		}
	}
}
