package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photoscript/logger"
)

// RecentLogsHandler godoc
// @Summary      Recent log lines
// @Description  Snapshot of the in-memory diagnostic log buffer, oldest first
// @Tags         diagnostics
// @Produce      json
// @Success      200  {array}  string
// @Router       /logs [get]
func RecentLogsHandler(sink *logger.RingSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, sink.Snapshot())
	}
}
