package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/viki/internal/audit"
	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/logging"
	"github.com/BruksfildServices01/viki/internal/middleware"
)

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

// List aceita action, entity, from/to (YYYY-MM-DD, to inclusivo), page, limit.
func (h *AuditLogsHandler) List(c *gin.Context) {
	f := audit.Filter{
		StylistID: middleware.StylistID(c),
		Action:    c.Query("action"),
		Entity:    c.Query("entity"),
	}

	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		f.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		end := to.Add(24 * time.Hour)
		f.To = &end
	}

	f.Normalize()

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.FromError(c, logging.StoreFailure(c.Request.Context(), err, nil))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  f.Page,
		"limit": f.Limit,
		"total": total,
		"logs":  logs,
	})
}
