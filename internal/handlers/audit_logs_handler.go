package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barbeariaclassica/agenda-api/internal/httperr"
	infraRepo "github.com/barbeariaclassica/agenda-api/internal/infra/repository"
)

type AuditLogsHandler struct {
	repo *infraRepo.AuditFileRepository
}

func NewAuditLogsHandler(repo *infraRepo.AuditFileRepository) *AuditLogsHandler {
	return &AuditLogsHandler{repo: repo}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			httperr.BadRequest(c, "invalid_limit", "Limite inválido.")
			return
		}
		limit = n
	}

	logs, err := h.repo.List(c.Request.Context(), limit)
	if err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Erro ao listar auditoria.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  logs,
		"total": len(logs),
	})
}
