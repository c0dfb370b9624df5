package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-firebase-todo/backend/internal/models"
	"go-firebase-todo/backend/internal/services"
)

// StatusHandler はヘルスチェック記録のハンドラーを管理します。
// 認証は不要です。
type StatusHandler struct {
	statusService *services.StatusService
}

// NewStatusHandler は新しいStatusHandlerを作成します。
func NewStatusHandler(statusService *services.StatusService) *StatusHandler {
	return &StatusHandler{statusService: statusService}
}

// CreateStatusHandler は新しいStatusCheckを記録します。
func (h *StatusHandler) CreateStatusHandler(c *gin.Context) {
	var req models.StatusCheckCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	check, err := h.statusService.CreateStatusCheck(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save status check"})
		return
	}
	c.JSON(http.StatusOK, check)
}

// GetStatusHandler はStatusCheckの一覧を返します。
func (h *StatusHandler) GetStatusHandler(c *gin.Context) {
	checks, err := h.statusService.GetStatusChecks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch status checks"})
		return
	}
	c.JSON(http.StatusOK, checks)
}
