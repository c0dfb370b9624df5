package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-firebase-todo/backend/internal/models"
	"go-firebase-todo/backend/internal/repositories"
	"go-firebase-todo/backend/internal/services"
)

// TodoHandler はTodo関連のハンドラーを管理します。
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler は新しいTodoHandlerを作成します。
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// CreateTodoHandler は新しいTodoを作成します。
func (h *TodoHandler) CreateTodoHandler(c *gin.Context) {
	var req models.TodoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User identity not found in context"})
		return
	}

	createdTodo, err := h.todoService.CreateTodo(c.Request.Context(), &req, user.UID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save todo"})
		return
	}
	c.JSON(http.StatusOK, createdTodo)
}

// GetTodosHandler は呼び出し元が所有するTodoの一覧を取得します。
func (h *TodoHandler) GetTodosHandler(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User identity not found in context"})
		return
	}

	todos, err := h.todoService.GetTodos(c.Request.Context(), user.UID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch todos"})
		return
	}
	c.JSON(http.StatusOK, todos)
}

// GetTodoByIDHandler は指定IDのTodoを取得します。
func (h *TodoHandler) GetTodoByIDHandler(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User identity not found in context"})
		return
	}

	todo, err := h.todoService.GetTodoByID(c.Request.Context(), c.Param("id"), user.UID)
	if err != nil {
		respondTodoError(c, err, "Failed to fetch todo")
		return
	}
	c.JSON(http.StatusOK, todo)
}

// UpdateTodoHandler はTodoを更新します。
func (h *TodoHandler) UpdateTodoHandler(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User identity not found in context"})
		return
	}

	var req models.TodoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	updatedTodo, err := h.todoService.UpdateTodo(c.Request.Context(), c.Param("id"), &req, user.UID)
	if err != nil {
		respondTodoError(c, err, "Failed to update todo")
		return
	}
	c.JSON(http.StatusOK, updatedTodo)
}

// DeleteTodoHandler はTodoを削除します。
func (h *TodoHandler) DeleteTodoHandler(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User identity not found in context"})
		return
	}

	if err := h.todoService.DeleteTodo(c.Request.Context(), c.Param("id"), user.UID); err != nil {
		respondTodoError(c, err, "Failed to delete todo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
}

// respondTodoError はドメインエラーをHTTPステータスに変換します。
// 存在有無は403の応答からは漏らしません。
func respondTodoError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, repositories.ErrTodoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
	case errors.Is(err, repositories.ErrTodoForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// currentUser はミドルウェアが設定した認証済みユーザーを取り出します。
func currentUser(c *gin.Context) (*models.UserIdentity, bool) {
	val, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.UserIdentity)
	if !ok || user.UID == "" {
		return nil, false
	}
	return user, true
}
