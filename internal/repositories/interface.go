package repositories

import (
	"context"

	"go-firebase-todo/backend/internal/models"
)

// TodoStore はTodoの永続化操作を抽象化します。
// 本番実装はFirestore、テストではインメモリのフェイクを使います。
type TodoStore interface {
	Create(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	FindByUserID(ctx context.Context, userID string) ([]*models.Todo, error)
	FindByID(ctx context.Context, id string) (*models.Todo, error)
	Update(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	Delete(ctx context.Context, id string) error
}

// StatusStore はStatusCheckの永続化操作を抽象化します。
type StatusStore interface {
	Create(ctx context.Context, check *models.StatusCheck) (*models.StatusCheck, error)
	FindAll(ctx context.Context) ([]*models.StatusCheck, error)
}
