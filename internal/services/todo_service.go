// Package servicesはTodo関連のビジネスロジックを提供します。
package services

import (
	"context"

	"go-firebase-todo/backend/internal/models"
	"go-firebase-todo/backend/internal/repositories"
)

// TodoService はTodoの所有権チェックと更新ポリシーを扱います。
type TodoService struct {
	todoRepo repositories.TodoStore
}

// NewTodoService は新しいTodoServiceを作成します。
func NewTodoService(todoRepo repositories.TodoStore) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

// CreateTodo は新しいTodoを作成します。所有者は呼び出し元のuidです。
func (s *TodoService) CreateTodo(ctx context.Context, req *models.TodoCreateRequest, userID string) (*models.Todo, error) {
	todo := todoFromRequest(req)
	todo.UserID = userID
	return s.todoRepo.Create(ctx, todo)
}

// GetTodos は呼び出し元が所有するTodoのみを返します。
// ユーザー横断の一覧は存在しません。
func (s *TodoService) GetTodos(ctx context.Context, userID string) ([]*models.Todo, error) {
	return s.todoRepo.FindByUserID(ctx, userID)
}

// GetTodoByID は指定IDのTodoを取得し、所有権チェックを行います。
func (s *TodoService) GetTodoByID(ctx context.Context, id, userID string) (*models.Todo, error) {
	todo, err := s.todoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkOwnership(todo, userID); err != nil {
		return nil, err
	}
	return todo, nil
}

// UpdateTodo はTodoを更新します。クライアントが指定可能なフィールドは
// すべて丸ごと置き換え、id / userId / createdAt は保持します。
// 部分更新はサポートしません。
func (s *TodoService) UpdateTodo(ctx context.Context, id string, req *models.TodoCreateRequest, userID string) (*models.Todo, error) {
	existing, err := s.todoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkOwnership(existing, userID); err != nil {
		return nil, err
	}

	updated := todoFromRequest(req)
	updated.ID = existing.ID
	updated.UserID = existing.UserID
	updated.CreatedAt = existing.CreatedAt
	return s.todoRepo.Update(ctx, updated)
}

// DeleteTodo はTodoを削除します。所有権チェック後の物理削除です。
func (s *TodoService) DeleteTodo(ctx context.Context, id, userID string) error {
	existing, err := s.todoRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := checkOwnership(existing, userID); err != nil {
		return err
	}
	return s.todoRepo.Delete(ctx, id)
}

// checkOwnership はデフォルト拒否の所有権チェックです。
// ドキュメントのuserIdが空の場合も公開扱いにはせず拒否します。
func checkOwnership(todo *models.Todo, userID string) error {
	if todo.UserID == "" || todo.UserID != userID {
		return repositories.ErrTodoForbidden
	}
	return nil
}

func todoFromRequest(req *models.TodoCreateRequest) *models.Todo {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	return &models.Todo{
		Title:           req.Title,
		Category:        req.Category,
		Status:          req.Status,
		Priority:        req.Priority,
		Description:     req.Description,
		DueDate:         req.DueDate,
		GithubIssue:     req.GithubIssue,
		GithubIssueData: req.GithubIssueData,
		EstimatedHours:  req.EstimatedHours,
		ActualHours:     req.ActualHours,
		Tags:            tags,
	}
}
