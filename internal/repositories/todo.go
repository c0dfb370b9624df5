// Package repositories はFirestoreに対するデータ操作を行うリポジトリを提供します。
package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-firebase-todo/backend/internal/models"
)

const (
	todosCollection = "todos"

	// 一覧取得の上限。ページネーションは提供しない。
	listLimit = 1000
)

var (
	// ErrTodoNotFound はTODOが見つからない場合のエラーです。
	ErrTodoNotFound = errors.New("todo not found")
	// ErrTodoForbidden は呼び出し元が所有者でない場合のエラーです。
	ErrTodoForbidden = errors.New("todo access forbidden")
)

// TodoRepository はFirestoreのtodosコレクションを操作します。
type TodoRepository struct {
	client *firestore.Client
	log    *logrus.Logger
}

// NewTodoRepository は新しいTodoRepositoryインスタンスを作成します。
func NewTodoRepository(client *firestore.Client, log *logrus.Logger) *TodoRepository {
	return &TodoRepository{client: client, log: log}
}

// Create は新しいTodoを保存します。IDとタイムスタンプはここで採番します。
func (r *TodoRepository) Create(ctx context.Context, t *models.Todo) (*models.Todo, error) {
	t.ID = uuid.New().String()
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Tags == nil {
		t.Tags = []string{}
	}

	if _, err := r.client.Collection(todosCollection).Doc(t.ID).Set(ctx, t); err != nil {
		r.log.WithFields(logrus.Fields{"op": "todo.create", "id": t.ID}).Errorf("Failed to insert todo: %v", err)
		return nil, fmt.Errorf("could not insert todo: %w", err)
	}

	return t, nil
}

// FindByUserID は指定ユーザーが所有するTodoを取得します（上限1000件）。
func (r *TodoRepository) FindByUserID(ctx context.Context, userID string) ([]*models.Todo, error) {
	iter := r.client.Collection(todosCollection).
		Where("userId", "==", userID).
		Limit(listLimit).
		Documents(ctx)
	defer iter.Stop()

	todos := make([]*models.Todo, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			r.log.WithField("op", "todo.list").Errorf("Failed to iterate todos: %v", err)
			return nil, fmt.Errorf("could not query todos: %w", err)
		}

		var t models.Todo
		if err := doc.DataTo(&t); err != nil {
			return nil, fmt.Errorf("could not unmarshal todo: %w", err)
		}
		todos = append(todos, &t)
	}

	return todos, nil
}

// FindByID は指定IDのTodoを取得します。
func (r *TodoRepository) FindByID(ctx context.Context, id string) (*models.Todo, error) {
	doc, err := r.client.Collection(todosCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrTodoNotFound
		}
		r.log.WithFields(logrus.Fields{"op": "todo.get", "id": id}).Errorf("Failed to get todo: %v", err)
		return nil, fmt.Errorf("could not query todo: %w", err)
	}

	var t models.Todo
	if err := doc.DataTo(&t); err != nil {
		return nil, fmt.Errorf("could not unmarshal todo: %w", err)
	}
	return &t, nil
}

// Update はTodoのドキュメント全体を置き換え、updatedAtを更新します。
func (r *TodoRepository) Update(ctx context.Context, t *models.Todo) (*models.Todo, error) {
	t.UpdatedAt = time.Now().UTC()
	if t.Tags == nil {
		t.Tags = []string{}
	}

	if _, err := r.client.Collection(todosCollection).Doc(t.ID).Set(ctx, t); err != nil {
		r.log.WithFields(logrus.Fields{"op": "todo.update", "id": t.ID}).Errorf("Failed to update todo: %v", err)
		return nil, fmt.Errorf("could not update todo: %w", err)
	}

	return t, nil
}

// Delete は指定IDのTodoを物理削除します。
func (r *TodoRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(todosCollection).Doc(id).Delete(ctx); err != nil {
		r.log.WithFields(logrus.Fields{"op": "todo.delete", "id": id}).Errorf("Failed to delete todo: %v", err)
		return fmt.Errorf("could not delete todo: %w", err)
	}
	return nil
}
