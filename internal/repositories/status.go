package repositories

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"

	"go-firebase-todo/backend/internal/models"
)

const statusCollection = "status_checks"

// StatusRepository はヘルスチェック記録を操作します。所有権チェックはありません。
type StatusRepository struct {
	client *firestore.Client
	log    *logrus.Logger
}

// NewStatusRepository は新しいStatusRepositoryインスタンスを作成します。
func NewStatusRepository(client *firestore.Client, log *logrus.Logger) *StatusRepository {
	return &StatusRepository{client: client, log: log}
}

// Create は新しいStatusCheckを保存します。
func (r *StatusRepository) Create(ctx context.Context, check *models.StatusCheck) (*models.StatusCheck, error) {
	check.ID = uuid.New().String()
	check.Timestamp = time.Now().UTC()

	if _, err := r.client.Collection(statusCollection).Doc(check.ID).Set(ctx, check); err != nil {
		r.log.WithField("op", "status.create").Errorf("Failed to insert status check: %v", err)
		return nil, fmt.Errorf("could not insert status check: %w", err)
	}

	return check, nil
}

// FindAll はStatusCheckの一覧を取得します（上限1000件）。
func (r *StatusRepository) FindAll(ctx context.Context) ([]*models.StatusCheck, error) {
	iter := r.client.Collection(statusCollection).Limit(listLimit).Documents(ctx)
	defer iter.Stop()

	checks := make([]*models.StatusCheck, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			r.log.WithField("op", "status.list").Errorf("Failed to iterate status checks: %v", err)
			return nil, fmt.Errorf("could not query status checks: %w", err)
		}

		var check models.StatusCheck
		if err := doc.DataTo(&check); err != nil {
			return nil, fmt.Errorf("could not unmarshal status check: %w", err)
		}
		checks = append(checks, &check)
	}

	return checks, nil
}
