package services

import (
	"context"

	"go-firebase-todo/backend/internal/models"
	"go-firebase-todo/backend/internal/repositories"
)

// StatusService はヘルスチェック記録の作成と一覧取得を扱います。
type StatusService struct {
	statusRepo repositories.StatusStore
}

// NewStatusService は新しいStatusServiceを作成します。
func NewStatusService(statusRepo repositories.StatusStore) *StatusService {
	return &StatusService{statusRepo: statusRepo}
}

// CreateStatusCheck は新しいStatusCheckを記録します。
func (s *StatusService) CreateStatusCheck(ctx context.Context, req *models.StatusCheckCreateRequest) (*models.StatusCheck, error) {
	return s.statusRepo.Create(ctx, &models.StatusCheck{ClientName: req.ClientName})
}

// GetStatusChecks はStatusCheckの一覧を返します。
func (s *StatusService) GetStatusChecks(ctx context.Context) ([]*models.StatusCheck, error) {
	return s.statusRepo.FindAll(ctx)
}
