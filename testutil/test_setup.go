// Package testutilはハンドラーテスト用のフェイクとルーター構築ヘルパーを提供します。
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"go-firebase-todo/backend/internal/auth"
	"go-firebase-todo/backend/internal/config"
	"go-firebase-todo/backend/internal/models"
	"go-firebase-todo/backend/internal/repositories"
	"go-firebase-todo/backend/internal/routes"
)

// FakeVerifier は登録されたトークンだけを受け付ける検証器です。
// ヘッダーの抽出は本物と同じロジックを通します。
type FakeVerifier struct {
	mu         sync.Mutex
	identities map[string]*models.UserIdentity
}

// NewFakeVerifier は新しいFakeVerifierを作成します。
func NewFakeVerifier() *FakeVerifier {
	return &FakeVerifier{identities: make(map[string]*models.UserIdentity)}
}

// Register はトークンと対応するUserIdentityを登録します。
func (f *FakeVerifier) Register(token string, identity *models.UserIdentity) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.identities[token] = identity
}

// Verify はroutes.TokenVerifierを実装します。
func (f *FakeVerifier) Verify(_ context.Context, authorizationHeader string) (*models.UserIdentity, error) {
	token, err := auth.ExtractBearerToken(authorizationHeader)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	identity, ok := f.identities[token]
	if !ok {
		return nil, errors.New("token not registered")
	}
	return identity, nil
}

// FakeTodoStore はインメモリのTodoStore実装です。
// 採番とタイムスタンプの挙動はFirestore実装と揃えています。
type FakeTodoStore struct {
	mu    sync.Mutex
	todos map[string]*models.Todo
}

// NewFakeTodoStore は新しいFakeTodoStoreを作成します。
func NewFakeTodoStore() *FakeTodoStore {
	return &FakeTodoStore{todos: make(map[string]*models.Todo)}
}

func (f *FakeTodoStore) Create(_ context.Context, t *models.Todo) (*models.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t.ID = uuid.New().String()
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Tags == nil {
		t.Tags = []string{}
	}

	stored := *t
	f.todos[t.ID] = &stored
	return t, nil
}

func (f *FakeTodoStore) FindByUserID(_ context.Context, userID string) ([]*models.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]*models.Todo, 0)
	for _, t := range f.todos {
		if t.UserID == userID {
			copied := *t
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *FakeTodoStore) FindByID(_ context.Context, id string) (*models.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, ok := f.todos[id]
	if !ok {
		return nil, repositories.ErrTodoNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *FakeTodoStore) Update(_ context.Context, t *models.Todo) (*models.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t.UpdatedAt = time.Now().UTC()
	if t.Tags == nil {
		t.Tags = []string{}
	}

	stored := *t
	f.todos[t.ID] = &stored
	return t, nil
}

func (f *FakeTodoStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.todos, id)
	return nil
}

// Seed はテスト用にTodoを直接投入します（採番・タイムスタンプも呼び出し元指定）。
func (f *FakeTodoStore) Seed(t *models.Todo) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *t
	f.todos[t.ID] = &stored
}

// FakeStatusStore はインメモリのStatusStore実装です。
type FakeStatusStore struct {
	mu     sync.Mutex
	checks []*models.StatusCheck
}

// NewFakeStatusStore は新しいFakeStatusStoreを作成します。
func NewFakeStatusStore() *FakeStatusStore {
	return &FakeStatusStore{}
}

func (f *FakeStatusStore) Create(_ context.Context, check *models.StatusCheck) (*models.StatusCheck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	check.ID = uuid.New().String()
	check.Timestamp = time.Now().UTC()
	stored := *check
	f.checks = append(f.checks, &stored)
	return check, nil
}

func (f *FakeStatusStore) FindAll(_ context.Context) ([]*models.StatusCheck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]*models.StatusCheck, 0, len(f.checks))
	for _, c := range f.checks {
		copied := *c
		result = append(result, &copied)
	}
	return result, nil
}

// SetupTestRouter はフェイク一式でルーターを構築します。
func SetupTestRouter(t *testing.T) (*gin.Engine, *FakeVerifier, *FakeTodoStore, *FakeStatusStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := config.Load()
	verifier := NewFakeVerifier()
	todoStore := NewFakeTodoStore()
	statusStore := NewFakeStatusStore()

	r := routes.SetupRouter(cfg, log, verifier, todoStore, statusStore)
	return r, verifier, todoStore, statusStore
}

// RegisterTestUser はuidに対応するトークンをFakeVerifierに登録して返します。
func RegisterTestUser(verifier *FakeVerifier, uid string) string {
	token := "test-token-" + uid
	verifier.Register(token, &models.UserIdentity{
		UID:   uid,
		Email: uid + "@example.com",
		Name:  "Test " + uid,
	})
	return token
}

// CreateTestTodo はAPI経由でTodoを作成して返します。
func CreateTestTodo(t *testing.T, router *gin.Engine, token, title string) *models.Todo {
	t.Helper()

	payload := models.TodoCreateRequest{
		Title:    title,
		Category: "test",
		Status:   "open",
		Priority: "low",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodPost, "/api/todos", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var created models.Todo
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	return &created
}
