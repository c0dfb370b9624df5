package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-firebase-todo/backend/internal/models"
	"go-firebase-todo/backend/testutil"
)

func authErrorFor(t *testing.T, header string) (int, string) {
	t.Helper()
	router, _, _, _ := testutil.SetupTestRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return w.Code, response["error"]
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	code, message := authErrorFor(t, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Authorization header required", message)
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	code, message := authErrorFor(t, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid authentication scheme", message)
}

func TestAuthMiddleware_LiteralNull(t *testing.T) {
	// クライアントのシリアライズバグで "null" が届いた場合、
	// 検証を試みる前に拒否される
	code, message := authErrorFor(t, "null")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid token format", message)
}

func TestAuthMiddleware_UnknownToken(t *testing.T) {
	code, message := authErrorFor(t, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid authentication token", message)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	router, verifier, _, _ := testutil.SetupTestRouter(t)
	verifier.Register("good-token", &models.UserIdentity{
		UID:     "U1",
		Email:   "u1@example.com",
		Name:    "User One",
		Picture: "https://example.com/u1.png",
	})

	req, _ := http.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var identity models.UserIdentity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &identity))
	assert.Equal(t, "U1", identity.UID)
	assert.Equal(t, "u1@example.com", identity.Email)
	assert.Equal(t, "User One", identity.Name)
	assert.Equal(t, "https://example.com/u1.png", identity.Picture)
}

func TestAuthMiddleware_SchemeOmitted(t *testing.T) {
	// スキームを省略したクライアントも受け付ける（寛容なフォールバック）
	router, verifier, _, _ := testutil.SetupTestRouter(t)
	verifier.Register("bare-token", &models.UserIdentity{UID: "U1"})

	req, _ := http.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "bare-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
