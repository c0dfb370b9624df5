package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-firebase-todo/backend/internal/models"
	"go-firebase-todo/backend/testutil"
)

func TestCreateStatusHandler(t *testing.T) {
	router, _, _, _ := testutil.SetupTestRouter(t)

	// 認証不要
	req, _ := http.NewRequest(http.MethodPost, "/api/status", strings.NewReader(`{"client_name":"monitor-1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var check models.StatusCheck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &check))
	assert.NotEmpty(t, check.ID)
	assert.Equal(t, "monitor-1", check.ClientName)
	assert.False(t, check.Timestamp.IsZero())
}

func TestCreateStatusHandler_MissingClientName(t *testing.T) {
	router, _, _, _ := testutil.SetupTestRouter(t)

	req, _ := http.NewRequest(http.MethodPost, "/api/status", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStatusHandler(t *testing.T) {
	router, _, _, _ := testutil.SetupTestRouter(t)

	for _, name := range []string{"monitor-1", "monitor-2"} {
		req, _ := http.NewRequest(http.MethodPost, "/api/status", strings.NewReader(`{"client_name":"`+name+`"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	req, _ := http.NewRequest(http.MethodGet, "/api/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var checks []*models.StatusCheck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &checks))
	require.Len(t, checks, 2)
}
