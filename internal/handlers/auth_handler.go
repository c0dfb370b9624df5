// Package handlersはGinのHTTPハンドラーを提供します。
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthHandler は認証済みユーザー情報に関するハンドラーを管理します。
type AuthHandler struct{}

// NewAuthHandler は新しいAuthHandlerを作成します。
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// MeHandler は認証済みユーザーのUserIdentityを返します。
func (h *AuthHandler) MeHandler(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User identity not found in context"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// RootHandler はAPIルートの挨拶を返します。
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from Go Backend!"})
}
