package routes

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"go-firebase-todo/backend/internal/auth"
	"go-firebase-todo/backend/internal/models"
)

// TokenVerifier はAuthorizationヘッダーからUserIdentityを導出します。
// 本番実装は auth.Verifier です。
type TokenVerifier interface {
	Verify(ctx context.Context, authorizationHeader string) (*models.UserIdentity, error)
}

// AuthMiddleware はBearerトークンを検証し、ユーザー情報をコンテキストに設定するミドルウェアです。
func AuthMiddleware(verifier TokenVerifier, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := verifier.Verify(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			log.WithFields(logrus.Fields{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			}).Info("Authentication failed")
			c.JSON(http.StatusUnauthorized, gin.H{"error": authErrorMessage(err)})
			c.Abort()
			return
		}

		c.Set("user", identity)
		c.Next()
	}
}

// authErrorMessage は認証エラーをクライアント向けメッセージに変換します。
func authErrorMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissingAuthHeader):
		return "Authorization header required"
	case errors.Is(err, auth.ErrInvalidScheme):
		return "Invalid authentication scheme"
	case errors.Is(err, auth.ErrInvalidTokenFormat):
		return "Invalid token format"
	default:
		return "Invalid authentication token"
	}
}
