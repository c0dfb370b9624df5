// Package authはBearerトークンの抽出と検証を行います。
package auth

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingAuthHeader はAuthorizationヘッダーが無い場合のエラーです。
	ErrMissingAuthHeader = errors.New("authorization header missing")
	// ErrInvalidScheme は認証スキームがbearerでない場合のエラーです。
	ErrInvalidScheme = errors.New("invalid authentication scheme")
	// ErrInvalidTokenFormat はトークンが空または明らかに不正な場合のエラーです。
	ErrInvalidTokenFormat = errors.New("invalid token format")
)

// ExtractBearerToken はAuthorizationヘッダーからトークンを取り出します。
// スキームを省略したクライアントのために、空白を含まない値はそのまま
// トークンとして扱います（寛容なフォールバック）。
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingAuthHeader
	}

	token := header
	if strings.Contains(header, " ") {
		parts := strings.SplitN(header, " ", 2)
		if !strings.EqualFold(parts[0], "bearer") {
			return "", ErrInvalidScheme
		}
		token = strings.TrimSpace(parts[1])
	}

	// クライアント側のシリアライズバグで "null" / "undefined" という
	// 文字列がそのまま送られてくることがある
	switch strings.ToLower(token) {
	case "", "null", "undefined":
		return "", ErrInvalidTokenFormat
	}

	return token, nil
}

// peekClaims はトークンのペイロードを署名検証なしでデコードします。
// 診断専用であり、失敗しても検証処理は継続します。
func peekClaims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// tokenPrefix はログ出力用にトークンの先頭だけを返します。
// トークン全体は決してログに残しません。
func tokenPrefix(token string) string {
	if len(token) > 12 {
		return token[:12] + "..."
	}
	return token
}
