// Package configは環境変数からアプリケーション設定を読み込みます。
package config

import (
	"os"
	"strings"
)

// Config はプロセス全体の設定値を保持します。
type Config struct {
	Port         string
	Env          string   // デプロイ環境フラグ ("development" / "production")
	LogLevel     string
	AllowOrigins []string // CORSで許可するオリジン

	// Firebase / Firestore
	ProjectID           string // 未設定の場合はクレデンシャルから導出される
	CredentialSearchDir string // サービスコードと同じ場所の *firebase*.json を探すディレクトリ
	CredentialFile      string // リポジトリルートに置かれた固定名のクレデンシャルファイル

	// トークン検証フォールバック
	TokenInfoURL string
}

// Load は環境変数から設定を構築します。
// 旧Mongo版の MONGO_URL / DB_NAME は読み取りません（Firestoreに移行済み）。
func Load() *Config {
	return &Config{
		Port:                getEnv("PORT", "8080"),
		Env:                 getEnv("APP_ENV", "development"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		AllowOrigins:        splitOrigins(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		ProjectID:           getEnv("GOOGLE_CLOUD_PROJECT", ""),
		CredentialSearchDir: getEnv("FIREBASE_CREDENTIAL_DIR", "."),
		CredentialFile:      getEnv("FIREBASE_CREDENTIAL_FILE", "firebase-service-account.json"),
		TokenInfoURL:        getEnv("TOKENINFO_URL", "https://oauth2.googleapis.com/tokeninfo"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
