package firebase

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"google.golang.org/api/option"

	"go-firebase-todo/backend/internal/config"
)

// ErrNoCredentials はどのソースからもクレデンシャルが見つからなかった場合のエラーです。
// クレデンシャルなしでの初期化は行いません。
var ErrNoCredentials = errors.New("no firebase credentials found")

// credentialSource は1つのクレデンシャル取得元を表します。
// 見つからない場合は (nil, "", nil) を返し、次のソースに進みます。
type credentialSource func(cfg *config.Config) (option.ClientOption, string, error)

// resolveCredential は定義順にソースを試し、最初に見つかったものを返します。
// 順序:
//  1. FIREBASE_CREDENTIALS 環境変数（サービスアカウントJSONそのもの）
//  2. サービスコードと同じディレクトリの *firebase*.json
//  3. リポジトリルートの固定名ファイル
//  4. GOOGLE_APPLICATION_CREDENTIALS 環境変数（ファイルパス）
func resolveCredential(cfg *config.Config) (option.ClientOption, string, error) {
	sources := []credentialSource{
		credentialFromEnvJSON,
		credentialFromServiceDir,
		credentialFromNamedFile,
		credentialFromEnvPath,
	}
	for _, source := range sources {
		opt, desc, err := source(cfg)
		if err != nil {
			return nil, "", err
		}
		if opt != nil {
			return opt, desc, nil
		}
	}
	return nil, "", ErrNoCredentials
}

// credentialFromEnvJSON はFIREBASE_CREDENTIALSのJSON文字列を読みます。
// サーバーレス環境向け（ファイルシステムにクレデンシャルを置けない場合）。
func credentialFromEnvJSON(_ *config.Config) (option.ClientOption, string, error) {
	raw := os.Getenv("FIREBASE_CREDENTIALS")
	if raw == "" {
		return nil, "", nil
	}
	if !json.Valid([]byte(raw)) {
		return nil, "", fmt.Errorf("FIREBASE_CREDENTIALS is not valid JSON")
	}
	return option.WithCredentialsJSON([]byte(raw)), "env:FIREBASE_CREDENTIALS", nil
}

// credentialFromServiceDir は設定されたディレクトリ内の *firebase*.json を探します。
func credentialFromServiceDir(cfg *config.Config) (option.ClientOption, string, error) {
	matches, err := filepath.Glob(filepath.Join(cfg.CredentialSearchDir, "*firebase*.json"))
	if err != nil || len(matches) == 0 {
		return nil, "", nil
	}
	// 複数見つかった場合に結果を決定的にする
	sort.Strings(matches)
	return option.WithCredentialsFile(matches[0]), matches[0], nil
}

// credentialFromNamedFile はリポジトリルートの固定名ファイルを探します。
// 初期セットアップ時に置かれたデプロイ成果物を想定しています。
func credentialFromNamedFile(cfg *config.Config) (option.ClientOption, string, error) {
	if _, err := os.Stat(cfg.CredentialFile); err != nil {
		return nil, "", nil
	}
	return option.WithCredentialsFile(cfg.CredentialFile), cfg.CredentialFile, nil
}

// credentialFromEnvPath はGOOGLE_APPLICATION_CREDENTIALSのパスを読みます。
func credentialFromEnvPath(_ *config.Config) (option.ClientOption, string, error) {
	path := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if path == "" {
		return nil, "", nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, "", nil
	}
	return option.WithCredentialsFile(path), path, nil
}
