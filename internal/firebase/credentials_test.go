package firebase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-firebase-todo/backend/internal/config"
)

// emptyEnvConfig は実環境のクレデンシャルを拾わないconfigを返します。
func emptyEnvConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("FIREBASE_CREDENTIALS", "")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")
	return &config.Config{
		CredentialSearchDir: t.TempDir(),
		CredentialFile:      filepath.Join(t.TempDir(), "firebase-service-account.json"),
	}
}

func writeCredentialFile(t *testing.T, path string) {
	t.Helper()
	err := os.WriteFile(path, []byte(`{"type":"service_account","project_id":"test-project"}`), 0o600)
	require.NoError(t, err)
}

func TestResolveCredential_NoSources(t *testing.T) {
	cfg := emptyEnvConfig(t)

	_, _, err := resolveCredential(cfg)
	require.ErrorIs(t, err, ErrNoCredentials)
}

func TestResolveCredential_EnvJSON(t *testing.T) {
	cfg := emptyEnvConfig(t)
	t.Setenv("FIREBASE_CREDENTIALS", `{"type":"service_account","project_id":"test-project"}`)

	opt, source, err := resolveCredential(cfg)
	require.NoError(t, err)
	assert.NotNil(t, opt)
	assert.Equal(t, "env:FIREBASE_CREDENTIALS", source)
}

func TestResolveCredential_EnvJSONInvalid(t *testing.T) {
	cfg := emptyEnvConfig(t)
	t.Setenv("FIREBASE_CREDENTIALS", "{not json")

	_, _, err := resolveCredential(cfg)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoCredentials)
}

func TestResolveCredential_ServiceDirGlob(t *testing.T) {
	cfg := emptyEnvConfig(t)
	path := filepath.Join(cfg.CredentialSearchDir, "my-app-firebase-adminsdk.json")
	writeCredentialFile(t, path)

	opt, source, err := resolveCredential(cfg)
	require.NoError(t, err)
	assert.NotNil(t, opt)
	assert.Equal(t, path, source)
}

func TestResolveCredential_NamedFile(t *testing.T) {
	cfg := emptyEnvConfig(t)
	writeCredentialFile(t, cfg.CredentialFile)

	opt, source, err := resolveCredential(cfg)
	require.NoError(t, err)
	assert.NotNil(t, opt)
	assert.Equal(t, cfg.CredentialFile, source)
}

func TestResolveCredential_EnvPath(t *testing.T) {
	cfg := emptyEnvConfig(t)
	path := filepath.Join(t.TempDir(), "service-account.json")
	writeCredentialFile(t, path)
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", path)

	opt, source, err := resolveCredential(cfg)
	require.NoError(t, err)
	assert.NotNil(t, opt)
	assert.Equal(t, path, source)
}

func TestResolveCredential_EnvPathMissingFileIsSkipped(t *testing.T) {
	cfg := emptyEnvConfig(t)
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", filepath.Join(t.TempDir(), "does-not-exist.json"))

	_, _, err := resolveCredential(cfg)
	require.ErrorIs(t, err, ErrNoCredentials)
}

func TestResolveCredential_Order(t *testing.T) {
	// 環境変数のJSONがファイルより優先される
	cfg := emptyEnvConfig(t)
	writeCredentialFile(t, filepath.Join(cfg.CredentialSearchDir, "my-firebase.json"))
	writeCredentialFile(t, cfg.CredentialFile)
	t.Setenv("FIREBASE_CREDENTIALS", `{"type":"service_account"}`)

	_, source, err := resolveCredential(cfg)
	require.NoError(t, err)
	assert.Equal(t, "env:FIREBASE_CREDENTIALS", source)
}
