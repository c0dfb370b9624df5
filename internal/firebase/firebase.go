// Package firebaseはFirebaseアプリとFirestoreクライアントの初期化を行います。
package firebase

import (
	"context"
	"fmt"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/sirupsen/logrus"

	"go-firebase-todo/backend/internal/config"
)

// Client は初期化済みのFirebaseハンドル一式です。
// プロセス起動時に1度だけ構築し、各層に参照で渡します。
type Client struct {
	App       *firebase.App
	Auth      *auth.Client
	Firestore *firestore.Client
}

// Provider はClientの生成を1回に限定するためのラッパーです。
// 初回利用が並行して走っても初期化は sync.Once で1度だけ実行されます。
type Provider struct {
	cfg *config.Config
	log *logrus.Logger

	once   sync.Once
	client *Client
	err    error
}

// NewProvider は新しいProviderを作成します。初期化はまだ行いません。
func NewProvider(cfg *config.Config, log *logrus.Logger) *Provider {
	return &Provider{cfg: cfg, log: log}
}

// Client は初期化済みハンドルを返します。2回目以降は初回の結果を返します。
func (p *Provider) Client(ctx context.Context) (*Client, error) {
	p.once.Do(func() {
		p.client, p.err = p.initialize(ctx)
	})
	return p.client, p.err
}

func (p *Provider) initialize(ctx context.Context) (*Client, error) {
	opt, source, err := resolveCredential(p.cfg)
	if err != nil {
		return nil, fmt.Errorf("could not resolve firebase credentials: %w", err)
	}
	p.log.WithField("source", source).Info("Initializing Firebase app")

	var fbConfig *firebase.Config
	if p.cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: p.cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opt)
	if err != nil {
		return nil, fmt.Errorf("could not initialize firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not create auth client: %w", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not create firestore client: %w", err)
	}

	return &Client{
		App:       app,
		Auth:      authClient,
		Firestore: firestoreClient,
	}, nil
}

// Close はFirestoreクライアントを閉じます。
func (c *Client) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}
