package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/sirupsen/logrus"

	"go-firebase-todo/backend/internal/models"
)

// ErrIncompleteIdentity は検証に成功したがuidが空だった場合のエラーです。
var ErrIncompleteIdentity = errors.New("verified token has no uid")

// tokenInfoTimeout はフォールバック検証のHTTPタイムアウトです。
const tokenInfoTimeout = 5 * time.Second

// IDTokenVerifier はFirebase SDKによる一次検証を抽象化します。
// *fbauth.Client がこれを満たします。
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// Verifier はBearerトークンを検証しUserIdentityを返します。
// 一次検証はFirebase SDK、特定の失敗クラスに限りGoogleの
// tokeninfoエンドポイントへフォールバックします。
type Verifier struct {
	idTokens     IDTokenVerifier
	tokenInfoURL string
	httpClient   *http.Client
	log          *logrus.Logger
}

// NewVerifier は新しいVerifierを作成します。
func NewVerifier(idTokens IDTokenVerifier, tokenInfoURL string, log *logrus.Logger) *Verifier {
	return &Verifier{
		idTokens:     idTokens,
		tokenInfoURL: tokenInfoURL,
		httpClient:   &http.Client{Timeout: tokenInfoTimeout},
		log:          log,
	}
}

// Verify はAuthorizationヘッダーの値からUserIdentityを導出します。
func (v *Verifier) Verify(ctx context.Context, authorizationHeader string) (*models.UserIdentity, error) {
	token, err := ExtractBearerToken(authorizationHeader)
	if err != nil {
		return nil, err
	}

	// 診断用の事前デコード。失敗しても検証は止めない。
	if claims, peekErr := peekClaims(token); peekErr != nil {
		v.log.WithFields(logrus.Fields{
			"token": tokenPrefix(token),
			"error": peekErr.Error(),
		}).Debug("Token payload could not be pre-decoded")
	} else if iss, ok := claims["iss"].(string); ok {
		v.log.WithFields(logrus.Fields{
			"token":  tokenPrefix(token),
			"issuer": iss,
		}).Debug("Token payload pre-decoded")
	}

	decoded, verifyErr := v.idTokens.VerifyIDToken(ctx, token)
	if verifyErr == nil {
		if decoded.UID == "" {
			return nil, ErrIncompleteIdentity
		}
		return identityFromClaims(decoded.UID, decoded.Claims), nil
	}

	// 期限切れ・失効は確定的な失敗であり、フォールバックしない。
	if fbauth.IsIDTokenExpired(verifyErr) || fbauth.IsIDTokenRevoked(verifyErr) {
		v.log.WithField("token", tokenPrefix(token)).Info("Token expired or revoked")
		return nil, verifyErr
	}

	// 署名・フォーマット・公開鍵取得系の失敗はtokeninfoで再検証を試みる。
	// tokeninfoは遅いが独立して信頼できるため、フォールバック限定で使う。
	v.log.WithFields(logrus.Fields{
		"token": tokenPrefix(token),
		"error": verifyErr.Error(),
	}).Warn("SDK verification failed, trying tokeninfo fallback")

	if identity := v.verifyViaTokenInfo(ctx, token); identity != nil {
		return identity, nil
	}

	// フォールバックが独自のエラーを作ることはない。常に一次検証の
	// エラーをそのまま返す。
	return nil, verifyErr
}

// verifyViaTokenInfo はGoogleのtokeninfoエンドポイントでトークンを検証します。
// 成功時のみUserIdentityを返し、それ以外はnilを返します。
func (v *Verifier) verifyViaTokenInfo(ctx context.Context, token string) *models.UserIdentity {
	endpoint := v.tokenInfoURL + "?id_token=" + url.QueryEscape(token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.log.WithField("error", err.Error()).Warn("tokeninfo request failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.WithField("status", resp.StatusCode).Warn("tokeninfo returned non-200")
		return nil
	}

	var info struct {
		Sub     string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		v.log.WithField("error", err.Error()).Warn("tokeninfo response could not be decoded")
		return nil
	}
	if info.Sub == "" {
		return nil
	}

	v.log.WithField("token", tokenPrefix(token)).Info("Token verified via tokeninfo fallback")
	return &models.UserIdentity{
		UID:     info.Sub,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}
}

// identityFromClaims は検証済みクレームからUserIdentityを組み立てます。
// uid以外はベストエフォートで取り出します。
func identityFromClaims(uid string, claims map[string]interface{}) *models.UserIdentity {
	identity := &models.UserIdentity{UID: uid}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	if picture, ok := claims["picture"].(string); ok {
		identity.Picture = picture
	}
	return identity
}
