package models

// UserIdentity は検証済みIDトークンから得られるユーザー情報を表します。
// このシステムには永続化されません。uid以外はベストエフォートです。
type UserIdentity struct {
	UID     string `json:"uid"`
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}
