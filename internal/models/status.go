package models

import "time"

// StatusCheck はヘルスチェック用の記録です。認証・所有権チェックはありません。
type StatusCheck struct {
	ID         string    `json:"id" firestore:"id"`
	ClientName string    `json:"client_name" firestore:"clientName"`
	Timestamp  time.Time `json:"timestamp" firestore:"timestamp"`
}

// StatusCheckCreateRequest はStatusCheck作成リクエストのボディです。
type StatusCheckCreateRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}
