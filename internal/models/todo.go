// Package modelsはTodoを定義します。
package models

import (
	"time"
)

// Todo はFirestoreに保存されるタスクのドキュメント構造体です。
// firestoreタグ: ドキュメントのフィールド名（camelCase）
// jsonタグ: クライアントとの通信用
type Todo struct {
	ID              string                 `json:"id" firestore:"id"`                                               // ドキュメントID（サーバー採番）
	UserID          string                 `json:"userId" firestore:"userId"`                                       // 所有者のFirebase UID（作成後は不変）
	Title           string                 `json:"title" firestore:"title"`                                         // タスクのタイトル（必須）
	Category        string                 `json:"category" firestore:"category"`                                   // カテゴリ（必須）
	Status          string                 `json:"status" firestore:"status"`                                       // 状態（自由形式: "open" / "done" など）
	Priority        string                 `json:"priority" firestore:"priority"`                                   // 優先度（自由形式）
	Description     string                 `json:"description" firestore:"description"`                             // 説明（省略時は空文字）
	DueDate         string                 `json:"dueDate,omitempty" firestore:"dueDate,omitempty"`                 // 期限（文字列表現）
	GithubIssue     string                 `json:"githubIssue,omitempty" firestore:"githubIssue,omitempty"`         // 関連GitHub Issueの参照
	GithubIssueData map[string]interface{} `json:"githubIssueData,omitempty" firestore:"githubIssueData,omitempty"` // Issueのメタデータ（任意構造）
	EstimatedHours  string                 `json:"estimatedHours,omitempty" firestore:"estimatedHours,omitempty"`   // 見積時間（文字列型の数値）
	ActualHours     string                 `json:"actualHours,omitempty" firestore:"actualHours,omitempty"`         // 実績時間（文字列型の数値）
	Tags            []string               `json:"tags" firestore:"tags"`                                           // タグ（省略時は空リスト）
	CreatedAt       time.Time              `json:"createdAt" firestore:"createdAt"`                                 // 作成日時（サーバー設定）
	UpdatedAt       time.Time              `json:"updatedAt" firestore:"updatedAt"`                                 // 更新日時（毎回の変更で更新）
}

// TodoCreateRequest はTodoの作成・更新リクエストのボディです。
// id / userId / タイムスタンプはサーバーが設定するため含みません。
type TodoCreateRequest struct {
	Title           string                 `json:"title" binding:"required"`
	Category        string                 `json:"category" binding:"required"`
	Status          string                 `json:"status" binding:"required"`
	Priority        string                 `json:"priority" binding:"required"`
	Description     string                 `json:"description"`
	DueDate         string                 `json:"dueDate"`
	GithubIssue     string                 `json:"githubIssue"`
	GithubIssueData map[string]interface{} `json:"githubIssueData"`
	EstimatedHours  string                 `json:"estimatedHours"`
	ActualHours     string                 `json:"actualHours"`
	Tags            []string               `json:"tags"`
}
