// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: activity, validation, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeActivityNotFound  = "ACTIVITY_NOT_FOUND"
	ErrCodeAlreadyRegistered = "ALREADY_REGISTERED"
	ErrCodeNotRegistered     = "NOT_REGISTERED"
	ErrCodeMissingEmail      = "MISSING_EMAIL"
	ErrCodeMissingActivity   = "MISSING_ACTIVITY"
)

// NewActivityNotFoundError はアクティビティ未検出エラーを生成する。
func NewActivityNotFoundError(name string) *APIError {
	return &APIError{
		Code:     ErrCodeActivityNotFound,
		Message:  "Activity not found",
		Category: "activity",
		Action:   fmt.Sprintf("Check the activity name and try again: %s", name),
	}
}

// NewAlreadyRegisteredError は重複サインアップエラーを生成する。
// 同一アクティビティへの二重登録は冪等に成功させず、明示的にエラーとする。
func NewAlreadyRegisteredError() *APIError {
	return &APIError{
		Code:     ErrCodeAlreadyRegistered,
		Message:  "Student already signed up for this activity",
		Category: "activity",
		Action:   "The student is already on the roster. No action is needed.",
	}
}

// NewNotRegisteredError は未登録参加者の登録解除エラーを生成する。
func NewNotRegisteredError() *APIError {
	return &APIError{
		Code:     ErrCodeNotRegistered,
		Message:  "Student is not signed up for this activity",
		Category: "activity",
		Action:   "Check the email address against the activity roster.",
	}
}

// NewMissingEmailError はemailパラメータ欠落エラーを生成する。
func NewMissingEmailError() *APIError {
	return &APIError{
		Code:     ErrCodeMissingEmail,
		Message:  "Email is required",
		Category: "validation",
		Action:   "Provide a non-empty email query parameter.",
	}
}

// NewMissingActivityError はアクティビティ名欠落エラーを生成する。
func NewMissingActivityError() *APIError {
	return &APIError{
		Code:     ErrCodeMissingActivity,
		Message:  "Activity name is required",
		Category: "validation",
		Action:   "Provide a non-empty activity name in the request path.",
	}
}
