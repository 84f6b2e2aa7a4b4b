// Package handler はHTTP APIのハンドラーとルーティングを提供する。
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/mergington/internal/model"
)

// ActivityServiceInterface はアクティビティハンドラーが必要とするサービスインターフェース。
type ActivityServiceInterface interface {
	// ListActivities は全アクティビティを挿入順で返す。
	ListActivities(ctx context.Context) []model.Activity
	// Signup はemailをアクティビティに登録し、登録後の参加者数を返す。
	Signup(ctx context.Context, activityName, email string) (int, error)
	// Unregister はemailをアクティビティの名簿から外し、解除後の参加者数を返す。
	Unregister(ctx context.Context, activityName, email string) (int, error)
}

// ActivityHandler はアクティビティ管理のHTTPハンドラー。
type ActivityHandler struct {
	service ActivityServiceInterface
}

// NewActivityHandler はActivityHandlerを生成する。
func NewActivityHandler(service ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{
		service: service,
	}
}

// activityResponse はアクティビティ情報のAPIレスポンス。
// 一覧はアクティビティ名をキーとするオブジェクトとして返す（既存クライアントとの互換仕様）。
type activityResponse struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// signupResponse はサインアップ・登録解除成功時のAPIレスポンス。
type signupResponse struct {
	Message      string `json:"message"`
	Participants int    `json:"participants"`
}

// apiErrorResponse は統一エラーフォーマットのレスポンス。
type apiErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Category string `json:"category"`
	Action   string `json:"action"`
}

// ListActivities は全アクティビティの一覧を取得する。
// GET /activities
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities := h.service.ListActivities(r.Context())

	result := make(map[string]activityResponse, len(activities))
	for _, a := range activities {
		result[a.Name] = toActivityResponse(&a)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Signup はアクティビティへのサインアップを処理する。
// POST /activities/{name}/signup?email=
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name := activityNameFromRequest(r)
	email := r.URL.Query().Get("email")

	if email == "" {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewMissingEmailError())
		return
	}

	count, err := h.service.Signup(r.Context(), name, email)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(signupResponse{
		Message:      fmt.Sprintf("Signed up %s for %s", email, name),
		Participants: count,
	})
}

// Unregister はアクティビティからの登録解除を処理する。
// DELETE /activities/{name}/unregister?email=
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	name := activityNameFromRequest(r)
	email := r.URL.Query().Get("email")

	if email == "" {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewMissingEmailError())
		return
	}

	count, err := h.service.Unregister(r.Context(), name, email)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(signupResponse{
		Message:      fmt.Sprintf("Unregistered %s from %s", email, name),
		Participants: count,
	})
}

// --- ヘルパー関数 ---

// activityNameFromRequest はパスパラメータからアクティビティ名を取り出す。
// chiはRawPath由来の値を返すことがあるため、パーセントエンコーディングを解除する
// （"Chess%20Club" → "Chess Club"）。デコードできない場合は生の値を使う。
func activityNameFromRequest(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return name
}

// toActivityResponse はmodel.ActivityからAPIレスポンスに変換する。
func toActivityResponse(a *model.Activity) activityResponse {
	participants := a.Participants
	if participants == nil {
		participants = []string{}
	}
	return activityResponse{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}

// writeAPIErrorResponse は統一エラーフォーマットでエラーレスポンスを書き込む。
func writeAPIErrorResponse(w http.ResponseWriter, statusCode int, apiErr *model.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(apiErrorResponse{
		Code:     apiErr.Code,
		Message:  apiErr.Message,
		Category: apiErr.Category,
		Action:   apiErr.Action,
	})
}

// handleServiceError はサービス層から返されたエラーを適切なHTTPステータスコードに変換する。
func handleServiceError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		writeAPIErrorResponse(w, mapAPIErrorToHTTPStatus(apiErr), apiErr)
		return
	}

	// APIError以外のエラーは内部サーバーエラーとして扱う
	slog.Error("internal server error", slog.String("error", err.Error()))
	writeAPIErrorResponse(w, http.StatusInternalServerError, &model.APIError{
		Code:     "INTERNAL_ERROR",
		Message:  "An internal error occurred.",
		Category: "system",
		Action:   "Please wait a moment and try again.",
	})
}

// mapAPIErrorToHTTPStatus はAPIErrorコードからHTTPステータスコードにマッピングする。
func mapAPIErrorToHTTPStatus(apiErr *model.APIError) int {
	switch apiErr.Code {
	case model.ErrCodeActivityNotFound:
		return http.StatusNotFound
	case model.ErrCodeAlreadyRegistered, model.ErrCodeNotRegistered:
		return http.StatusConflict
	case model.ErrCodeMissingEmail, model.ErrCodeMissingActivity:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
