// Package signup はアクティビティへの登録・登録解除のドメインロジックを提供する。
package signup

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/hitoshi/mergington/internal/model"
	"github.com/hitoshi/mergington/internal/store"
)

// ActivityStore はサービス層が必要とするストア操作のインターフェース。
// store.MemoryStoreの部分集合として定義する。
type ActivityStore interface {
	FindByName(name string) *model.Activity
	ListAll() []model.Activity
	AddParticipant(name, email string) (int, error)
	RemoveParticipant(name, email string) (int, error)
}

// MetricsRecorder はサインアップ操作のメトリクス記録インターフェース。
type MetricsRecorder interface {
	RecordSignupSuccess()
	RecordSignupRejected(reason string)
	RecordUnregisterSuccess()
	RecordUnregisterRejected(reason string)
}

// Service はサインアップ管理のサービス層。
// 名簿の一意性・存在チェックのビジネスルールを適用する。
type Service struct {
	store   ActivityStore
	metrics MetricsRecorder
}

// NewService はServiceの新しいインスタンスを生成する。
// metricsはnilでもよい（記録をスキップする）。
func NewService(activityStore ActivityStore, metrics MetricsRecorder) *Service {
	return &Service{
		store:   activityStore,
		metrics: metrics,
	}
}

// ListActivities は全アクティビティを一覧表示用に返す。
func (s *Service) ListActivities(ctx context.Context) []model.Activity {
	return s.store.ListAll()
}

// Signup はemailをアクティビティに登録し、登録後の参加者数を返す。
// アクティビティが存在しない場合はACTIVITY_NOT_FOUND、
// 既に登録済みの場合はALREADY_REGISTEREDエラーを返す。
// 重複サインアップは冪等に成功させず、明示的に拒否する。
func (s *Service) Signup(ctx context.Context, activityName, email string) (int, error) {
	if err := validateInput(activityName, email); err != nil {
		s.recordSignupRejected("invalid_input")
		return 0, err
	}

	count, err := s.store.AddParticipant(activityName, email)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrActivityNotFound):
			s.recordSignupRejected("activity_not_found")
			return 0, model.NewActivityNotFoundError(activityName)
		case errors.Is(err, store.ErrDuplicateParticipant):
			s.recordSignupRejected("already_registered")
			return 0, model.NewAlreadyRegisteredError()
		default:
			s.recordSignupRejected("internal")
			return 0, err
		}
	}

	slog.Info("signup completed",
		slog.String("activity", activityName),
		slog.String("email", email),
		slog.Int("participants", count),
	)
	if s.metrics != nil {
		s.metrics.RecordSignupSuccess()
	}
	return count, nil
}

// Unregister はemailをアクティビティの名簿から外し、解除後の参加者数を返す。
// アクティビティが存在しない場合はACTIVITY_NOT_FOUND、
// 名簿にない場合はNOT_REGISTEREDエラーを返す。
func (s *Service) Unregister(ctx context.Context, activityName, email string) (int, error) {
	if err := validateInput(activityName, email); err != nil {
		s.recordUnregisterRejected("invalid_input")
		return 0, err
	}

	count, err := s.store.RemoveParticipant(activityName, email)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrActivityNotFound):
			s.recordUnregisterRejected("activity_not_found")
			return 0, model.NewActivityNotFoundError(activityName)
		case errors.Is(err, store.ErrParticipantNotFound):
			s.recordUnregisterRejected("not_registered")
			return 0, model.NewNotRegisteredError()
		default:
			s.recordUnregisterRejected("internal")
			return 0, err
		}
	}

	slog.Info("unregister completed",
		slog.String("activity", activityName),
		slog.String("email", email),
		slog.Int("participants", count),
	)
	if s.metrics != nil {
		s.metrics.RecordUnregisterSuccess()
	}
	return count, nil
}

// validateInput はアクティビティ名とemailの必須チェックを行う。
// 空白のみの値も欠落として扱う。emailの形式までは検証しない。
func validateInput(activityName, email string) error {
	if strings.TrimSpace(activityName) == "" {
		return model.NewMissingActivityError()
	}
	if strings.TrimSpace(email) == "" {
		return model.NewMissingEmailError()
	}
	return nil
}

func (s *Service) recordSignupRejected(reason string) {
	if s.metrics != nil {
		s.metrics.RecordSignupRejected(reason)
	}
}

func (s *Service) recordUnregisterRejected(reason string) {
	if s.metrics != nil {
		s.metrics.RecordUnregisterRejected(reason)
	}
}
