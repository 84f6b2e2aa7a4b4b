// Package store はアクティビティのインメモリストアを提供する。
// 永続化層は持たず、プロセス内のミュータブルな状態のみを管理する。
package store

import (
	"errors"
	"sync"

	"github.com/hitoshi/mergington/internal/model"
)

// ストア操作のセンチネルエラー。
// ビジネスエラー（APIError）への変換はサービス層が行う。
var (
	// ErrActivityNotFound は指定された名前のアクティビティが存在しないことを示す。
	ErrActivityNotFound = errors.New("activity not found")
	// ErrDuplicateParticipant はemailが既に名簿に存在することを示す。
	ErrDuplicateParticipant = errors.New("participant already on roster")
	// ErrParticipantNotFound はemailが名簿に存在しないことを示す。
	ErrParticipantNotFound = errors.New("participant not on roster")
)

// MemoryStore はアクティビティ名をキーとするインメモリストア。
// すべての変更操作は単一のRWMutexで直列化する。カタログは9件程度と
// 小規模なため、アクティビティごとのロック分割は行わない。
// 重複・不在チェックと名簿の変更は同一クリティカルセクション内で実行され、
// 同時サインアップによる更新消失は発生しない。
type MemoryStore struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
	order      []string // 一覧表示用の挿入順序
}

// NewMemoryStore はbaselineのディープコピーで初期化したMemoryStoreを生成する。
func NewMemoryStore(baseline []model.Activity) *MemoryStore {
	s := &MemoryStore{}
	s.replace(baseline)
	return s
}

// FindByName は指定された名前のアクティビティのコピーを返す。
// 存在しない場合はnilを返す。名前は大文字小文字を区別する。
func (s *MemoryStore) FindByName(name string) *model.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activity, ok := s.activities[name]
	if !ok {
		return nil
	}
	clone := activity.Clone()
	return &clone
}

// ListAll は全アクティビティのコピーを挿入順で返す。
func (s *MemoryStore) ListAll() []model.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]model.Activity, 0, len(s.order))
	for _, name := range s.order {
		results = append(results, s.activities[name].Clone())
	}
	return results
}

// AddParticipant はemailをアクティビティの名簿に追加し、追加後の参加者数を返す。
// アクティビティが存在しない場合はErrActivityNotFound、
// emailが既に名簿にある場合はErrDuplicateParticipantを返し、名簿は変更しない。
func (s *MemoryStore) AddParticipant(name, email string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return 0, ErrActivityNotFound
	}
	if activity.HasParticipant(email) {
		return len(activity.Participants), ErrDuplicateParticipant
	}

	activity.Participants = append(activity.Participants, email)
	return len(activity.Participants), nil
}

// RemoveParticipant はemailをアクティビティの名簿から削除し、削除後の参加者数を返す。
// アクティビティが存在しない場合はErrActivityNotFound、
// emailが名簿にない場合はErrParticipantNotFoundを返し、名簿は変更しない。
func (s *MemoryStore) RemoveParticipant(name, email string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return 0, ErrActivityNotFound
	}

	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return len(activity.Participants), nil
		}
	}
	return len(activity.Participants), ErrParticipantNotFound
}

// Reset はストアの内容をbaselineのディープコピーで丸ごと置き換える。
// テストフィクスチャがケース間の状態分離に使用する。本番コードからは呼ばない。
func (s *MemoryStore) Reset(baseline []model.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replace(baseline)
}

// Len は現在のアクティビティ数を返す。
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// replace は内部状態をbaselineのディープコピーに差し替える。
// 呼び出し側でロックを保持していること。
func (s *MemoryStore) replace(baseline []model.Activity) {
	s.activities = make(map[string]*model.Activity, len(baseline))
	s.order = make([]string, 0, len(baseline))
	for i := range baseline {
		clone := baseline[i].Clone()
		if _, exists := s.activities[clone.Name]; exists {
			continue
		}
		s.activities[clone.Name] = &clone
		s.order = append(s.order, clone.Name)
	}
}
