// Package model はドメインモデルを定義する。
package model

// Activity は学校のアクティビティ（部活動・クラブ）を表す。
// Nameが一意キーであり、実行時に作成・削除されることはない。
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// Clone はActivityのディープコピーを返す。
// Participantsスライスを共有しないため、コピー側の変更が元に影響しない。
func (a *Activity) Clone() Activity {
	clone := *a
	clone.Participants = make([]string, len(a.Participants))
	copy(clone.Participants, a.Participants)
	return clone
}

// HasParticipant はemailが参加者名簿に含まれているかを返す。
// アクティビティ名と同様に大文字小文字を区別する。
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
