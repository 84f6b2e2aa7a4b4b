package signup

import (
	"context"
	"errors"
	"testing"

	"github.com/hitoshi/mergington/internal/catalog"
	"github.com/hitoshi/mergington/internal/model"
	"github.com/hitoshi/mergington/internal/store"
)

// mockMetricsRecorder はMetricsRecorderのモック実装。
// 記録された理由を後から検証できるように保持する。
type mockMetricsRecorder struct {
	signupSuccesses      int
	signupRejections     []string
	unregisterSuccesses  int
	unregisterRejections []string
}

func (m *mockMetricsRecorder) RecordSignupSuccess()  { m.signupSuccesses++ }
func (m *mockMetricsRecorder) RecordSignupRejected(reason string) {
	m.signupRejections = append(m.signupRejections, reason)
}
func (m *mockMetricsRecorder) RecordUnregisterSuccess() { m.unregisterSuccesses++ }
func (m *mockMetricsRecorder) RecordUnregisterRejected(reason string) {
	m.unregisterRejections = append(m.unregisterRejections, reason)
}

// newTestService は各テストケース用にベースラインカタログで初期化した
// サービスとストア・メトリクスモックを返す。
func newTestService(t *testing.T) (*Service, *store.MemoryStore, *mockMetricsRecorder) {
	t.Helper()
	s := store.NewMemoryStore(catalog.Baseline())
	m := &mockMetricsRecorder{}
	return NewService(s, m), s, m
}

func TestListActivities_ReturnsBaseline(t *testing.T) {
	svc, _, _ := newTestService(t)

	activities := svc.ListActivities(context.Background())
	if len(activities) != 9 {
		t.Fatalf("length = %d, want 9", len(activities))
	}
	if activities[0].Name != "Chess Club" {
		t.Errorf("activities[0].Name = %q, want %q", activities[0].Name, "Chess Club")
	}
}

func TestSignup_Success(t *testing.T) {
	svc, s, m := newTestService(t)

	count, err := svc.Signup(context.Background(), "Soccer Team", "newstudent@mergington.edu")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if !s.FindByName("Soccer Team").HasParticipant("newstudent@mergington.edu") {
		t.Error("participant should be on the roster")
	}
	if m.signupSuccesses != 1 {
		t.Errorf("signupSuccesses = %d, want 1", m.signupSuccesses)
	}
}

func TestSignup_ActivityNotFound(t *testing.T) {
	svc, _, m := newTestService(t)

	_, err := svc.Signup(context.Background(), "Nonexistent Activity", "student@mergington.edu")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != model.ErrCodeActivityNotFound {
		t.Errorf("Code = %q, want %q", apiErr.Code, model.ErrCodeActivityNotFound)
	}
	if len(m.signupRejections) != 1 || m.signupRejections[0] != "activity_not_found" {
		t.Errorf("signupRejections = %v", m.signupRejections)
	}
}

// TestSignup_Duplicate は重複サインアップが明示的に拒否され、名簿が変化しないことを検証する。
// 冪等な成功扱いにはしない。
func TestSignup_Duplicate(t *testing.T) {
	svc, s, m := newTestService(t)

	if _, err := svc.Signup(context.Background(), "Basketball Club", "duplicate@mergington.edu"); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	_, err := svc.Signup(context.Background(), "Basketball Club", "duplicate@mergington.edu")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != model.ErrCodeAlreadyRegistered {
		t.Errorf("Code = %q, want %q", apiErr.Code, model.ErrCodeAlreadyRegistered)
	}

	roster := s.FindByName("Basketball Club").Participants
	if len(roster) != 1 {
		t.Errorf("roster = %v, duplicate changed the roster", roster)
	}
	if len(m.signupRejections) != 1 || m.signupRejections[0] != "already_registered" {
		t.Errorf("signupRejections = %v", m.signupRejections)
	}
}

// TestSignup_AppearsExactlyOnce はサインアップ後にemailが名簿にちょうど1回現れることを検証する。
func TestSignup_AppearsExactlyOnce(t *testing.T) {
	svc, s, _ := newTestService(t)

	if _, err := svc.Signup(context.Background(), "Chess Club", "bob@mergington.edu"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	occurrences := 0
	for _, p := range s.FindByName("Chess Club").Participants {
		if p == "bob@mergington.edu" {
			occurrences++
		}
	}
	if occurrences != 1 {
		t.Errorf("occurrences = %d, want 1", occurrences)
	}
}

func TestSignup_EmptyEmail(t *testing.T) {
	svc, _, m := newTestService(t)

	for _, email := range []string{"", "   "} {
		_, err := svc.Signup(context.Background(), "Soccer Team", email)

		var apiErr *model.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("email %q: expected APIError, got %v", email, err)
		}
		if apiErr.Code != model.ErrCodeMissingEmail {
			t.Errorf("email %q: Code = %q, want %q", email, apiErr.Code, model.ErrCodeMissingEmail)
		}
	}
	if len(m.signupRejections) != 2 {
		t.Errorf("signupRejections = %v", m.signupRejections)
	}
}

func TestSignup_EmptyActivityName(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Signup(context.Background(), "", "student@mergington.edu")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != model.ErrCodeMissingActivity {
		t.Errorf("Code = %q, want %q", apiErr.Code, model.ErrCodeMissingActivity)
	}
}

// TestSignup_CaseSensitiveActivityName はアクティビティ名の大文字小文字が区別されることを検証する。
func TestSignup_CaseSensitiveActivityName(t *testing.T) {
	svc, _, _ := newTestService(t)

	for _, name := range []string{"chess club", "CHESS CLUB"} {
		_, err := svc.Signup(context.Background(), name, "test@mergington.edu")

		var apiErr *model.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("name %q: expected APIError, got %v", name, err)
		}
		if apiErr.Code != model.ErrCodeActivityNotFound {
			t.Errorf("name %q: Code = %q, want %q", name, apiErr.Code, model.ErrCodeActivityNotFound)
		}
	}
}

// TestSignup_MultipleActivities は同一emailが複数アクティビティに登録できることを検証する。
// 一意性制約はアクティビティ内のみで、全体には及ばない。
func TestSignup_MultipleActivities(t *testing.T) {
	svc, s, _ := newTestService(t)

	for _, name := range []string{"Soccer Team", "Math Olympiad", "Science Club"} {
		if _, err := svc.Signup(context.Background(), name, "multi@mergington.edu"); err != nil {
			t.Fatalf("signup for %s failed: %v", name, err)
		}
	}

	for _, name := range []string{"Soccer Team", "Math Olympiad", "Science Club"} {
		if !s.FindByName(name).HasParticipant("multi@mergington.edu") {
			t.Errorf("multi@mergington.edu should be on %s roster", name)
		}
	}
}

// TestSignup_NoCapacityEnforcement は定員超過のサインアップが許可されることを検証する。
// max_participantsは表示用メタデータであり、上限としては強制しない。
func TestSignup_NoCapacityEnforcement(t *testing.T) {
	svc, s, _ := newTestService(t)

	// Math Olympiadの定員は10。11人登録しても全て成功する。
	max := s.FindByName("Math Olympiad").MaxParticipants
	for i := 0; i <= max; i++ {
		email := "student" + string(rune('a'+i)) + "@mergington.edu"
		if _, err := svc.Signup(context.Background(), "Math Olympiad", email); err != nil {
			t.Fatalf("signup %d failed: %v", i, err)
		}
	}

	roster := s.FindByName("Math Olympiad").Participants
	if len(roster) != max+1 {
		t.Errorf("roster length = %d, want %d", len(roster), max+1)
	}
}

func TestUnregister_Success(t *testing.T) {
	svc, s, m := newTestService(t)

	count, err := svc.Unregister(context.Background(), "Chess Club", "michael@mergington.edu")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if s.FindByName("Chess Club").HasParticipant("michael@mergington.edu") {
		t.Error("participant should be removed from the roster")
	}
	if m.unregisterSuccesses != 1 {
		t.Errorf("unregisterSuccesses = %d, want 1", m.unregisterSuccesses)
	}
}

func TestUnregister_ActivityNotFound(t *testing.T) {
	svc, _, m := newTestService(t)

	_, err := svc.Unregister(context.Background(), "Nonexistent Activity", "student@mergington.edu")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != model.ErrCodeActivityNotFound {
		t.Errorf("Code = %q, want %q", apiErr.Code, model.ErrCodeActivityNotFound)
	}
	if len(m.unregisterRejections) != 1 || m.unregisterRejections[0] != "activity_not_found" {
		t.Errorf("unregisterRejections = %v", m.unregisterRejections)
	}
}

// TestUnregister_NotRegistered は名簿にないemailの登録解除が拒否され、名簿が変化しないことを検証する。
func TestUnregister_NotRegistered(t *testing.T) {
	svc, s, m := newTestService(t)

	_, err := svc.Unregister(context.Background(), "Soccer Team", "notsignedup@mergington.edu")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != model.ErrCodeNotRegistered {
		t.Errorf("Code = %q, want %q", apiErr.Code, model.ErrCodeNotRegistered)
	}
	if len(s.FindByName("Soccer Team").Participants) != 0 {
		t.Error("failed unregister changed the roster")
	}
	if len(m.unregisterRejections) != 1 || m.unregisterRejections[0] != "not_registered" {
		t.Errorf("unregisterRejections = %v", m.unregisterRejections)
	}
}

func TestUnregister_EmptyEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Unregister(context.Background(), "Soccer Team", "")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != model.ErrCodeMissingEmail {
		t.Errorf("Code = %q, want %q", apiErr.Code, model.ErrCodeMissingEmail)
	}
}

// TestSignupThenUnregister_RoundTrip はサインアップ→登録解除で名簿が元の状態に戻ることを検証する。
func TestSignupThenUnregister_RoundTrip(t *testing.T) {
	svc, s, _ := newTestService(t)

	before := len(s.FindByName("Art Workshop").Participants)

	if _, err := svc.Signup(context.Background(), "Art Workshop", "workflow@mergington.edu"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	after := len(s.FindByName("Art Workshop").Participants)
	if after != before+1 {
		t.Errorf("roster length after signup = %d, want %d", after, before+1)
	}

	if _, err := svc.Unregister(context.Background(), "Art Workshop", "workflow@mergington.edu"); err != nil {
		t.Fatalf("unregister failed: %v", err)
	}
	final := s.FindByName("Art Workshop").Participants
	if len(final) != before {
		t.Errorf("roster length after round trip = %d, want %d", len(final), before)
	}
	for _, p := range final {
		if p == "workflow@mergington.edu" {
			t.Error("workflow@mergington.edu should be absent after round trip")
		}
	}
}

// TestService_NilMetrics はメトリクスなしでもサービスが動作することを検証する。
func TestService_NilMetrics(t *testing.T) {
	s := store.NewMemoryStore(catalog.Baseline())
	svc := NewService(s, nil)

	if _, err := svc.Signup(context.Background(), "Soccer Team", "a@mergington.edu"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if _, err := svc.Unregister(context.Background(), "Soccer Team", "a@mergington.edu"); err != nil {
		t.Fatalf("unregister failed: %v", err)
	}
	if _, err := svc.Signup(context.Background(), "Nope", "a@mergington.edu"); err == nil {
		t.Fatal("expected error for unknown activity")
	}
}
