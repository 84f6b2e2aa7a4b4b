// Package catalog はアクティビティのベースラインカタログを提供する。
// カタログはプロセス起動時（およびテストフィクスチャ）にストアへ投入される
// 固定データであり、実行時にアクティビティが増減することはない。
package catalog

import "github.com/hitoshi/mergington/internal/model"

// baseline はMergington High Schoolの全アクティビティの初期状態。
// 並び順はそのまま一覧表示の順序になる。
var baseline = []model.Activity{
	{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	},
	{
		Name:            "Programming Class",
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
	},
	{
		Name:            "Gym Class",
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
		Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
	},
	{
		Name:            "Soccer Team",
		Description:     "Join the school soccer team and compete in matches",
		Schedule:        "Wednesdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 18,
		Participants:    []string{},
	},
	{
		Name:            "Basketball Club",
		Description:     "Practice basketball skills and play friendly games",
		Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 15,
		Participants:    []string{},
	},
	{
		Name:            "Art Workshop",
		Description:     "Explore painting, drawing, and sculpture techniques",
		Schedule:        "Mondays, 4:00 PM - 5:30 PM",
		MaxParticipants: 16,
		Participants:    []string{},
	},
	{
		Name:            "Drama Club",
		Description:     "Act, direct, and produce school plays and performances",
		Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 20,
		Participants:    []string{},
	},
	{
		Name:            "Math Olympiad",
		Description:     "Prepare for math competitions and solve challenging problems",
		Schedule:        "Fridays, 4:00 PM - 5:30 PM",
		MaxParticipants: 10,
		Participants:    []string{},
	},
	{
		Name:            "Science Club",
		Description:     "Conduct experiments and explore scientific concepts",
		Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 14,
		Participants:    []string{},
	},
}

// Baseline はベースラインカタログのディープコピーを返す。
// 呼び出しごとに独立したコピーを返すため、呼び出し側の変更が
// 他の呼び出し結果やカタログ本体に漏れることはない。
func Baseline() []model.Activity {
	activities := make([]model.Activity, len(baseline))
	for i := range baseline {
		activities[i] = baseline[i].Clone()
	}
	return activities
}
