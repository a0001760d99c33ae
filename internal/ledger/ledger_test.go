package ledger

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/studycoach/studycoach/internal/db"
)

func setupTestLedger(t *testing.T) *Ledger {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	l, err := Open(NewStore(database), "student-1")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return l
}

func TestDetectAction_None(t *testing.T) {
	primary, all := DetectAction("how does recursion work?")
	if primary != ActionNone {
		t.Errorf("primary = %q, want none", primary)
	}
	if len(all) != 0 {
		t.Errorf("all = %v, want empty", all)
	}
}

func TestDetectAction_SetGoal(t *testing.T) {
	primary, _ := DetectAction("I want to learn Go generics")
	if primary != ActionSetGoal {
		t.Errorf("primary = %q, want set_goal", primary)
	}
}

func TestDetectAction_FirstDeclaredGroupWins(t *testing.T) {
	// "completed my goal" matches both update_progress ("completed") and
	// complete_goal; update_progress is declared first and must win.
	primary, all := DetectAction("I completed my goal today")
	if primary != ActionUpdateProgress {
		t.Errorf("primary = %q, want update_progress", primary)
	}
	if len(all) != 2 {
		t.Errorf("all = %v, want both matched actions", all)
	}
}

func TestCreateGoal_Defaults(t *testing.T) {
	l := setupTestLedger(t)

	g, err := l.CreateGoal("I want to learn SQL joins")
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if g.ID != 1 {
		t.Errorf("id = %d, want 1", g.ID)
	}
	if g.Status != StatusActive {
		t.Errorf("status = %q, want active", g.Status)
	}
	if g.Progress != 0 {
		t.Errorf("progress = %v, want 0", g.Progress)
	}
	if got := g.TargetDate.Sub(g.CreatedDate); got != 30*24*time.Hour {
		t.Errorf("target horizon = %v, want 720h", got)
	}

	g2, _ := l.CreateGoal("second goal is reading")
	if g2.ID != 2 {
		t.Errorf("second id = %d, want 2", g2.ID)
	}
}

func TestCreateGoal_TruncatesLongTitle(t *testing.T) {
	l := setupTestLedger(t)

	text := strings.Repeat("x", 120)
	g, err := l.CreateGoal(text)
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if len(g.Title) != 100 {
		t.Errorf("title length = %d, want 100", len(g.Title))
	}
	if !strings.HasSuffix(g.Title, "...") {
		t.Errorf("title %q should end with ellipsis", g.Title)
	}
	if g.Title[:97] != text[:97] {
		t.Error("title prefix should be the first 97 chars of the request")
	}
	// Description keeps the full text.
	if g.Description != text {
		t.Error("description should be untruncated")
	}
}

func TestUpdateProgress_CrossingThresholdUnlocksGoalCrusher(t *testing.T) {
	l := setupTestLedger(t)
	l.CreateGoal("my goal is learning pointers")

	if err := l.UpdateProgress("pointers", 8.0); err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if n := countAchievements(l, "Goal Crusher"); n != 0 {
		t.Fatalf("Goal Crusher at 8.0: got %d, want 0", n)
	}

	if err := l.UpdateProgress("pointers", 10.0); err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if n := countAchievements(l, "Goal Crusher"); n != 1 {
		t.Errorf("Goal Crusher after crossing: got %d, want 1", n)
	}

	// Crossing again (after dropping below) unlocks again: the unlock is
	// per-crossing, not per-goal.
	l.UpdateProgress("pointers", 5.0)
	l.UpdateProgress("pointers", 10.0)
	if n := countAchievements(l, "Goal Crusher"); n != 2 {
		t.Errorf("Goal Crusher after second crossing: got %d, want 2", n)
	}
}

func TestUpdateProgress_MomentumBuilder(t *testing.T) {
	l := setupTestLedger(t)
	l.CreateGoal("my goal is calculus")

	// 0 → 2 is not a >2 jump.
	l.UpdateProgress("calculus", 2.0)
	if n := countAchievements(l, "Momentum Builder"); n != 0 {
		t.Fatalf("momentum at +2.0: got %d, want 0", n)
	}

	// 2 → 4.5 is.
	l.UpdateProgress("calculus", 4.5)
	if n := countAchievements(l, "Momentum Builder"); n != 1 {
		t.Errorf("momentum at +2.5: got %d, want 1", n)
	}
}

func TestUpdateProgress_RepeatJumpsStackAchievements(t *testing.T) {
	l := setupTestLedger(t)
	l.CreateGoal("my goal is algorithms")

	// Oscillating progress re-triggers the momentum unlock each jump.
	// Deliberate: the increment check is per-call, not deduplicated.
	l.UpdateProgress("algorithms", 5.0)
	l.UpdateProgress("algorithms", 1.0)
	l.UpdateProgress("algorithms", 5.0)
	if n := countAchievements(l, "Momentum Builder"); n != 2 {
		t.Errorf("momentum unlocks = %d, want 2", n)
	}
}

func TestUpdateProgress_AllowsDecrease(t *testing.T) {
	l := setupTestLedger(t)
	l.CreateGoal("my goal is testing")

	l.UpdateProgress("testing", 7.0)
	l.UpdateProgress("testing", 3.0)
	if got := l.Goals()[0].Progress; got != 3.0 {
		t.Errorf("progress = %v, want 3.0 (no clamp)", got)
	}
}

func TestUpdateProgress_UnknownTitleIsSilentNoop(t *testing.T) {
	l := setupTestLedger(t)
	l.CreateGoal("my goal is rust")

	if err := l.UpdateProgress("nonexistent", 5.0); err != nil {
		t.Fatalf("UpdateProgress miss: %v", err)
	}
	if got := l.Goals()[0].Progress; got != 0 {
		t.Errorf("progress = %v, want untouched 0", got)
	}
	if len(l.Achievements()) != 0 {
		t.Error("miss must not unlock achievements")
	}
}

func TestCompleteGoal_SetsTerminalFields(t *testing.T) {
	l := setupTestLedger(t)
	l.CreateGoal("my goal is networking")

	if err := l.CompleteGoal("networking"); err != nil {
		t.Fatalf("CompleteGoal: %v", err)
	}
	g := l.Goals()[0]
	if g.Status != StatusCompleted {
		t.Errorf("status = %q, want completed", g.Status)
	}
	if g.Progress != 10.0 {
		t.Errorf("progress = %v, want 10.0", g.Progress)
	}
	if g.CompletedDate.IsZero() {
		t.Error("completed date should be set")
	}
}

func TestCompleteGoal_RepeatUnlocksDuplicateAchievement(t *testing.T) {
	l := setupTestLedger(t)
	l.CreateGoal("my goal is docker")

	l.CompleteGoal("docker")
	l.CompleteGoal("docker")
	if n := countAchievements(l, "Goal Crusher"); n != 2 {
		t.Errorf("Goal Crusher unlocks = %d, want 2 (duplicates intentional)", n)
	}
}

func TestCompleteGoal_DedupeFlagSuppressesDuplicates(t *testing.T) {
	l := setupTestLedger(t)
	l.SetDedupeAchievements(true)
	l.CreateGoal("my goal is docker")

	l.CompleteGoal("docker")
	l.CompleteGoal("docker")
	if n := countAchievements(l, "Goal Crusher"); n != 1 {
		t.Errorf("Goal Crusher unlocks = %d, want 1 with dedupe on", n)
	}
}

func TestCompleteGoal_CaseInsensitiveSubstringLookup(t *testing.T) {
	l := setupTestLedger(t)
	l.CreateGoal("My Goal Is Learning GraphQL Schemas")

	l.CompleteGoal("graphql")
	if got := l.Goals()[0].Status; got != StatusCompleted {
		t.Errorf("status = %q, want completed via case-insensitive match", got)
	}
}

func TestLedger_RoundTripThroughStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	store := NewStore(database)

	l, err := Open(store, "student-1")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	l.CreateGoal("my goal is compilers")
	l.UpdateProgress("compilers", 6.5)
	l.CompleteGoal("compilers")

	// A fresh ledger over the same store sees identical state.
	l2, err := Open(store, "student-1")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	goals := l2.Goals()
	if len(goals) != 1 {
		t.Fatalf("reloaded goals = %d, want 1", len(goals))
	}
	g := goals[0]
	if g.Title != "my goal is compilers" || g.Progress != 10.0 || g.Status != StatusCompleted {
		t.Errorf("reloaded goal = %+v", g)
	}
	achievements := l2.Achievements()
	if len(achievements) != 2 { // momentum (0→6.5) + crusher (complete)
		t.Fatalf("reloaded achievements = %d, want 2", len(achievements))
	}

	// Other learners see nothing.
	l3, _ := Open(store, "student-2")
	if len(l3.Goals()) != 0 || len(l3.Achievements()) != 0 {
		t.Error("ledger leaked across student ids")
	}
}

func TestReport(t *testing.T) {
	l := setupTestLedger(t)
	l.CreateGoal("my goal is sorting")
	l.CreateGoal("my goal is graphs")
	l.CompleteGoal("sorting")

	r := l.Report()
	if r.TotalGoals != 2 || len(r.ActiveGoals) != 1 || len(r.CompletedGoals) != 1 {
		t.Errorf("report counts = %d/%d/%d", r.TotalGoals, len(r.ActiveGoals), len(r.CompletedGoals))
	}
	if r.TotalPoints != Catalog["Goal Crusher"].Points {
		t.Errorf("points = %d, want %d", r.TotalPoints, Catalog["Goal Crusher"].Points)
	}
	if len(r.NextSteps) == 0 {
		t.Error("expected next steps for the untracked active goal")
	}
}

func TestReport_EmptyLedger(t *testing.T) {
	l := setupTestLedger(t)
	r := l.Report()
	if len(r.MotivationInsights) != 1 {
		t.Errorf("insights = %v", r.MotivationInsights)
	}
	if len(r.NextSteps) == 0 {
		t.Error("empty ledger should suggest setting a goal")
	}
}

func TestNewSMARTGoal(t *testing.T) {
	sg := NewSMARTGoal("Go generics", 14)

	if sg.OriginalDescription != "Go generics" {
		t.Errorf("description = %q", sg.OriginalDescription)
	}
	if sg.Specific != "Learn Go generics" {
		t.Errorf("specific = %q", sg.Specific)
	}
	if !strings.Contains(sg.TimeBound, "14 days") {
		t.Errorf("time-bound = %q, want the timeline embedded", sg.TimeBound)
	}
	if len(sg.ActionSteps) != 5 {
		t.Errorf("action steps = %d, want 5", len(sg.ActionSteps))
	}
	if len(sg.SuccessMetrics) != 4 {
		t.Errorf("success metrics = %d, want 4", len(sg.SuccessMetrics))
	}
}

func TestLoadAchievements_KeepsOrderAcrossTrimmedFractions(t *testing.T) {
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	store := NewStore(database)

	// 500ms serializes as ".5", 520ms as ".52"; as text ".5" sorts after
	// ".52", so unlock order must not depend on the timestamp column.
	base := time.Date(2026, 3, 1, 14, 0, 5, 500*int(time.Millisecond), time.UTC)
	achievements := []Achievement{
		{ID: "a1", Title: "Momentum Builder", Points: 25, UnlockedDate: base},
		{ID: "a2", Title: "Goal Crusher", Points: 100, UnlockedDate: base.Add(20 * time.Millisecond)},
	}
	if err := store.Replace("student-1", nil, achievements); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	got, err := store.LoadAchievements("student-1")
	if err != nil {
		t.Fatalf("LoadAchievements: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("reloaded achievements = %d, want 2", len(got))
	}
	if got[0].Title != "Momentum Builder" || got[1].Title != "Goal Crusher" {
		t.Errorf("reload reordered achievements: %q, %q", got[0].Title, got[1].Title)
	}
}

func countAchievements(l *Ledger, title string) int {
	n := 0
	for _, a := range l.Achievements() {
		if a.Title == title {
			n++
		}
	}
	return n
}
