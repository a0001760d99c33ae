package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// actionGroup pairs an action with its trigger phrases. Declaration order
// is the tie-break: when a message matches several groups, the first
// declared wins.
var actionGroups = []struct {
	Action   Action
	Keywords []string
}{
	{ActionSetGoal, []string{"set a goal", "want to achieve", "goal is", "want to learn", "my goal"}},
	{ActionUpdateProgress, []string{"made progress", "completed", "finished", "done with", "update"}},
	{ActionCompleteGoal, []string{"achieved", "finished my goal", "completed my goal", "goal accomplished"}},
	{ActionNeedHelp, []string{"stuck on", "struggling with", "need help", "don't know how"}},
	{ActionChangeGoal, []string{"change my goal", "different goal", "new goal", "modify goal"}},
}

// DetectAction scans learner text for goal-management intents. It returns
// the primary (first-declared) action plus every action that matched.
// No match returns ActionNone and an empty slice.
func DetectAction(text string) (Action, []Action) {
	lower := strings.ToLower(text)

	var detected []Action
	for _, g := range actionGroups {
		for _, kw := range g.Keywords {
			if strings.Contains(lower, kw) {
				detected = append(detected, g.Action)
				break
			}
		}
	}

	if len(detected) == 0 {
		return ActionNone, nil
	}
	return detected[0], detected
}

// Ledger holds one learner's goals and achievements, mirrored from the
// store. All mutations persist before returning; a persistence error
// leaves the in-memory state already mutated but is reported so the
// caller can treat the request as failed.
type Ledger struct {
	studentID    string
	store        *Store
	goals        []Goal
	achievements []Achievement

	// dedupe suppresses duplicate unlocks of the same catalog entry.
	// Off by default: recurring triggers intentionally stack.
	dedupe bool

	now func() time.Time
}

// Open loads the learner's ledger from the store. A nil store keeps the
// ledger purely in memory.
func Open(store *Store, studentID string) (*Ledger, error) {
	if store == nil {
		return &Ledger{studentID: studentID, now: time.Now}, nil
	}
	goals, err := store.LoadGoals(studentID)
	if err != nil {
		return nil, fmt.Errorf("ledger: load goals: %w", err)
	}
	achievements, err := store.LoadAchievements(studentID)
	if err != nil {
		return nil, fmt.Errorf("ledger: load achievements: %w", err)
	}
	return &Ledger{
		studentID:    studentID,
		store:        store,
		goals:        goals,
		achievements: achievements,
		now:          time.Now,
	}, nil
}

// SetDedupeAchievements toggles suppression of repeat unlocks.
func (l *Ledger) SetDedupeAchievements(on bool) { l.dedupe = on }

// Goals returns a copy of the learner's goals in creation order.
func (l *Ledger) Goals() []Goal {
	out := make([]Goal, len(l.goals))
	copy(out, l.goals)
	return out
}

// Achievements returns a copy of the unlocked achievements in unlock order.
func (l *Ledger) Achievements() []Achievement {
	out := make([]Achievement, len(l.achievements))
	copy(out, l.achievements)
	return out
}

// CreateGoal derives a goal from free text and persists it. It always
// succeeds on any input; only the store write can fail. Titles longer
// than 100 characters are truncated to 97 plus an ellipsis marker.
func (l *Ledger) CreateGoal(text string) (Goal, error) {
	title := text
	if r := []rune(title); len(r) > maxTitleLen {
		title = string(r[:maxTitleLen-3]) + "..."
	}

	now := l.now()
	g := Goal{
		ID:          len(l.goals) + 1,
		Title:       title,
		Description: text,
		CreatedDate: now,
		TargetDate:  now.Add(goalHorizon),
		Progress:    0.0,
		Status:      StatusActive,
		Category:    "learning",
	}
	l.goals = append(l.goals, g)

	if err := l.persist(); err != nil {
		return g, err
	}
	return g, nil
}

// UpdateProgress overwrites the progress of the first goal whose title
// contains titleSub (case-insensitive). A miss is a silent no-op: the
// caller is never told, matching the conversational contract. The new
// value is not clamped and may be lower than the old one.
//
// Unlock rules: crossing 10.0 from below unlocks Goal Crusher; otherwise
// a jump of more than 2.0 unlocks Momentum Builder. At most one unlock
// per call, and repeated crossings unlock repeatedly.
func (l *Ledger) UpdateProgress(titleSub string, value float64) error {
	idx := l.findGoal(titleSub)
	if idx < 0 {
		return nil
	}

	g := &l.goals[idx]
	old := g.Progress
	g.Progress = value
	g.LastUpdated = l.now()

	if value >= 10.0 && old < 10.0 {
		l.unlock("Goal Crusher", fmt.Sprintf("Completed goal: %s", g.Title))
	} else if value > old+2.0 {
		l.unlock("Momentum Builder", "Making consistent progress")
	}

	return l.persist()
}

// CompleteGoal marks the first matching goal completed, forcing progress
// to 10.0. Goal Crusher is unlocked on every call that finds a goal, even
// an already-completed one — the duplicate is intentional unless
// deduplication is enabled. A miss is a silent no-op.
func (l *Ledger) CompleteGoal(titleSub string) error {
	idx := l.findGoal(titleSub)
	if idx < 0 {
		return nil
	}

	g := &l.goals[idx]
	g.Status = StatusCompleted
	g.Progress = 10.0
	g.CompletedDate = l.now()

	l.unlock("Goal Crusher", fmt.Sprintf("Completed: %s", g.Title))

	return l.persist()
}

// findGoal returns the index of the first goal whose title contains
// titleSub case-insensitively, or -1.
func (l *Ledger) findGoal(titleSub string) int {
	sub := strings.ToLower(titleSub)
	for i := range l.goals {
		if strings.Contains(strings.ToLower(l.goals[i].Title), sub) {
			return i
		}
	}
	return -1
}

// unlock records an achievement from the catalog. Unknown titles are
// ignored; sub-titles never reach here in practice.
func (l *Ledger) unlock(title, description string) {
	entry, ok := Catalog[title]
	if !ok {
		return
	}
	if l.dedupe {
		for _, a := range l.achievements {
			if a.Title == title {
				return
			}
		}
	}
	l.achievements = append(l.achievements, Achievement{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  description,
		Icon:         entry.Icon,
		Points:       entry.Points,
		UnlockedDate: l.now(),
	})
}

// persist rewrites the learner's full ledger in one transaction.
func (l *Ledger) persist() error {
	if l.store == nil {
		return nil
	}
	if err := l.store.Replace(l.studentID, l.goals, l.achievements); err != nil {
		return fmt.Errorf("ledger: persist: %w", err)
	}
	return nil
}
