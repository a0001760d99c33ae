// Package ledger tracks a learner's goals and unlocked achievements.
package ledger

import "time"

// GoalStatus is the lifecycle state of a goal. Goals are never deleted.
type GoalStatus string

const (
	StatusActive    GoalStatus = "active"
	StatusCompleted GoalStatus = "completed"
)

// Goal is a single learning goal. Progress lives on a 0–10 scale but is
// deliberately unclamped: callers may overwrite it with any value,
// including a lower one.
type Goal struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	CreatedDate   time.Time  `json:"created_date"`
	TargetDate    time.Time  `json:"target_date"`
	Progress      float64    `json:"progress"`
	Status        GoalStatus `json:"status"`
	Category      string     `json:"category"`
	LastUpdated   time.Time  `json:"last_updated,omitempty"`
	CompletedDate time.Time  `json:"completed_date,omitempty"`
}

// Achievement is one unlocked reward. The same catalog entry may be
// unlocked multiple times when its trigger recurs; deduplication is off
// unless explicitly enabled.
type Achievement struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Icon         string    `json:"icon"`
	Points       int       `json:"points"`
	UnlockedDate time.Time `json:"unlocked_date"`
}

// CatalogEntry is an achievement template.
type CatalogEntry struct {
	Points      int
	Icon        string
	Description string
}

// Catalog is the fixed achievement catalog.
var Catalog = map[string]CatalogEntry{
	"First Step":        {Points: 10, Icon: "🌱", Description: "Taking the first action"},
	"Momentum Builder":  {Points: 25, Icon: "🚀", Description: "Consistent progress for 3 days"},
	"Week Warrior":      {Points: 50, Icon: "⚡", Description: "One week of consistent effort"},
	"Goal Crusher":      {Points: 100, Icon: "🏆", Description: "Completing a major goal"},
	"Resilient Learner": {Points: 75, Icon: "💪", Description: "Bouncing back from setbacks"},
	"Habit Master":      {Points: 150, Icon: "🎯", Description: "30 days of consistent habits"},
}

// Action is a goal-management intent detected in learner text.
type Action string

const (
	ActionNone           Action = ""
	ActionSetGoal        Action = "set_goal"
	ActionUpdateProgress Action = "update_progress"
	ActionCompleteGoal   Action = "complete_goal"
	ActionNeedHelp       Action = "need_help"
	ActionChangeGoal     Action = "change_goal"
)

// goalHorizon is the fixed target-date offset applied at goal creation.
const goalHorizon = 30 * 24 * time.Hour

// maxTitleLen caps goal titles derived from free text.
const maxTitleLen = 100
