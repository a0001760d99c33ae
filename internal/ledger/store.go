package ledger

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/studycoach/studycoach/internal/db"
)

// Store persists ledgers in SQLite, keyed by student id. Writes use the
// replace-all-records contract: each mutation rewrites the learner's rows
// inside a single transaction, so readers never observe a partial ledger.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given DB.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// LoadGoals returns the learner's goals in creation (id) order.
func (s *Store) LoadGoals(studentID string) ([]Goal, error) {
	rows, err := s.db.Conn().Query(`
		SELECT goal_id, title, COALESCE(description,''), created_date, target_date,
		       progress, status, category,
		       COALESCE(last_updated,''), COALESCE(completed_date,'')
		FROM goals WHERE student_id = ? ORDER BY goal_id`, studentID)
	if err != nil {
		return nil, fmt.Errorf("store: load goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var goals []Goal
	for rows.Next() {
		var g Goal
		var created, target, updated, completed string
		var status string
		if err := rows.Scan(&g.ID, &g.Title, &g.Description, &created, &target,
			&g.Progress, &status, &g.Category, &updated, &completed); err != nil {
			return nil, err
		}
		g.Status = GoalStatus(status)
		g.CreatedDate = parseTime(created)
		g.TargetDate = parseTime(target)
		if updated != "" {
			g.LastUpdated = parseTime(updated)
		}
		if completed != "" {
			g.CompletedDate = parseTime(completed)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// LoadAchievements returns the learner's achievements in unlock order.
// Replace writes rows in slice order, so rowid preserves it; sorting on
// the unlocked_date text would not, since RFC3339Nano trims trailing
// fractional zeros.
func (s *Store) LoadAchievements(studentID string) ([]Achievement, error) {
	rows, err := s.db.Conn().Query(`
		SELECT id, title, COALESCE(description,''), COALESCE(icon,''), points, unlocked_date
		FROM achievements WHERE student_id = ? ORDER BY rowid`, studentID)
	if err != nil {
		return nil, fmt.Errorf("store: load achievements: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Achievement
	for rows.Next() {
		var a Achievement
		var unlocked string
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Icon, &a.Points, &unlocked); err != nil {
			return nil, err
		}
		a.UnlockedDate = parseTime(unlocked)
		out = append(out, a)
	}
	return out, rows.Err()
}

// Replace rewrites all goal and achievement rows for the learner.
func (s *Store) Replace(studentID string, goals []Goal, achievements []Achievement) error {
	tx, err := s.db.Conn().Begin()
	if err != nil {
		return fmt.Errorf("store: begin replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM goals WHERE student_id = ?`, studentID); err != nil {
		return fmt.Errorf("store: clear goals: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM achievements WHERE student_id = ?`, studentID); err != nil {
		return fmt.Errorf("store: clear achievements: %w", err)
	}

	for _, g := range goals {
		if err := insertGoal(tx, studentID, g); err != nil {
			return fmt.Errorf("store: insert goal %d: %w", g.ID, err)
		}
	}
	for _, a := range achievements {
		if _, err := tx.Exec(`
			INSERT INTO achievements (id, student_id, title, description, icon, points, unlocked_date)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			a.ID, studentID, a.Title, a.Description, a.Icon, a.Points, formatTime(a.UnlockedDate),
		); err != nil {
			return fmt.Errorf("store: insert achievement %q: %w", a.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit replace: %w", err)
	}
	return nil
}

func insertGoal(tx *sql.Tx, studentID string, g Goal) error {
	var updated, completed any
	if !g.LastUpdated.IsZero() {
		updated = formatTime(g.LastUpdated)
	}
	if !g.CompletedDate.IsZero() {
		completed = formatTime(g.CompletedDate)
	}
	_, err := tx.Exec(`
		INSERT INTO goals (student_id, goal_id, title, description, created_date, target_date,
		                   progress, status, category, last_updated, completed_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		studentID, g.ID, g.Title, g.Description,
		formatTime(g.CreatedDate), formatTime(g.TargetDate),
		g.Progress, string(g.Status), g.Category, updated, completed,
	)
	return err
}

// formatTime stores timestamps in a single canonical layout.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime tries multiple SQLite timestamp layouts. The driver may hand
// back RFC3339 or the plain "2006-01-02 15:04:05" form depending on how
// the value was written.
func parseTime(s string) time.Time {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
