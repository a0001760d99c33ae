package memory

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/studycoach/studycoach/internal/classify"
	"github.com/studycoach/studycoach/internal/db"
)

// Store persists conversation records in the conversations table. The
// emotion analysis is kept as a JSON blob; nothing queries inside it.
type Store struct {
	db *db.DB
}

func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Append inserts one record.
func (s *Store) Append(r Record) error {
	emotion, err := json.Marshal(r.Emotion)
	if err != nil {
		return fmt.Errorf("store: encode emotion: %w", err)
	}

	_, err = s.db.Conn().Exec(`
		INSERT INTO conversations
			(id, student_id, agent_type, topic, user_message, agent_response, emotion, understanding_level, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.StudentID, r.AgentType, r.Topic, r.UserMessage, r.AgentResponse,
		string(emotion), r.UnderstandingLevel, formatTime(r.Timestamp),
	)
	if err != nil {
		return fmt.Errorf("store: insert conversation: %w", err)
	}
	return nil
}

// ListByStudent returns the learner's full history, oldest first.
// Ordering uses rowid, not created_at: RFC3339Nano trims trailing
// fractional zeros, so timestamp text does not sort chronologically
// within a second. Rowid is insertion order, which is what Append wrote.
func (s *Store) ListByStudent(studentID string) ([]Record, error) {
	rows, err := s.db.Conn().Query(`
		SELECT id, agent_type, topic, user_message, agent_response, emotion, understanding_level, created_at
		FROM conversations
		WHERE student_id = ?
		ORDER BY rowid`,
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("store: list conversations: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			r         Record
			emotion   string
			createdAt string
		)
		if err := rows.Scan(&r.ID, &r.AgentType, &r.Topic, &r.UserMessage,
			&r.AgentResponse, &emotion, &r.UnderstandingLevel, &createdAt); err != nil {
			return nil, fmt.Errorf("store: scan conversation: %w", err)
		}
		r.StudentID = studentID
		r.Timestamp = parseTime(createdAt)
		if emotion != "" {
			if err := json.Unmarshal([]byte(emotion), &r.Emotion); err != nil {
				// Unreadable analysis degrades to neutral rather than
				// discarding the turn.
				r.Emotion = classify.Result{Primary: classify.StateNeutral}
			}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list conversations: %w", err)
	}
	return records, nil
}

// CountByStudent returns the number of stored turns without loading
// them.
func (s *Store) CountByStudent(studentID string) (int, error) {
	var n int
	err := s.db.Conn().QueryRow(
		`SELECT COUNT(*) FROM conversations WHERE student_id = ?`, studentID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("store: count conversations: %w", err)
	}
	return n, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime handles the formats sqlite may hand back.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z07:00",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
