// Package memory persists conversation history and derives learning
// analytics from it: relevance-ranked context for prompts, per-topic
// insights, and a longer-horizon learner profile.
package memory

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studycoach/studycoach/internal/classify"
)

// Record is one stored conversation turn.
type Record struct {
	ID                 string          `json:"id"`
	StudentID          string          `json:"student_id"`
	Timestamp          time.Time       `json:"timestamp"`
	AgentType          string          `json:"agent_type"`
	Topic              string          `json:"topic"`
	UserMessage        string          `json:"user_message"`
	AgentResponse      string          `json:"agent_response"`
	Emotion            classify.Result `json:"emotion_analysis"`
	UnderstandingLevel float64         `json:"understanding_level"`
}

// Memory is one learner's conversation history. Records are held in
// memory in chronological order and appended to the store as they
// arrive.
type Memory struct {
	studentID string
	store     *Store
	records   []Record

	now func() time.Time
}

// Open loads the learner's history from the store.
func Open(store *Store, studentID string) (*Memory, error) {
	m := &Memory{
		studentID: studentID,
		store:     store,
		now:       time.Now,
	}
	if store != nil {
		records, err := store.ListByStudent(studentID)
		if err != nil {
			return nil, fmt.Errorf("memory: load history: %w", err)
		}
		m.records = records
	}
	return m, nil
}

// Append stores one conversation turn. The record is kept even when the
// store write fails; the error is returned so the caller can log it.
func (m *Memory) Append(agentType, topic, userMessage, agentResponse string, emotion classify.Result, understanding float64) (Record, error) {
	r := Record{
		ID:                 uuid.NewString(),
		StudentID:          m.studentID,
		Timestamp:          m.now(),
		AgentType:          agentType,
		Topic:              topic,
		UserMessage:        userMessage,
		AgentResponse:      agentResponse,
		Emotion:            emotion,
		UnderstandingLevel: understanding,
	}
	m.records = append(m.records, r)

	if m.store == nil {
		return r, nil
	}
	if err := m.store.Append(r); err != nil {
		return r, fmt.Errorf("memory: append: %w", err)
	}
	return r, nil
}

// Records returns the full history, oldest first.
func (m *Memory) Records() []Record {
	out := make([]Record, len(m.records))
	copy(out, m.records)
	return out
}

// Len reports the number of stored turns.
func (m *Memory) Len() int { return len(m.records) }

// lastN returns up to n most recent records, oldest first.
func (m *Memory) lastN(n int) []Record {
	if len(m.records) <= n {
		return m.records
	}
	return m.records[len(m.records)-n:]
}

// topics returns the distinct topics discussed, in first-seen order.
func (m *Memory) topics() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range m.records {
		if !seen[r.Topic] {
			seen[r.Topic] = true
			out = append(out, r.Topic)
		}
	}
	return out
}

// topicsOverlap reports whether either topic contains the other,
// case-insensitively. "algebra" is relevant to "linear algebra" and
// vice versa.
func topicsOverlap(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}
