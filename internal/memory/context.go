package memory

import (
	"sort"
	"time"

	"github.com/studycoach/studycoach/internal/classify"
)

// Only this many of the newest records compete for relevance. Older
// history still counts toward totals and the profile, but not toward
// prompt context.
const contextWindow = 20

// Context is the retrieval result handed to an agent for prompt
// building.
type Context struct {
	Relevant           []Record         `json:"relevant_conversations"`
	RecentEmotions     []classify.State `json:"recent_emotional_trend"`
	TotalConversations int              `json:"total_conversations"`
	TopicsDiscussed    []string         `json:"topics_discussed"`
	NeedsEncouragement bool             `json:"needs_encouragement"`
}

// Context ranks the last records by relevance to topic and agentType
// and returns at most limit of them, best first. Relevance is a small
// additive score: topic overlap counts most, then agent match, then
// recency. Records scoring zero are dropped entirely. Ties keep
// chronological order.
func (m *Memory) Context(topic, agentType string, limit int) Context {
	now := m.now()

	type scored struct {
		r     Record
		score int
	}
	var candidates []scored
	for _, r := range m.lastN(contextWindow) {
		score := 0
		if topicsOverlap(topic, r.Topic) {
			score += 3
		}
		if agentType != "" && r.AgentType == agentType {
			score += 2
		}
		switch age := now.Sub(r.Timestamp); {
		case age < 24*time.Hour:
			score += 2
		case age < 7*24*time.Hour:
			score += 1
		}
		if score > 0 {
			candidates = append(candidates, scored{r, score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	relevant := make([]Record, len(candidates))
	for i, c := range candidates {
		relevant[i] = c.r
	}

	trend := make([]classify.State, 0, 5)
	for _, r := range m.lastN(5) {
		trend = append(trend, r.Emotion.Primary)
	}

	return Context{
		Relevant:           relevant,
		RecentEmotions:     trend,
		TotalConversations: len(m.records),
		TopicsDiscussed:    m.topics(),
		NeedsEncouragement: needsEncouragement(trend),
	}
}

// needsEncouragement looks at the last three emotions in the trend,
// checking each against the tutor vocabulary's encouragement set.
func needsEncouragement(trend []classify.State) bool {
	start := 0
	if len(trend) > 3 {
		start = len(trend) - 3
	}
	for _, e := range trend[start:] {
		if classify.TutorVocabulary.NeedsEncouragement(e) {
			return true
		}
	}
	return false
}
