package memory

import (
	"fmt"
	"math"

	"github.com/studycoach/studycoach/internal/classify"
)

// TopicInsights summarises the learner's history on one exact topic.
type TopicInsights struct {
	Topic                string           `json:"topic"`
	TotalSessions        int              `json:"total_sessions"`
	AverageUnderstanding float64          `json:"average_understanding"`
	Trend                string           `json:"improvement_trend"`
	RecentEmotions       []classify.State `json:"recent_emotions"`
	NeedsSupport         bool             `json:"needs_emotional_support"`
	DifficultyScore      int              `json:"difficulty_score"`
	Recommendations      []string         `json:"recommendations"`
}

// OverallInsights summarises the whole history across topics.
type OverallInsights struct {
	TotalTopics      int      `json:"total_topics_studied"`
	TotalSessions    int      `json:"total_sessions"`
	StrugglingTopics []string `json:"struggling_topics"`
	StrongTopics     []string `json:"strong_topics"`
	OverallTrend     string   `json:"overall_trend"`
}

// TopicInsights computes analytics for one topic. ok is false when the
// topic has no recorded sessions.
func (m *Memory) TopicInsights(topic string) (TopicInsights, bool) {
	var sessions []Record
	for _, r := range m.records {
		if r.Topic == topic {
			sessions = append(sessions, r)
		}
	}
	if len(sessions) == 0 {
		return TopicInsights{}, false
	}

	sum := 0.0
	for _, r := range sessions {
		sum += r.UnderstandingLevel
	}
	avg := round1(sum / float64(len(sessions)))

	trend := "stable"
	if len(sessions) > 1 && sessions[len(sessions)-1].UnderstandingLevel > sessions[0].UnderstandingLevel {
		trend = "improving"
	}

	recent := sessions
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	emotions := make([]classify.State, 0, 3)
	needsSupport := false
	for _, r := range recent {
		emotions = append(emotions, r.Emotion.Primary)
		if r.Emotion.Primary == classify.StateFrustrated || r.Emotion.Primary == classify.StateDiscouraged {
			needsSupport = true
		}
	}

	return TopicInsights{
		Topic:                topic,
		TotalSessions:        len(sessions),
		AverageUnderstanding: avg,
		Trend:                trend,
		RecentEmotions:       emotions,
		NeedsSupport:         needsSupport,
		DifficultyScore:      m.difficultyScore(topic),
		Recommendations:      recommendations(topic, avg, emotions),
	}, true
}

// OverallInsights reports cross-topic progress. A topic is struggling
// once it has accumulated more than two difficult sessions.
func (m *Memory) OverallInsights() OverallInsights {
	topics := m.topics()
	var struggling, strong []string
	for _, topic := range topics {
		if m.difficultyScore(topic) > 2 {
			struggling = append(struggling, topic)
		} else {
			strong = append(strong, topic)
		}
	}

	trend := "starting"
	if len(m.records) > 5 {
		trend = "progressing"
	}

	return OverallInsights{
		TotalTopics:      len(topics),
		TotalSessions:    len(m.records),
		StrugglingTopics: struggling,
		StrongTopics:     strong,
		OverallTrend:     trend,
	}
}

// difficultyScore counts the topic's difficult sessions: low reported
// understanding, or a message whose wording signals struggle.
func (m *Memory) difficultyScore(topic string) int {
	score := 0
	for _, r := range m.records {
		if r.Topic != topic {
			continue
		}
		if r.UnderstandingLevel < 5 || classify.LearningIndicators.Scan(r.UserMessage) == "struggling" {
			score++
		}
	}
	return score
}

func recommendations(topic string, avg float64, recent []classify.State) []string {
	var recs []string

	if avg < 5 {
		recs = append(recs,
			fmt.Sprintf("Consider breaking down %s into smaller, more manageable concepts", topic),
			"Try different learning resources or approaches")
	}

	for _, e := range recent {
		if e == classify.StateFrustrated {
			recs = append(recs,
				"Take a short break and come back with fresh perspective",
				"Ask for help from a peer or instructor")
			break
		}
	}

	if avg > 7 {
		recs = append(recs,
			fmt.Sprintf("Great progress on %s! Consider exploring advanced applications", topic),
			"Help others with this topic to reinforce your understanding")
	}

	return recs
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
