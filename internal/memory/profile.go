package memory

import (
	"fmt"
	"strings"

	"github.com/studycoach/studycoach/internal/classify"
)

// Profile is the long-horizon picture of a learner.
type Profile struct {
	StudentID            string                  `json:"student_id"`
	TotalConversations   int                     `json:"total_conversations"`
	TopicsStudied        []string                `json:"topics_studied"`
	AverageUnderstanding float64                 `json:"average_understanding"`
	EmotionDistribution  map[classify.State]int  `json:"emotion_distribution"`
	LearningStyle        string                  `json:"preferred_learning_style"`
	StudyPatterns        StudyPatterns           `json:"study_patterns"`
	RecentActivity       []Record                `json:"recent_activity"`
}

// StudyPatterns describes when and how often the learner shows up.
type StudyPatterns struct {
	Known              bool    `json:"-"`
	PreferredStudyTime string  `json:"preferred_study_time"`
	AverageGapHours    float64 `json:"average_session_gap_hours"`
	Frequency          string  `json:"study_frequency"`
	TotalStudyDays     int     `json:"total_study_days"`
}

// Profile builds the learner profile from the full history. With no
// history it returns a near-empty profile the caller can present as a
// new learner.
func (m *Memory) Profile() Profile {
	p := Profile{
		StudentID:     m.studentID,
		LearningStyle: "unknown",
	}
	if len(m.records) == 0 {
		return p
	}

	p.TotalConversations = len(m.records)
	p.TopicsStudied = m.topics()
	p.RecentActivity = m.lastN(5)

	sum := 0.0
	p.EmotionDistribution = make(map[classify.State]int)
	for _, r := range m.records {
		sum += r.UnderstandingLevel
		p.EmotionDistribution[r.Emotion.Primary]++
	}
	p.AverageUnderstanding = round1(sum / float64(len(m.records)))

	p.LearningStyle = m.learningStyle()
	p.StudyPatterns = m.studyPatterns()
	return p
}

// learningStyle infers how the learner likes to be taught from what
// they ask for. Crude word counting, but it only ever steers phrasing.
func (m *Memory) learningStyle() string {
	if len(m.records) < 3 {
		return "unknown"
	}

	explain, example, practice := 0, 0, 0
	for _, r := range m.records {
		msg := strings.ToLower(r.UserMessage)
		if strings.Contains(msg, "explain") {
			explain++
		}
		if strings.Contains(msg, "example") {
			example++
		}
		if strings.Contains(msg, "practice") {
			practice++
		}
	}

	switch {
	case example > explain && example > practice:
		return "visual_learner"
	case practice > explain:
		return "kinesthetic_learner"
	default:
		return "auditory_learner"
	}
}

// studyPatterns needs at least five turns to say anything.
func (m *Memory) studyPatterns() StudyPatterns {
	if len(m.records) < 5 {
		return StudyPatterns{}
	}

	hourCounts := make(map[int]int)
	days := make(map[string]bool)
	for _, r := range m.records {
		hourCounts[r.Timestamp.Hour()]++
		days[r.Timestamp.Format("2006-01-02")] = true
	}

	// Mode of the start hours; earliest record wins a tie.
	peakHour, peakCount := 0, 0
	for _, r := range m.records {
		h := r.Timestamp.Hour()
		if hourCounts[h] > peakCount {
			peakHour, peakCount = h, hourCounts[h]
		}
	}

	totalGap := 0.0
	for i := 1; i < len(m.records); i++ {
		totalGap += m.records[i].Timestamp.Sub(m.records[i-1].Timestamp).Hours()
	}
	avgGap := round1(totalGap / float64(len(m.records)-1))

	frequency := "low"
	switch {
	case avgGap < 24:
		frequency = "high"
	case avgGap < 72:
		frequency = "medium"
	}

	return StudyPatterns{
		Known:              true,
		PreferredStudyTime: fmt.Sprintf("%d:00", peakHour),
		AverageGapHours:    avgGap,
		Frequency:          frequency,
		TotalStudyDays:     len(days),
	}
}
