package export

import (
	"encoding/json"

	"github.com/studycoach/studycoach/internal/ledger"
)

// JSONExporter renders ExportData as structured JSON.
type JSONExporter struct{}

type jsonOutput struct {
	Student  jsonStudent            `json:"student"`
	Topics   jsonTopics             `json:"topics"`
	Goals    map[string][]jsonGoal  `json:"goals"`
	Rewards  jsonRewards            `json:"achievements"`
}

type jsonStudent struct {
	ID                   string  `json:"id"`
	TotalConversations   int     `json:"total_conversations"`
	AverageUnderstanding float64 `json:"average_understanding"`
	LearningStyle        string  `json:"learning_style"`
	StudyFrequency       string  `json:"study_frequency,omitempty"`
}

type jsonTopics struct {
	Studied    []string `json:"studied"`
	Struggling []string `json:"struggling,omitempty"`
	Strong     []string `json:"strong,omitempty"`
	Trend      string   `json:"overall_trend,omitempty"`
}

type jsonGoal struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Progress float64 `json:"progress"`
	Category string  `json:"category"`
}

type jsonRewards struct {
	Unlocked int      `json:"unlocked"`
	Points   int      `json:"points"`
	Recent   []string `json:"recent,omitempty"`
}

func (e *JSONExporter) Export(data ExportData) (string, error) {
	p := data.Profile

	recent := make([]string, 0, len(data.Report.RecentAchievements))
	for _, a := range data.Report.RecentAchievements {
		recent = append(recent, a.Title)
	}

	out := jsonOutput{
		Student: jsonStudent{
			ID:                   p.StudentID,
			TotalConversations:   p.TotalConversations,
			AverageUnderstanding: p.AverageUnderstanding,
			LearningStyle:        p.LearningStyle,
			StudyFrequency:       p.StudyPatterns.Frequency,
		},
		Topics: jsonTopics{
			Studied:    p.TopicsStudied,
			Struggling: data.Insights.StrugglingTopics,
			Strong:     data.Insights.StrongTopics,
			Trend:      data.Insights.OverallTrend,
		},
		Goals: groupGoalsByStatus(data.Report),
		Rewards: jsonRewards{
			Unlocked: data.Report.AchievementsCount,
			Points:   data.Report.TotalPoints,
			Recent:   recent,
		},
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}

func groupGoalsByStatus(report ledger.Report) map[string][]jsonGoal {
	groups := map[string][]jsonGoal{}
	add := func(key string, goals []ledger.Goal) {
		for _, g := range goals {
			groups[key] = append(groups[key], jsonGoal{
				ID:       g.ID,
				Title:    g.Title,
				Progress: g.Progress,
				Category: g.Category,
			})
		}
	}
	add("active", report.ActiveGoals)
	add("completed", report.CompletedGoals)
	return groups
}
