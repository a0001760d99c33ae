package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/studycoach/studycoach/internal/ledger"
	"github.com/studycoach/studycoach/internal/memory"
)

func sampleExportData() ExportData {
	return ExportData{
		Profile: memory.Profile{
			StudentID:            "alice",
			TotalConversations:   12,
			TopicsStudied:        []string{"recursion", "pointers"},
			AverageUnderstanding: 6.4,
			LearningStyle:        "visual_learner",
			StudyPatterns: memory.StudyPatterns{
				Known:     true,
				Frequency: "high",
			},
		},
		Insights: memory.OverallInsights{
			TotalTopics:      2,
			TotalSessions:    12,
			StrugglingTopics: []string{"pointers"},
			StrongTopics:     []string{"recursion"},
			OverallTrend:     "progressing",
		},
		Report: ledger.Report{
			TotalGoals: 2,
			ActiveGoals: []ledger.Goal{
				{ID: 1, Title: "master pointers", Progress: 4.5, Category: "learning"},
			},
			CompletedGoals: []ledger.Goal{
				{ID: 2, Title: "learn recursion", Progress: 10, Category: "learning", Status: ledger.StatusCompleted},
			},
			TotalPoints:       125,
			AchievementsCount: 2,
			RecentAchievements: []ledger.Achievement{
				{Title: "Momentum Builder", Icon: "🚀", Description: "Consistent progress for 3 days", Points: 25, UnlockedDate: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
				{Title: "Goal Crusher", Icon: "🏆", Description: "Completing a major goal", Points: 100, UnlockedDate: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)},
			},
			NextSteps: []string{"Track progress on: master pointers"},
		},
	}
}

func TestGet_ValidFormats(t *testing.T) {
	for _, name := range []string{"markdown", "json"} {
		exp, ok := Get(name)
		if !ok {
			t.Errorf("Get(%q) returned false", name)
		}
		if exp == nil {
			t.Errorf("Get(%q) returned nil exporter", name)
		}
	}
}

func TestGet_InvalidFormat(t *testing.T) {
	_, ok := Get("invalid")
	if ok {
		t.Error("expected Get('invalid') to return false")
	}
}

func TestMarkdownExporter(t *testing.T) {
	exp, _ := Get("markdown")
	result, err := exp.Export(sampleExportData())
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}

	checks := []string{
		"# alice — Learning Progress",
		"| Conversations | 12 |",
		"| Average understanding | 6.4/10 |",
		"| Learning style | visual_learner |",
		"| Study frequency | high |",
		"## Needs Attention",
		"## Strengths",
		"## Active Goals",
		"master pointers (4.5/10)",
		"## Completed Goals",
		"learn recursion (10.0/10)",
		"2 unlocked, 125 points total",
		"🏆 Goal Crusher",
		"## Next Steps",
		"Track progress on: master pointers",
	}
	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("markdown export missing %q", check)
		}
	}
}

func TestMarkdownExporter_EmptyProfile(t *testing.T) {
	exp, _ := Get("markdown")
	result, err := exp.Export(ExportData{Profile: memory.Profile{StudentID: "bob", LearningStyle: "unknown"}})
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if strings.Contains(result, "Average understanding") {
		t.Error("empty profile should omit the understanding row")
	}
	if strings.Contains(result, "## Achievements") {
		t.Error("empty report should omit achievements")
	}
}

func TestJSONExporter(t *testing.T) {
	exp, _ := Get("json")
	result, err := exp.Export(sampleExportData())
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(result), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"student", "topics", "goals", "achievements"} {
		if _, ok := parsed[key]; !ok {
			t.Errorf("JSON export missing key %q", key)
		}
	}

	var goals map[string][]jsonGoal
	if err := json.Unmarshal(parsed["goals"], &goals); err != nil {
		t.Fatalf("goals: %v", err)
	}
	if len(goals["active"]) != 1 || goals["active"][0].Title != "master pointers" {
		t.Errorf("active goals = %+v", goals["active"])
	}
	if len(goals["completed"]) != 1 {
		t.Errorf("completed goals = %+v", goals["completed"])
	}
}
