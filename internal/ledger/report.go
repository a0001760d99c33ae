package ledger

import (
	"fmt"
	"time"
)

// Report summarises a learner's goals and achievements.
type Report struct {
	TotalGoals          int           `json:"total_goals"`
	ActiveGoals         []Goal        `json:"active_goals"`
	CompletedGoals      []Goal        `json:"completed_goals"`
	TotalPoints         int           `json:"total_achievement_points"`
	AchievementsCount   int           `json:"achievements_unlocked"`
	RecentAchievements  []Achievement `json:"recent_achievements"`
	MotivationInsights  []string      `json:"motivation_insights"`
	NextSteps           []string      `json:"next_steps"`
}

// Report builds the progress report from current ledger state.
func (l *Ledger) Report() Report {
	var active, completed []Goal
	for _, g := range l.goals {
		if g.Status == StatusCompleted {
			completed = append(completed, g)
		} else {
			active = append(active, g)
		}
	}

	points := 0
	for _, a := range l.achievements {
		points += a.Points
	}

	recent := l.achievements
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}

	return Report{
		TotalGoals:         len(l.goals),
		ActiveGoals:        active,
		CompletedGoals:     completed,
		TotalPoints:        points,
		AchievementsCount:  len(l.achievements),
		RecentAchievements: recent,
		MotivationInsights: l.motivationInsights(active, completed),
		NextSteps:          l.nextSteps(active),
	}
}

func (l *Ledger) motivationInsights(active, completed []Goal) []string {
	if len(l.goals) == 0 {
		return []string{"Start setting goals to build motivation insights!"}
	}

	var insights []string
	for _, g := range l.goals {
		if !g.LastUpdated.IsZero() {
			insights = append(insights, "You're actively tracking your progress - great habit!")
			break
		}
	}

	rate := float64(len(completed)) / float64(len(l.goals))
	switch {
	case rate > 0.7:
		insights = append(insights, "You have an excellent goal completion rate!")
	case rate > 0.3:
		insights = append(insights, "You're making good progress on your goals.")
	default:
		insights = append(insights, "Consider breaking goals into smaller, more achievable steps.")
	}

	return insights
}

func (l *Ledger) nextSteps(active []Goal) []string {
	var steps []string

	if len(active) == 0 {
		steps = append(steps, "Set a new learning goal to get started!")
	} else {
		now := l.now()
		for _, g := range active {
			switch {
			case g.LastUpdated.IsZero():
				steps = append(steps, fmt.Sprintf("Track progress on: %s", g.Title))
			case now.Sub(g.LastUpdated) > 7*24*time.Hour:
				steps = append(steps, fmt.Sprintf("Update progress on: %s", g.Title))
			}
		}
	}

	if len(l.achievements) == 0 {
		steps = append(steps, "Complete your first study session to unlock achievements!")
	}

	if len(steps) > 3 {
		steps = steps[:3]
	}
	return steps
}

// SMARTGoal scaffolds a Specific/Measurable/Achievable/Relevant/Time-bound
// breakdown for a free-text goal description.
type SMARTGoal struct {
	OriginalDescription string   `json:"original_description"`
	Specific            string   `json:"specific"`
	Measurable          string   `json:"measurable"`
	Achievable          string   `json:"achievable"`
	Relevant            string   `json:"relevant"`
	TimeBound           string   `json:"time_bound"`
	ActionSteps         []string `json:"action_steps"`
	SuccessMetrics      []string `json:"success_metrics"`
}

// NewSMARTGoal builds the scaffold for a goal description and timeline.
func NewSMARTGoal(description string, timelineDays int) SMARTGoal {
	return SMARTGoal{
		OriginalDescription: description,
		Specific:            fmt.Sprintf("Learn %s", description),
		Measurable:          "Complete exercises and demonstrate understanding",
		Achievable:          "Break into daily study sessions",
		Relevant:            "Supports programming skill development",
		TimeBound:           fmt.Sprintf("Complete within %d days", timelineDays),
		ActionSteps: []string{
			"Identify specific topics to learn",
			"Find learning resources",
			"Create daily study schedule",
			"Practice with exercises",
			"Track progress weekly",
		},
		SuccessMetrics: []string{
			"Complete daily study sessions",
			"Finish practice exercises",
			"Explain concepts to others",
			"Build a small project",
		},
	}
}
