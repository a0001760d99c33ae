package export

import (
	"fmt"
	"strings"
)

// MarkdownExporter renders a progress summary as generic markdown.
type MarkdownExporter struct{}

func (e *MarkdownExporter) Export(data ExportData) (string, error) {
	p := data.Profile

	var b strings.Builder
	fmt.Fprintf(&b, "# %s — Learning Progress\n\n", p.StudentID)

	fmt.Fprintf(&b, "## Overview\n\n")
	fmt.Fprintf(&b, "| Conversations | %d |\n", p.TotalConversations)
	fmt.Fprintf(&b, "| Topics studied | %d |\n", len(p.TopicsStudied))
	if p.TotalConversations > 0 {
		fmt.Fprintf(&b, "| Average understanding | %.1f/10 |\n", p.AverageUnderstanding)
	}
	if p.LearningStyle != "unknown" {
		fmt.Fprintf(&b, "| Learning style | %s |\n", p.LearningStyle)
	}
	if p.StudyPatterns.Known {
		fmt.Fprintf(&b, "| Study frequency | %s |\n", p.StudyPatterns.Frequency)
	}
	b.WriteString("\n")

	if len(p.TopicsStudied) > 0 {
		fmt.Fprintf(&b, "## Topics\n\n")
		for _, topic := range p.TopicsStudied {
			fmt.Fprintf(&b, "- %s\n", topic)
		}
		b.WriteString("\n")
	}

	if len(data.Insights.StrugglingTopics) > 0 {
		fmt.Fprintf(&b, "## Needs Attention\n\n")
		for _, topic := range data.Insights.StrugglingTopics {
			fmt.Fprintf(&b, "- %s\n", topic)
		}
		b.WriteString("\n")
	}
	if len(data.Insights.StrongTopics) > 0 {
		fmt.Fprintf(&b, "## Strengths\n\n")
		for _, topic := range data.Insights.StrongTopics {
			fmt.Fprintf(&b, "- %s\n", topic)
		}
		b.WriteString("\n")
	}

	b.WriteString(goalSection("Active Goals", data.Report.ActiveGoals))
	b.WriteString(goalSection("Completed Goals", data.Report.CompletedGoals))

	if data.Report.AchievementsCount > 0 {
		fmt.Fprintf(&b, "## Achievements\n\n")
		fmt.Fprintf(&b, "%d unlocked, %d points total\n\n", data.Report.AchievementsCount, data.Report.TotalPoints)
		for _, a := range data.Report.RecentAchievements {
			fmt.Fprintf(&b, "- %s %s — %s\n", a.Icon, a.Title, a.Description)
		}
		b.WriteString("\n")
	}

	if len(data.Report.NextSteps) > 0 {
		fmt.Fprintf(&b, "## Next Steps\n\n")
		for _, step := range data.Report.NextSteps {
			fmt.Fprintf(&b, "- %s\n", step)
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}
