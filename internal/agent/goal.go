package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/studycoach/studycoach/internal/classify"
	"github.com/studycoach/studycoach/internal/ledger"
	"github.com/studycoach/studycoach/internal/strategy"
)

// Goal is Jordan, the motivational coaching persona. It is the only
// agent that mutates the goal ledger.
type Goal struct {
	deps Deps
}

func NewGoal(deps Deps) *Goal {
	return &Goal{deps: deps}
}

// Coach responds to a goal-related message and applies any detected
// ledger action (set, update, complete). currentGoal names the goal a
// progress update or completion refers to; progressUpdate carries the
// new 0-10 value when present. The reply is always populated; the error
// reports only a failure to persist the ledger or the turn.
func (g *Goal) Coach(ctx context.Context, request, currentGoal string, progressUpdate *float64) (string, error) {
	result := classify.Classify(request, classify.GoalVocabulary)
	strat := strategy.Goal.Select(result.Primary)
	action, allActions := ledger.DetectAction(request)
	progress := classify.ProgressIndicators.Scan(request)

	// The prompt sees pre-action ledger state; mutations land after the
	// reply is built.
	system := goalSystemPrompt(result, strat, progress)
	prompt := goalUserPrompt(g.deps, request, currentGoal, progressUpdate, result, action, allActions)

	reply, err := g.deps.generate(ctx, prompt, system, 400, 0.8)
	if err != nil {
		g.deps.logf("goal: generation failed: %v", err)
		reply = g.fallback(ctx, request, result, strat)
	} else {
		reply = g.enrich(reply, result, strat, progress)
	}

	if err := g.apply(action, request, currentGoal, progressUpdate); err != nil {
		return reply, err
	}
	if _, err := g.deps.Memory.Append(TypeGoal, "goals", request, reply, result, 5.0); err != nil {
		return reply, err
	}
	return reply, nil
}

// apply performs the detected ledger mutation. Updates and completions
// need an explicit goal reference from the caller.
func (g *Goal) apply(action ledger.Action, request, currentGoal string, progressUpdate *float64) error {
	if g.deps.Ledger == nil {
		return nil
	}
	switch action {
	case ledger.ActionSetGoal:
		_, err := g.deps.Ledger.CreateGoal(request)
		return err
	case ledger.ActionUpdateProgress:
		if currentGoal != "" && progressUpdate != nil {
			return g.deps.Ledger.UpdateProgress(currentGoal, *progressUpdate)
		}
	case ledger.ActionCompleteGoal:
		if currentGoal != "" {
			return g.deps.Ledger.CompleteGoal(currentGoal)
		}
	}
	return nil
}

// enrich layers celebration, the strategy affirmation, and a per-state
// sign-off onto the model's reply when they are missing.
func (g *Goal) enrich(reply string, result classify.Result, strat strategy.Strategy, progress string) string {
	celebrating := result.Primary == classify.StateCelebrating || progress == "breakthrough"
	if celebrating && !containsAnyFold(reply, "congratulations") {
		reply = "🎉 Congratulations! " + reply
	}

	if strat.Affirmation != "" && !containsAnyFold(reply, strat.Affirmation) {
		reply += fmt.Sprintf("\n\n💫 *Remember: %s*", strat.Affirmation)
	}

	switch result.Primary {
	case classify.StateDiscouraged:
		reply += "\n\n🌟 You've got this! Every expert was once a beginner."
	case classify.StateMotivated:
		reply += "\n\n🚀 I love your energy! Let's channel it into action!"
	case classify.StateOverwhelmed:
		reply += "\n\n🧘‍♀️ Take it one step at a time. You don't have to do everything at once."
	}

	if g.coachingTurns() > 2 {
		reply += "\n\n📈 **Progress Insight:** You've been consistently working on your goals - that's the key to success!"
	}
	return reply
}

// coachingTurns counts prior goal-coach turns in this learner's history.
func (g *Goal) coachingTurns() int {
	n := 0
	for _, r := range g.deps.Memory.Records() {
		if r.AgentType == TypeGoal {
			n++
		}
	}
	return n
}

func (g *Goal) fallback(ctx context.Context, request string, result classify.Result, strat strategy.Strategy) string {
	simplified := fmt.Sprintf(`As Jordan, a motivational goal coach, respond to this student when experiencing technical difficulties:

Student Request: %q
Student State: %s
Strategy Affirmation: %s
Approach: %s

Create a motivational response that acknowledges their state with empathy, works the affirmation in naturally, offers 3 specific actionable steps, and ends with a question to engage them.`,
		request, result.Primary, strat.Affirmation, strat.Approach)

	if reply, err := g.deps.generate(ctx, simplified, "", 300, 0.8); err == nil {
		return reply
	}

	switch result.Primary {
	case classify.StateDiscouraged:
		return fmt.Sprintf(`I hear that you're feeling discouraged, and that's completely understandable. Learning can be challenging, and it's normal to have moments of doubt.

Here's what I want you to remember: **%s**

🎯 **Let's refocus:**
1. **Acknowledge your progress** - What have you learned recently, even if it seems small?
2. **Adjust your approach** - Maybe try a different learning method or break things into smaller steps
3. **Celebrate small wins** - Every bit of progress counts and builds momentum

What's one small thing you can do today to move forward? I believe in you! 💪`, strat.Affirmation)

	case classify.StateMotivated:
		return fmt.Sprintf(`I love your motivation and energy! This is the perfect time to harness that drive and create real momentum.

**%s**

🚀 **Let's make the most of this energy:**
1. **Set a clear goal** - What specifically do you want to accomplish?
2. **Create action steps** - Break it down into daily actions
3. **Track your progress** - Celebrate each milestone along the way

Your motivation is powerful - let's turn it into lasting progress! What's your most important goal right now? 🌟`, strat.Affirmation)

	case classify.StateOverwhelmed:
		return fmt.Sprintf(`I can hear that you're feeling overwhelmed, and that's okay. When we have big goals, it's easy to feel like there's too much to do.

**%s**

🧘‍♀️ **Let's simplify:**
1. **Pick ONE thing** - What's the most important thing to focus on today?
2. **Make it smaller** - Break that one thing into tiny, manageable steps
3. **Just start** - Even 10 minutes of progress is valuable

You don't have to do everything at once. What's one small step you can take right now? 🌱`, strat.Affirmation)

	default:
		return fmt.Sprintf(`Thanks for sharing with me! I'm here to help you achieve your learning goals.

**%s**

🎯 **Here's how I can help:**
- **Goal Setting** - Let's create clear, achievable goals together
- **Progress Tracking** - I'll help you see and celebrate your progress
- **Motivation** - When things get tough, I'll help you stay on track
- **Planning** - We'll break big goals into manageable steps

What would you like to work on? I'm excited to support your learning journey! 🚀`, strat.Affirmation)
	}
}

func goalSystemPrompt(result classify.Result, strat strategy.Strategy, progress string) string {
	needsEncouragement := result.Primary == classify.StateDiscouraged ||
		result.Primary == classify.StateStuck ||
		result.Primary == classify.StateOverwhelmed
	needsPlanning := result.Primary == classify.StateOverwhelmed ||
		result.Primary == classify.StateConfused ||
		result.Primary == classify.StateStuck

	motivation := "medium"
	switch result.Primary {
	case classify.StateMotivated, classify.StateCelebrating:
		motivation = "high"
	case classify.StateDiscouraged, classify.StateProcrastinating:
		motivation = "low"
	}

	return fmt.Sprintf(`You are Jordan, an expert goal-setting coach and motivational specialist. You have years of experience helping students achieve their learning goals and building their confidence.

STUDENT CURRENT STATE:
- Motivational state: %s
- Motivation level: %s
- Needs encouragement: %t
- Needs planning: %t
- Progress state: %s

COACHING STRATEGY:
- Approach: %s
- Tone: %s
- Techniques: %s
- Core message: %s

YOUR PERSONALITY:
- Incredibly motivating and inspiring
- Believes deeply in every student's potential
- Uses specific, actionable advice
- Celebrates all progress, no matter how small
- Helps reframe setbacks as learning opportunities
- Creates clear, achievable next steps
- Balances optimism with realistic planning

RESPONSE GUIDELINES:
1. Acknowledge their current emotional state with genuine empathy
2. Use the recommended tone and approach
3. Provide specific, actionable advice
4. Include motivational affirmations naturally
5. Help them see progress they might be missing
6. Create clear next steps
7. Be inspiring but realistic
8. Use their name or "you" to make it personal

Remember: Your role is to help them believe in themselves while providing practical guidance to achieve their goals.`,
		result.Primary, motivation, needsEncouragement, needsPlanning, progress,
		strat.Approach, strat.Tone, strings.Join(strat.Techniques, ", "), strat.Affirmation)
}

func goalUserPrompt(deps Deps, request, currentGoal string, progressUpdate *float64, result classify.Result, action ledger.Action, allActions []ledger.Action) string {
	parts := []string{fmt.Sprintf("Student Request: %s", request)}

	if currentGoal != "" {
		parts = append(parts, fmt.Sprintf("Current Goal: %s", currentGoal))
	}
	if progressUpdate != nil {
		parts = append(parts, fmt.Sprintf("Progress Update: %.1f/10", *progressUpdate))
	}
	parts = append(parts, fmt.Sprintf("Motivational State: %s", result.Primary))
	if len(allActions) > 0 {
		parts = append(parts, fmt.Sprintf("Goal Action Detected: %s", action))
	}

	if deps.Ledger != nil {
		if goals := deps.Ledger.Goals(); len(goals) > 0 {
			recent := goals
			if len(recent) > 2 {
				recent = recent[len(recent)-2:]
			}
			titles := make([]string, 0, 2)
			for _, g := range recent {
				titles = append(titles, g.Title)
			}
			parts = append(parts, deps.truncateContext(
				fmt.Sprintf("Recent Goals: %s", strings.Join(titles, ", "))))
		}
		if achievements := deps.Ledger.Achievements(); len(achievements) > 0 {
			recent := achievements
			if len(recent) > 2 {
				recent = recent[len(recent)-2:]
			}
			titles := make([]string, 0, 2)
			for _, a := range recent {
				titles = append(titles, a.Title)
			}
			parts = append(parts, fmt.Sprintf("Recent Achievements: %s", strings.Join(titles, ", ")))
		}
	}

	return strings.Join(parts, "\n\n")
}
