package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/studycoach/studycoach/internal/classify"
	"github.com/studycoach/studycoach/internal/planner"
	"github.com/studycoach/studycoach/internal/strategy"
)

// Session is Sam, the productivity coaching persona.
type Session struct {
	deps Deps
}

func NewSession(deps Deps) *Session {
	return &Session{deps: deps}
}

// ManageTime builds a personalized study schedule for availableMinutes
// and wraps it in coaching prose. The schedule itself is computed
// locally; only the prose comes from the model, so the plan survives
// backend failures untouched.
func (s *Session) ManageTime(ctx context.Context, request, topic string, availableMinutes int) (string, error) {
	if topic == "" {
		topic = "studying"
	}
	if availableMinutes <= 0 {
		availableMinutes = 60
	}

	result := classify.Classify(request, classify.SessionVocabulary)
	strat := strategy.Session.Select(result.Primary)
	plan := planner.Plan(strat.SessionType, availableMinutes, topic, result.Primary, strat.BreakType)

	system := sessionSystemPrompt(request, result, strat)
	prompt := sessionUserPrompt(request, result, strat, plan)

	reply, err := s.deps.generate(ctx, prompt, system, 350, 0.7)
	if err != nil {
		s.deps.logf("session: generation failed: %v", err)
		reply = s.fallback(ctx, request, result, plan)
	} else {
		reply += renderSchedule(plan)
	}

	if _, err := s.deps.Memory.Append(TypeSession, topic, request, reply, result, 5.0); err != nil {
		return reply, err
	}
	return reply, nil
}

// renderSchedule appends the concrete block-by-block plan to whatever
// the model said about it.
func renderSchedule(plan planner.Schedule) string {
	var b strings.Builder
	b.WriteString("\n\n📅 **Your Personalized Schedule:**\n")

	session := 0
	for _, block := range plan.Blocks {
		if block.Type == planner.BlockWork {
			session++
			b.WriteString(fmt.Sprintf("\n🎯 **Session %d** (%d min): %s\n", session, block.DurationMinutes, block.Activity))
			tips := block.Tips
			if len(tips) > 2 {
				tips = tips[:2]
			}
			b.WriteString(fmt.Sprintf("   💡 *Tips: %s*\n", strings.Join(tips, ", ")))
		} else {
			b.WriteString(fmt.Sprintf("\n☕ **Break** (%d min): %s\n", block.DurationMinutes, block.Activity))
		}
	}

	b.WriteString(fmt.Sprintf("\n⏱️ **Total productive time: %d minutes**", plan.TotalMinutes))
	b.WriteString(fmt.Sprintf("\n🎯 **%d focused work sessions**", plan.WorkSessions))
	return b.String()
}

func (s *Session) fallback(ctx context.Context, request string, result classify.Result, plan planner.Schedule) string {
	simplified := fmt.Sprintf(`As Sam, a productivity coach, respond to this student's time management request when having technical difficulties:

Student Request: %q
Student State: %s
Recommended Plan: %d sessions of %d minutes

Create an encouraging, practical response that acknowledges their state, explains the plan clearly, and keeps the tone supportive. Be conversational, not robotic.`,
		request, result.Primary, plan.WorkSessions, plan.WorkMinutes)

	if reply, err := s.deps.generate(ctx, simplified, "", 250, 0.7); err == nil {
		return reply + fmt.Sprintf("\n\n🎯 **Your Plan Details:**\n- %d sessions × %d minutes\n- %d-minute breaks\n- Total focus time: %d minutes",
			plan.WorkSessions, plan.WorkMinutes, plan.BreakMinutes, plan.TotalMinutes)
	}

	encouragement := map[classify.State]string{
		classify.StateOverwhelmed: "I understand you're feeling overwhelmed. Let's break this down into manageable pieces.",
		classify.StateTired:       "I can hear that you're tired. Let's work with your energy level, not against it.",
		classify.StateDistracted:  "Distraction is totally normal! Let's create some structure to help you focus.",
		classify.StateMotivated:   "I love your motivation! Let's channel that energy productively.",
	}[result.Primary]
	if encouragement == "" {
		encouragement = "Let's create a productive study plan together!"
	}

	return fmt.Sprintf(`%s

Here's what I recommend for your request: %q

🎯 **Your Plan:**
- **%d focused sessions** of %d minutes each
- **Short breaks** of %d minutes between sessions
- **Total time:** %d minutes

🔑 **Key Success Tips:**
1. **Start small** - Even 15 minutes of focused work is valuable
2. **Remove distractions** - Phone away, focus music on
3. **Celebrate progress** - Acknowledge every completed session
4. **Be kind to yourself** - Some days are harder than others

Remember: Productivity isn't about perfection, it's about showing up consistently. You've got this! 💪

Ready to start your first session? I believe in you! 🌟`,
		encouragement, request, plan.WorkSessions, plan.WorkMinutes, plan.BreakMinutes, plan.TotalMinutes)
}

func sessionSystemPrompt(request string, result classify.Result, strat strategy.Strategy) string {
	needsStructure := result.Primary == classify.StateOverwhelmed ||
		result.Primary == classify.StateAnxious ||
		result.Primary == classify.StateDistracted
	needsEnergy := result.Primary == classify.StateTired ||
		result.Primary == classify.StateProcrastinating

	return fmt.Sprintf(`You are Sam, an expert productivity coach and time management specialist. You're incredibly organized, motivating, and understand the psychology of studying and focus.

STUDENT CURRENT STATE:
- Primary state: %s
- Needs structure: %t
- Needs energy: %t
- Time pressure: %t

RECOMMENDED STRATEGY:
- Approach: %s
- Session type: %s
- Encouragement: %s

YOUR PERSONALITY:
- Highly organized and systematic
- Motivating and energetic
- Empathetic to study struggles
- Practical and solution-focused
- Encouraging but realistic
- Helps students build sustainable habits

RESPONSE GUIDELINES:
1. Acknowledge their current state with empathy
2. Explain why the recommended approach will work for them
3. Provide practical, actionable advice
4. Be encouraging but realistic about challenges
5. Help them see productivity as a skill they're building
6. Make time management feel achievable, not overwhelming

Remember: Good time management is about working WITH your brain and energy, not against it.`,
		result.Primary, needsStructure, needsEnergy, classify.TimePressure(request),
		strat.Approach, strat.SessionType, strat.Affirmation)
}

func sessionUserPrompt(request string, result classify.Result, strat strategy.Strategy, plan planner.Schedule) string {
	parts := []string{
		fmt.Sprintf("Student Request: %s", request),
		fmt.Sprintf("Current State: %s", result.Primary),
		fmt.Sprintf("Recommended Session Type: %s", plan.SessionType),
		fmt.Sprintf("Available Time: %d minutes", plan.TotalMinutes),
		fmt.Sprintf("Number of Work Sessions: %d", plan.WorkSessions),
		fmt.Sprintf("Strategy Rationale: %s", strat.Approach),
	}
	return strings.Join(parts, "\n\n")
}
