package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/studycoach/studycoach/internal/classify"
	"github.com/studycoach/studycoach/internal/memory"
	"github.com/studycoach/studycoach/internal/strategy"
)

// Tutor is Alex, the empathetic teaching persona.
type Tutor struct {
	deps Deps
}

func NewTutor(deps Deps) *Tutor {
	return &Tutor{deps: deps}
}

// Teach answers a learner question, adapting tone and technique to the
// emotional state read from the question. The reply is always populated;
// the error reports only a failure to persist the turn.
func (t *Tutor) Teach(ctx context.Context, question, topic string, understanding float64) (string, error) {
	if topic == "" {
		topic = "programming"
	}

	result := classify.Classify(question, classify.TutorVocabulary)
	strat := strategy.Tutor.Select(result.Primary)
	memCtx := t.deps.Memory.Context(topic, TypeTutor, 5)

	system := tutorSystemPrompt(result, strat, understanding)
	prompt := tutorUserPrompt(t.deps, question, topic, result, memCtx)

	reply, err := t.deps.generate(ctx, prompt, system, 400, 0.7)
	if err != nil {
		t.deps.logf("tutor: generation failed: %v", err)
		reply = t.fallback(ctx, question, result)
	} else {
		reply = t.enrich(reply, result, memCtx)
	}

	if _, err := t.deps.Memory.Append(TypeTutor, topic, question, reply, result, understanding); err != nil {
		return reply, err
	}
	return reply, nil
}

// enrich injects emotional acknowledgements the model skipped and a
// milestone nod once a learner has some history.
func (t *Tutor) enrich(reply string, result classify.Result, memCtx memory.Context) string {
	switch result.Primary {
	case classify.StateFrustrated:
		if !containsAnyFold(reply, "i understand", "frustrating", "no worries") {
			reply = "I totally understand that this can be frustrating! " + reply
		}
	case classify.StateExcited:
		if !containsAnyFold(reply, "awesome", "exciting", "love your enthusiasm") {
			reply = "I love your enthusiasm! " + reply
		}
	case classify.StateDiscouraged:
		if !containsAnyFold(reply, "you've got this", "believe", "capable") {
			reply += "\n\nRemember, every programmer has been where you are now. You've got this! 💪"
		}
	}

	// memCtx was captured before this turn, so the count is prior turns.
	if memCtx.TotalConversations > 3 {
		reply += "\n\nBy the way, I'm really proud of how much you've been learning! Keep up the great work! 🌟"
	}
	return reply
}

// fallback tries one simplified generation before dropping to canned
// text, so backend hiccups still read in character.
func (t *Tutor) fallback(ctx context.Context, question string, result classify.Result) string {
	simplified := fmt.Sprintf(
		"As Alex, a warm programming tutor, briefly help a student who asked: %q. The student seems %s. Be encouraging and practical.",
		question, result.Primary)
	if reply, err := t.deps.generate(ctx, simplified, "", 250, 0.7); err == nil {
		return reply
	}

	if result.Primary == classify.StateFrustrated {
		return fmt.Sprintf(`I can see you're working through something challenging, and that's completely normal in programming!

Let me help you with %q. While I'm having a technical moment, here's what I suggest:

1. Break the problem into smaller pieces
2. Try writing out what you want to happen in plain English first
3. Look for similar examples online or in documentation
4. Don't hesitate to ask for help - every programmer does this!

What specific part is giving you the most trouble? I'm here to help you figure it out step by step. 🤗`, question)
	}

	return fmt.Sprintf(`Thanks for your question about %q! I'm having a small technical hiccup, but I'm still here to help you learn.

Here's my suggestion: Try breaking down your question into smaller parts, and let's tackle them one by one. Programming is all about problem-solving, and sometimes the best way to learn is by working through challenges together.

What's the specific concept or part you'd like to focus on first? I'm excited to help you understand it! 🚀`, question)
}

func tutorSystemPrompt(result classify.Result, strat strategy.Strategy, understanding float64) string {
	return fmt.Sprintf(`You are Alex, an expert programming tutor with a warm, empathetic personality. You genuinely care about your students' success and adapt your teaching style to their emotional needs.

STUDENT CONTEXT:
- Current emotional state: %s
- Understanding level: %.1f/10
- Needs encouragement: %t

TEACHING STRATEGY FOR THIS INTERACTION:
- Approach: %s
- Tone: %s
- Techniques: %s

YOUR PERSONALITY TRAITS:
- Extremely patient and understanding
- Enthusiastic about programming and teaching
- Uses analogies and real-world examples
- Celebrates student progress, no matter how small
- Adapts explanations to student's emotional state
- Encourages experimentation and learning from mistakes

RESPONSE GUIDELINES:
1. Acknowledge the student's emotional state if appropriate
2. Use the recommended tone and approach
3. Provide clear, step-by-step explanations
4. Include practical examples and analogies
5. Offer encouragement and positive reinforcement
6. Suggest next steps or practice opportunities
7. Be conversational and supportive, not robotic

Remember: You're not just teaching code, you're building confidence and fostering a love for programming.`,
		result.Primary, understanding, result.NeedsEncouragement,
		strat.Approach, strat.Tone, strings.Join(strat.Techniques, ", "))
}

func tutorUserPrompt(deps Deps, question, topic string, result classify.Result, memCtx memory.Context) string {
	parts := []string{
		fmt.Sprintf("Student Question: %s", question),
		fmt.Sprintf("Topic: %s", topic),
	}
	if result.Primary != classify.StateNeutral {
		parts = append(parts, fmt.Sprintf("Student seems %s - please respond accordingly", result.Primary))
	}
	if len(memCtx.Relevant) > 0 {
		recent := memCtx.Relevant
		if len(recent) > 2 {
			recent = recent[:2]
		}
		topics := make([]string, 0, len(recent))
		for _, r := range recent {
			topics = append(topics, r.Topic)
		}
		parts = append(parts, deps.truncateContext(
			fmt.Sprintf("Recent topics discussed: %s", strings.Join(topics, ", "))))
	}
	return strings.Join(parts, "\n\n")
}
