package strategy

import "github.com/studycoach/studycoach/internal/classify"

// Tutor holds the teaching strategies keyed by emotional state.
var Tutor = NewTable(map[classify.State]Strategy{
	classify.StateFrustrated: {
		Approach:   "Break down concepts into smaller steps, use analogies, provide encouragement",
		Tone:       "calm, patient, reassuring",
		Techniques: []string{"step-by-step breakdown", "real-world analogies", "confidence building"},
	},
	classify.StateConfident: {
		Approach:   "Challenge with slightly advanced concepts, provide interesting applications",
		Tone:       "enthusiastic, engaging",
		Techniques: []string{"advanced examples", "practical applications", "exploration encouragement"},
	},
	classify.StateAnxious: {
		Approach:   "Provide structure, clear expectations, and lots of positive reinforcement",
		Tone:       "calm, supportive, structured",
		Techniques: []string{"clear roadmaps", "small wins", "stress reduction"},
	},
	classify.StateExcited: {
		Approach:   "Channel enthusiasm into productive learning, provide engaging content",
		Tone:       "energetic, passionate",
		Techniques: []string{"exciting projects", "cool applications", "discovery learning"},
	},
	classify.StateDiscouraged: {
		Approach:   "Focus on strengths, celebrate small wins, rebuild confidence",
		Tone:       "warm, encouraging, supportive",
		Techniques: []string{"strength identification", "achievement highlighting", "motivation rebuilding"},
	},
}, Strategy{
	Approach:   "Clear explanation with examples and practice opportunities",
	Tone:       "friendly, helpful, clear",
	Techniques: []string{"clear explanations", "practical examples", "guided practice"},
})

// Session holds the productivity strategies keyed by state. These carry the
// session-type hints the planner resolves into concrete schedules.
var Session = NewTable(map[classify.State]Strategy{
	classify.StateOverwhelmed: {
		Approach:        "Break tasks into tiny, manageable pieces. Focus on just the next small step.",
		SessionType:     "micro_sessions",
		DurationMinutes: 15,
		BreakType:       "calming",
		Affirmation:     "You don't have to do everything at once. Small progress is still progress!",
	},
	classify.StateTired: {
		Approach:        "Use active learning techniques and take energizing breaks.",
		SessionType:     "active_learning",
		DurationMinutes: 20,
		BreakType:       "energizing",
		Affirmation:     "Let's find ways to re-energize while we learn!",
	},
	classify.StateDistracted: {
		Approach:        "Remove distractions and use focused time blocks with clear goals.",
		SessionType:     "deep_focus",
		DurationMinutes: 25,
		BreakType:       "mindful",
		Affirmation:     "Focus is a skill that improves with practice. You've got this!",
	},
	classify.StateMotivated: {
		Approach:        "Harness that energy with challenging tasks and achievement goals.",
		SessionType:     "power_session",
		DurationMinutes: 45,
		BreakType:       "short_active",
		Affirmation:     "I love your energy! Let's make the most of this motivation!",
	},
	classify.StateAnxious: {
		Approach:        "Create structure and predictability with clear plans and achievable goals.",
		SessionType:     "structured",
		DurationMinutes: 20,
		BreakType:       "relaxing",
		Affirmation:     "Having a clear plan can really help with anxiety. We'll take this step by step.",
	},
}, Strategy{
	Approach:        "Use balanced study sessions with regular breaks.",
	SessionType:     "pomodoro",
	DurationMinutes: 25,
	BreakType:       "short_active",
	Affirmation:     "Let's create a productive study rhythm!",
})

// Goal holds the motivational strategies keyed by state.
var Goal = NewTable(map[classify.State]Strategy{
	classify.StateDiscouraged: {
		Approach:    "Focus on progress made, reframe setbacks as learning, celebrate small wins",
		Tone:        "warm, encouraging, hopeful",
		Techniques:  []string{"progress highlighting", "reframing", "small goal setting"},
		Affirmation: "You've already come so far. Every small step counts.",
	},
	classify.StateOverwhelmed: {
		Approach:    "Break goals into micro-steps, focus on just the next action",
		Tone:        "calm, reassuring, organized",
		Techniques:  []string{"goal decomposition", "next-action focusing", "stress relief"},
		Affirmation: "You don't have to do everything at once. One step at a time.",
	},
	classify.StateStuck: {
		Approach:    "Explore different approaches, adjust strategies, find accountability",
		Tone:        "collaborative, problem-solving",
		Techniques:  []string{"strategy adjustment", "alternative paths", "support building"},
		Affirmation: "Being stuck is temporary. Let's find a new way forward.",
	},
	classify.StateMotivated: {
		Approach:    "Harness momentum, set ambitious milestones, create action plans",
		Tone:        "energetic, enthusiastic, challenging",
		Techniques:  []string{"momentum building", "stretch goals", "action planning"},
		Affirmation: "Your motivation is powerful! Let's make the most of this energy.",
	},
	classify.StateAnxious: {
		Approach:    "Create clear plans, reduce uncertainty, build confidence gradually",
		Tone:        "calm, structured, supportive",
		Techniques:  []string{"planning", "uncertainty reduction", "gradual confidence building"},
		Affirmation: "Having a clear plan helps. You're more capable than you realize.",
	},
	classify.StateCelebrating: {
		Approach:    "Acknowledge achievement, reinforce positive behaviors, set next milestone",
		Tone:        "joyful, proud, forward-looking",
		Techniques:  []string{"achievement recognition", "behavior reinforcement", "next level planning"},
		Affirmation: "You did it! This success shows what you're capable of.",
	},
}, Strategy{
	Approach:    "Provide encouragement and help clarify next steps",
	Tone:        "supportive, clear, encouraging",
	Techniques:  []string{"goal clarification", "next steps", "encouragement"},
	Affirmation: "You're on a learning journey, and every step matters.",
})
