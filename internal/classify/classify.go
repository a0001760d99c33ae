// Package classify maps free-form learner text to an emotional or
// motivational state using explicit keyword rule tables. The tables are
// plain data so they stay inspectable and swappable; nothing here is
// a learned model.
package classify

import "strings"

// State is a classified emotional/motivational state.
type State string

// StateNeutral is returned when no keyword in the vocabulary matches.
const StateNeutral State = "neutral"

// Tutoring states.
const (
	StateFrustrated  State = "frustrated"
	StateConfident   State = "confident"
	StateAnxious     State = "anxious"
	StateExcited     State = "excited"
	StateDiscouraged State = "discouraged"
	StateMotivated   State = "motivated"
)

// Session/productivity states (motivated, anxious, frustrated shared above).
const (
	StateOverwhelmed     State = "overwhelmed"
	StateTired           State = "tired"
	StateDistracted      State = "distracted"
	StateProcrastinating State = "procrastinating"
)

// Goal-coaching states.
const (
	StateStuck       State = "stuck"
	StateCelebrating State = "celebrating"
	StateConfused    State = "confused"
)

// Confidence is derived from the primary state, never from match counts.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// entry pairs a state with its keyword phrases. Order matters: when two
// states tie on match count, the first-declared entry wins.
type entry struct {
	State    State
	Keywords []string
}

// Vocabulary is an ordered rule table for one agent. The confidence and
// encouragement sets are part of the vocabulary because each agent draws
// them differently.
type Vocabulary struct {
	entries   []entry
	high      map[State]bool
	low       map[State]bool
	encourage map[State]bool
}

// Result is the outcome of classifying one message.
type Result struct {
	Primary            State          `json:"primary_state"`
	Matches            map[State]int  `json:"all_states"`
	Confidence         Confidence     `json:"confidence_level"`
	NeedsEncouragement bool           `json:"needs_encouragement"`
}

// Classify counts keyword occurrences per state and picks the strict
// argmax, breaking ties by declaration order. Matching is substring
// containment on the lower-cased input, so overlapping phrases can double
// count. An input with no matches (including the empty string) classifies
// as neutral with an empty match map. Classify is total: it never fails.
func Classify(text string, v *Vocabulary) Result {
	lower := strings.ToLower(text)

	matches := make(map[State]int)
	primary := StateNeutral
	best := 0
	for _, e := range v.entries {
		score := 0
		for _, kw := range e.Keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score == 0 {
			continue
		}
		matches[e.State] = score
		if score > best {
			best = score
			primary = e.State
		}
	}

	return Result{
		Primary:            primary,
		Matches:            matches,
		Confidence:         v.confidence(primary),
		NeedsEncouragement: v.encourage[primary],
	}
}

func (v *Vocabulary) confidence(s State) Confidence {
	switch {
	case v.high[s]:
		return ConfidenceHigh
	case v.low[s]:
		return ConfidenceLow
	default:
		return ConfidenceMedium
	}
}

// NeedsEncouragement reports whether the given state is in this
// vocabulary's encouragement set. Used by memory trend analysis, which
// looks at stored states rather than fresh Results.
func (v *Vocabulary) NeedsEncouragement(s State) bool {
	return v.encourage[s]
}

// States returns the declared states in order. Useful for introspection.
func (v *Vocabulary) States() []State {
	out := make([]State, len(v.entries))
	for i, e := range v.entries {
		out[i] = e.State
	}
	return out
}

// IndicatorTable is an ordered secondary scan: the first group with any
// matching phrase wins, otherwise "unknown". Used for learning-state and
// progress-state detection alongside the main classification.
type IndicatorTable []struct {
	Name    string
	Phrases []string
}

// Scan returns the name of the first matching indicator group, or
// "unknown" when nothing matches.
func (t IndicatorTable) Scan(text string) string {
	lower := strings.ToLower(text)
	for _, group := range t {
		for _, p := range group.Phrases {
			if strings.Contains(lower, p) {
				return group.Name
			}
		}
	}
	return "unknown"
}

// ContainsAny reports whether text contains any of the given phrases,
// case-insensitively. Shared by time-pressure and style detection.
func ContainsAny(text string, phrases ...string) bool {
	lower := strings.ToLower(text)
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
