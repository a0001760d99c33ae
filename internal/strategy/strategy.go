// Package strategy selects a coaching strategy for a classified state.
// Selection is a pure lookup with a guaranteed default, so it never fails.
package strategy

import "github.com/studycoach/studycoach/internal/classify"

// Strategy is the tone/approach/technique bundle an agent applies for one
// interaction. The session fields are populated only in the session table.
type Strategy struct {
	Approach    string
	Tone        string
	Techniques  []string
	Affirmation string

	// Session planning hints.
	SessionType     string
	DurationMinutes int
	BreakType       string
}

// Table maps states to strategies. Lookup order is irrelevant here (unlike
// classification) because states are unique keys; the Default entry covers
// neutral and any unmapped state.
type Table struct {
	byState map[classify.State]Strategy
	Default Strategy
}

// NewTable builds a Table from a state→strategy map and a default.
func NewTable(byState map[classify.State]Strategy, def Strategy) *Table {
	return &Table{byState: byState, Default: def}
}

// Select returns the strategy for the state, or the default when the state
// is neutral or unmapped.
func (t *Table) Select(s classify.State) Strategy {
	if st, ok := t.byState[s]; ok {
		return st
	}
	return t.Default
}
