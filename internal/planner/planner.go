// Package planner turns an available-time budget and a learner state into
// a concrete work/break schedule. Planning is fully deterministic; the
// language model never decides the timing, only talks about it.
package planner

import (
	"fmt"

	"github.com/studycoach/studycoach/internal/classify"
)

// BlockType distinguishes focus time from recovery time.
type BlockType string

const (
	BlockWork  BlockType = "work"
	BlockBreak BlockType = "break"
)

// Block is one contiguous slot in a schedule. StartOffsetMinutes is
// measured from the start of the first block.
type Block struct {
	Type               BlockType `json:"type"`
	DurationMinutes    int       `json:"duration"`
	StartOffsetMinutes int       `json:"start_time"`
	Activity           string    `json:"activity"`
	Tips               []string  `json:"tips"`
}

// Schedule is the full plan for one sitting.
type Schedule struct {
	SessionType  string  `json:"session_type"`
	Blocks       []Block `json:"schedule"`
	TotalMinutes int     `json:"total_time"`
	WorkSessions int     `json:"work_sessions"`
	WorkMinutes  int     `json:"work_duration"`
	BreakMinutes int     `json:"break_duration"`
}

type template struct {
	work        int
	brk         int
	description string
}

// Session templates keyed by the strategy hint. Hints with no template
// of their own (active_learning, structured) resolve to pomodoro.
var templates = map[string]template{
	"pomodoro":       {work: 25, brk: 5, description: "Classic Pomodoro technique for sustained focus"},
	"micro_sessions": {work: 15, brk: 5, description: "Short sessions for when feeling overwhelmed"},
	"deep_focus":     {work: 50, brk: 10, description: "Longer sessions for complex topics"},
	"power_session":  {work: 45, brk: 15, description: "High-energy sessions when motivated"},
}

// Plan builds a schedule for availableMinutes of study on topic. The
// hint names a session template; unknown hints fall back to pomodoro.
// When even the template's single work block does not fit, the plan
// degrades to micro sessions with the work block clamped to what fits,
// never below one minute. Breaks are interleaved between work blocks
// only, so a schedule never ends on a break and the total never exceeds
// the budget. breakType selects the recovery activity.
func Plan(hint string, availableMinutes int, topic string, state classify.State, breakType string) Schedule {
	sessionType := hint
	tpl, ok := templates[sessionType]
	if !ok {
		sessionType = "pomodoro"
		tpl = templates[sessionType]
	}

	work := tpl.work
	brk := tpl.brk
	if work > availableMinutes {
		sessionType = "micro_sessions"
		brk = templates[sessionType].brk
		work = availableMinutes - 5
		if work > 15 {
			work = 15
		}
		if work < 1 {
			work = 1
		}
	}

	cycles := availableMinutes / (work + brk)
	if cycles < 1 {
		cycles = 1
	}

	blocks := make([]Block, 0, 2*cycles-1)
	offset := 0
	for cycle := 0; cycle < cycles; cycle++ {
		blocks = append(blocks, Block{
			Type:               BlockWork,
			DurationMinutes:    work,
			StartOffsetMinutes: offset,
			Activity:           fmt.Sprintf("Focus on %s", topic),
			Tips:               focusTips(state, cycle),
		})
		offset += work

		if cycle < cycles-1 {
			blocks = append(blocks, Block{
				Type:               BlockBreak,
				DurationMinutes:    brk,
				StartOffsetMinutes: offset,
				Activity:           breakActivity(breakType),
				Tips:               breakTips,
			})
			offset += brk
		}
	}

	return Schedule{
		SessionType:  sessionType,
		Blocks:       blocks,
		TotalMinutes: offset,
		WorkSessions: cycles,
		WorkMinutes:  work,
		BreakMinutes: brk,
	}
}
