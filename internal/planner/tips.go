package planner

import "github.com/studycoach/studycoach/internal/classify"

var baseTips = []string{
	"Remove phone or put it in airplane mode",
	"Have water nearby",
	"Set a clear goal for this session",
}

var stateTips = map[classify.State][]string{
	classify.StateOverwhelmed: {
		"Focus on just one small task",
		"Remind yourself: you only need to work for this short time",
		"Breathe deeply if you feel stress rising",
	},
	classify.StateTired: {
		"Sit up straight and ensure good lighting",
		"Try reading out loud or explaining concepts aloud",
		"Take deep breaths to oxygenate your brain",
	},
	classify.StateDistracted: {
		"Close all browser tabs except what you need",
		"Put on focus music or white noise",
		"Write down distracting thoughts to deal with later",
	},
	classify.StateMotivated: {
		"Set an ambitious but achievable goal",
		"Challenge yourself with harder concepts",
		"Use this energy to tackle the most difficult parts",
	},
}

var breakTips = []string{
	"Truly disconnect from work",
	"Move your body",
	"Hydrate",
}

var breakActivities = map[string]string{
	"calming":      "Take slow, deep breaths or do a brief meditation",
	"energizing":   "Do jumping jacks, stretch, or walk around",
	"short_active": "Stand up, stretch your arms and neck, walk to get water",
	"mindful":      "Look out the window, practice deep breathing, or do a mindfulness minute",
	"relaxing":     "Listen to calming music, gentle stretching, or close your eyes and rest",
}

// focusTips assembles the tip list for one work block: three base tips,
// state-specific tips, then a positional nudge, trimmed to four.
func focusTips(state classify.State, blockIndex int) []string {
	tips := make([]string, 0, 8)
	tips = append(tips, baseTips...)
	tips = append(tips, stateTips[state]...)

	switch {
	case blockIndex == 0:
		tips = append(tips, "Start with something you enjoy or find easy to build momentum")
	case blockIndex > 2:
		tips = append(tips, "You're doing great! Stay strong through this session")
	}

	if len(tips) > 4 {
		tips = tips[:4]
	}
	return tips
}

func breakActivity(breakType string) string {
	if a, ok := breakActivities[breakType]; ok {
		return a
	}
	return "Take a short walk and hydrate"
}
