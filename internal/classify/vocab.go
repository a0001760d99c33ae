package classify

// The three agent vocabularies. Keyword sets are deliberately small and
// literal; they are coaching heuristics, not linguistics.

// TutorVocabulary classifies emotional state for the tutoring agent.
var TutorVocabulary = &Vocabulary{
	entries: []entry{
		{StateFrustrated, []string{"frustrated", "stuck", "confused", "don't understand", "hate this", "annoying"}},
		{StateConfident, []string{"got it", "understand", "easy", "makes sense", "clear", "awesome"}},
		{StateAnxious, []string{"worried", "nervous", "scared", "overwhelmed", "pressure", "stressed"}},
		{StateExcited, []string{"excited", "love", "amazing", "awesome", "cool", "interesting"}},
		{StateDiscouraged, []string{"give up", "too hard", "impossible", "can't do", "failing", "hopeless"}},
		{StateMotivated, []string{"ready", "determined", "let's do this", "motivated", "focused"}},
	},
	high:      map[State]bool{StateConfident: true, StateExcited: true},
	low:       map[State]bool{StateFrustrated: true, StateDiscouraged: true},
	encourage: map[State]bool{StateFrustrated: true, StateDiscouraged: true, StateAnxious: true},
}

// SessionVocabulary classifies productivity state for the session agent.
var SessionVocabulary = &Vocabulary{
	entries: []entry{
		{StateOverwhelmed, []string{"overwhelmed", "too much", "stressed", "can't handle", "drowning"}},
		{StateTired, []string{"tired", "exhausted", "sleepy", "worn out", "drained", "low energy"}},
		{StateDistracted, []string{"distracted", "can't focus", "keep getting distracted", "mind wandering"}},
		{StateMotivated, []string{"motivated", "ready", "energized", "excited to learn", "let's do this"}},
		{StateAnxious, []string{"anxious", "worried", "nervous", "stressed about", "pressure"}},
		{StateProcrastinating, []string{"procrastinating", "putting off", "avoiding", "don't want to start"}},
		{StateFrustrated, []string{"frustrated", "stuck", "not working", "annoying"}},
	},
	high:      map[State]bool{StateMotivated: true},
	low:       map[State]bool{StateOverwhelmed: true, StateFrustrated: true},
	encourage: map[State]bool{StateOverwhelmed: true, StateAnxious: true, StateFrustrated: true},
}

// GoalVocabulary classifies motivational state for the goal coach.
var GoalVocabulary = &Vocabulary{
	entries: []entry{
		{StateDiscouraged, []string{"discouraged", "giving up", "can't do", "too hard", "failing", "hopeless"}},
		{StateOverwhelmed, []string{"overwhelmed", "too much", "stressed", "pressure", "can't handle"}},
		{StateStuck, []string{"stuck", "not progressing", "plateau", "same place", "not moving forward"}},
		{StateMotivated, []string{"motivated", "excited", "ready", "determined", "energized", "pumped"}},
		{StateAnxious, []string{"anxious", "worried", "nervous", "scared", "uncertain", "doubt"}},
		{StateCelebrating, []string{"achieved", "completed", "finished", "success", "did it", "accomplished"}},
		{StateProcrastinating, []string{"procrastinating", "avoiding", "putting off", "don't want to"}},
		{StateConfused, []string{"confused", "don't understand", "unclear", "lost", "don't know how"}},
	},
	high:      map[State]bool{StateMotivated: true, StateCelebrating: true},
	low:       map[State]bool{StateDiscouraged: true, StateProcrastinating: true},
	encourage: map[State]bool{StateDiscouraged: true, StateStuck: true, StateOverwhelmed: true},
}

// LearningIndicators detect how the learner is progressing with the
// material, independent of emotional state.
var LearningIndicators = IndicatorTable{
	{"struggling", []string{"don't get", "still confused", "not working", "error", "wrong"}},
	{"progressing", []string{"better now", "starting to", "almost", "getting closer"}},
	{"mastering", []string{"perfectly", "easily", "no problem", "understand completely"}},
}

// ProgressIndicators detect goal-progress signals used by the coach.
var ProgressIndicators = IndicatorTable{
	{"making_progress", []string{"making progress", "getting better", "improving", "learning"}},
	{"struggling", []string{"struggling", "difficult", "hard time", "challenges"}},
	{"breakthrough", []string{"breakthrough", "finally got it", "clicked", "understand now"}},
}

// TimePressure reports whether the message signals deadline pressure.
func TimePressure(text string) bool {
	return ContainsAny(text, "deadline", "due", "urgent", "quickly", "rush")
}
