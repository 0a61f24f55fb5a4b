package scoring

// Scoring tracks the pair score of a single game. Nothing is persisted.
type Scoring struct {
	// public
	CurrentScore int
	MatchCount   int
	MissCount    int
	// private
	scoreTable map[string]int
}

// InitScoring creates a zeroed Scoring with the default score table.
func InitScoring() *Scoring {
	return &Scoring{
		scoreTable: getScoreTable(),
	}
}

// ScoreEvent updates the score based on a given game event.
// Unknown events leave the score unchanged.
func (s *Scoring) ScoreEvent(event string) {
	switch event {
	case "pairMatched":
		s.MatchCount++
	case "mismatch":
		s.MissCount++
	}
	s.CurrentScore += s.scoreTable[event]
}

// DisplayScore is the score clamped at zero.
func (s *Scoring) DisplayScore() int {
	if s.CurrentScore < 0 {
		return 0
	}
	return s.CurrentScore
}

// Accuracy returns the share of pair attempts that were matches, in percent.
func (s *Scoring) Accuracy() int {
	attempts := s.MatchCount + s.MissCount
	if attempts == 0 {
		return 0
	}
	return s.MatchCount * 100 / attempts
}

// getScoreTable returns the predefined values for different scoring events.
func getScoreTable() map[string]int {
	return map[string]int{
		"pairMatched": 100,
		"mismatch":    -10,
	}
}
