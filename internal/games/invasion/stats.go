package invasion

// Stats tracks the counters that change during a game.
type Stats struct {
	ShipsLeft int
	Score     int
	Level     int
	HighScore int // Never decreases
}

// Reset prepares the counters for a new game. The high score is kept.
func (st *Stats) Reset(shipLimit int) {
	st.ShipsLeft = shipLimit
	st.Score = 0
	st.Level = 1
}

// AddPoints adds points to the score and raises the high score if beaten.
func (st *Stats) AddPoints(points int) {
	st.Score += points
	st.CheckHighScore()
}

// CheckHighScore raises the high score to the current score when exceeded.
// Returns true if the high score changed.
func (st *Stats) CheckHighScore() bool {
	if st.Score > st.HighScore {
		st.HighScore = st.Score
		return true
	}
	return false
}

// SeedHighScore merges a persisted high score. Lower values are ignored.
func (st *Stats) SeedHighScore(score int) {
	if score > st.HighScore {
		st.HighScore = score
	}
}
