package models

import (
	"time"
)

// LeaderboardEntry represents one correct guesser's position in the
// fastest-first ranking
type LeaderboardEntry struct {
	// Rank is the 1-based position, fastest correct guess first
	Rank int

	// ParticipantEmail is the recipient who guessed correctly
	ParticipantEmail string

	// ParticipantName is the display name of the guesser
	ParticipantName string

	// GuessedAt is when the correct guess was recorded
	GuessedAt time.Time

	// Eligible is false for entries past the prize cutoff; they stay in the
	// list but win nothing
	Eligible bool
}

// Leaderboard represents the full fastest-first standings
type Leaderboard struct {
	// Entries is the full correct-guess list in rank order, never truncated
	Entries []*LeaderboardEntry

	// PrizeCutoff is how many entries from the top count as winners
	PrizeCutoff int
}

// Winners returns the emails of entries within the prize cutoff
func (l *Leaderboard) Winners() []string {
	winners := make([]string, 0, l.PrizeCutoff)
	for _, e := range l.Entries {
		if e.Eligible {
			winners = append(winners, e.ParticipantEmail)
		}
	}
	return winners
}
