package guess

import (
	"github.com/kringle/santaswap/internal/common/clock"
	"github.com/kringle/santaswap/internal/models"
	assignmentRepo "github.com/kringle/santaswap/internal/repositories/assignment"
	configRepo "github.com/kringle/santaswap/internal/repositories/config"
	participantRepo "github.com/kringle/santaswap/internal/repositories/participant"
)

// DefaultPrizeCutoff is how many speed winners take a prize unless
// configured otherwise
const DefaultPrizeCutoff = 5

// Config holds configuration for the guess service
type Config struct {
	// PrizeCutoff is how many entries from the top of the leaderboard win
	// a prize; 0 means DefaultPrizeCutoff
	PrizeCutoff int

	// Repository dependencies
	ConfigRepo      configRepo.Repository
	ParticipantRepo participantRepo.Repository
	AssignmentRepo  assignmentRepo.Repository

	// Clock provides the guess timestamps
	Clock clock.Clock
}

// SubmitGuessInput contains a recipient's guess
type SubmitGuessInput struct {
	RecipientEmail string

	// GuessEmail is the participant the recipient believes is their santa
	GuessEmail string
}

// SubmitGuessOutput contains the outcome of a guess
type SubmitGuessOutput struct {
	// Correct is true when the guess matched the santa
	Correct bool

	// RemainingGuesses is how many attempts are left after this call
	RemainingGuesses int

	// Assignment is the updated ledger row
	Assignment *models.Assignment
}

// ListCandidatesInput identifies the recipient asking for candidates
type ListCandidatesInput struct {
	RecipientEmail string
}

// ListCandidatesOutput contains the participants the recipient may guess,
// ordered by email
type ListCandidatesOutput struct {
	Candidates []*models.Participant
}

// GetLeaderboardInput contains parameters for the leaderboard
type GetLeaderboardInput struct{}

// GetLeaderboardOutput contains the fastest-first standings
type GetLeaderboardOutput struct {
	Leaderboard *models.Leaderboard
}
