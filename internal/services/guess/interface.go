package guess

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/kringle/santaswap/internal/services/guess Service

// Service defines the interface for the identity-guessing game
type Service interface {
	// SubmitGuess records a recipient's guess at their santa's identity
	SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error)

	// ListCandidates returns who a recipient may still guess
	ListCandidates(ctx context.Context, input *ListCandidatesInput) (*ListCandidatesOutput, error)

	// GetLeaderboard returns the fastest-first ranking of correct guessers
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
