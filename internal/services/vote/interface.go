package vote

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/kringle/santaswap/internal/services/vote Service

// Service defines the interface for the star-game peer vote
type Service interface {
	// CastVote records a participant's one ballot
	CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error)

	// ListCandidates returns who a voter may vote for
	ListCandidates(ctx context.Context, input *ListCandidatesInput) (*ListCandidatesOutput, error)

	// GetTally counts ballots and names the plurality winner
	GetTally(ctx context.Context, input *GetTallyInput) (*GetTallyOutput, error)

	// ListStarAnswers returns the anonymized star-game answer sheets
	ListStarAnswers(ctx context.Context, input *ListStarAnswersInput) (*ListStarAnswersOutput, error)
}
