package vote

import (
	"context"

	"github.com/kringle/santaswap/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/kringle/santaswap/internal/repositories/vote Repository

// Repository defines the interface for vote persistence
type Repository interface {
	// SaveVote persists a vote, failing if the voter already has one
	SaveVote(ctx context.Context, input *SaveVoteInput) error

	// GetVoteByVoter retrieves a voter's existing vote
	GetVoteByVoter(ctx context.Context, input *GetVoteByVoterInput) (*models.Vote, error)

	// ListVotes retrieves all votes
	ListVotes(ctx context.Context, input *ListVotesInput) (*ListVotesOutput, error)

	// DeleteAll clears all votes
	DeleteAll(ctx context.Context, input *DeleteAllInput) error
}
