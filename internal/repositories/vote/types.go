package vote

import "github.com/kringle/santaswap/internal/models"

// SaveVoteInput contains parameters for persisting a vote
type SaveVoteInput struct {
	Vote *models.Vote
}

// GetVoteByVoterInput contains parameters for the voter lookup
type GetVoteByVoterInput struct {
	VoterEmail string
}

// ListVotesInput contains parameters for listing votes
type ListVotesInput struct{}

// ListVotesOutput contains all votes, ordered by voter email
type ListVotesOutput struct {
	Votes []*models.Vote
}

// DeleteAllInput contains parameters for clearing votes
type DeleteAllInput struct{}
