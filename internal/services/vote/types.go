package vote

import (
	"github.com/kringle/santaswap/internal/common/clock"
	"github.com/kringle/santaswap/internal/common/uuid"
	"github.com/kringle/santaswap/internal/models"
	configRepo "github.com/kringle/santaswap/internal/repositories/config"
	participantRepo "github.com/kringle/santaswap/internal/repositories/participant"
	voteRepo "github.com/kringle/santaswap/internal/repositories/vote"
	guessService "github.com/kringle/santaswap/internal/services/guess"
)

// Config holds configuration for the vote service
type Config struct {
	// Repository dependencies
	ConfigRepo      configRepo.Repository
	ParticipantRepo participantRepo.Repository
	VoteRepo        voteRepo.Repository

	// GuessService supplies the speed-winner set that freezes voters
	GuessService guessService.Service

	// Clock provides the ballot timestamps
	Clock clock.Clock

	// UUIDGenerator provides IDs for new ballots
	UUIDGenerator uuid.UUID
}

// CastVoteInput contains a voter's ballot
type CastVoteInput struct {
	VoterEmail     string
	CandidateEmail string
}

// CastVoteOutput contains the recorded ballot
type CastVoteOutput struct {
	Vote *models.Vote
}

// ListCandidatesInput identifies the voter asking for a ballot
type ListCandidatesInput struct {
	VoterEmail string
}

// ListCandidatesOutput contains the participants the voter may pick,
// ordered by email
type ListCandidatesOutput struct {
	Candidates []*models.Participant
}

// GetTallyInput contains parameters for the tally
type GetTallyInput struct{}

// CandidateCount is one candidate's ballot count
type CandidateCount struct {
	Email string
	Name  string
	Count int
}

// GetTallyOutput contains the counted ballots, most votes first
type GetTallyOutput struct {
	Counts []*CandidateCount

	// Winner is the plurality winner, nil until any ballot is cast
	Winner *models.Participant
}

// ListStarAnswersInput contains parameters for the answer sheets
type ListStarAnswersInput struct{}

// StarSheet is one participant's star-game answers with the author
// withheld
type StarSheet struct {
	Answers []string
}

// ListStarAnswersOutput contains every non-empty answer sheet in an order
// unrelated to the roster
type ListStarAnswersOutput struct {
	Sheets []*StarSheet
}
