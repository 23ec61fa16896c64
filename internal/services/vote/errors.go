package vote

import "errors"

// Define errors
var (
	// ErrVotingClosed is returned when the current stage does not permit
	// voting
	ErrVotingClosed = errors.New("voting is not open at this stage")

	// ErrTallyHidden is returned when the tally is requested before the
	// voting stage
	ErrTallyHidden = errors.New("the tally is not visible yet")

	// ErrSelfVote is returned when a participant votes for themselves
	ErrSelfVote = errors.New("you cannot vote for yourself")

	// ErrDuplicateVote is returned when a voter already has a ballot
	ErrDuplicateVote = errors.New("you have already voted")

	// ErrIneligibleVoter is returned for admins, unknown participants, and
	// frozen speed winners
	ErrIneligibleVoter = errors.New("not eligible to vote")

	// ErrInvalidCandidate is returned when the candidate is unknown, an
	// admin, or a frozen speed winner
	ErrInvalidCandidate = errors.New("not a valid vote candidate")
)
