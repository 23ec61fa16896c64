package participant

import "github.com/kringle/santaswap/internal/models"

// CreateParticipantInput contains parameters for creating a participant
type CreateParticipantInput struct {
	Participant *models.Participant
}

// SaveParticipantInput contains parameters for saving a participant
type SaveParticipantInput struct {
	Participant *models.Participant
}

// GetParticipantInput contains parameters for retrieving a participant
type GetParticipantInput struct {
	Email string
}

// GetParticipantByCredentialsInput contains login lookup parameters
type GetParticipantByCredentialsInput struct {
	Email      string
	Passphrase string
}

// ListParticipantsInput contains parameters for listing participants
type ListParticipantsInput struct {
	// PlayersOnly restricts the result to non-admin participants
	PlayersOnly bool
}

// ListParticipantsOutput contains the result of listing participants,
// ordered by email
type ListParticipantsOutput struct {
	Participants []*models.Participant
}
