package participant

import (
	"context"

	"github.com/kringle/santaswap/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/kringle/santaswap/internal/repositories/participant Repository

// Repository defines the interface for participant data persistence
type Repository interface {
	// CreateParticipant persists a new participant, failing if the email is
	// already taken
	CreateParticipant(ctx context.Context, input *CreateParticipantInput) error

	// SaveParticipant overwrites an existing participant
	SaveParticipant(ctx context.Context, input *SaveParticipantInput) error

	// GetParticipant retrieves a participant by email
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error)

	// GetParticipantByCredentials retrieves a participant by email and
	// passphrase
	GetParticipantByCredentials(ctx context.Context, input *GetParticipantByCredentialsInput) (*models.Participant, error)

	// ListParticipants retrieves participants, optionally restricted to
	// players (non-admins)
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)
}
