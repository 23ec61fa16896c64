package assignment

import (
	"context"

	"github.com/kringle/santaswap/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/kringle/santaswap/internal/repositories/assignment Repository

// Repository defines the interface for assignment ledger persistence
type Repository interface {
	// ReplaceAll discards the entire ledger and inserts a fresh set of
	// assignments. Delete and insert are not atomic; a crash in between can
	// leave the ledger empty and the caller retries.
	ReplaceAll(ctx context.Context, input *ReplaceAllInput) error

	// GetBySanta retrieves the assignment where the given participant gives
	GetBySanta(ctx context.Context, input *GetBySantaInput) (*models.Assignment, error)

	// GetByRecipient retrieves the assignment where the given participant
	// receives
	GetByRecipient(ctx context.Context, input *GetByRecipientInput) (*models.Assignment, error)

	// ListAssignments retrieves the full ledger
	ListAssignments(ctx context.Context, input *ListAssignmentsInput) (*ListAssignmentsOutput, error)

	// UpdateAssignment overwrites an assignment if its stored version still
	// matches the expected one
	UpdateAssignment(ctx context.Context, input *UpdateAssignmentInput) error

	// DeleteAll clears the ledger
	DeleteAll(ctx context.Context, input *DeleteAllInput) error
}
