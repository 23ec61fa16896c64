package assignment

import "github.com/kringle/santaswap/internal/models"

// ReplaceAllInput contains the full replacement content for the ledger
type ReplaceAllInput struct {
	Assignments []*models.Assignment
}

// GetBySantaInput contains parameters for the santa-side lookup
type GetBySantaInput struct {
	SantaEmail string
}

// GetByRecipientInput contains parameters for the recipient-side lookup
type GetByRecipientInput struct {
	RecipientEmail string
}

// ListAssignmentsInput contains parameters for listing the ledger
type ListAssignmentsInput struct{}

// ListAssignmentsOutput contains the full ledger, ordered by santa email
type ListAssignmentsOutput struct {
	Assignments []*models.Assignment
}

// UpdateAssignmentInput contains a modified assignment and the version the
// caller read it at
type UpdateAssignmentInput struct {
	Assignment      *models.Assignment
	ExpectedVersion int
}

// DeleteAllInput contains parameters for clearing the ledger
type DeleteAllInput struct{}
