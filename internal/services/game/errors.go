package game

import "errors"

// Define errors
var (
	// ErrMissingFields is returned when signup input is incomplete
	ErrMissingFields = errors.New("email, name and passphrase are required")

	// ErrParticipantExists is returned when the signup email is taken
	ErrParticipantExists = errors.New("a participant with that email already exists")

	// ErrParticipantNotFound is returned when a participant does not exist
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrInvalidCredentials is returned when login fails
	ErrInvalidCredentials = errors.New("invalid email or passphrase")

	// ErrNotAdmin is returned when a non-admin attempts an admin operation
	ErrNotAdmin = errors.New("operation requires an admin")

	// ErrNoAssignmentFound is returned when a participant has no ledger
	// row, e.g. after a late signup
	ErrNoAssignmentFound = errors.New("no assignment found, ask the admin to regenerate")

	// ErrAssignmentsLocked is returned when regeneration is attempted
	// outside the signup stage
	ErrAssignmentsLocked = errors.New("assignments can only be generated during signup")

	// ErrCluesLocked is returned when clue edits are attempted after
	// signup has closed
	ErrCluesLocked = errors.New("clues can only be edited during signup")

	// ErrModeLocked is returned when the game mode is changed after signup
	ErrModeLocked = errors.New("game mode can only be changed during signup")

	// ErrInvalidStage is returned when a stage value does not belong to
	// the current game mode
	ErrInvalidStage = errors.New("invalid stage for the current game mode")

	// ErrInvalidMode is returned when an unknown game mode is selected
	ErrInvalidMode = errors.New("unknown game mode")

	// ErrInvalidTransition is returned for backward or skipping gift
	// status changes
	ErrInvalidTransition = errors.New("gift status can only move forward one step")
)
