package guess

import "errors"

// Define errors
var (
	// ErrGuessingClosed is returned when the current stage does not permit
	// guessing
	ErrGuessingClosed = errors.New("guessing is not open at this stage")

	// ErrGiftNotOpened is returned when a recipient guesses before opening
	// their gift
	ErrGiftNotOpened = errors.New("open your gift before guessing")

	// ErrGuessExhausted is returned once the attempt limit is reached or a
	// correct guess is already recorded
	ErrGuessExhausted = errors.New("no guesses remaining")

	// ErrInvalidGuess is returned for self-guesses, repeats of the first
	// wrong guess, and unknown participants
	ErrInvalidGuess = errors.New("not a valid guess candidate")

	// ErrNoAssignmentFound is returned when the guesser has no ledger row
	ErrNoAssignmentFound = errors.New("no assignment found, ask the admin to regenerate")
)
