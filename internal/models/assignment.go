package models

import (
	"time"
)

// GiftStatus represents the current state of a gift in its lifecycle
type GiftStatus string

const (
	// GiftStatusAssigned indicates the gift has not been handed over yet
	GiftStatusAssigned GiftStatus = "assigned"

	// GiftStatusReceived indicates the recipient has the gift in hand
	GiftStatusReceived GiftStatus = "received"

	// GiftStatusOpened indicates the recipient has opened the gift
	GiftStatusOpened GiftStatus = "opened"

	// GiftStatusRevealed indicates the santa's identity has been disclosed
	GiftStatusRevealed GiftStatus = "revealed"
)

// giftStatusOrder maps each status to its position in the forward-only
// lifecycle
var giftStatusOrder = map[GiftStatus]int{
	GiftStatusAssigned: 0,
	GiftStatusReceived: 1,
	GiftStatusOpened:   2,
	GiftStatusRevealed: 3,
}

// IsValid reports whether the status is a known lifecycle state
func (s GiftStatus) IsValid() bool {
	_, ok := giftStatusOrder[s]
	return ok
}

// CanAdvanceTo reports whether target is exactly one step forward from s.
// Re-applying the current status is allowed, matching the original
// press-twice behavior.
func (s GiftStatus) CanAdvanceTo(target GiftStatus) bool {
	from, ok := giftStatusOrder[s]
	if !ok {
		return false
	}
	to, ok := giftStatusOrder[target]
	if !ok {
		return false
	}
	return to == from || to == from+1
}

// IsOpen reports whether the gift has been opened. Opened and revealed are
// equivalent for gating guesses and story disclosure.
func (s GiftStatus) IsOpen() bool {
	return s == GiftStatusOpened || s == GiftStatusRevealed
}

// MaxGuesses is the per-recipient guess attempt limit
const MaxGuesses = 2

// Assignment represents one santa/recipient pair in the exchange
type Assignment struct {
	// ID is the unique identifier for this assignment row
	ID string

	// SantaEmail is the participant giving the gift
	SantaEmail string

	// RecipientEmail is the participant receiving the gift
	RecipientEmail string

	// Token is the randomized 3-digit claim label, set only in token mode
	Token *int

	// Status is the current gift lifecycle state
	Status GiftStatus

	// SantaClue is a clue the santa writes about themselves for the
	// recipient's identity guessing
	SantaClue string

	// GiftStoryTitle and GiftStoryBody are shown to the recipient after
	// the gift is opened
	GiftStoryTitle string
	GiftStoryBody  string

	// GuessCount is the number of incorrect guesses made so far
	GuessCount int

	// FirstWrongGuess is the identifier guessed wrong on the first attempt,
	// excluded from later candidate lists
	FirstWrongGuess string

	// FinalGuess is the identifier of the last guess submitted
	FinalGuess string

	// IsCorrectGuess is true once the recipient has guessed their santa
	IsCorrectGuess bool

	// GuessedAt is when the most recent guess of any kind was made; only
	// correct rows are ranked by it
	GuessedAt *time.Time

	// CreatedAt is when this generation cycle produced the row
	CreatedAt time.Time

	// UpdatedAt is when the row was last written
	UpdatedAt time.Time

	// Version increments on every update and guards concurrent writes
	Version int
}

// GuessExhausted reports whether no further guesses are permitted
func (a *Assignment) GuessExhausted() bool {
	return a.IsCorrectGuess || a.GuessCount >= MaxGuesses
}
