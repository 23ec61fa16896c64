package models

import (
	"time"
)

// Vote represents one participant's star-game ballot
type Vote struct {
	// ID is the unique identifier for this vote row
	ID string

	// VoterEmail is the participant casting the vote; at most one row per voter
	VoterEmail string

	// VotedForEmail is the participant being voted for
	VotedForEmail string

	// CreatedAt is when the vote was cast
	CreatedAt time.Time
}
