package models

// GameMode selects which flow variant the exchange runs, chosen at setup
type GameMode string

const (
	// ModeClassic is the three-clue flow: santas learn their target through
	// drip-fed clues before a name reveal
	ModeClassic GameMode = "classic"

	// ModeToken is the blind-token flow: gifts carry randomized claim
	// tokens and recipients speed-guess their santa's identity
	ModeToken GameMode = "token"
)

// IsValid reports whether the mode is a known game mode
func (m GameMode) IsValid() bool {
	return m == ModeClassic || m == ModeToken
}

// Stage is the single global phase value gating visibility and allowed
// actions for every participant
type Stage string

const (
	// StageSignup is the initial stage; participants join and edit clues
	StageSignup Stage = "signup"

	// StageClue1 through StageClue3 drip persona clues to santas (classic)
	StageClue1 Stage = "clue_1"
	StageClue2 Stage = "clue_2"
	StageClue3 Stage = "clue_3"

	// StageNameReveal discloses each santa's target by name (classic)
	StageNameReveal Stage = "name_reveal"

	// StageTokenReveal discloses claim tokens to recipients (token)
	StageTokenReveal Stage = "token_reveal"

	// StageGiftHunt is when recipients claim gifts by token (token)
	StageGiftHunt Stage = "gift_hunt"

	// StageEventDay is the gift handover and opening stage
	StageEventDay Stage = "event_day"

	// StageStarVoting opens the star-game peer vote (token)
	StageStarVoting Stage = "star_voting"

	// StageGrandReveal discloses every santa's identity unconditionally
	StageGrandReveal Stage = "grand_reveal"
)

// stageSequences holds the intended progression per mode. The admin may
// still set any stage at any time; the sequence only validates membership
// and relative order.
var stageSequences = map[GameMode][]Stage{
	ModeClassic: {
		StageSignup,
		StageClue1,
		StageClue2,
		StageClue3,
		StageNameReveal,
		StageEventDay,
		StageGrandReveal,
	},
	ModeToken: {
		StageSignup,
		StageTokenReveal,
		StageGiftHunt,
		StageEventDay,
		StageStarVoting,
		StageGrandReveal,
	},
}

// StageSequence returns the intended stage progression for a mode
func StageSequence(mode GameMode) []Stage {
	return stageSequences[mode]
}

// stageIndex returns the stage's position in the mode's sequence, or -1 if
// the stage does not belong to the mode
func stageIndex(mode GameMode, stage Stage) int {
	for i, s := range stageSequences[mode] {
		if s == stage {
			return i
		}
	}
	return -1
}

// IsValidForMode reports whether the stage belongs to the mode's flow
func (s Stage) IsValidForMode(mode GameMode) bool {
	return stageIndex(mode, s) >= 0
}

// AtOrAfter reports whether s is at or after other in the mode's sequence.
// Stages outside the mode's flow are never at or after anything.
func (s Stage) AtOrAfter(mode GameMode, other Stage) bool {
	i, j := stageIndex(mode, s), stageIndex(mode, other)
	return i >= 0 && j >= 0 && i >= j
}

// AllowsGuessing reports whether identity guesses may be submitted at this
// stage
func (s Stage) AllowsGuessing() bool {
	return s == StageGiftHunt || s == StageEventDay
}

// AllowsVoting reports whether star-game votes may be cast at this stage
func (s Stage) AllowsVoting() bool {
	return s == StageStarVoting
}

// TallyVisible reports whether the vote tally may be disclosed at this stage
func (s Stage) TallyVisible() bool {
	return s == StageStarVoting || s == StageGrandReveal
}

// CluesVisible returns how many persona clues a santa may see at this stage
// in classic mode
func (s Stage) CluesVisible() int {
	switch s {
	case StageClue1:
		return 1
	case StageClue2:
		return 2
	case StageClue3, StageNameReveal, StageEventDay, StageGrandReveal:
		return 3
	default:
		return 0
	}
}

// NameRevealed reports whether santas may see their target's name. In token
// mode the target is known as soon as assignments exist; in classic mode it
// is gated behind the name reveal.
func (s Stage) NameRevealed(mode GameMode) bool {
	if mode == ModeToken {
		return s != StageSignup
	}
	return s.AtOrAfter(ModeClassic, StageNameReveal)
}

// TokenRevealed reports whether recipients may see their claim token
func (s Stage) TokenRevealed(mode GameMode) bool {
	if mode != ModeToken {
		return false
	}
	return s.AtOrAfter(ModeToken, StageTokenReveal)
}
