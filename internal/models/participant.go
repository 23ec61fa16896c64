package models

import "strings"

// Participant represents a person playing the gift exchange
type Participant struct {
	// Email is the unique identifier for the participant, stored lowercase
	Email string

	// Name is the display name shown to other participants
	Name string

	// Passphrase is the participant's login secret, compared as plaintext
	Passphrase string

	// IsAdmin marks the game organizer; admins never receive assignments
	IsAdmin bool

	// Clue1, Clue2, Clue3 are persona clues drip-fed to the participant's santa
	Clue1 string
	Clue2 string
	Clue3 string

	// StarAnswer1, StarAnswer2, StarAnswer3 are optional star-game answers,
	// shown anonymized on the voting screen
	StarAnswer1 string
	StarAnswer2 string
	StarAnswer3 string
}

// NormalizeEmail lowercases and trims an email so lookups are case-insensitive
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Clues returns the persona clues in drip order
func (p *Participant) Clues() []string {
	return []string{p.Clue1, p.Clue2, p.Clue3}
}

// StarAnswers returns the star-game answers, skipping blanks
func (p *Participant) StarAnswers() []string {
	answers := make([]string, 0, 3)
	for _, a := range []string{p.StarAnswer1, p.StarAnswer2, p.StarAnswer3} {
		if a != "" {
			answers = append(answers, a)
		}
	}
	return answers
}
