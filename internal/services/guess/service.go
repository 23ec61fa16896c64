package guess

import (
	"context"
	"errors"
	"sort"

	"github.com/kringle/santaswap/internal/common/clock"
	"github.com/kringle/santaswap/internal/models"
	assignmentRepo "github.com/kringle/santaswap/internal/repositories/assignment"
	configRepo "github.com/kringle/santaswap/internal/repositories/config"
	participantRepo "github.com/kringle/santaswap/internal/repositories/participant"
)

// service implements the Service interface
type service struct {
	prizeCutoff int

	configRepo      configRepo.Repository
	participantRepo participantRepo.Repository
	assignmentRepo  assignmentRepo.Repository

	clock clock.Clock
}

// New creates a new guess service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.ConfigRepo == nil {
		return nil, errors.New("config repository cannot be nil")
	}
	if cfg.ParticipantRepo == nil {
		return nil, errors.New("participant repository cannot be nil")
	}
	if cfg.AssignmentRepo == nil {
		return nil, errors.New("assignment repository cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	cutoff := cfg.PrizeCutoff
	if cutoff <= 0 {
		cutoff = DefaultPrizeCutoff
	}

	return &service{
		prizeCutoff:     cutoff,
		configRepo:      cfg.ConfigRepo,
		participantRepo: cfg.ParticipantRepo,
		assignmentRepo:  cfg.AssignmentRepo,
		clock:           cfg.Clock,
	}, nil
}

// currentStage reads the global stage fresh from the config store
func (s *service) currentStage(ctx context.Context) (models.Stage, error) {
	out, err := s.configRepo.GetValue(ctx, &configRepo.GetValueInput{
		Key: configRepo.KeyStage,
	})
	if err != nil {
		if errors.Is(err, configRepo.ErrKeyNotFound) {
			return models.StageSignup, nil
		}
		return "", err
	}

	return models.Stage(out.Value), nil
}

// SubmitGuess records a recipient's guess at their santa's identity.
//
// A correct guess marks the row and leaves the wrong-attempt counter
// untouched; a wrong guess increments it and remembers the first wrong
// answer so it cannot be repeated. Every call stamps the guess time, but
// only correct rows are ranked by it.
func (s *service) SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	stage, err := s.currentStage(ctx)
	if err != nil {
		return nil, err
	}
	if !stage.AllowsGuessing() {
		return nil, ErrGuessingClosed
	}

	recipientEmail := models.NormalizeEmail(input.RecipientEmail)

	a, err := s.assignmentRepo.GetByRecipient(ctx, &assignmentRepo.GetByRecipientInput{
		RecipientEmail: recipientEmail,
	})
	if err != nil {
		if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
			return nil, ErrNoAssignmentFound
		}
		return nil, err
	}

	if !a.Status.IsOpen() {
		return nil, ErrGiftNotOpened
	}

	if a.GuessExhausted() {
		return nil, ErrGuessExhausted
	}

	guessEmail := models.NormalizeEmail(input.GuessEmail)
	if guessEmail == "" || guessEmail == recipientEmail || guessEmail == a.FirstWrongGuess {
		return nil, ErrInvalidGuess
	}

	guessed, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		Email: guessEmail,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrInvalidGuess
		}
		return nil, err
	}
	if guessed.IsAdmin {
		return nil, ErrInvalidGuess
	}

	now := s.clock.Now().UTC()
	correct := guessEmail == a.SantaEmail

	if correct {
		a.IsCorrectGuess = true
	} else {
		a.GuessCount++
		if a.GuessCount == 1 {
			a.FirstWrongGuess = guessEmail
		}
	}
	a.FinalGuess = guessEmail
	a.GuessedAt = &now
	a.UpdatedAt = now

	err = s.assignmentRepo.UpdateAssignment(ctx, &assignmentRepo.UpdateAssignmentInput{
		Assignment:      a,
		ExpectedVersion: a.Version,
	})
	if err != nil {
		return nil, err
	}
	a.Version++

	remaining := models.MaxGuesses - a.GuessCount
	if a.IsCorrectGuess {
		remaining = 0
	}

	return &SubmitGuessOutput{
		Correct:          correct,
		RemainingGuesses: remaining,
		Assignment:       a,
	}, nil
}

// ListCandidates returns who a recipient may still guess: every non-admin
// participant except themselves and their first wrong answer
func (s *service) ListCandidates(ctx context.Context, input *ListCandidatesInput) (*ListCandidatesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	recipientEmail := models.NormalizeEmail(input.RecipientEmail)

	a, err := s.assignmentRepo.GetByRecipient(ctx, &assignmentRepo.GetByRecipientInput{
		RecipientEmail: recipientEmail,
	})
	if err != nil {
		if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
			return nil, ErrNoAssignmentFound
		}
		return nil, err
	}

	roster, err := s.participantRepo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{
		PlayersOnly: true,
	})
	if err != nil {
		return nil, err
	}

	candidates := make([]*models.Participant, 0, len(roster.Participants))
	for _, p := range roster.Participants {
		if p.Email == recipientEmail || p.Email == a.FirstWrongGuess {
			continue
		}
		candidates = append(candidates, p)
	}

	return &ListCandidatesOutput{
		Candidates: candidates,
	}, nil
}

// GetLeaderboard ranks correct guesses fastest-first. Entries past the
// prize cutoff stay in the list, marked ineligible. Timestamp ties break
// by recipient email so the order is stable across reads.
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	ledger, err := s.assignmentRepo.ListAssignments(ctx, &assignmentRepo.ListAssignmentsInput{})
	if err != nil {
		return nil, err
	}

	winners := make([]*models.Assignment, 0, len(ledger.Assignments))
	for _, a := range ledger.Assignments {
		if a.IsCorrectGuess && a.GuessedAt != nil {
			winners = append(winners, a)
		}
	}

	sort.SliceStable(winners, func(i, j int) bool {
		if winners[i].GuessedAt.Equal(*winners[j].GuessedAt) {
			return winners[i].RecipientEmail < winners[j].RecipientEmail
		}
		return winners[i].GuessedAt.Before(*winners[j].GuessedAt)
	})

	names, err := s.participantNames(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]*models.LeaderboardEntry, len(winners))
	for i, a := range winners {
		entries[i] = &models.LeaderboardEntry{
			Rank:             i + 1,
			ParticipantEmail: a.RecipientEmail,
			ParticipantName:  names[a.RecipientEmail],
			GuessedAt:        *a.GuessedAt,
			Eligible:         i < s.prizeCutoff,
		}
	}

	return &GetLeaderboardOutput{
		Leaderboard: &models.Leaderboard{
			Entries:     entries,
			PrizeCutoff: s.prizeCutoff,
		},
	}, nil
}

// participantNames maps emails to display names for the full roster
func (s *service) participantNames(ctx context.Context) (map[string]string, error) {
	roster, err := s.participantRepo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{})
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(roster.Participants))
	for _, p := range roster.Participants {
		names[p.Email] = p.Name
	}

	return names, nil
}
