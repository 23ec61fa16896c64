package game

import (
	"context"
	"errors"

	"github.com/kringle/santaswap/internal/common/clock"
	"github.com/kringle/santaswap/internal/common/uuid"
	"github.com/kringle/santaswap/internal/draw"
	"github.com/kringle/santaswap/internal/models"
	assignmentRepo "github.com/kringle/santaswap/internal/repositories/assignment"
	configRepo "github.com/kringle/santaswap/internal/repositories/config"
	participantRepo "github.com/kringle/santaswap/internal/repositories/participant"
	voteRepo "github.com/kringle/santaswap/internal/repositories/vote"
)

// service implements the Service interface
type service struct {
	defaultMode models.GameMode

	configRepo      configRepo.Repository
	participantRepo participantRepo.Repository
	assignmentRepo  assignmentRepo.Repository
	voteRepo        voteRepo.Repository

	randomizer draw.Randomizer
	clock      clock.Clock
	uuids      uuid.UUID
}

// New creates a new game service
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
	if cfg.VoteRepo == nil {
		return nil, errors.New("vote repository cannot be nil")
	}
	if cfg.Randomizer == nil {
		return nil, errors.New("randomizer cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		return nil, errors.New("uuid generator cannot be nil")
	}

	mode := cfg.DefaultMode
	if mode == "" {
		mode = models.ModeToken
	}
	if !mode.IsValid() {
		return nil, ErrInvalidMode
	}

	return &service{
		defaultMode:     mode,
		configRepo:      cfg.ConfigRepo,
		participantRepo: cfg.ParticipantRepo,
		assignmentRepo:  cfg.AssignmentRepo,
		voteRepo:        cfg.VoteRepo,
		randomizer:      cfg.Randomizer,
		clock:           cfg.Clock,
		uuids:           cfg.UUIDGenerator,
	}, nil
}

// currentStage reads the global stage fresh from the config store. It is
// never cached in process memory; independent requests must observe admin
// updates promptly.
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

// currentMode reads the game mode from the config store, falling back to
// the configured default
func (s *service) currentMode(ctx context.Context) (models.GameMode, error) {
	out, err := s.configRepo.GetValue(ctx, &configRepo.GetValueInput{
		Key: configRepo.KeyGameMode,
	})
	if err != nil {
		if errors.Is(err, configRepo.ErrKeyNotFound) {
			return s.defaultMode, nil
		}
		return "", err
	}

	return models.GameMode(out.Value), nil
}

// requireAdmin fetches a participant and verifies the admin flag
func (s *service) requireAdmin(ctx context.Context, email string) (*models.Participant, error) {
	p, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		Email: models.NormalizeEmail(email),
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrNotAdmin
		}
		return nil, err
	}

	if !p.IsAdmin {
		return nil, ErrNotAdmin
	}

	return p, nil
}

// SignUp registers a new participant
func (s *service) SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	email := models.NormalizeEmail(input.Email)
	if email == "" || input.Name == "" || input.Passphrase == "" {
		return nil, ErrMissingFields
	}

	p := &models.Participant{
		Email:       email,
		Name:        input.Name,
		Passphrase:  input.Passphrase,
		IsAdmin:     input.IsAdmin,
		Clue1:       input.Clue1,
		Clue2:       input.Clue2,
		Clue3:       input.Clue3,
		StarAnswer1: input.StarAnswer1,
		StarAnswer2: input.StarAnswer2,
		StarAnswer3: input.StarAnswer3,
	}

	err := s.participantRepo.CreateParticipant(ctx, &participantRepo.CreateParticipantInput{
		Participant: p,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantExists) {
			return nil, ErrParticipantExists
		}
		return nil, err
	}

	return &SignUpOutput{
		Participant: p,
	}, nil
}

// LogIn authenticates a participant by email and passphrase
func (s *service) LogIn(ctx context.Context, input *LogInInput) (*LogInOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	p, err := s.participantRepo.GetParticipantByCredentials(ctx, &participantRepo.GetParticipantByCredentialsInput{
		Email:      models.NormalizeEmail(input.Email),
		Passphrase: input.Passphrase,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return &LogInOutput{
		Participant: p,
	}, nil
}

// UpdateClues lets a participant edit their clue and star answer text while
// signup is still open. Once assignments exist the clues are frozen.
func (s *service) UpdateClues(ctx context.Context, input *UpdateCluesInput) (*UpdateCluesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	stage, err := s.currentStage(ctx)
	if err != nil {
		return nil, err
	}
	if stage != models.StageSignup {
		return nil, ErrCluesLocked
	}

	p, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		Email: models.NormalizeEmail(input.Email),
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	p.Clue1 = input.Clue1
	p.Clue2 = input.Clue2
	p.Clue3 = input.Clue3
	p.StarAnswer1 = input.StarAnswer1
	p.StarAnswer2 = input.StarAnswer2
	p.StarAnswer3 = input.StarAnswer3

	err = s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
		Participant: p,
	})
	if err != nil {
		return nil, err
	}

	return &UpdateCluesOutput{
		Participant: p,
	}, nil
}

// GetStage returns the current global stage and game mode
func (s *service) GetStage(ctx context.Context, input *GetStageInput) (*GetStageOutput, error) {
	stage, err := s.currentStage(ctx)
	if err != nil {
		return nil, err
	}

	mode, err := s.currentMode(ctx)
	if err != nil {
		return nil, err
	}

	return &GetStageOutput{
		Stage: stage,
		Mode:  mode,
	}, nil
}

// SetStage moves the global stage. The admin may set any stage of the
// current mode's flow at any time; ordering is advisory only.
func (s *service) SetStage(ctx context.Context, input *SetStageInput) (*SetStageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if _, err := s.requireAdmin(ctx, input.AdminEmail); err != nil {
		return nil, err
	}

	mode, err := s.currentMode(ctx)
	if err != nil {
		return nil, err
	}

	if !input.Stage.IsValidForMode(mode) {
		return nil, ErrInvalidStage
	}

	err = s.configRepo.SetValue(ctx, &configRepo.SetValueInput{
		Key:   configRepo.KeyStage,
		Value: string(input.Stage),
	})
	if err != nil {
		return nil, err
	}

	return &SetStageOutput{
		Stage: input.Stage,
	}, nil
}

// SetGameMode selects the flow variant. Only allowed while signup is open
// so an in-flight game never changes shape.
func (s *service) SetGameMode(ctx context.Context, input *SetGameModeInput) (*SetGameModeOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if _, err := s.requireAdmin(ctx, input.AdminEmail); err != nil {
		return nil, err
	}

	if !input.Mode.IsValid() {
		return nil, ErrInvalidMode
	}

	stage, err := s.currentStage(ctx)
	if err != nil {
		return nil, err
	}
	if stage != models.StageSignup {
		return nil, ErrModeLocked
	}

	err = s.configRepo.SetValue(ctx, &configRepo.SetValueInput{
		Key:   configRepo.KeyGameMode,
		Value: string(input.Mode),
	})
	if err != nil {
		return nil, err
	}

	return &SetGameModeOutput{
		Mode: input.Mode,
	}, nil
}

// GenerateAssignments draws a fresh derangement over the non-admin roster
// and replaces the entire ledger. Refused outside the signup stage so a
// regeneration cannot silently destroy in-progress guesses.
func (s *service) GenerateAssignments(ctx context.Context, input *GenerateAssignmentsInput) (*GenerateAssignmentsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if _, err := s.requireAdmin(ctx, input.AdminEmail); err != nil {
		return nil, err
	}

	stage, err := s.currentStage(ctx)
	if err != nil {
		return nil, err
	}
	if stage != models.StageSignup {
		return nil, ErrAssignmentsLocked
	}

	mode, err := s.currentMode(ctx)
	if err != nil {
		return nil, err
	}

	roster, err := s.participantRepo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{
		PlayersOnly: true,
	})
	if err != nil {
		return nil, err
	}

	santas := make([]string, len(roster.Participants))
	for i, p := range roster.Participants {
		santas[i] = p.Email
	}

	recipients, err := s.randomizer.Derange(santas)
	if err != nil {
		return nil, err
	}

	var tokens []int
	if mode == models.ModeToken {
		tokens, err = s.randomizer.Tokens(len(recipients))
		if err != nil {
			return nil, err
		}
	}

	now := s.clock.Now().UTC()
	assignments := make([]*models.Assignment, len(santas))
	for i := range santas {
		a := &models.Assignment{
			ID:             s.uuids.NewUUID(),
			SantaEmail:     santas[i],
			RecipientEmail: recipients[i],
			Status:         models.GiftStatusAssigned,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if tokens != nil {
			token := tokens[i]
			a.Token = &token
		}
		assignments[i] = a
	}

	// Bulk replace, then clear any stale ballots from a previous cycle.
	// Neither step is atomic with the other; on visible failure the admin
	// simply regenerates.
	err = s.assignmentRepo.ReplaceAll(ctx, &assignmentRepo.ReplaceAllInput{
		Assignments: assignments,
	})
	if err != nil {
		return nil, err
	}

	err = s.voteRepo.DeleteAll(ctx, &voteRepo.DeleteAllInput{})
	if err != nil {
		return nil, err
	}

	next := models.StageSequence(mode)[1]
	err = s.configRepo.SetValue(ctx, &configRepo.SetValueInput{
		Key:   configRepo.KeyStage,
		Value: string(next),
	})
	if err != nil {
		return nil, err
	}

	return &GenerateAssignmentsOutput{
		Count: len(assignments),
		Stage: next,
	}, nil
}

// SetGiftStatus advances a recipient's gift one lifecycle step. Backward
// and skipping moves are refused; re-applying the current state is not.
func (s *service) SetGiftStatus(ctx context.Context, input *SetGiftStatusInput) (*SetGiftStatusOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if !input.Status.IsValid() {
		return nil, ErrInvalidTransition
	}

	a, err := s.assignmentRepo.GetByRecipient(ctx, &assignmentRepo.GetByRecipientInput{
		RecipientEmail: models.NormalizeEmail(input.RecipientEmail),
	})
	if err != nil {
		if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
			return nil, ErrNoAssignmentFound
		}
		return nil, err
	}

	if !a.Status.CanAdvanceTo(input.Status) {
		return nil, ErrInvalidTransition
	}

	a.Status = input.Status
	a.UpdatedAt = s.clock.Now().UTC()

	err = s.assignmentRepo.UpdateAssignment(ctx, &assignmentRepo.UpdateAssignmentInput{
		Assignment:      a,
		ExpectedVersion: a.Version,
	})
	if err != nil {
		return nil, err
	}
	a.Version++

	return &SetGiftStatusOutput{
		Assignment: a,
	}, nil
}

// WriteGiftStory overwrites the santa's gift story on their assignment
func (s *service) WriteGiftStory(ctx context.Context, input *WriteGiftStoryInput) (*WriteGiftStoryOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	a, err := s.getBySanta(ctx, input.SantaEmail)
	if err != nil {
		return nil, err
	}

	a.GiftStoryTitle = input.Title
	a.GiftStoryBody = input.Body
	a.UpdatedAt = s.clock.Now().UTC()

	err = s.assignmentRepo.UpdateAssignment(ctx, &assignmentRepo.UpdateAssignmentInput{
		Assignment:      a,
		ExpectedVersion: a.Version,
	})
	if err != nil {
		return nil, err
	}
	a.Version++

	return &WriteGiftStoryOutput{
		Assignment: a,
	}, nil
}

// WriteSantaClue overwrites the santa's self-clue on their assignment
func (s *service) WriteSantaClue(ctx context.Context, input *WriteSantaClueInput) (*WriteSantaClueOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	a, err := s.getBySanta(ctx, input.SantaEmail)
	if err != nil {
		return nil, err
	}

	a.SantaClue = input.Clue
	a.UpdatedAt = s.clock.Now().UTC()

	err = s.assignmentRepo.UpdateAssignment(ctx, &assignmentRepo.UpdateAssignmentInput{
		Assignment:      a,
		ExpectedVersion: a.Version,
	})
	if err != nil {
		return nil, err
	}
	a.Version++

	return &WriteSantaClueOutput{
		Assignment: a,
	}, nil
}

// getBySanta fetches the assignment for a santa, mapping the not-found case
func (s *service) getBySanta(ctx context.Context, santaEmail string) (*models.Assignment, error) {
	a, err := s.assignmentRepo.GetBySanta(ctx, &assignmentRepo.GetBySantaInput{
		SantaEmail: models.NormalizeEmail(santaEmail),
	})
	if err != nil {
		if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
			return nil, ErrNoAssignmentFound
		}
		return nil, err
	}

	return a, nil
}

// GetSantaView projects what a santa may currently see about their target.
// The projection is pure: nothing per-viewer is stored, everything derives
// from the stage read at call time.
func (s *service) GetSantaView(ctx context.Context, input *GetSantaViewInput) (*GetSantaViewOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	stage, err := s.currentStage(ctx)
	if err != nil {
		return nil, err
	}

	mode, err := s.currentMode(ctx)
	if err != nil {
		return nil, err
	}

	a, err := s.getBySanta(ctx, input.SantaEmail)
	if err != nil {
		return nil, err
	}

	target, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		Email: a.RecipientEmail,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	view := &GetSantaViewOutput{
		Stage:          stage,
		Mode:           mode,
		GiftStatus:     a.Status,
		GiftStoryTitle: a.GiftStoryTitle,
		GiftStoryBody:  a.GiftStoryBody,
		SantaClue:      a.SantaClue,
	}

	if stage.NameRevealed(mode) {
		view.TargetName = target.Name
	} else if n := stage.CluesVisible(); n > 0 {
		view.TargetClues = target.Clues()[:n]
	}

	return view, nil
}

// GetRecipientView projects what a recipient may currently see about their
// own gift
func (s *service) GetRecipientView(ctx context.Context, input *GetRecipientViewInput) (*GetRecipientViewOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	stage, err := s.currentStage(ctx)
	if err != nil {
		return nil, err
	}

	mode, err := s.currentMode(ctx)
	if err != nil {
		return nil, err
	}

	a, err := s.assignmentRepo.GetByRecipient(ctx, &assignmentRepo.GetByRecipientInput{
		RecipientEmail: models.NormalizeEmail(input.RecipientEmail),
	})
	if err != nil {
		if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
			return nil, ErrNoAssignmentFound
		}
		return nil, err
	}

	view := &GetRecipientViewOutput{
		Stage:          stage,
		Mode:           mode,
		Status:         a.Status,
		GuessCount:     a.GuessCount,
		GuessExhausted: a.GuessExhausted(),
		IsCorrectGuess: a.IsCorrectGuess,
	}

	if stage.TokenRevealed(mode) {
		view.Token = a.Token
	}

	if a.Status.IsOpen() {
		view.SantaClue = a.SantaClue
		view.GiftStoryTitle = a.GiftStoryTitle
		view.GiftStoryBody = a.GiftStoryBody
	}

	// The santa's identity is disclosed unconditionally at the grand
	// reveal, and earlier to anyone who guessed it
	if stage == models.StageGrandReveal || a.IsCorrectGuess {
		santa, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
			Email: a.SantaEmail,
		})
		if err != nil {
			if errors.Is(err, participantRepo.ErrParticipantNotFound) {
				return nil, ErrParticipantNotFound
			}
			return nil, err
		}

		view.SantaName = santa.Name
		view.SantaEmail = santa.Email
	}

	return view, nil
}

// GetProgress reports gift lifecycle counts for the admin dashboard
func (s *service) GetProgress(ctx context.Context, input *GetProgressInput) (*GetProgressOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if _, err := s.requireAdmin(ctx, input.AdminEmail); err != nil {
		return nil, err
	}

	stage, err := s.currentStage(ctx)
	if err != nil {
		return nil, err
	}

	ledger, err := s.assignmentRepo.ListAssignments(ctx, &assignmentRepo.ListAssignmentsInput{})
	if err != nil {
		return nil, err
	}

	out := &GetProgressOutput{
		Stage: stage,
		Total: len(ledger.Assignments),
	}

	for _, a := range ledger.Assignments {
		if a.Status.IsOpen() {
			out.Opened++
		}
		if a.Status != models.GiftStatusAssigned {
			out.Received++
		}
	}

	out.AllOpened = out.Total > 0 && out.Opened == out.Total

	return out, nil
}
