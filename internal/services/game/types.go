package game

import (
	"github.com/kringle/santaswap/internal/common/clock"
	"github.com/kringle/santaswap/internal/common/uuid"
	"github.com/kringle/santaswap/internal/draw"
	"github.com/kringle/santaswap/internal/models"
	assignmentRepo "github.com/kringle/santaswap/internal/repositories/assignment"
	configRepo "github.com/kringle/santaswap/internal/repositories/config"
	participantRepo "github.com/kringle/santaswap/internal/repositories/participant"
	voteRepo "github.com/kringle/santaswap/internal/repositories/vote"
)

// Config holds configuration for the game service
type Config struct {
	// DefaultMode is the flow variant used until the admin picks one
	DefaultMode models.GameMode

	// Repository dependencies
	ConfigRepo      configRepo.Repository
	ParticipantRepo participantRepo.Repository
	AssignmentRepo  assignmentRepo.Repository
	VoteRepo        voteRepo.Repository

	// Randomizer draws derangements and claim tokens
	Randomizer draw.Randomizer

	// Clock provides the current time
	Clock clock.Clock

	// UUIDGenerator provides IDs for new ledger rows
	UUIDGenerator uuid.UUID
}

// SignUpInput contains parameters for registering a participant
type SignUpInput struct {
	Email      string
	Name       string
	Passphrase string
	IsAdmin    bool

	Clue1 string
	Clue2 string
	Clue3 string

	StarAnswer1 string
	StarAnswer2 string
	StarAnswer3 string
}

// SignUpOutput contains the registered participant
type SignUpOutput struct {
	Participant *models.Participant
}

// LogInInput contains login credentials
type LogInInput struct {
	Email      string
	Passphrase string
}

// LogInOutput contains the authenticated participant
type LogInOutput struct {
	Participant *models.Participant
}

// UpdateCluesInput contains replacement clue and star answer text
type UpdateCluesInput struct {
	Email string

	Clue1 string
	Clue2 string
	Clue3 string

	StarAnswer1 string
	StarAnswer2 string
	StarAnswer3 string
}

// UpdateCluesOutput contains the updated participant
type UpdateCluesOutput struct {
	Participant *models.Participant
}

// GetStageInput contains parameters for reading the stage
type GetStageInput struct{}

// GetStageOutput contains the current stage and mode
type GetStageOutput struct {
	Stage models.Stage
	Mode  models.GameMode
}

// SetStageInput contains the stage to move to
type SetStageInput struct {
	AdminEmail string
	Stage      models.Stage
}

// SetStageOutput contains the stage after the move
type SetStageOutput struct {
	Stage models.Stage
}

// SetGameModeInput contains the mode to switch to
type SetGameModeInput struct {
	AdminEmail string
	Mode       models.GameMode
}

// SetGameModeOutput contains the mode after the switch
type SetGameModeOutput struct {
	Mode models.GameMode
}

// GenerateAssignmentsInput contains parameters for a generation cycle
type GenerateAssignmentsInput struct {
	AdminEmail string
}

// GenerateAssignmentsOutput contains the result of a generation cycle
type GenerateAssignmentsOutput struct {
	// Count is the number of assignments created
	Count int

	// Stage is the stage the game advanced to
	Stage models.Stage
}

// SetGiftStatusInput contains a recipient's lifecycle transition
type SetGiftStatusInput struct {
	RecipientEmail string
	Status         models.GiftStatus
}

// SetGiftStatusOutput contains the updated assignment
type SetGiftStatusOutput struct {
	Assignment *models.Assignment
}

// WriteGiftStoryInput contains replacement gift story text
type WriteGiftStoryInput struct {
	SantaEmail string
	Title      string
	Body       string
}

// WriteGiftStoryOutput contains the updated assignment
type WriteGiftStoryOutput struct {
	Assignment *models.Assignment
}

// WriteSantaClueInput contains replacement santa self-clue text
type WriteSantaClueInput struct {
	SantaEmail string
	Clue       string
}

// WriteSantaClueOutput contains the updated assignment
type WriteSantaClueOutput struct {
	Assignment *models.Assignment
}

// GetSantaViewInput identifies the santa requesting their view
type GetSantaViewInput struct {
	SantaEmail string
}

// GetSantaViewOutput is the stage-filtered projection of a santa's mission
type GetSantaViewOutput struct {
	Stage models.Stage
	Mode  models.GameMode

	// TargetName is set once the stage reveals the recipient's identity
	TargetName string

	// TargetClues holds as many of the recipient's persona clues as the
	// stage has dripped out
	TargetClues []string

	// GiftStatus is the lifecycle state of the gift this santa gives
	GiftStatus models.GiftStatus

	// Story and clue text this santa has written so far
	GiftStoryTitle string
	GiftStoryBody  string
	SantaClue      string
}

// GetRecipientViewInput identifies the recipient requesting their view
type GetRecipientViewInput struct {
	RecipientEmail string
}

// GetRecipientViewOutput is the stage-filtered projection of a recipient's
// inbox
type GetRecipientViewOutput struct {
	Stage models.Stage
	Mode  models.GameMode

	Status models.GiftStatus

	// Token is set in token mode once the stage reveals claim tokens
	Token *int

	// SantaClue is the santa's self-clue, shown once the gift is open
	SantaClue string

	// Gift story, shown once the gift is open
	GiftStoryTitle string
	GiftStoryBody  string

	// Guess state for this recipient
	GuessCount     int
	GuessExhausted bool
	IsCorrectGuess bool

	// SantaName and SantaEmail are set at the grand reveal, or once the
	// recipient has guessed correctly
	SantaName  string
	SantaEmail string
}

// GetProgressInput identifies the admin requesting progress
type GetProgressInput struct {
	AdminEmail string
}

// GetProgressOutput contains gift lifecycle counts across the ledger
type GetProgressOutput struct {
	Stage models.Stage

	Total    int
	Received int
	Opened   int

	// AllOpened is true once every gift is opened and the grand reveal
	// can be triggered
	AllOpened bool
}
