package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/kringle/santaswap/internal/services/game Service

// Service defines the interface for exchange coordination operations
type Service interface {
	// SignUp registers a new participant
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)

	// LogIn authenticates a participant by email and passphrase
	LogIn(ctx context.Context, input *LogInInput) (*LogInOutput, error)

	// UpdateClues lets a participant edit their clues and star answers
	// while signup is still open
	UpdateClues(ctx context.Context, input *UpdateCluesInput) (*UpdateCluesOutput, error)

	// GetStage returns the current global stage and game mode
	GetStage(ctx context.Context, input *GetStageInput) (*GetStageOutput, error)

	// SetStage moves the global stage, admin only
	SetStage(ctx context.Context, input *SetStageInput) (*SetStageOutput, error)

	// SetGameMode selects the flow variant during signup, admin only
	SetGameMode(ctx context.Context, input *SetGameModeInput) (*SetGameModeOutput, error)

	// GenerateAssignments draws a fresh derangement and replaces the
	// ledger, admin only
	GenerateAssignments(ctx context.Context, input *GenerateAssignmentsInput) (*GenerateAssignmentsOutput, error)

	// SetGiftStatus advances a recipient's gift one lifecycle step
	SetGiftStatus(ctx context.Context, input *SetGiftStatusInput) (*SetGiftStatusOutput, error)

	// WriteGiftStory overwrites the santa's gift story for their recipient
	WriteGiftStory(ctx context.Context, input *WriteGiftStoryInput) (*WriteGiftStoryOutput, error)

	// WriteSantaClue overwrites the santa's self-clue on their assignment
	WriteSantaClue(ctx context.Context, input *WriteSantaClueInput) (*WriteSantaClueOutput, error)

	// GetSantaView projects what a santa may currently see about their
	// target
	GetSantaView(ctx context.Context, input *GetSantaViewInput) (*GetSantaViewOutput, error)

	// GetRecipientView projects what a recipient may currently see about
	// their own gift
	GetRecipientView(ctx context.Context, input *GetRecipientViewInput) (*GetRecipientViewOutput, error)

	// GetProgress reports gift lifecycle counts for the admin dashboard
	GetProgress(ctx context.Context, input *GetProgressInput) (*GetProgressOutput, error)
}
