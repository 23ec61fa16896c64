package httpapi

import (
	"errors"

	gameService "github.com/kringle/santaswap/internal/services/game"
	guessService "github.com/kringle/santaswap/internal/services/guess"
	voteService "github.com/kringle/santaswap/internal/services/vote"
)

// Handler holds all HTTP handler dependencies
type Handler struct {
	gameService  gameService.Service
	guessService guessService.Service
	voteService  voteService.Service
}

// Config holds configuration for the HTTP handler
type Config struct {
	GameService  gameService.Service
	GuessService guessService.Service
	VoteService  voteService.Service
}

// New creates a new Handler with all dependencies
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.GuessService == nil {
		return nil, errors.New("guess service cannot be nil")
	}
	if cfg.VoteService == nil {
		return nil, errors.New("vote service cannot be nil")
	}

	return &Handler{
		gameService:  cfg.GameService,
		guessService: cfg.GuessService,
		voteService:  cfg.VoteService,
	}, nil
}
