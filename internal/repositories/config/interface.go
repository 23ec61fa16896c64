package config

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/kringle/santaswap/internal/repositories/config Repository

// Repository defines the interface for global config persistence
type Repository interface {
	// GetValue retrieves a config value by key
	GetValue(ctx context.Context, input *GetValueInput) (*GetValueOutput, error)

	// SetValue persists a config value
	SetValue(ctx context.Context, input *SetValueInput) error
}
