package config

// Well-known config keys
const (
	// KeyStage holds the global stage value
	KeyStage = "stage"

	// KeyGameMode holds the flow variant chosen at setup
	KeyGameMode = "game_mode"
)

// GetValueInput contains parameters for retrieving a config value
type GetValueInput struct {
	Key string
}

// GetValueOutput contains the result of retrieving a config value
type GetValueOutput struct {
	Value string
}

// SetValueInput contains parameters for persisting a config value
type SetValueInput struct {
	Key   string
	Value string
}
