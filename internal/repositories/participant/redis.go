package participant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/kringle/santaswap/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	participantKeyPrefix = "participant:"

	// Index sets. The players set is the first-class "non-admin participant"
	// view every roster query goes through.
	allParticipantsKey = "participants"
	playersKey         = "participants:players"
)

var (
	// ErrParticipantNotFound is returned when a participant is not found
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrParticipantExists is returned when creating a participant whose
	// email is already taken
	ErrParticipantExists = errors.New("participant already exists")
)

// Config holds configuration for the Redis participant repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed participant repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// CreateParticipant persists a new participant, failing if the email is
// already taken. The existence check rides on SETNX so two concurrent
// signups for the same email cannot both succeed.
func (r *redisRepository) CreateParticipant(ctx context.Context, input *CreateParticipantInput) error {
	if input == nil || input.Participant == nil {
		return errors.New("input and participant cannot be nil")
	}

	p := input.Participant
	if p.Email == "" {
		return errors.New("participant email cannot be empty")
	}

	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal participant: %w", err)
	}

	created, err := r.client.SetNX(ctx, participantKeyPrefix+p.Email, payload, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create participant: %w", err)
	}
	if !created {
		return ErrParticipantExists
	}

	return r.index(ctx, p)
}

// SaveParticipant overwrites an existing participant
func (r *redisRepository) SaveParticipant(ctx context.Context, input *SaveParticipantInput) error {
	if input == nil || input.Participant == nil {
		return errors.New("input and participant cannot be nil")
	}

	p := input.Participant
	if p.Email == "" {
		return errors.New("participant email cannot be empty")
	}

	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal participant: %w", err)
	}

	if err := r.client.Set(ctx, participantKeyPrefix+p.Email, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to save participant: %w", err)
	}

	return r.index(ctx, p)
}

// index maintains the roster sets for a participant
func (r *redisRepository) index(ctx context.Context, p *models.Participant) error {
	pipe := r.client.Pipeline()
	pipe.SAdd(ctx, allParticipantsKey, p.Email)
	if p.IsAdmin {
		pipe.SRem(ctx, playersKey, p.Email)
	} else {
		pipe.SAdd(ctx, playersKey, p.Email)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to index participant: %w", err)
	}

	return nil
}

// GetParticipant retrieves a participant by email from Redis
func (r *redisRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	payload, err := r.client.Get(ctx, participantKeyPrefix+input.Email).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	var p models.Participant
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participant: %w", err)
	}

	return &p, nil
}

// GetParticipantByCredentials retrieves a participant by email and
// passphrase. Passphrases are compared as plaintext; a wrong passphrase is
// indistinguishable from an unknown email.
func (r *redisRepository) GetParticipantByCredentials(ctx context.Context, input *GetParticipantByCredentialsInput) (*models.Participant, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	p, err := r.GetParticipant(ctx, &GetParticipantInput{
		Email: input.Email,
	})
	if err != nil {
		return nil, err
	}

	if p.Passphrase != input.Passphrase {
		return nil, ErrParticipantNotFound
	}

	return p, nil
}

// ListParticipants retrieves participants from Redis, ordered by email
func (r *redisRepository) ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	setKey := allParticipantsKey
	if input.PlayersOnly {
		setKey = playersKey
	}

	emails, err := r.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list participant emails: %w", err)
	}

	if len(emails) == 0 {
		return &ListParticipantsOutput{
			Participants: []*models.Participant{},
		}, nil
	}

	// Set iteration order is arbitrary; sort for deterministic rosters
	sort.Strings(emails)

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(emails))
	for i, email := range emails {
		commands[i] = pipe.Get(ctx, participantKeyPrefix+email)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	participants := make([]*models.Participant, 0, len(emails))
	for i, cmd := range commands {
		payload, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Removed between the set read and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get participant %s: %w", emails[i], err)
		}

		var p models.Participant
		if err := json.Unmarshal([]byte(payload), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal participant %s: %w", emails[i], err)
		}

		participants = append(participants, &p)
	}

	return &ListParticipantsOutput{
		Participants: participants,
	}, nil
}
