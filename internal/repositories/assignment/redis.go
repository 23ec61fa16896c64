package assignment

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
	assignmentKeyPrefix = "assignment:"

	// Index structures
	allAssignmentsKey = "assignments"
	bySantaKey        = "assignments:by_santa"
	byRecipientKey    = "assignments:by_recipient"
)

var (
	// ErrAssignmentNotFound is returned when an assignment is not found
	ErrAssignmentNotFound = errors.New("assignment not found")

	// ErrConcurrentModification is returned when an update loses a
	// version race; the caller re-reads and retries
	ErrConcurrentModification = errors.New("assignment was modified concurrently")
)

// Config holds configuration for the Redis assignment repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed assignment repository
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

// ReplaceAll discards the ledger and inserts the given assignments
func (r *redisRepository) ReplaceAll(ctx context.Context, input *ReplaceAllInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	for _, a := range input.Assignments {
		if a.ID == "" || a.SantaEmail == "" || a.RecipientEmail == "" {
			return errors.New("assignment ID, santa and recipient cannot be empty")
		}
	}

	if err := r.deleteAll(ctx); err != nil {
		return err
	}

	if len(input.Assignments) == 0 {
		return nil
	}

	pipe := r.client.Pipeline()
	for _, a := range input.Assignments {
		payload, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("failed to marshal assignment: %w", err)
		}

		pipe.Set(ctx, assignmentKeyPrefix+a.ID, payload, 0)
		pipe.SAdd(ctx, allAssignmentsKey, a.ID)
		pipe.HSet(ctx, bySantaKey, a.SantaEmail, a.ID)
		pipe.HSet(ctx, byRecipientKey, a.RecipientEmail, a.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert assignments: %w", err)
	}

	return nil
}

// GetBySanta retrieves the assignment where the given participant gives
func (r *redisRepository) GetBySanta(ctx context.Context, input *GetBySantaInput) (*models.Assignment, error) {
	if input == nil || input.SantaEmail == "" {
		return nil, errors.New("input and santa email cannot be empty")
	}

	return r.getByIndex(ctx, bySantaKey, input.SantaEmail)
}

// GetByRecipient retrieves the assignment where the given participant
// receives
func (r *redisRepository) GetByRecipient(ctx context.Context, input *GetByRecipientInput) (*models.Assignment, error) {
	if input == nil || input.RecipientEmail == "" {
		return nil, errors.New("input and recipient email cannot be empty")
	}

	return r.getByIndex(ctx, byRecipientKey, input.RecipientEmail)
}

// getByIndex resolves an email to an assignment ID through an index hash
// and fetches the row
func (r *redisRepository) getByIndex(ctx context.Context, indexKey, email string) (*models.Assignment, error) {
	id, err := r.client.HGet(ctx, indexKey, email).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to resolve assignment index: %w", err)
	}

	return r.get(ctx, id)
}

// get fetches an assignment row by ID
func (r *redisRepository) get(ctx context.Context, id string) (*models.Assignment, error) {
	payload, err := r.client.Get(ctx, assignmentKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	var a models.Assignment
	if err := json.Unmarshal([]byte(payload), &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assignment: %w", err)
	}

	return &a, nil
}

// ListAssignments retrieves the full ledger, ordered by santa email
func (r *redisRepository) ListAssignments(ctx context.Context, input *ListAssignmentsInput) (*ListAssignmentsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	ids, err := r.client.SMembers(ctx, allAssignmentsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list assignment IDs: %w", err)
	}

	if len(ids) == 0 {
		return &ListAssignmentsOutput{
			Assignments: []*models.Assignment{},
		}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		commands[i] = pipe.Get(ctx, assignmentKeyPrefix+id)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	assignments := make([]*models.Assignment, 0, len(ids))
	for i, cmd := range commands {
		payload, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Deleted between the set read and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get assignment %s: %w", ids[i], err)
		}

		var a models.Assignment
		if err := json.Unmarshal([]byte(payload), &a); err != nil {
			return nil, fmt.Errorf("failed to unmarshal assignment %s: %w", ids[i], err)
		}

		assignments = append(assignments, &a)
	}

	sort.Slice(assignments, func(i, j int) bool {
		return assignments[i].SantaEmail < assignments[j].SantaEmail
	})

	return &ListAssignmentsOutput{
		Assignments: assignments,
	}, nil
}

// UpdateAssignment overwrites an assignment behind a WATCH-guarded version
// check. A concurrent writer either trips the version comparison or aborts
// the transaction; both surface as ErrConcurrentModification.
func (r *redisRepository) UpdateAssignment(ctx context.Context, input *UpdateAssignmentInput) error {
	if input == nil || input.Assignment == nil {
		return errors.New("input and assignment cannot be nil")
	}

	if input.Assignment.ID == "" {
		return errors.New("assignment ID cannot be empty")
	}

	key := assignmentKeyPrefix + input.Assignment.ID

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Result()
		if err == redis.Nil {
			return ErrAssignmentNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get assignment: %w", err)
		}

		var stored models.Assignment
		if err := json.Unmarshal([]byte(current), &stored); err != nil {
			return fmt.Errorf("failed to unmarshal assignment: %w", err)
		}

		if stored.Version != input.ExpectedVersion {
			return ErrConcurrentModification
		}

		updated := *input.Assignment
		updated.Version = input.ExpectedVersion + 1

		payload, err := json.Marshal(&updated)
		if err != nil {
			return fmt.Errorf("failed to marshal assignment: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		return err
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		return ErrConcurrentModification
	}

	return err
}

// DeleteAll clears the ledger
func (r *redisRepository) DeleteAll(ctx context.Context, input *DeleteAllInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return r.deleteAll(ctx)
}

func (r *redisRepository) deleteAll(ctx context.Context) error {
	ids, err := r.client.SMembers(ctx, allAssignmentsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to list assignment IDs: %w", err)
	}

	pipe := r.client.Pipeline()
	for _, id := range ids {
		pipe.Del(ctx, assignmentKeyPrefix+id)
	}
	pipe.Del(ctx, allAssignmentsKey)
	pipe.Del(ctx, bySantaKey)
	pipe.Del(ctx, byRecipientKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete assignments: %w", err)
	}

	return nil
}
