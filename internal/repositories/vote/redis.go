package vote

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
	// Votes are keyed by voter so one row per voter is structural
	voteKeyPrefix = "vote:"

	allVotesKey = "votes"
)

var (
	// ErrVoteNotFound is returned when a voter has no vote
	ErrVoteNotFound = errors.New("vote not found")

	// ErrDuplicateVote is returned when a voter already has a vote
	ErrDuplicateVote = errors.New("voter has already voted")
)

// Config holds configuration for the Redis vote repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed vote repository
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

// SaveVote persists a vote. SETNX makes the one-vote-per-voter invariant
// hold even when two submissions race the service's existence pre-check.
func (r *redisRepository) SaveVote(ctx context.Context, input *SaveVoteInput) error {
	if input == nil || input.Vote == nil {
		return errors.New("input and vote cannot be nil")
	}

	v := input.Vote
	if v.VoterEmail == "" || v.VotedForEmail == "" {
		return errors.New("voter and candidate cannot be empty")
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal vote: %w", err)
	}

	created, err := r.client.SetNX(ctx, voteKeyPrefix+v.VoterEmail, payload, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to save vote: %w", err)
	}
	if !created {
		return ErrDuplicateVote
	}

	if err := r.client.SAdd(ctx, allVotesKey, v.VoterEmail).Err(); err != nil {
		return fmt.Errorf("failed to index vote: %w", err)
	}

	return nil
}

// GetVoteByVoter retrieves a voter's existing vote from Redis
func (r *redisRepository) GetVoteByVoter(ctx context.Context, input *GetVoteByVoterInput) (*models.Vote, error) {
	if input == nil || input.VoterEmail == "" {
		return nil, errors.New("input and voter email cannot be empty")
	}

	payload, err := r.client.Get(ctx, voteKeyPrefix+input.VoterEmail).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrVoteNotFound
		}
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}

	var v models.Vote
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vote: %w", err)
	}

	return &v, nil
}

// ListVotes retrieves all votes from Redis, ordered by voter email
func (r *redisRepository) ListVotes(ctx context.Context, input *ListVotesInput) (*ListVotesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	voters, err := r.client.SMembers(ctx, allVotesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list voters: %w", err)
	}

	if len(voters) == 0 {
		return &ListVotesOutput{
			Votes: []*models.Vote{},
		}, nil
	}

	sort.Strings(voters)

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(voters))
	for i, voter := range voters {
		commands[i] = pipe.Get(ctx, voteKeyPrefix+voter)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get votes: %w", err)
	}

	votes := make([]*models.Vote, 0, len(voters))
	for i, cmd := range commands {
		payload, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get vote for %s: %w", voters[i], err)
		}

		var v models.Vote
		if err := json.Unmarshal([]byte(payload), &v); err != nil {
			return nil, fmt.Errorf("failed to unmarshal vote for %s: %w", voters[i], err)
		}

		votes = append(votes, &v)
	}

	return &ListVotesOutput{
		Votes: votes,
	}, nil
}

// DeleteAll clears all votes
func (r *redisRepository) DeleteAll(ctx context.Context, input *DeleteAllInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	voters, err := r.client.SMembers(ctx, allVotesKey).Result()
	if err != nil {
		return fmt.Errorf("failed to list voters: %w", err)
	}

	pipe := r.client.Pipeline()
	for _, voter := range voters {
		pipe.Del(ctx, voteKeyPrefix+voter)
	}
	pipe.Del(ctx, allVotesKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete votes: %w", err)
	}

	return nil
}
