package draw

import (
	"errors"
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_draw.go github.com/kringle/santaswap/internal/draw Randomizer

// Token range for the blind-token variant
const (
	TokenMin = 101
	TokenMax = 998
)

// maxShuffleAttempts bounds the rejection sampling loop. Acceptance
// probability approaches 1/e per attempt, so hitting the cap is
// astronomically unlikely for n >= 2.
const maxShuffleAttempts = 100

var (
	// ErrInsufficientParticipants is returned when fewer than 2 participants
	// are available for pairing
	ErrInsufficientParticipants = errors.New("need at least 2 participants to generate assignments")

	// ErrDerangementUnattainable is returned when the retry budget is
	// exceeded without finding a fixed-point-free shuffle
	ErrDerangementUnattainable = errors.New("could not generate valid pairs within the retry budget")

	// ErrTokenRangeExhausted is returned when more tokens are requested than
	// the range holds
	ErrTokenRangeExhausted = errors.New("participant count exceeds the token range")
)

// Randomizer produces the random draws assignment generation needs
type Randomizer interface {
	// Derange returns the ids reshuffled so that no position keeps its
	// original occupant
	Derange(ids []string) ([]string, error)

	// Tokens draws n unique claim tokens from [TokenMin, TokenMax]
	Tokens(n int) ([]int, error)
}

// Shuffler implements Randomizer backed by a seedable PRNG
type Shuffler struct {
	random *rand.Rand
}

// Config for the shuffler
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new shuffler
func New(cfg *Config) *Shuffler {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Shuffler{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Derange produces a uniform random derangement of ids by rejection
// sampling: shuffle, test element-wise against the original order, and
// accept the first shuffle with zero fixed points.
func (s *Shuffler) Derange(ids []string) ([]string, error) {
	if len(ids) < 2 {
		return nil, ErrInsufficientParticipants
	}

	recipients := make([]string, len(ids))
	copy(recipients, ids)

	for attempt := 0; attempt < maxShuffleAttempts; attempt++ {
		s.random.Shuffle(len(recipients), func(i, j int) {
			recipients[i], recipients[j] = recipients[j], recipients[i]
		})

		if isDerangement(ids, recipients) {
			return recipients, nil
		}
	}

	return nil, ErrDerangementUnattainable
}

// isDerangement reports whether no santa is paired with themselves
func isDerangement(santas, recipients []string) bool {
	for i := range santas {
		if santas[i] == recipients[i] {
			return false
		}
	}
	return true
}

// Tokens draws n unique tokens from [TokenMin, TokenMax] without
// replacement
func (s *Shuffler) Tokens(n int) ([]int, error) {
	rangeSize := TokenMax - TokenMin + 1
	if n > rangeSize {
		return nil, ErrTokenRangeExhausted
	}

	perm := s.random.Perm(rangeSize)
	tokens := make([]int, n)
	for i := 0; i < n; i++ {
		tokens[i] = TokenMin + perm[i]
	}

	return tokens, nil
}
