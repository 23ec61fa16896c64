package vote

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/kringle/santaswap/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 12, 20, 18, 30, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetVote() {
	ctx := context.Background()

	err := s.repo.SaveVote(ctx, &SaveVoteInput{
		Vote: &models.Vote{
			ID:            "vote-1",
			VoterEmail:    "alice@example.com",
			VotedForEmail: "bob@example.com",
			CreatedAt:     s.testNow,
		},
	})
	s.Require().NoError(err)

	got, err := s.repo.GetVoteByVoter(ctx, &GetVoteByVoterInput{
		VoterEmail: "alice@example.com",
	})
	s.Require().NoError(err)
	s.Equal("bob@example.com", got.VotedForEmail)
	s.Equal(s.testNow.Unix(), got.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestSecondVoteRejected() {
	ctx := context.Background()

	err := s.repo.SaveVote(ctx, &SaveVoteInput{
		Vote: &models.Vote{
			ID:            "vote-1",
			VoterEmail:    "alice@example.com",
			VotedForEmail: "bob@example.com",
			CreatedAt:     s.testNow,
		},
	})
	s.Require().NoError(err)

	err = s.repo.SaveVote(ctx, &SaveVoteInput{
		Vote: &models.Vote{
			ID:            "vote-2",
			VoterEmail:    "alice@example.com",
			VotedForEmail: "carol@example.com",
			CreatedAt:     s.testNow,
		},
	})
	s.Require().ErrorIs(err, ErrDuplicateVote)

	// The original ballot stands
	got, err := s.repo.GetVoteByVoter(ctx, &GetVoteByVoterInput{
		VoterEmail: "alice@example.com",
	})
	s.Require().NoError(err)
	s.Equal("bob@example.com", got.VotedForEmail)
}

func (s *RedisRepositoryTestSuite) TestGetMissingVote() {
	_, err := s.repo.GetVoteByVoter(context.Background(), &GetVoteByVoterInput{
		VoterEmail: "nobody@example.com",
	})
	s.Require().ErrorIs(err, ErrVoteNotFound)
}

func (s *RedisRepositoryTestSuite) TestListAndDeleteVotes() {
	ctx := context.Background()

	for _, v := range []struct{ voter, candidate string }{
		{"carol@example.com", "bob@example.com"},
		{"alice@example.com", "bob@example.com"},
		{"bob@example.com", "alice@example.com"},
	} {
		err := s.repo.SaveVote(ctx, &SaveVoteInput{
			Vote: &models.Vote{
				ID:            v.voter + "-vote",
				VoterEmail:    v.voter,
				VotedForEmail: v.candidate,
				CreatedAt:     s.testNow,
			},
		})
		s.Require().NoError(err)
	}

	list, err := s.repo.ListVotes(ctx, &ListVotesInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Votes, 3)
	s.Equal("alice@example.com", list.Votes[0].VoterEmail)
	s.Equal("bob@example.com", list.Votes[1].VoterEmail)
	s.Equal("carol@example.com", list.Votes[2].VoterEmail)

	err = s.repo.DeleteAll(ctx, &DeleteAllInput{})
	s.Require().NoError(err)

	list, err = s.repo.ListVotes(ctx, &ListVotesInput{})
	s.Require().NoError(err)
	s.Empty(list.Votes)
}
