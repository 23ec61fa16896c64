package vote

import (
	"context"
	"errors"
	"sort"

	"github.com/kringle/santaswap/internal/common/clock"
	"github.com/kringle/santaswap/internal/common/uuid"
	"github.com/kringle/santaswap/internal/models"
	configRepo "github.com/kringle/santaswap/internal/repositories/config"
	participantRepo "github.com/kringle/santaswap/internal/repositories/participant"
	voteRepo "github.com/kringle/santaswap/internal/repositories/vote"
	guessService "github.com/kringle/santaswap/internal/services/guess"
)

// service implements the Service interface
type service struct {
	configRepo      configRepo.Repository
	participantRepo participantRepo.Repository
	voteRepo        voteRepo.Repository

	guessService guessService.Service

	clock clock.Clock
	uuids uuid.UUID
}

// New creates a new vote service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.ConfigRepo == nil {
		return nil, errors.New("config repository cannot be nil")
	}
	if cfg.ParticipantRepo == nil {
		return nil, errors.New("participant repository cannot be nil")
	}
	if cfg.VoteRepo == nil {
		return nil, errors.New("vote repository cannot be nil")
	}
	if cfg.GuessService == nil {
		return nil, errors.New("guess service cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		return nil, errors.New("uuid generator cannot be nil")
	}

	return &service{
		configRepo:      cfg.ConfigRepo,
		participantRepo: cfg.ParticipantRepo,
		voteRepo:        cfg.VoteRepo,
		guessService:    cfg.GuessService,
		clock:           cfg.Clock,
		uuids:           cfg.UUIDGenerator,
	}, nil
}

// currentStage reads the global stage fresh from the config store
func (s *service) currentStage(ctx context.Context) (models.Stage, error) {
	out, err := s.configRepo.GetValue(ctx, &configRepo.GetValueInput{
		Key: configRepo.KeyStage,
	})
	if err != nil {
		if errors.Is(err, configRepo.ErrKeyNotFound) {
			return models.StageSignup, nil
		}
		return "", err
	}

	return models.Stage(out.Value), nil
}

// frozenWinners returns the speed-winner set as a lookup. Winners watch
// the vote from the sidelines: they neither vote nor receive votes.
func (s *service) frozenWinners(ctx context.Context) (map[string]bool, error) {
	out, err := s.guessService.GetLeaderboard(ctx, &guessService.GetLeaderboardInput{})
	if err != nil {
		return nil, err
	}

	frozen := make(map[string]bool)
	for _, email := range out.Leaderboard.Winners() {
		frozen[email] = true
	}

	return frozen, nil
}

// getPlayer fetches a participant by email
func (s *service) getPlayer(ctx context.Context, email string) (*models.Participant, error) {
	return s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		Email: email,
	})
}

// CastVote records a participant's one ballot. The existence pre-check and
// the insert are separate steps; the repository's conditional insert
// catches the race between them.
func (s *service) CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	stage, err := s.currentStage(ctx)
	if err != nil {
		return nil, err
	}
	if !stage.AllowsVoting() {
		return nil, ErrVotingClosed
	}

	voterEmail := models.NormalizeEmail(input.VoterEmail)
	candidateEmail := models.NormalizeEmail(input.CandidateEmail)

	if voterEmail == candidateEmail {
		return nil, ErrSelfVote
	}

	voter, err := s.getPlayer(ctx, voterEmail)
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrIneligibleVoter
		}
		return nil, err
	}
	if voter.IsAdmin {
		return nil, ErrIneligibleVoter
	}

	candidate, err := s.getPlayer(ctx, candidateEmail)
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrInvalidCandidate
		}
		return nil, err
	}
	if candidate.IsAdmin {
		return nil, ErrInvalidCandidate
	}

	frozen, err := s.frozenWinners(ctx)
	if err != nil {
		return nil, err
	}
	if frozen[voterEmail] {
		return nil, ErrIneligibleVoter
	}
	if frozen[candidateEmail] {
		return nil, ErrInvalidCandidate
	}

	_, err = s.voteRepo.GetVoteByVoter(ctx, &voteRepo.GetVoteByVoterInput{
		VoterEmail: voterEmail,
	})
	if err == nil {
		return nil, ErrDuplicateVote
	}
	if !errors.Is(err, voteRepo.ErrVoteNotFound) {
		return nil, err
	}

	ballot := &models.Vote{
		ID:            s.uuids.NewUUID(),
		VoterEmail:    voterEmail,
		VotedForEmail: candidateEmail,
		CreatedAt:     s.clock.Now().UTC(),
	}

	err = s.voteRepo.SaveVote(ctx, &voteRepo.SaveVoteInput{
		Vote: ballot,
	})
	if err != nil {
		if errors.Is(err, voteRepo.ErrDuplicateVote) {
			return nil, ErrDuplicateVote
		}
		return nil, err
	}

	return &CastVoteOutput{
		Vote: ballot,
	}, nil
}

// ListCandidates returns who a voter may vote for: every non-admin,
// non-winner participant except themselves
func (s *service) ListCandidates(ctx context.Context, input *ListCandidatesInput) (*ListCandidatesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	voterEmail := models.NormalizeEmail(input.VoterEmail)

	frozen, err := s.frozenWinners(ctx)
	if err != nil {
		return nil, err
	}

	roster, err := s.participantRepo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{
		PlayersOnly: true,
	})
	if err != nil {
		return nil, err
	}

	candidates := make([]*models.Participant, 0, len(roster.Participants))
	for _, p := range roster.Participants {
		if p.Email == voterEmail || frozen[p.Email] {
			continue
		}
		candidates = append(candidates, p)
	}

	return &ListCandidatesOutput{
		Candidates: candidates,
	}, nil
}

// GetTally counts ballots and names the plurality winner. Count ties break
// by candidate email so the winner is deterministic.
func (s *service) GetTally(ctx context.Context, input *GetTallyInput) (*GetTallyOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	stage, err := s.currentStage(ctx)
	if err != nil {
		return nil, err
	}
	if !stage.TallyVisible() {
		return nil, ErrTallyHidden
	}

	ballots, err := s.voteRepo.ListVotes(ctx, &voteRepo.ListVotesInput{})
	if err != nil {
		return nil, err
	}

	byCandidate := make(map[string]int)
	for _, b := range ballots.Votes {
		byCandidate[b.VotedForEmail]++
	}

	roster, err := s.participantRepo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{})
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(roster.Participants))
	for _, p := range roster.Participants {
		names[p.Email] = p.Name
	}

	counts := make([]*CandidateCount, 0, len(byCandidate))
	for email, count := range byCandidate {
		counts = append(counts, &CandidateCount{
			Email: email,
			Name:  names[email],
			Count: count,
		})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count == counts[j].Count {
			return counts[i].Email < counts[j].Email
		}
		return counts[i].Count > counts[j].Count
	})

	out := &GetTallyOutput{
		Counts: counts,
	}

	if len(counts) > 0 {
		winner, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
			Email: counts[0].Email,
		})
		if err != nil && !errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, err
		}
		out.Winner = winner
	}

	return out, nil
}

// ListStarAnswers returns every non-empty answer sheet, ordered by content
// rather than by author so the sheets stay anonymous
func (s *service) ListStarAnswers(ctx context.Context, input *ListStarAnswersInput) (*ListStarAnswersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	roster, err := s.participantRepo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{
		PlayersOnly: true,
	})
	if err != nil {
		return nil, err
	}

	sheets := make([]*StarSheet, 0, len(roster.Participants))
	for _, p := range roster.Participants {
		answers := p.StarAnswers()
		if len(answers) == 0 {
			continue
		}
		sheets = append(sheets, &StarSheet{
			Answers: answers,
		})
	}

	sort.Slice(sheets, func(i, j int) bool {
		return sheets[i].Answers[0] < sheets[j].Answers[0]
	})

	return &ListStarAnswersOutput{
		Sheets: sheets,
	}, nil
}
