package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kringle/santaswap/internal/draw"
	"github.com/kringle/santaswap/internal/models"
	gameService "github.com/kringle/santaswap/internal/services/game"
	gameMocks "github.com/kringle/santaswap/internal/services/game/mocks"
	guessService "github.com/kringle/santaswap/internal/services/guess"
	guessMocks "github.com/kringle/santaswap/internal/services/guess/mocks"
	voteService "github.com/kringle/santaswap/internal/services/vote"
	voteMocks "github.com/kringle/santaswap/internal/services/vote/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockGameService  *gameMocks.MockService
	mockGuessService *guessMocks.MockService
	mockVoteService  *voteMocks.MockService
	handler          *Handler
	server           *httptest.Server

	alice *models.Participant
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameService = gameMocks.NewMockService(s.mockCtrl)
	s.mockGuessService = guessMocks.NewMockService(s.mockCtrl)
	s.mockVoteService = voteMocks.NewMockService(s.mockCtrl)

	h, err := New(&Config{
		GameService:  s.mockGameService,
		GuessService: s.mockGuessService,
		VoteService:  s.mockVoteService,
	})
	s.Require().NoError(err)
	s.handler = h
	s.server = httptest.NewServer(h.Router())

	s.alice = &models.Participant{
		Email: "alice@example.com",
		Name:  "Alice",
	}
}

func (s *HandlerTestSuite) TearDownTest() {
	s.server.Close()
	s.mockCtrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

// expectLogIn satisfies the basic-auth middleware for one request
func (s *HandlerTestSuite) expectLogIn(p *models.Participant) {
	s.mockGameService.EXPECT().
		LogIn(gomock.Any(), &gameService.LogInInput{
			Email:      p.Email,
			Passphrase: "hunter2",
		}).
		Return(&gameService.LogInOutput{Participant: p}, nil)
}

func (s *HandlerTestSuite) request(method, path string, body any, as *models.Participant) *http.Response {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, s.server.URL+path, &buf)
	s.Require().NoError(err)
	if as != nil {
		req.SetBasicAuth(as.Email, "hunter2")
	}

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	return resp
}

func (s *HandlerTestSuite) decode(resp *http.Response, target any) {
	defer resp.Body.Close()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(target))
}

func (s *HandlerTestSuite) TestSignUp() {
	s.mockGameService.EXPECT().
		SignUp(gomock.Any(), &gameService.SignUpInput{
			Email:      "alice@example.com",
			Name:       "Alice",
			Passphrase: "hunter2",
			Clue1:      "loves skiing",
		}).
		Return(&gameService.SignUpOutput{Participant: s.alice}, nil)

	resp := s.request(http.MethodPost, "/api/signup", &SignUpRequest{
		Email:      "alice@example.com",
		Name:       "Alice",
		Passphrase: "hunter2",
		Clue1:      "loves skiing",
	}, nil)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var body ParticipantResponse
	s.decode(resp, &body)
	s.Equal("alice@example.com", body.Email)
}

func (s *HandlerTestSuite) TestSignUpDuplicate() {
	s.mockGameService.EXPECT().
		SignUp(gomock.Any(), gomock.Any()).
		Return(nil, gameService.ErrParticipantExists)

	resp := s.request(http.MethodPost, "/api/signup", &SignUpRequest{
		Email:      "alice@example.com",
		Name:       "Alice",
		Passphrase: "hunter2",
	}, nil)
	s.Equal(http.StatusConflict, resp.StatusCode)
}

func (s *HandlerTestSuite) TestLogIn() {
	s.expectLogIn(s.alice)

	resp := s.request(http.MethodPost, "/api/login", nil, s.alice)
	s.Equal(http.StatusOK, resp.StatusCode)

	var body ParticipantResponse
	s.decode(resp, &body)
	s.Equal("Alice", body.Name)
}

func (s *HandlerTestSuite) TestLogInBadCredentials() {
	s.mockGameService.EXPECT().
		LogIn(gomock.Any(), gomock.Any()).
		Return(nil, gameService.ErrInvalidCredentials)

	resp := s.request(http.MethodPost, "/api/login", nil, s.alice)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *HandlerTestSuite) TestMissingCredentials() {
	resp := s.request(http.MethodGet, "/api/me/gift", nil, nil)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *HandlerTestSuite) TestGetStage() {
	s.mockGameService.EXPECT().
		GetStage(gomock.Any(), gomock.Any()).
		Return(&gameService.GetStageOutput{
			Stage: models.StageGiftHunt,
			Mode:  models.ModeToken,
		}, nil)

	resp := s.request(http.MethodGet, "/api/stage", nil, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var body StageResponse
	s.decode(resp, &body)
	s.Equal("gift_hunt", body.Stage)
	s.Equal("token", body.Mode)
}

func (s *HandlerTestSuite) TestSubmitGuess() {
	s.expectLogIn(s.alice)
	s.mockGuessService.EXPECT().
		SubmitGuess(gomock.Any(), &guessService.SubmitGuessInput{
			RecipientEmail: s.alice.Email,
			GuessEmail:     "bob@example.com",
		}).
		Return(&guessService.SubmitGuessOutput{
			Correct:          false,
			RemainingGuesses: 1,
		}, nil)

	resp := s.request(http.MethodPost, "/api/guess", &GuessRequest{
		GuessEmail: "bob@example.com",
	}, s.alice)
	s.Equal(http.StatusOK, resp.StatusCode)

	var body GuessResponse
	s.decode(resp, &body)
	s.False(body.Correct)
	s.Equal(1, body.RemainingGuesses)
}

func (s *HandlerTestSuite) TestSubmitGuessClosed() {
	s.expectLogIn(s.alice)
	s.mockGuessService.EXPECT().
		SubmitGuess(gomock.Any(), gomock.Any()).
		Return(nil, guessService.ErrGuessingClosed)

	resp := s.request(http.MethodPost, "/api/guess", &GuessRequest{
		GuessEmail: "bob@example.com",
	}, s.alice)
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var body APIError
	s.decode(resp, &body)
	s.Equal(ErrCodeGuessingClosed, body.Code)
}

func (s *HandlerTestSuite) TestLeaderboard() {
	guessedAt := time.Date(2025, 12, 20, 19, 30, 0, 0, time.UTC)

	s.expectLogIn(s.alice)
	s.mockGuessService.EXPECT().
		GetLeaderboard(gomock.Any(), gomock.Any()).
		Return(&guessService.GetLeaderboardOutput{
			Leaderboard: &models.Leaderboard{
				Entries: []*models.LeaderboardEntry{
					{
						Rank:             1,
						ParticipantEmail: s.alice.Email,
						ParticipantName:  "Alice",
						GuessedAt:        guessedAt,
						Eligible:         true,
					},
				},
				PrizeCutoff: 5,
			},
		}, nil)

	resp := s.request(http.MethodGet, "/api/leaderboard", nil, s.alice)
	s.Equal(http.StatusOK, resp.StatusCode)

	var body LeaderboardResponse
	s.decode(resp, &body)
	s.Require().Len(body.Entries, 1)
	s.Equal(1, body.Entries[0].Rank)
	s.Equal(5, body.PrizeCutoff)
}

func (s *HandlerTestSuite) TestCastVote() {
	s.expectLogIn(s.alice)
	s.mockVoteService.EXPECT().
		CastVote(gomock.Any(), &voteService.CastVoteInput{
			VoterEmail:     s.alice.Email,
			CandidateEmail: "bob@example.com",
		}).
		Return(&voteService.CastVoteOutput{
			Vote: &models.Vote{VoterEmail: s.alice.Email, VotedForEmail: "bob@example.com"},
		}, nil)

	resp := s.request(http.MethodPost, "/api/vote", &VoteRequest{
		CandidateEmail: "bob@example.com",
	}, s.alice)
	s.Equal(http.StatusCreated, resp.StatusCode)
}

func (s *HandlerTestSuite) TestCastVoteDuplicate() {
	s.expectLogIn(s.alice)
	s.mockVoteService.EXPECT().
		CastVote(gomock.Any(), gomock.Any()).
		Return(nil, voteService.ErrDuplicateVote)

	resp := s.request(http.MethodPost, "/api/vote", &VoteRequest{
		CandidateEmail: "bob@example.com",
	}, s.alice)
	s.Equal(http.StatusConflict, resp.StatusCode)

	var body APIError
	s.decode(resp, &body)
	s.Equal(ErrCodeAlreadyVoted, body.Code)
}

func (s *HandlerTestSuite) TestTally() {
	s.expectLogIn(s.alice)
	s.mockVoteService.EXPECT().
		GetTally(gomock.Any(), gomock.Any()).
		Return(&voteService.GetTallyOutput{
			Counts: []*voteService.CandidateCount{
				{Email: "bob@example.com", Name: "Bob", Count: 3},
			},
			Winner: &models.Participant{Email: "bob@example.com", Name: "Bob"},
		}, nil)

	resp := s.request(http.MethodGet, "/api/vote/tally", nil, s.alice)
	s.Equal(http.StatusOK, resp.StatusCode)

	var body TallyResponse
	s.decode(resp, &body)
	s.Require().NotNil(body.Winner)
	s.Equal("bob@example.com", body.Winner.Email)
}

func (s *HandlerTestSuite) TestAdminStageRequiresAdmin() {
	s.expectLogIn(s.alice)
	s.mockGameService.EXPECT().
		SetStage(gomock.Any(), gomock.Any()).
		Return(nil, gameService.ErrNotAdmin)

	resp := s.request(http.MethodPost, "/api/admin/stage", &SetStageRequest{
		Stage: "event_day",
	}, s.alice)
	s.Equal(http.StatusForbidden, resp.StatusCode)
}

func (s *HandlerTestSuite) TestAdminGenerateAssignments() {
	admin := &models.Participant{Email: "host@example.com", Name: "Host", IsAdmin: true}

	s.expectLogIn(admin)
	s.mockGameService.EXPECT().
		GenerateAssignments(gomock.Any(), &gameService.GenerateAssignmentsInput{
			AdminEmail: admin.Email,
		}).
		Return(&gameService.GenerateAssignmentsOutput{
			Count: 6,
			Stage: models.StageTokenReveal,
		}, nil)

	resp := s.request(http.MethodPost, "/api/admin/assignments", nil, admin)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var body GenerateResponse
	s.decode(resp, &body)
	s.Equal(6, body.Count)
	s.Equal("token_reveal", body.Stage)
}

func (s *HandlerTestSuite) TestAdminGenerateAssignmentsTooFewPlayers() {
	admin := &models.Participant{Email: "host@example.com", Name: "Host", IsAdmin: true}

	s.expectLogIn(admin)
	s.mockGameService.EXPECT().
		GenerateAssignments(gomock.Any(), gomock.Any()).
		Return(nil, draw.ErrInsufficientParticipants)

	resp := s.request(http.MethodPost, "/api/admin/assignments", nil, admin)
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var body APIError
	s.decode(resp, &body)
	s.Equal(ErrCodeBadRequest, body.Code)
	s.Equal("Need at least 2 participants to generate assignments", body.Message)
}

func (s *HandlerTestSuite) TestAdminGenerateAssignmentsRetryableFailure() {
	admin := &models.Participant{Email: "host@example.com", Name: "Host", IsAdmin: true}

	s.expectLogIn(admin)
	s.mockGameService.EXPECT().
		GenerateAssignments(gomock.Any(), gomock.Any()).
		Return(nil, draw.ErrDerangementUnattainable)

	resp := s.request(http.MethodPost, "/api/admin/assignments", nil, admin)
	s.Equal(http.StatusConflict, resp.StatusCode)

	var body APIError
	s.decode(resp, &body)
	s.Equal("Could not generate valid pairs; try again", body.Message)
}

func (s *HandlerTestSuite) TestRecipientViewHidesEmptyFields() {
	s.expectLogIn(s.alice)
	s.mockGameService.EXPECT().
		GetRecipientView(gomock.Any(), &gameService.GetRecipientViewInput{
			RecipientEmail: s.alice.Email,
		}).
		Return(&gameService.GetRecipientViewOutput{
			Stage:  models.StageTokenReveal,
			Mode:   models.ModeToken,
			Status: models.GiftStatusAssigned,
		}, nil)

	resp := s.request(http.MethodGet, "/api/me/gift", nil, s.alice)
	s.Equal(http.StatusOK, resp.StatusCode)

	var raw map[string]any
	s.decode(resp, &raw)
	s.NotContains(raw, "santa_email")
	s.NotContains(raw, "token")
	s.Equal("assigned", raw["status"])
}
