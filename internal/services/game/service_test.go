package game

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/kringle/santaswap/internal/common/clock/mocks"
	uuidMocks "github.com/kringle/santaswap/internal/common/uuid/mocks"
	"github.com/kringle/santaswap/internal/draw"
	drawMocks "github.com/kringle/santaswap/internal/draw/mocks"
	"github.com/kringle/santaswap/internal/models"
	assignmentRepo "github.com/kringle/santaswap/internal/repositories/assignment"
	assignmentMocks "github.com/kringle/santaswap/internal/repositories/assignment/mocks"
	configRepo "github.com/kringle/santaswap/internal/repositories/config"
	configMocks "github.com/kringle/santaswap/internal/repositories/config/mocks"
	participantRepo "github.com/kringle/santaswap/internal/repositories/participant"
	participantMocks "github.com/kringle/santaswap/internal/repositories/participant/mocks"
	voteRepo "github.com/kringle/santaswap/internal/repositories/vote"
	voteMocks "github.com/kringle/santaswap/internal/repositories/vote/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockConfigRepo      *configMocks.MockRepository
	mockParticipantRepo *participantMocks.MockRepository
	mockAssignmentRepo  *assignmentMocks.MockRepository
	mockVoteRepo        *voteMocks.MockRepository
	mockRandomizer      *drawMocks.MockRandomizer
	mockClock           *clockMocks.MockClock
	mockUUID            *uuidMocks.MockUUID
	gameService         Service
	ctx                 context.Context

	// Test data
	testTime time.Time

	adminEmail string
	admin      *models.Participant

	aliceEmail string
	alice      *models.Participant
	bobEmail   string
	bob        *models.Participant
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockConfigRepo = configMocks.NewMockRepository(s.mockCtrl)
	s.mockParticipantRepo = participantMocks.NewMockRepository(s.mockCtrl)
	s.mockAssignmentRepo = assignmentMocks.NewMockRepository(s.mockCtrl)
	s.mockVoteRepo = voteMocks.NewMockRepository(s.mockCtrl)
	s.mockRandomizer = drawMocks.NewMockRandomizer(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 12, 5, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.adminEmail = "admin@example.com"
	s.admin = &models.Participant{
		Email:   s.adminEmail,
		Name:    "The Organizer",
		IsAdmin: true,
	}

	s.aliceEmail = "alice@example.com"
	s.alice = &models.Participant{
		Email: s.aliceEmail,
		Name:  "Alice",
		Clue1: "collects vinyl",
		Clue2: "always cold",
		Clue3: "loud laugh",
	}

	s.bobEmail = "bob@example.com"
	s.bob = &models.Participant{
		Email: s.bobEmail,
		Name:  "Bob",
		Clue1: "runs marathons",
		Clue2: "tea not coffee",
		Clue3: "bad puns",
	}

	svc, err := New(&Config{
		DefaultMode:     models.ModeToken,
		ConfigRepo:      s.mockConfigRepo,
		ParticipantRepo: s.mockParticipantRepo,
		AssignmentRepo:  s.mockAssignmentRepo,
		VoteRepo:        s.mockVoteRepo,
		Randomizer:      s.mockRandomizer,
		Clock:           s.mockClock,
		UUIDGenerator:   s.mockUUID,
	})
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

// expectStage sets up one fresh read of the stage value
func (s *GameServiceTestSuite) expectStage(stage models.Stage) {
	s.mockConfigRepo.EXPECT().
		GetValue(s.ctx, &configRepo.GetValueInput{Key: configRepo.KeyStage}).
		Return(&configRepo.GetValueOutput{Value: string(stage)}, nil)
}

// expectMode sets up one fresh read of the game mode
func (s *GameServiceTestSuite) expectMode(mode models.GameMode) {
	s.mockConfigRepo.EXPECT().
		GetValue(s.ctx, &configRepo.GetValueInput{Key: configRepo.KeyGameMode}).
		Return(&configRepo.GetValueOutput{Value: string(mode)}, nil)
}

// expectAdmin sets up the admin lookup
func (s *GameServiceTestSuite) expectAdmin() {
	s.mockParticipantRepo.EXPECT().
		GetParticipant(s.ctx, &participantRepo.GetParticipantInput{Email: s.adminEmail}).
		Return(s.admin, nil)
}

func (s *GameServiceTestSuite) TestSignUpNormalizesEmail() {
	s.mockParticipantRepo.EXPECT().
		CreateParticipant(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *participantRepo.CreateParticipantInput) error {
			s.Equal("carol@example.com", input.Participant.Email)
			return nil
		})

	out, err := s.gameService.SignUp(s.ctx, &SignUpInput{
		Email:      "  Carol@Example.COM ",
		Name:       "Carol",
		Passphrase: "mistletoe",
	})
	s.Require().NoError(err)
	s.Equal("carol@example.com", out.Participant.Email)
}

func (s *GameServiceTestSuite) TestSignUpMissingFields() {
	_, err := s.gameService.SignUp(s.ctx, &SignUpInput{
		Email: "carol@example.com",
		Name:  "Carol",
	})
	s.Require().ErrorIs(err, ErrMissingFields)
}

func (s *GameServiceTestSuite) TestSignUpDuplicateEmail() {
	s.mockParticipantRepo.EXPECT().
		CreateParticipant(s.ctx, gomock.Any()).
		Return(participantRepo.ErrParticipantExists)

	_, err := s.gameService.SignUp(s.ctx, &SignUpInput{
		Email:      s.aliceEmail,
		Name:       "Alice",
		Passphrase: "tinsel",
	})
	s.Require().ErrorIs(err, ErrParticipantExists)
}

func (s *GameServiceTestSuite) TestLogIn() {
	s.mockParticipantRepo.EXPECT().
		GetParticipantByCredentials(s.ctx, &participantRepo.GetParticipantByCredentialsInput{
			Email:      s.aliceEmail,
			Passphrase: "tinsel",
		}).
		Return(s.alice, nil)

	out, err := s.gameService.LogIn(s.ctx, &LogInInput{
		Email:      "Alice@example.com",
		Passphrase: "tinsel",
	})
	s.Require().NoError(err)
	s.Equal("Alice", out.Participant.Name)
}

func (s *GameServiceTestSuite) TestLogInBadCredentials() {
	s.mockParticipantRepo.EXPECT().
		GetParticipantByCredentials(s.ctx, gomock.Any()).
		Return(nil, participantRepo.ErrParticipantNotFound)

	_, err := s.gameService.LogIn(s.ctx, &LogInInput{
		Email:      s.aliceEmail,
		Passphrase: "wrong",
	})
	s.Require().ErrorIs(err, ErrInvalidCredentials)
}

func (s *GameServiceTestSuite) TestUpdateCluesDuringSignup() {
	s.expectStage(models.StageSignup)
	s.mockParticipantRepo.EXPECT().
		GetParticipant(s.ctx, &participantRepo.GetParticipantInput{Email: s.aliceEmail}).
		Return(s.alice, nil)
	s.mockParticipantRepo.EXPECT().
		SaveParticipant(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *participantRepo.SaveParticipantInput) error {
			s.Equal("new clue", input.Participant.Clue1)
			return nil
		})

	_, err := s.gameService.UpdateClues(s.ctx, &UpdateCluesInput{
		Email: s.aliceEmail,
		Clue1: "new clue",
	})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TestUpdateCluesLockedAfterSignup() {
	s.expectStage(models.StageEventDay)

	_, err := s.gameService.UpdateClues(s.ctx, &UpdateCluesInput{
		Email: s.aliceEmail,
		Clue1: "too late",
	})
	s.Require().ErrorIs(err, ErrCluesLocked)
}

func (s *GameServiceTestSuite) TestSetStage() {
	s.expectAdmin()
	s.expectMode(models.ModeToken)
	s.mockConfigRepo.EXPECT().
		SetValue(s.ctx, &configRepo.SetValueInput{
			Key:   configRepo.KeyStage,
			Value: string(models.StageEventDay),
		}).
		Return(nil)

	out, err := s.gameService.SetStage(s.ctx, &SetStageInput{
		AdminEmail: s.adminEmail,
		Stage:      models.StageEventDay,
	})
	s.Require().NoError(err)
	s.Equal(models.StageEventDay, out.Stage)
}

func (s *GameServiceTestSuite) TestSetStageRequiresAdmin() {
	s.mockParticipantRepo.EXPECT().
		GetParticipant(s.ctx, &participantRepo.GetParticipantInput{Email: s.aliceEmail}).
		Return(s.alice, nil)

	_, err := s.gameService.SetStage(s.ctx, &SetStageInput{
		AdminEmail: s.aliceEmail,
		Stage:      models.StageEventDay,
	})
	s.Require().ErrorIs(err, ErrNotAdmin)
}

func (s *GameServiceTestSuite) TestSetStageRejectsWrongModeStage() {
	s.expectAdmin()
	s.expectMode(models.ModeToken)

	// clue_2 belongs to the classic flow
	_, err := s.gameService.SetStage(s.ctx, &SetStageInput{
		AdminEmail: s.adminEmail,
		Stage:      models.StageClue2,
	})
	s.Require().ErrorIs(err, ErrInvalidStage)
}

func (s *GameServiceTestSuite) TestSetGameModeAfterSignupLocked() {
	s.expectAdmin()
	s.expectStage(models.StageEventDay)

	_, err := s.gameService.SetGameMode(s.ctx, &SetGameModeInput{
		AdminEmail: s.adminEmail,
		Mode:       models.ModeClassic,
	})
	s.Require().ErrorIs(err, ErrModeLocked)
}

func (s *GameServiceTestSuite) TestGenerateAssignmentsTokenMode() {
	s.expectAdmin()
	s.expectStage(models.StageSignup)
	s.expectMode(models.ModeToken)

	s.mockParticipantRepo.EXPECT().
		ListParticipants(s.ctx, &participantRepo.ListParticipantsInput{PlayersOnly: true}).
		Return(&participantRepo.ListParticipantsOutput{
			Participants: []*models.Participant{s.alice, s.bob},
		}, nil)

	s.mockRandomizer.EXPECT().
		Derange([]string{s.aliceEmail, s.bobEmail}).
		Return([]string{s.bobEmail, s.aliceEmail}, nil)

	s.mockRandomizer.EXPECT().
		Tokens(2).
		Return([]int{412, 873}, nil)

	s.mockUUID.EXPECT().NewUUID().Return("id-1")
	s.mockUUID.EXPECT().NewUUID().Return("id-2")

	s.mockAssignmentRepo.EXPECT().
		ReplaceAll(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *assignmentRepo.ReplaceAllInput) error {
			s.Require().Len(input.Assignments, 2)

			first := input.Assignments[0]
			s.Equal(s.aliceEmail, first.SantaEmail)
			s.Equal(s.bobEmail, first.RecipientEmail)
			s.Equal(models.GiftStatusAssigned, first.Status)
			s.Require().NotNil(first.Token)
			s.Equal(412, *first.Token)
			s.Equal(s.testTime, first.CreatedAt)

			second := input.Assignments[1]
			s.Equal(s.bobEmail, second.SantaEmail)
			s.Equal(s.aliceEmail, second.RecipientEmail)
			return nil
		})

	s.mockVoteRepo.EXPECT().
		DeleteAll(s.ctx, &voteRepo.DeleteAllInput{}).
		Return(nil)

	s.mockConfigRepo.EXPECT().
		SetValue(s.ctx, &configRepo.SetValueInput{
			Key:   configRepo.KeyStage,
			Value: string(models.StageTokenReveal),
		}).
		Return(nil)

	out, err := s.gameService.GenerateAssignments(s.ctx, &GenerateAssignmentsInput{
		AdminEmail: s.adminEmail,
	})
	s.Require().NoError(err)
	s.Equal(2, out.Count)
	s.Equal(models.StageTokenReveal, out.Stage)
}

func (s *GameServiceTestSuite) TestGenerateAssignmentsLockedMidGame() {
	s.expectAdmin()
	s.expectStage(models.StageEventDay)

	_, err := s.gameService.GenerateAssignments(s.ctx, &GenerateAssignmentsInput{
		AdminEmail: s.adminEmail,
	})
	s.Require().ErrorIs(err, ErrAssignmentsLocked)
}

func (s *GameServiceTestSuite) TestGenerateAssignmentsTooFewPlayers() {
	s.expectAdmin()
	s.expectStage(models.StageSignup)
	s.expectMode(models.ModeToken)

	s.mockParticipantRepo.EXPECT().
		ListParticipants(s.ctx, &participantRepo.ListParticipantsInput{PlayersOnly: true}).
		Return(&participantRepo.ListParticipantsOutput{
			Participants: []*models.Participant{s.alice},
		}, nil)

	s.mockRandomizer.EXPECT().
		Derange([]string{s.aliceEmail}).
		Return(nil, draw.ErrInsufficientParticipants)

	_, err := s.gameService.GenerateAssignments(s.ctx, &GenerateAssignmentsInput{
		AdminEmail: s.adminEmail,
	})
	s.Require().ErrorIs(err, draw.ErrInsufficientParticipants)
}

func (s *GameServiceTestSuite) TestSetGiftStatusForwardStep() {
	row := &models.Assignment{
		ID:             "a-1",
		SantaEmail:     s.bobEmail,
		RecipientEmail: s.aliceEmail,
		Status:         models.GiftStatusAssigned,
		Version:        3,
	}

	s.mockAssignmentRepo.EXPECT().
		GetByRecipient(s.ctx, &assignmentRepo.GetByRecipientInput{RecipientEmail: s.aliceEmail}).
		Return(row, nil)

	s.mockAssignmentRepo.EXPECT().
		UpdateAssignment(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *assignmentRepo.UpdateAssignmentInput) error {
			s.Equal(models.GiftStatusReceived, input.Assignment.Status)
			s.Equal(3, input.ExpectedVersion)
			return nil
		})

	out, err := s.gameService.SetGiftStatus(s.ctx, &SetGiftStatusInput{
		RecipientEmail: s.aliceEmail,
		Status:         models.GiftStatusReceived,
	})
	s.Require().NoError(err)
	s.Equal(models.GiftStatusReceived, out.Assignment.Status)
	s.Equal(4, out.Assignment.Version)
}

func (s *GameServiceTestSuite) TestSetGiftStatusRejectsSkippingAhead() {
	row := &models.Assignment{
		ID:             "a-1",
		SantaEmail:     s.bobEmail,
		RecipientEmail: s.aliceEmail,
		Status:         models.GiftStatusAssigned,
	}

	s.mockAssignmentRepo.EXPECT().
		GetByRecipient(s.ctx, gomock.Any()).
		Return(row, nil)

	_, err := s.gameService.SetGiftStatus(s.ctx, &SetGiftStatusInput{
		RecipientEmail: s.aliceEmail,
		Status:         models.GiftStatusOpened,
	})
	s.Require().ErrorIs(err, ErrInvalidTransition)
}

func (s *GameServiceTestSuite) TestSetGiftStatusRejectsBackward() {
	row := &models.Assignment{
		ID:             "a-1",
		SantaEmail:     s.bobEmail,
		RecipientEmail: s.aliceEmail,
		Status:         models.GiftStatusOpened,
	}

	s.mockAssignmentRepo.EXPECT().
		GetByRecipient(s.ctx, gomock.Any()).
		Return(row, nil)

	_, err := s.gameService.SetGiftStatus(s.ctx, &SetGiftStatusInput{
		RecipientEmail: s.aliceEmail,
		Status:         models.GiftStatusReceived,
	})
	s.Require().ErrorIs(err, ErrInvalidTransition)
}

func (s *GameServiceTestSuite) TestSetGiftStatusNoAssignment() {
	s.mockAssignmentRepo.EXPECT().
		GetByRecipient(s.ctx, gomock.Any()).
		Return(nil, assignmentRepo.ErrAssignmentNotFound)

	_, err := s.gameService.SetGiftStatus(s.ctx, &SetGiftStatusInput{
		RecipientEmail: s.aliceEmail,
		Status:         models.GiftStatusReceived,
	})
	s.Require().ErrorIs(err, ErrNoAssignmentFound)
}

func (s *GameServiceTestSuite) TestWriteGiftStory() {
	row := &models.Assignment{
		ID:             "a-1",
		SantaEmail:     s.aliceEmail,
		RecipientEmail: s.bobEmail,
		Status:         models.GiftStatusAssigned,
		Version:        1,
	}

	s.mockAssignmentRepo.EXPECT().
		GetBySanta(s.ctx, &assignmentRepo.GetBySantaInput{SantaEmail: s.aliceEmail}).
		Return(row, nil)

	s.mockAssignmentRepo.EXPECT().
		UpdateAssignment(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *assignmentRepo.UpdateAssignmentInput) error {
			s.Equal("The Hunt", input.Assignment.GiftStoryTitle)
			s.Equal("I saw this and thought of you.", input.Assignment.GiftStoryBody)
			return nil
		})

	_, err := s.gameService.WriteGiftStory(s.ctx, &WriteGiftStoryInput{
		SantaEmail: s.aliceEmail,
		Title:      "The Hunt",
		Body:       "I saw this and thought of you.",
	})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TestSantaViewClassicClueDrip() {
	row := &models.Assignment{
		ID:             "a-1",
		SantaEmail:     s.aliceEmail,
		RecipientEmail: s.bobEmail,
		Status:         models.GiftStatusAssigned,
	}

	s.expectStage(models.StageClue2)
	s.expectMode(models.ModeClassic)
	s.mockAssignmentRepo.EXPECT().
		GetBySanta(s.ctx, &assignmentRepo.GetBySantaInput{SantaEmail: s.aliceEmail}).
		Return(row, nil)
	s.mockParticipantRepo.EXPECT().
		GetParticipant(s.ctx, &participantRepo.GetParticipantInput{Email: s.bobEmail}).
		Return(s.bob, nil)

	view, err := s.gameService.GetSantaView(s.ctx, &GetSantaViewInput{
		SantaEmail: s.aliceEmail,
	})
	s.Require().NoError(err)
	s.Empty(view.TargetName)
	s.Equal([]string{"runs marathons", "tea not coffee"}, view.TargetClues)
}

func (s *GameServiceTestSuite) TestSantaViewNameReveal() {
	row := &models.Assignment{
		ID:             "a-1",
		SantaEmail:     s.aliceEmail,
		RecipientEmail: s.bobEmail,
		Status:         models.GiftStatusAssigned,
	}

	s.expectStage(models.StageNameReveal)
	s.expectMode(models.ModeClassic)
	s.mockAssignmentRepo.EXPECT().
		GetBySanta(s.ctx, gomock.Any()).
		Return(row, nil)
	s.mockParticipantRepo.EXPECT().
		GetParticipant(s.ctx, gomock.Any()).
		Return(s.bob, nil)

	view, err := s.gameService.GetSantaView(s.ctx, &GetSantaViewInput{
		SantaEmail: s.aliceEmail,
	})
	s.Require().NoError(err)
	s.Equal("Bob", view.TargetName)
	s.Empty(view.TargetClues)
}

func (s *GameServiceTestSuite) TestRecipientViewHidesSantaBeforeReveal() {
	token := 412
	row := &models.Assignment{
		ID:             "a-1",
		SantaEmail:     s.bobEmail,
		RecipientEmail: s.aliceEmail,
		Token:          &token,
		Status:         models.GiftStatusReceived,
		SantaClue:      "we met at the offsite",
	}

	s.expectStage(models.StageGiftHunt)
	s.expectMode(models.ModeToken)
	s.mockAssignmentRepo.EXPECT().
		GetByRecipient(s.ctx, &assignmentRepo.GetByRecipientInput{RecipientEmail: s.aliceEmail}).
		Return(row, nil)

	view, err := s.gameService.GetRecipientView(s.ctx, &GetRecipientViewInput{
		RecipientEmail: s.aliceEmail,
	})
	s.Require().NoError(err)
	s.Empty(view.SantaName)
	s.Require().NotNil(view.Token)
	s.Equal(412, *view.Token)

	// Clue and story stay hidden until the gift is open
	s.Empty(view.SantaClue)
}

func (s *GameServiceTestSuite) TestRecipientViewGrandReveal() {
	row := &models.Assignment{
		ID:             "a-1",
		SantaEmail:     s.bobEmail,
		RecipientEmail: s.aliceEmail,
		Status:         models.GiftStatusOpened,
		GiftStoryTitle: "The Hunt",
		GiftStoryBody:  "Found it in a tiny shop.",
	}

	s.expectStage(models.StageGrandReveal)
	s.expectMode(models.ModeToken)
	s.mockAssignmentRepo.EXPECT().
		GetByRecipient(s.ctx, gomock.Any()).
		Return(row, nil)
	s.mockParticipantRepo.EXPECT().
		GetParticipant(s.ctx, &participantRepo.GetParticipantInput{Email: s.bobEmail}).
		Return(s.bob, nil)

	view, err := s.gameService.GetRecipientView(s.ctx, &GetRecipientViewInput{
		RecipientEmail: s.aliceEmail,
	})
	s.Require().NoError(err)
	s.Equal("Bob", view.SantaName)
	s.Equal("The Hunt", view.GiftStoryTitle)
}

func (s *GameServiceTestSuite) TestGetProgress() {
	s.expectAdmin()
	s.expectStage(models.StageEventDay)

	s.mockAssignmentRepo.EXPECT().
		ListAssignments(s.ctx, &assignmentRepo.ListAssignmentsInput{}).
		Return(&assignmentRepo.ListAssignmentsOutput{
			Assignments: []*models.Assignment{
				{Status: models.GiftStatusAssigned},
				{Status: models.GiftStatusReceived},
				{Status: models.GiftStatusOpened},
				{Status: models.GiftStatusRevealed},
			},
		}, nil)

	out, err := s.gameService.GetProgress(s.ctx, &GetProgressInput{
		AdminEmail: s.adminEmail,
	})
	s.Require().NoError(err)
	s.Equal(4, out.Total)
	s.Equal(3, out.Received)
	s.Equal(2, out.Opened)
	s.False(out.AllOpened)
}
