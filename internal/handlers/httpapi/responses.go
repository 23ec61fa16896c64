package httpapi

import (
	"time"

	"github.com/kringle/santaswap/internal/models"
	gameService "github.com/kringle/santaswap/internal/services/game"
	voteService "github.com/kringle/santaswap/internal/services/vote"
)

// ParticipantResponse is the public projection of a participant; the
// passphrase never leaves the server
type ParticipantResponse struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

func toParticipantResponse(p *models.Participant) *ParticipantResponse {
	return &ParticipantResponse{
		Email:   p.Email,
		Name:    p.Name,
		IsAdmin: p.IsAdmin,
	}
}

func toParticipantResponses(ps []*models.Participant) []*ParticipantResponse {
	out := make([]*ParticipantResponse, len(ps))
	for i, p := range ps {
		out[i] = toParticipantResponse(p)
	}
	return out
}

// MessageResponse carries a simple confirmation
type MessageResponse struct {
	Message string `json:"message"`
}

// SetStageResponse reports the stage after an admin move
type SetStageResponse struct {
	Stage string `json:"stage"`
}

// SetModeResponse reports the mode after an admin switch
type SetModeResponse struct {
	Mode string `json:"mode"`
}

// GiftStatusResponse reports the gift's lifecycle status after an update
type GiftStatusResponse struct {
	Status string `json:"status"`
}

// StageResponse reports the current stage and mode
type StageResponse struct {
	Stage string `json:"stage"`
	Mode  string `json:"mode"`
}

// SantaViewResponse is the stage-filtered view of the caller's mission
type SantaViewResponse struct {
	Stage          string   `json:"stage"`
	Mode           string   `json:"mode"`
	TargetName     string   `json:"target_name,omitempty"`
	TargetClues    []string `json:"target_clues,omitempty"`
	GiftStatus     string   `json:"gift_status"`
	GiftStoryTitle string   `json:"gift_story_title"`
	GiftStoryBody  string   `json:"gift_story_body"`
	SantaClue      string   `json:"santa_clue"`
}

func toSantaViewResponse(v *gameService.GetSantaViewOutput) *SantaViewResponse {
	return &SantaViewResponse{
		Stage:          string(v.Stage),
		Mode:           string(v.Mode),
		TargetName:     v.TargetName,
		TargetClues:    v.TargetClues,
		GiftStatus:     string(v.GiftStatus),
		GiftStoryTitle: v.GiftStoryTitle,
		GiftStoryBody:  v.GiftStoryBody,
		SantaClue:      v.SantaClue,
	}
}

// RecipientViewResponse is the stage-filtered view of the caller's gift
type RecipientViewResponse struct {
	Stage          string `json:"stage"`
	Mode           string `json:"mode"`
	Status         string `json:"status"`
	Token          *int   `json:"token,omitempty"`
	SantaClue      string `json:"santa_clue,omitempty"`
	GiftStoryTitle string `json:"gift_story_title,omitempty"`
	GiftStoryBody  string `json:"gift_story_body,omitempty"`
	GuessCount     int    `json:"guess_count"`
	GuessExhausted bool   `json:"guess_exhausted"`
	IsCorrectGuess bool   `json:"is_correct_guess"`
	SantaName      string `json:"santa_name,omitempty"`
	SantaEmail     string `json:"santa_email,omitempty"`
}

func toRecipientViewResponse(v *gameService.GetRecipientViewOutput) *RecipientViewResponse {
	return &RecipientViewResponse{
		Stage:          string(v.Stage),
		Mode:           string(v.Mode),
		Status:         string(v.Status),
		Token:          v.Token,
		SantaClue:      v.SantaClue,
		GiftStoryTitle: v.GiftStoryTitle,
		GiftStoryBody:  v.GiftStoryBody,
		GuessCount:     v.GuessCount,
		GuessExhausted: v.GuessExhausted,
		IsCorrectGuess: v.IsCorrectGuess,
		SantaName:      v.SantaName,
		SantaEmail:     v.SantaEmail,
	}
}

// GuessResponse reports the outcome of a guess
type GuessResponse struct {
	Correct          bool `json:"correct"`
	RemainingGuesses int  `json:"remaining_guesses"`
}

// LeaderboardEntryResponse is one row of the speed-guess standings
type LeaderboardEntryResponse struct {
	Rank      int       `json:"rank"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	GuessedAt time.Time `json:"guessed_at"`
	Eligible  bool      `json:"eligible"`
}

// LeaderboardResponse is the full speed-guess standings
type LeaderboardResponse struct {
	Entries     []*LeaderboardEntryResponse `json:"entries"`
	PrizeCutoff int                         `json:"prize_cutoff"`
}

func toLeaderboardResponse(l *models.Leaderboard) *LeaderboardResponse {
	entries := make([]*LeaderboardEntryResponse, len(l.Entries))
	for i, e := range l.Entries {
		entries[i] = &LeaderboardEntryResponse{
			Rank:      e.Rank,
			Email:     e.ParticipantEmail,
			Name:      e.ParticipantName,
			GuessedAt: e.GuessedAt,
			Eligible:  e.Eligible,
		}
	}
	return &LeaderboardResponse{
		Entries:     entries,
		PrizeCutoff: l.PrizeCutoff,
	}
}

// TallyEntryResponse is one candidate's ballot count
type TallyEntryResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TallyResponse is the counted star-game vote
type TallyResponse struct {
	Counts []*TallyEntryResponse `json:"counts"`
	Winner *ParticipantResponse  `json:"winner,omitempty"`
}

func toTallyResponse(t *voteService.GetTallyOutput) *TallyResponse {
	counts := make([]*TallyEntryResponse, len(t.Counts))
	for i, c := range t.Counts {
		counts[i] = &TallyEntryResponse{
			Email: c.Email,
			Name:  c.Name,
			Count: c.Count,
		}
	}
	out := &TallyResponse{Counts: counts}
	if t.Winner != nil {
		out.Winner = toParticipantResponse(t.Winner)
	}
	return out
}

// StarSheetResponse is one anonymized answer sheet
type StarSheetResponse struct {
	Answers []string `json:"answers"`
}

func toStarSheetResponses(sheets []*voteService.StarSheet) []*StarSheetResponse {
	out := make([]*StarSheetResponse, len(sheets))
	for i, s := range sheets {
		out[i] = &StarSheetResponse{Answers: s.Answers}
	}
	return out
}

// GenerateResponse reports the result of an assignment generation cycle
type GenerateResponse struct {
	Count int    `json:"count"`
	Stage string `json:"stage"`
}

// ProgressResponse reports gift lifecycle counts for the admin dashboard
type ProgressResponse struct {
	Stage     string `json:"stage"`
	Total     int    `json:"total"`
	Received  int    `json:"received"`
	Opened    int    `json:"opened"`
	AllOpened bool   `json:"all_opened"`
}
