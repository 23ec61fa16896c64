package httpapi

// SignUpRequest registers a new participant
type SignUpRequest struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Passphrase string `json:"passphrase"`
	IsAdmin    bool   `json:"is_admin"`

	Clue1 string `json:"clue_1"`
	Clue2 string `json:"clue_2"`
	Clue3 string `json:"clue_3"`

	StarAnswer1 string `json:"star_answer_1"`
	StarAnswer2 string `json:"star_answer_2"`
	StarAnswer3 string `json:"star_answer_3"`
}

// UpdateCluesRequest replaces a participant's clue and star answer text
type UpdateCluesRequest struct {
	Clue1 string `json:"clue_1"`
	Clue2 string `json:"clue_2"`
	Clue3 string `json:"clue_3"`

	StarAnswer1 string `json:"star_answer_1"`
	StarAnswer2 string `json:"star_answer_2"`
	StarAnswer3 string `json:"star_answer_3"`
}

// SetStageRequest moves the global stage
type SetStageRequest struct {
	Stage string `json:"stage"`
}

// SetModeRequest selects the flow variant
type SetModeRequest struct {
	Mode string `json:"mode"`
}

// GiftStatusRequest advances the caller's gift lifecycle
type GiftStatusRequest struct {
	Status string `json:"status"`
}

// GiftStoryRequest replaces the caller's gift story
type GiftStoryRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// SantaClueRequest replaces the caller's santa self-clue
type SantaClueRequest struct {
	Clue string `json:"clue"`
}

// GuessRequest submits a santa identity guess
type GuessRequest struct {
	GuessEmail string `json:"guess_email"`
}

// VoteRequest casts a star-game ballot
type VoteRequest struct {
	CandidateEmail string `json:"candidate_email"`
}
