package httpapi

import (
	"net/http"

	guessService "github.com/kringle/santaswap/internal/services/guess"
)

// handleSubmitGuess records the caller's guess at their santa's identity
func (h *Handler) handleSubmitGuess(w http.ResponseWriter, r *http.Request) {
	var req GuessRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	p := currentParticipant(r)
	out, err := h.guessService.SubmitGuess(r.Context(), &guessService.SubmitGuessInput{
		RecipientEmail: p.Email,
		GuessEmail:     req.GuessEmail,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, &GuessResponse{
		Correct:          out.Correct,
		RemainingGuesses: out.RemainingGuesses,
	})
}

// handleGuessCandidates lists who the caller may still guess
func (h *Handler) handleGuessCandidates(w http.ResponseWriter, r *http.Request) {
	p := currentParticipant(r)
	out, err := h.guessService.ListCandidates(r.Context(), &guessService.ListCandidatesInput{
		RecipientEmail: p.Email,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, toParticipantResponses(out.Candidates))
}

// handleLeaderboard returns the fastest-first standings
func (h *Handler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	out, err := h.guessService.GetLeaderboard(r.Context(), &guessService.GetLeaderboardInput{})
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, toLeaderboardResponse(out.Leaderboard))
}
