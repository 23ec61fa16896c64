package httpapi

import (
	"net/http"

	voteService "github.com/kringle/santaswap/internal/services/vote"
)

// handleCastVote records the caller's star-game ballot
func (h *Handler) handleCastVote(w http.ResponseWriter, r *http.Request) {
	var req VoteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	p := currentParticipant(r)
	_, err := h.voteService.CastVote(r.Context(), &voteService.CastVoteInput{
		VoterEmail:     p.Email,
		CandidateEmail: req.CandidateEmail,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondCreated(w, &MessageResponse{Message: "Vote recorded"})
}

// handleVoteCandidates lists who the caller may vote for
func (h *Handler) handleVoteCandidates(w http.ResponseWriter, r *http.Request) {
	p := currentParticipant(r)
	out, err := h.voteService.ListCandidates(r.Context(), &voteService.ListCandidatesInput{
		VoterEmail: p.Email,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, toParticipantResponses(out.Candidates))
}

// handleTally returns the counted ballots and the plurality winner
func (h *Handler) handleTally(w http.ResponseWriter, r *http.Request) {
	out, err := h.voteService.GetTally(r.Context(), &voteService.GetTallyInput{})
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, toTallyResponse(out))
}

// handleStarAnswers returns the anonymized answer sheets
func (h *Handler) handleStarAnswers(w http.ResponseWriter, r *http.Request) {
	out, err := h.voteService.ListStarAnswers(r.Context(), &voteService.ListStarAnswersInput{})
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, toStarSheetResponses(out.Sheets))
}
