package httpapi

import (
	"net/http"

	"github.com/kringle/santaswap/internal/models"
	gameService "github.com/kringle/santaswap/internal/services/game"
)

// handleSignUp registers a new participant
func (h *Handler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	out, err := h.gameService.SignUp(r.Context(), &gameService.SignUpInput{
		Email:       req.Email,
		Name:        req.Name,
		Passphrase:  req.Passphrase,
		IsAdmin:     req.IsAdmin,
		Clue1:       req.Clue1,
		Clue2:       req.Clue2,
		Clue3:       req.Clue3,
		StarAnswer1: req.StarAnswer1,
		StarAnswer2: req.StarAnswer2,
		StarAnswer3: req.StarAnswer3,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondCreated(w, toParticipantResponse(out.Participant))
}

// handleLogIn verifies credentials and echoes the participant back. The
// client keeps sending the same credentials with every request.
func (h *Handler) handleLogIn(w http.ResponseWriter, r *http.Request) {
	p := currentParticipant(r)
	respondOK(w, toParticipantResponse(p))
}

// handleGetStage returns the current stage and mode
func (h *Handler) handleGetStage(w http.ResponseWriter, r *http.Request) {
	out, err := h.gameService.GetStage(r.Context(), &gameService.GetStageInput{})
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, &StageResponse{
		Stage: string(out.Stage),
		Mode:  string(out.Mode),
	})
}

// handleUpdateClues replaces the caller's clue and star answer text
func (h *Handler) handleUpdateClues(w http.ResponseWriter, r *http.Request) {
	var req UpdateCluesRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	p := currentParticipant(r)
	out, err := h.gameService.UpdateClues(r.Context(), &gameService.UpdateCluesInput{
		Email:       p.Email,
		Clue1:       req.Clue1,
		Clue2:       req.Clue2,
		Clue3:       req.Clue3,
		StarAnswer1: req.StarAnswer1,
		StarAnswer2: req.StarAnswer2,
		StarAnswer3: req.StarAnswer3,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, toParticipantResponse(out.Participant))
}

// handleGetSantaView returns the stage-filtered view of the caller's mission
func (h *Handler) handleGetSantaView(w http.ResponseWriter, r *http.Request) {
	p := currentParticipant(r)
	out, err := h.gameService.GetSantaView(r.Context(), &gameService.GetSantaViewInput{
		SantaEmail: p.Email,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, toSantaViewResponse(out))
}

// handleGetRecipientView returns the stage-filtered view of the caller's gift
func (h *Handler) handleGetRecipientView(w http.ResponseWriter, r *http.Request) {
	p := currentParticipant(r)
	out, err := h.gameService.GetRecipientView(r.Context(), &gameService.GetRecipientViewInput{
		RecipientEmail: p.Email,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, toRecipientViewResponse(out))
}

// handleSetGiftStatus advances the caller's gift one lifecycle step
func (h *Handler) handleSetGiftStatus(w http.ResponseWriter, r *http.Request) {
	var req GiftStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	p := currentParticipant(r)
	out, err := h.gameService.SetGiftStatus(r.Context(), &gameService.SetGiftStatusInput{
		RecipientEmail: p.Email,
		Status:         models.GiftStatus(req.Status),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, &GiftStatusResponse{Status: string(out.Assignment.Status)})
}

// handleWriteGiftStory replaces the caller's gift story
func (h *Handler) handleWriteGiftStory(w http.ResponseWriter, r *http.Request) {
	var req GiftStoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	p := currentParticipant(r)
	_, err := h.gameService.WriteGiftStory(r.Context(), &gameService.WriteGiftStoryInput{
		SantaEmail: p.Email,
		Title:      req.Title,
		Body:       req.Body,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, &MessageResponse{Message: "Story saved"})
}

// handleWriteSantaClue replaces the caller's santa self-clue
func (h *Handler) handleWriteSantaClue(w http.ResponseWriter, r *http.Request) {
	var req SantaClueRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	p := currentParticipant(r)
	_, err := h.gameService.WriteSantaClue(r.Context(), &gameService.WriteSantaClueInput{
		SantaEmail: p.Email,
		Clue:       req.Clue,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, &MessageResponse{Message: "Clue saved"})
}
