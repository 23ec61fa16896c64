package httpapi

import (
	"net/http"

	"github.com/kringle/santaswap/internal/models"
	gameService "github.com/kringle/santaswap/internal/services/game"
)

// handleSetStage moves the global stage. The admin check lives in the
// service; the handler only supplies the caller's identity.
func (h *Handler) handleSetStage(w http.ResponseWriter, r *http.Request) {
	var req SetStageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	p := currentParticipant(r)
	out, err := h.gameService.SetStage(r.Context(), &gameService.SetStageInput{
		AdminEmail: p.Email,
		Stage:      models.Stage(req.Stage),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, &SetStageResponse{Stage: string(out.Stage)})
}

// handleSetMode selects the flow variant
func (h *Handler) handleSetMode(w http.ResponseWriter, r *http.Request) {
	var req SetModeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	p := currentParticipant(r)
	out, err := h.gameService.SetGameMode(r.Context(), &gameService.SetGameModeInput{
		AdminEmail: p.Email,
		Mode:       models.GameMode(req.Mode),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, &SetModeResponse{Mode: string(out.Mode)})
}

// handleGenerateAssignments draws a fresh derangement over the roster
func (h *Handler) handleGenerateAssignments(w http.ResponseWriter, r *http.Request) {
	p := currentParticipant(r)
	out, err := h.gameService.GenerateAssignments(r.Context(), &gameService.GenerateAssignmentsInput{
		AdminEmail: p.Email,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondCreated(w, &GenerateResponse{
		Count: out.Count,
		Stage: string(out.Stage),
	})
}

// handleGetProgress reports gift lifecycle counts
func (h *Handler) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	p := currentParticipant(r)
	out, err := h.gameService.GetProgress(r.Context(), &gameService.GetProgressInput{
		AdminEmail: p.Email,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, &ProgressResponse{
		Stage:     string(out.Stage),
		Total:     out.Total,
		Received:  out.Received,
		Opened:    out.Opened,
		AllOpened: out.AllOpened,
	})
}
