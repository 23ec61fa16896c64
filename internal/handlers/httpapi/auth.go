package httpapi

import (
	"context"
	"net/http"

	"github.com/kringle/santaswap/internal/models"
	gameService "github.com/kringle/santaswap/internal/services/game"
)

type contextKey string

// participantKey carries the authenticated participant through the request
// context
const participantKey contextKey = "participant"

// requireAuth authenticates every request with HTTP Basic credentials:
// the email as username, the passphrase as password. There are no
// sessions; each request re-checks against the store.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, passphrase, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="santaswap"`)
			respondError(w, Unauthorized("Credentials required"))
			return
		}

		out, err := h.gameService.LogIn(r.Context(), &gameService.LogInInput{
			Email:      email,
			Passphrase: passphrase,
		})
		if err != nil {
			respondError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), participantKey, out.Participant)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentParticipant returns the authenticated participant stashed by
// requireAuth
func currentParticipant(r *http.Request) *models.Participant {
	p, _ := r.Context().Value(participantKey).(*models.Participant)
	return p
}
