package httpapi

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router returns a configured chi router with all routes
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Public
	r.Post("/api/signup", h.handleSignUp)
	r.Get("/api/stage", h.handleGetStage)

	// Authenticated (HTTP Basic, re-checked on every request)
	r.Group(func(r chi.Router) {
		r.Use(h.requireAuth)

		r.Post("/api/login", h.handleLogIn)
		r.Put("/api/me/clues", h.handleUpdateClues)

		r.Get("/api/me/santa", h.handleGetSantaView)
		r.Put("/api/me/santa/story", h.handleWriteGiftStory)
		r.Put("/api/me/santa/clue", h.handleWriteSantaClue)

		r.Get("/api/me/gift", h.handleGetRecipientView)
		r.Post("/api/me/gift/status", h.handleSetGiftStatus)

		r.Get("/api/guess/candidates", h.handleGuessCandidates)
		r.Post("/api/guess", h.handleSubmitGuess)
		r.Get("/api/leaderboard", h.handleLeaderboard)

		r.Get("/api/vote/candidates", h.handleVoteCandidates)
		r.Post("/api/vote", h.handleCastVote)
		r.Get("/api/vote/tally", h.handleTally)
		r.Get("/api/star-answers", h.handleStarAnswers)

		// Admin operations; the services enforce the admin flag
		r.Post("/api/admin/stage", h.handleSetStage)
		r.Post("/api/admin/mode", h.handleSetMode)
		r.Post("/api/admin/assignments", h.handleGenerateAssignments)
		r.Get("/api/admin/progress", h.handleGetProgress)
	})

	return r
}
