package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/kringle/santaswap/internal/draw"
	assignmentRepo "github.com/kringle/santaswap/internal/repositories/assignment"
	"github.com/kringle/santaswap/internal/services/game"
	"github.com/kringle/santaswap/internal/services/guess"
	"github.com/kringle/santaswap/internal/services/vote"
)

// Error codes for standardized API error responses
const (
	ErrCodeBadRequest     = "BAD_REQUEST"
	ErrCodeUnauthorized   = "UNAUTHORIZED"
	ErrCodeForbidden      = "FORBIDDEN"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeConflict       = "CONFLICT"
	ErrCodeInternalServer = "INTERNAL_SERVER_ERROR"

	ErrCodeGuessingClosed = "GUESSING_CLOSED"
	ErrCodeGuessExhausted = "GUESS_EXHAUSTED"
	ErrCodeGiftNotOpened  = "GIFT_NOT_OPENED"
	ErrCodeVotingClosed   = "VOTING_CLOSED"
	ErrCodeTallyHidden    = "TALLY_HIDDEN"
	ErrCodeAlreadyVoted   = "ALREADY_VOTED"
)

// APIError represents an error with an HTTP status code and error code
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return e.Message
}

// BadRequest creates a 400 error with a custom message
func BadRequest(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: ErrCodeBadRequest, Message: message}
}

// Unauthorized creates a 401 error with a custom message
func Unauthorized(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Code: ErrCodeUnauthorized, Message: message}
}

// NotFound creates a 404 error with a custom message
func NotFound(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Code: ErrCodeNotFound, Message: message}
}

// Conflict creates a 409 error with a custom message
func Conflict(message string) *APIError {
	return &APIError{Status: http.StatusConflict, Code: ErrCodeConflict, Message: message}
}

// InternalError creates a 500 error and logs the original error
func InternalError(err error) *APIError {
	log.Printf("Internal error: %v", err)
	return &APIError{Status: http.StatusInternalServerError, Code: ErrCodeInternalServer, Message: "Internal server error"}
}

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondOK writes a 200 OK JSON response
func respondOK(w http.ResponseWriter, data any) {
	respondJSON(w, http.StatusOK, data)
}

// respondCreated writes a 201 Created JSON response
func respondCreated(w http.ResponseWriter, data any) {
	respondJSON(w, http.StatusCreated, data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		respondJSON(w, apiErr.Status, apiErr)
		return
	}
	apiErr = ToAPIError(err)
	respondJSON(w, apiErr.Status, apiErr)
}

// decodeJSON decodes JSON from the request body into the target
func decodeJSON(r *http.Request, target any) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return BadRequest("Request body is empty")
		}
		return BadRequest("Invalid JSON: " + err.Error())
	}
	return nil
}

// ToAPIError maps service sentinel errors to API errors
func ToAPIError(err error) *APIError {
	switch {
	case errors.Is(err, game.ErrInvalidCredentials):
		return Unauthorized("Invalid email or passphrase")
	case errors.Is(err, game.ErrNotAdmin):
		return &APIError{Status: http.StatusForbidden, Code: ErrCodeForbidden, Message: "Admin access required"}

	case errors.Is(err, game.ErrParticipantNotFound):
		return NotFound("Participant not found")
	case errors.Is(err, game.ErrNoAssignmentFound),
		errors.Is(err, guess.ErrNoAssignmentFound):
		return NotFound("No assignment found")

	case errors.Is(err, game.ErrParticipantExists):
		return Conflict("A participant with that email already exists")
	case errors.Is(err, game.ErrAssignmentsLocked):
		return Conflict("Assignments can only be generated during signup")
	case errors.Is(err, game.ErrCluesLocked):
		return Conflict("Clues can no longer be edited")
	case errors.Is(err, game.ErrModeLocked):
		return Conflict("The game mode can only be changed during signup")
	case errors.Is(err, assignmentRepo.ErrConcurrentModification):
		return Conflict("The record changed underneath you; try again")
	case errors.Is(err, vote.ErrDuplicateVote):
		return &APIError{Status: http.StatusConflict, Code: ErrCodeAlreadyVoted, Message: "You have already voted"}

	case errors.Is(err, guess.ErrGuessingClosed):
		return &APIError{Status: http.StatusBadRequest, Code: ErrCodeGuessingClosed, Message: "Guessing is not open at this stage"}
	case errors.Is(err, guess.ErrGuessExhausted):
		return &APIError{Status: http.StatusBadRequest, Code: ErrCodeGuessExhausted, Message: "No guesses remaining"}
	case errors.Is(err, guess.ErrGiftNotOpened):
		return &APIError{Status: http.StatusBadRequest, Code: ErrCodeGiftNotOpened, Message: "Open your gift before guessing"}
	case errors.Is(err, vote.ErrVotingClosed):
		return &APIError{Status: http.StatusBadRequest, Code: ErrCodeVotingClosed, Message: "Voting is not open at this stage"}
	case errors.Is(err, vote.ErrTallyHidden):
		return &APIError{Status: http.StatusBadRequest, Code: ErrCodeTallyHidden, Message: "The tally is not visible yet"}

	case errors.Is(err, draw.ErrDerangementUnattainable):
		return Conflict("Could not generate valid pairs; try again")

	case errors.Is(err, draw.ErrInsufficientParticipants):
		return BadRequest("Need at least 2 participants to generate assignments")
	case errors.Is(err, draw.ErrTokenRangeExhausted):
		return BadRequest("Too many participants for the token range")
	case errors.Is(err, game.ErrMissingFields):
		return BadRequest("Email, name, and passphrase are required")
	case errors.Is(err, game.ErrInvalidStage):
		return BadRequest("Unknown stage for the current game mode")
	case errors.Is(err, game.ErrInvalidMode):
		return BadRequest("Unknown game mode")
	case errors.Is(err, game.ErrInvalidTransition):
		return BadRequest("Invalid gift status transition")
	case errors.Is(err, guess.ErrInvalidGuess):
		return BadRequest("That guess is not allowed")
	case errors.Is(err, vote.ErrSelfVote):
		return BadRequest("You cannot vote for yourself")
	case errors.Is(err, vote.ErrIneligibleVoter):
		return BadRequest("You are not eligible to vote")
	case errors.Is(err, vote.ErrInvalidCandidate):
		return BadRequest("That candidate cannot receive votes")
	}

	return InternalError(err)
}
