package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fkhayef/dutreat/internal/participant"
	"github.com/fkhayef/dutreat/internal/split"
	"github.com/fkhayef/dutreat/pkg/middleware"
	"github.com/fkhayef/dutreat/pkg/response"
)

// Handler handles HTTP requests for calculator sessions
type Handler struct {
	service *Service
}

// NewHandler creates a new session handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for session endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/{id}", h.GetByID)
	r.Delete("/{id}", h.Delete)

	// Participant operations
	r.Get("/{id}/participants", h.ListParticipants)
	r.Post("/{id}/participants", h.AddParticipant)
	r.Delete("/{id}/participants/{participantId}", h.RemoveParticipant)

	r.Post("/{id}/calculate", h.Calculate)

	return r
}

// Create handles POST /sessions
// @Summary      Start a calculator session
// @Description  Create an empty session; participants are kept in memory only
// @Tags         sessions
// @Produce      json
// @Success      201 {object} response.APIResponse{data=SessionResponse}
// @Router       /sessions [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	snap := h.service.CreateSession()
	response.JSON(w, http.StatusCreated, snap.ToResponse())
}

// GetByID handles GET /sessions/{id}
// @Summary      Get session by ID
// @Description  Get a session with its participants
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} response.APIResponse{data=SessionResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.GetSession(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, snap.ToResponse())
}

// Delete handles DELETE /sessions/{id}
// @Summary      Delete a session
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSession(chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Session deleted successfully"})
}

// ListParticipants handles GET /sessions/{id}/participants
// @Summary      List participants
// @Description  Participants in the order they were added
// @Tags         participants
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} response.APIResponse{data=[]ParticipantResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{id}/participants [get]
func (h *Handler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListParticipants(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, toParticipantResponses(list))
}

// AddParticipant handles POST /sessions/{id}/participants
// @Summary      Add a participant
// @Description  Add a participant with a name and a payment ratio greater than 0
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body AddParticipantRequest true "Participant"
// @Success      201 {object} response.APIResponse{data=ParticipantResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /sessions/{id}/participants [post]
func (h *Handler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	var req AddParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.service.AddParticipant(chi.URLParam(r, "id"), req.Name, string(req.Ratio))
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusCreated, toParticipantResponse(p))
}

// RemoveParticipant handles DELETE /sessions/{id}/participants/{participantId}
// @Summary      Remove a participant
// @Description  Removing an unknown participant is not an error
// @Tags         participants
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        participantId path int true "Participant ID"
// @Success      200 {object} response.APIResponse{data=[]ParticipantResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{id}/participants/{participantId} [delete]
func (h *Handler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	participantID, err := strconv.ParseInt(chi.URLParam(r, "participantId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid participant ID")
		return
	}

	list, err := h.service.RemoveParticipant(chi.URLParam(r, "id"), participantID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, toParticipantResponses(list))
}

// Calculate handles POST /sessions/{id}/calculate
// @Summary      Split the bill
// @Description  Split the total by ratio; the rounding difference goes to the first participant with the highest ratio
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body CalculateRequest true "Total amount"
// @Success      200 {object} response.APIResponse{data=CalculationResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /sessions/{id}/calculate [post]
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	calc, err := h.service.Calculate(chi.URLParam(r, "id"), string(req.TotalAmount))
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, calc.ToResponse())
}

// writeError maps service errors to API responses
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, participant.ErrEmptyName):
		response.Invalid(w, "EMPTY_NAME", err.Error())
	case errors.Is(err, split.ErrInvalidRatio):
		response.Invalid(w, "INVALID_RATIO", err.Error())
	case errors.Is(err, split.ErrInvalidTotal):
		response.Invalid(w, "INVALID_TOTAL", err.Error())
	case errors.Is(err, split.ErrNoParticipants):
		response.Invalid(w, "NO_PARTICIPANTS", err.Error())
	case errors.Is(err, ErrTooManyParticipants):
		response.Invalid(w, "TOO_MANY_PARTICIPANTS", err.Error())
	default:
		middleware.GetLogger(r.Context()).Error("session request failed", zap.Error(err))
		response.InternalError(w, "Failed to process session request")
	}
}
