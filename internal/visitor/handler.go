package visitor

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fkhayef/dutreat/pkg/middleware"
	"github.com/fkhayef/dutreat/pkg/response"
)

// Handler handles HTTP requests for the visitor counter
type Handler struct {
	service *Service
}

// NewHandler creates a new visitor handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for visitor endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Get)
	r.Post("/", h.Record)

	return r
}

// CountResponse represents the response for the visitor counter
type CountResponse struct {
	Count int64 `json:"count"`
}

// Record handles POST /visits
// @Summary      Record a page visit
// @Tags         visits
// @Produce      json
// @Success      200 {object} response.APIResponse{data=CountResponse}
// @Failure      500 {object} response.APIResponse
// @Router       /visits [post]
func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.RecordVisit(r.Context())
	if err != nil {
		middleware.GetLogger(r.Context()).Error("failed to record visit", zap.Error(err))
		response.InternalError(w, "Failed to record visit")
		return
	}

	response.JSON(w, http.StatusOK, &CountResponse{Count: count.Count})
}

// Get handles GET /visits
// @Summary      Get the visit count
// @Tags         visits
// @Produce      json
// @Success      200 {object} response.APIResponse{data=CountResponse}
// @Failure      500 {object} response.APIResponse
// @Router       /visits [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.Current(r.Context())
	if err != nil {
		middleware.GetLogger(r.Context()).Error("failed to get visit count", zap.Error(err))
		response.InternalError(w, "Failed to get visit count")
		return
	}

	response.JSON(w, http.StatusOK, &CountResponse{Count: count.Count})
}
