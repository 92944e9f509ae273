package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/tarihce/tarihce-engine/pkg/models"
	"github.com/tarihce/tarihce-engine/pkg/services"
)

// SummaryResponse for GET /api/summary/{year}/{category}
type SummaryResponse struct {
	Summary string        `json:"summary"`
	Source  models.Source `json:"source"`
	Success bool          `json:"success"`
}

// DetailResponse for GET /api/event/{date}/{title}
type DetailResponse struct {
	Detail  string        `json:"detail"`
	Source  models.Source `json:"source"`
	Success bool          `json:"success"`
}

// AddEventRequest for POST /api/events
type AddEventRequest struct {
	EventDate  string `json:"event_date"`
	EventTitle string `json:"event_title"`
	CategoryID int    `json:"category_id"`
	Importance int    `json:"importance,omitempty"`
}

// InvalidateCacheRequest for POST /api/admin/cache/invalidate
type InvalidateCacheRequest struct {
	Prefix string `json:"prefix"`
}

// HistoryHandler serves the historical fact query API.
type HistoryHandler struct {
	history services.HistoryService
	logger  *zap.Logger
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(history services.HistoryService, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{
		history: history,
		logger:  logger,
	}
}

// RegisterRoutes registers the history handler's routes on the given mux.
func (h *HistoryHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/categories", h.ListCategories)
	mux.HandleFunc("GET /api/years", h.ListYears)
	mux.HandleFunc("GET /api/summary/{year}/{category}", h.GetSummary)
	mux.HandleFunc("GET /api/events/{year}/{category}", h.GetEvents)
	mux.HandleFunc("GET /api/event/{date}/{title}", h.GetEventDetail)
	mux.HandleFunc("POST /api/events", h.AddEvent)
	mux.HandleFunc("POST /api/admin/cache/invalidate", h.InvalidateCache)
}

// ListCategories handles GET /api/categories
func (h *HistoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.history.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("Failed to list categories", zap.Error(err))
		h.respondError(w, err)
		return
	}

	if categories == nil {
		categories = []*models.Category{}
	}
	h.respond(w, http.StatusOK, categories)
}

// ListYears handles GET /api/years
func (h *HistoryHandler) ListYears(w http.ResponseWriter, r *http.Request) {
	years, err := h.history.ListYears(r.Context())
	if err != nil {
		h.logger.Error("Failed to list years", zap.Error(err))
		h.respondError(w, err)
		return
	}

	h.respond(w, http.StatusOK, years)
}

// GetSummary handles GET /api/summary/{year}/{category}
func (h *HistoryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	year, ok := h.parseYear(w, r)
	if !ok {
		return
	}
	category := pathValue(r, "category")

	summary, source, err := h.history.GetYearlySummary(r.Context(), year, category)
	if err != nil {
		h.logger.Error("Failed to resolve yearly summary",
			zap.Int("year", year),
			zap.String("category", category),
			zap.Error(err))
		h.respondError(w, err)
		return
	}

	h.respond(w, http.StatusOK, SummaryResponse{Summary: summary, Source: source, Success: true})
}

// GetEvents handles GET /api/events/{year}/{category}
func (h *HistoryHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	year, ok := h.parseYear(w, r)
	if !ok {
		return
	}
	category := pathValue(r, "category")

	events, err := h.history.GetEvents(r.Context(), year, category)
	if err != nil {
		h.logger.Error("Failed to resolve events",
			zap.Int("year", year),
			zap.String("category", category),
			zap.Error(err))
		h.respondError(w, err)
		return
	}

	if events == nil {
		events = []*models.Event{}
	}
	h.respond(w, http.StatusOK, events)
}

// GetEventDetail handles GET /api/event/{date}/{title}
func (h *HistoryHandler) GetEventDetail(w http.ResponseWriter, r *http.Request) {
	date := pathValue(r, "date")
	title := pathValue(r, "title")

	detail, source, err := h.history.GetEventDetail(r.Context(), date, title)
	if err != nil {
		h.logger.Error("Failed to resolve event detail",
			zap.String("date", date),
			zap.String("title", title),
			zap.Error(err))
		h.respondError(w, err)
		return
	}

	h.respond(w, http.StatusOK, DetailResponse{Detail: detail, Source: source, Success: true})
}

// AddEvent handles POST /api/events
func (h *HistoryHandler) AddEvent(w http.ResponseWriter, r *http.Request) {
	var req AddEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Request body must be valid JSON"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	event, err := h.history.AddEvent(r.Context(), req.EventDate, req.EventTitle, req.CategoryID, req.Importance)
	if err != nil {
		h.logger.Error("Failed to add event",
			zap.String("date", req.EventDate),
			zap.String("title", req.EventTitle),
			zap.Error(err))
		h.respondError(w, err)
		return
	}

	h.respond(w, http.StatusCreated, event)
}

// InvalidateCache handles POST /api/admin/cache/invalidate
func (h *HistoryHandler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	var req InvalidateCacheRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Prefix == "" {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "A non-empty prefix is required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	h.history.InvalidateCache(r.Context(), req.Prefix)
	h.respond(w, http.StatusOK, map[string]any{"success": true, "prefix": req.Prefix})
}

func (h *HistoryHandler) parseYear(w http.ResponseWriter, r *http.Request) (int, bool) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_year", "Year must be an integer"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return 0, false
	}
	return year, true
}

func (h *HistoryHandler) respond(w http.ResponseWriter, status int, data any) {
	if err := WriteJSON(w, status, data); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

func (h *HistoryHandler) respondError(w http.ResponseWriter, err error) {
	if werr := MapError(w, err); werr != nil {
		h.logger.Error("Failed to write error response", zap.Error(werr))
	}
}

// pathValue returns the named path segment, URL-decoded. Titles and
// categories arrive percent-encoded from the web client.
func pathValue(r *http.Request, name string) string {
	value := r.PathValue(name)
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}
