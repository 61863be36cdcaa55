// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"

	"github.com/kaixianglim/event-recommender/internal/model"
	"github.com/kaixianglim/event-recommender/internal/repository"
	"github.com/kaixianglim/event-recommender/internal/service"
)

// Handler holds all HTTP handlers for the recommender API.
type Handler struct {
	svc *service.Service
}

// New constructs a Handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts every API route on the given router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/health", HealthCheck)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)
		r.Post("/", h.CreateUser)
		r.Get("/{id}", h.GetUser)
		r.Get("/{id}/recommendations", h.Recommendations)
		r.Route("/{id}/events", func(r chi.Router) {
			r.Get("/", h.ListUserEvents)
			r.Get("/{eventID}", h.RegistrationStatus)
			r.Post("/{eventID}", h.Register)
			r.Delete("/{eventID}", h.Unregister)
		})
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", h.ListEvents)
		r.Post("/", h.CreateEvent)
		r.Get("/filter-options", h.FilterOptions)
		r.Get("/{id}", h.GetEvent)
		r.Put("/{id}", h.UpdateEvent)
		r.Get("/{id}/organiser", h.Organiser)
	})

	r.Post("/analytics/preferences", h.AggregatePreferences)
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func idParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// respondError maps service-layer errors onto HTTP statuses.
func respondError(w http.ResponseWriter, err error, notFoundMsg string) {
	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, repository.ErrAlreadyRegistered):
		writeError(w, http.StatusConflict, "already registered for this event")
	case errors.As(err, &verrs):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// ─── Users ────────────────────────────────────────────────────────────────────

// ListUsers handles GET /users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	// Return an empty array rather than null for better client compatibility.
	if users == nil {
		users = []model.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// GetUser handles GET /users/{id}
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	user, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		respondError(w, err, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// CreateUser handles POST /users
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	user, err := h.svc.CreateUser(r.Context(), req)
	if err != nil {
		respondError(w, err, "user not found")
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// ─── Events ───────────────────────────────────────────────────────────────────

// ListEvents handles GET /events?filter_type=&filter_value=
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	filterType := r.URL.Query().Get("filter_type")
	filterValue := r.URL.Query().Get("filter_value")

	events, err := h.svc.ListEvents(r.Context(), filterType, filterValue)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list events")
		return
	}
	if events == nil {
		events = []model.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

// FilterOptions handles GET /events/filter-options?type=
func (h *Handler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	filterType := r.URL.Query().Get("type")
	options, err := h.svc.FilterOptions(r.Context(), filterType)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to derive filter options")
		return
	}
	writeJSON(w, http.StatusOK, options)
}

// GetEvent handles GET /events/{id}
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}
	event, err := h.svc.GetEvent(r.Context(), id)
	if err != nil {
		respondError(w, err, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// CreateEvent handles POST /events
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	event, err := h.svc.CreateEvent(r.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusBadRequest, "organiser not found")
			return
		}
		respondError(w, err, "event not found")
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

// UpdateEvent handles PUT /events/{id}
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}
	var req model.UpdateEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := h.svc.UpdateEvent(r.Context(), id, req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, err, "event not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// organiserResponse describes who organises an event. IsOrganiser is only
// present when the caller asked about a specific user.
type organiserResponse struct {
	OrganiserID *int64 `json:"organiser_id"`
	IsOrganiser *bool  `json:"is_organiser,omitempty"`
}

// Organiser handles GET /events/{id}/organiser?user_id=
// With a user_id query the response also reports whether that user
// organises the event.
func (h *Handler) Organiser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}
	organiser, err := h.svc.Organiser(r.Context(), id)
	if err != nil {
		respondError(w, err, "event not found")
		return
	}

	resp := organiserResponse{OrganiserID: organiser}
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}
		is, err := h.svc.IsOrganiser(r.Context(), userID, id)
		if err != nil {
			respondError(w, err, "event not found")
			return
		}
		resp.IsOrganiser = &is
	}
	writeJSON(w, http.StatusOK, resp)
}

// ─── Registrations ────────────────────────────────────────────────────────────

// Register handles POST /users/{id}/events/{eventID}
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := h.pairParams(w, r)
	if !ok {
		return
	}
	reg, err := h.svc.Register(r.Context(), userID, eventID)
	if err != nil {
		respondError(w, err, "user or event not found")
		return
	}
	writeJSON(w, http.StatusCreated, reg)
}

// Unregister handles DELETE /users/{id}/events/{eventID}
func (h *Handler) Unregister(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := h.pairParams(w, r)
	if !ok {
		return
	}
	if err := h.svc.Unregister(r.Context(), userID, eventID); err != nil {
		respondError(w, err, "registration not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RegistrationStatus handles GET /users/{id}/events/{eventID}
func (h *Handler) RegistrationStatus(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := h.pairParams(w, r)
	if !ok {
		return
	}
	registered, err := h.svc.IsRegistered(r.Context(), userID, eventID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to check registration")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"registered": registered})
}

// ListUserEvents handles GET /users/{id}/events
func (h *Handler) ListUserEvents(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	events, err := h.svc.ListUserEvents(r.Context(), userID)
	if err != nil {
		respondError(w, err, "user not found")
		return
	}
	if events == nil {
		events = []model.RegisteredEvent{}
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *Handler) pairParams(w http.ResponseWriter, r *http.Request) (userID, eventID int64, ok bool) {
	userID, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return 0, 0, false
	}
	eventID, err = idParam(r, "eventID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return 0, 0, false
	}
	return userID, eventID, true
}

// ─── Recommendations ──────────────────────────────────────────────────────────

// Recommendations handles GET /users/{id}/recommendations?threshold=
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var threshold *float64
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		t, err := strconv.ParseFloat(raw, 64)
		if err != nil || t < 0 || t > 1 {
			writeError(w, http.StatusBadRequest, "threshold must be a number in [0,1]")
			return
		}
		threshold = &t
	}

	recs, err := h.svc.Recommend(r.Context(), userID, threshold)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute recommendations")
		return
	}
	if recs == nil {
		recs = []model.Recommendation{}
	}
	writeJSON(w, http.StatusOK, recs)
}

// ─── Analytics ────────────────────────────────────────────────────────────────

// AggregatePreferences handles POST /analytics/preferences
func (h *Handler) AggregatePreferences(w http.ResponseWriter, r *http.Request) {
	var req model.AggregateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	profiles, err := h.svc.AggregatePreferences(r.Context(), req)
	if err != nil {
		respondError(w, err, "not found")
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
