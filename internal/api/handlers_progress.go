package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/celestial/celestial-chronicles/internal/api/respond"
	"github.com/celestial/celestial-chronicles/internal/catalog"
	"github.com/celestial/celestial-chronicles/internal/model"
)

// ProgressTracker is the update surface the progress handler needs.
type ProgressTracker interface {
	Progress() model.UserProgress
	ViewEvent(ctx context.Context, eventID string) model.UserProgress
	CompleteCollection(ctx context.Context, collectionID string) model.UserProgress
	SetBirthdate(ctx context.Context, birthdate time.Time) model.UserProgress
	SetLocation(ctx context.Context, loc model.Location) model.UserProgress
	IncrementSolarSystemInteractions(ctx context.Context) model.UserProgress
	IncrementUpcomingViews(ctx context.Context) model.UserProgress
}

type ProgressHandler struct {
	tracker ProgressTracker
}

func NewProgressHandler(tracker ProgressTracker) *ProgressHandler {
	return &ProgressHandler{tracker: tracker}
}

// Get serves GET /api/progress.
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, h.tracker.Progress())
}

// ViewEvent serves POST /api/progress/events/{eventId}/view.
func (h *ProgressHandler) ViewEvent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["eventId"]
	if id == "" {
		respond.WriteBadRequest(w, "eventId required")
		return
	}
	respond.WriteJSON(w, http.StatusOK, h.tracker.ViewEvent(r.Context(), id))
}

// CompleteCollection serves POST /api/progress/collections/{collectionId}/complete.
func (h *ProgressHandler) CompleteCollection(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["collectionId"]
	if _, ok := catalog.CollectionByID(id); !ok {
		respond.WriteNotFound(w, "unknown collection")
		return
	}
	respond.WriteJSON(w, http.StatusOK, h.tracker.CompleteCollection(r.Context(), id))
}

// SetBirthdate serves PUT /api/progress/birthdate.
func (h *ProgressHandler) SetBirthdate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Birthdate string `json:"birthdate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	birthdate, err := time.Parse("2006-01-02", in.Birthdate)
	if err != nil {
		respond.WriteBadRequest(w, "birthdate must be YYYY-MM-DD")
		return
	}
	respond.WriteJSON(w, http.StatusOK, h.tracker.SetBirthdate(r.Context(), birthdate))
}

// SetLocation serves PUT /api/progress/location.
func (h *ProgressHandler) SetLocation(w http.ResponseWriter, r *http.Request) {
	var in model.Location
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	respond.WriteJSON(w, http.StatusOK, h.tracker.SetLocation(r.Context(), in))
}

// IncrementSolarSystem serves POST /api/progress/interactions/solar-system.
func (h *ProgressHandler) IncrementSolarSystem(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, h.tracker.IncrementSolarSystemInteractions(r.Context()))
}

// IncrementUpcoming serves POST /api/progress/interactions/upcoming.
func (h *ProgressHandler) IncrementUpcoming(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, h.tracker.IncrementUpcomingViews(r.Context()))
}

// Badges serves GET /api/badges: the full catalog with earned markers.
func (h *ProgressHandler) Badges(w http.ResponseWriter, r *http.Request) {
	p := h.tracker.Progress()
	out := make([]model.Badge, 0, len(catalog.Badges))
	for _, b := range catalog.Badges {
		for _, earned := range p.Badges {
			if earned.ID == b.ID {
				b.EarnedAt = earned.EarnedAt
				break
			}
		}
		out = append(out, b)
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// Collections serves GET /api/collections with per-collection completion
// state evaluated against the viewed-event set.
func (h *ProgressHandler) Collections(w http.ResponseWriter, r *http.Request) {
	p := h.tracker.Progress()
	type collectionStatus struct {
		model.Collection
		Completed bool `json:"completed"`
	}
	out := make([]collectionStatus, 0, len(catalog.Collections))
	for _, c := range catalog.Collections {
		out = append(out, collectionStatus{
			Collection: c,
			Completed:  p.HasCompleted(c.ID) || catalog.IsCollectionComplete(c, &p),
		})
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
