package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/celestial/celestial-chronicles/internal/api/respond"
	"github.com/celestial/celestial-chronicles/internal/catalog"
	"github.com/celestial/celestial-chronicles/internal/model"
	"github.com/celestial/celestial-chronicles/internal/nasa"
)

// EventSource is the aggregation surface the events handler needs.
type EventSource interface {
	GetHistoricalEvents(ctx context.Context, month, day int) []model.SpaceEvent
	GetEventByID(id string) (model.SpaceEvent, error)
	GetUpcomingEvents(loc *model.Location) []model.UpcomingEvent
}

// NEOSource fetches the near-Earth object feed.
type NEOSource interface {
	NearEarthObjects(ctx context.Context, startDate, endDate string) (*nasa.NEOFeed, error)
}

type EventsHandler struct {
	src EventSource
	neo NEOSource
}

func NewEventsHandler(src EventSource, neo NEOSource) *EventsHandler {
	return &EventsHandler{src: src, neo: neo}
}

// GetHistorical serves GET /api/events/historical?month=&day=.
func (h *EventsHandler) GetHistorical(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		respond.WriteBadRequest(w, "month must be an integer in [1,12]")
		return
	}
	day, err := strconv.Atoi(r.URL.Query().Get("day"))
	if err != nil || day < 1 || day > 31 {
		respond.WriteBadRequest(w, "day must be an integer in [1,31]")
		return
	}
	events := h.src.GetHistoricalEvents(r.Context(), month, day)
	respond.WriteJSON(w, http.StatusOK, events)
}

// GetByID serves GET /api/events/{eventId}. An id that has not been fetched
// into the cache yet resolves as not-found.
func (h *EventsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["eventId"]
	event, err := h.src.GetEventByID(id)
	if errors.Is(err, model.ErrNotFound) {
		respond.WriteNotFound(w, "event not in cache; fetch its date first")
		return
	}
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, event)
}

// GetCurated serves GET /api/events/curated?month=&day=: the curated catalog
// entries for a date. Always available, independent of the NASA upstreams.
func (h *EventsHandler) GetCurated(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		respond.WriteBadRequest(w, "month must be an integer in [1,12]")
		return
	}
	day, err := strconv.Atoi(r.URL.Query().Get("day"))
	if err != nil || day < 1 || day > 31 {
		respond.WriteBadRequest(w, "day must be an integer in [1,31]")
		return
	}
	events := catalog.EventsByDate(month, day)
	if events == nil {
		events = []model.SpaceEvent{}
	}
	respond.WriteJSON(w, http.StatusOK, events)
}

// GetCollectionsForEvent serves GET /api/events/{eventId}/collections: the
// curated collections the event belongs to, empty for aggregated events.
func (h *EventsHandler) GetCollectionsForEvent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["eventId"]
	cols := catalog.CollectionsByEventID(id)
	if cols == nil {
		cols = []model.Collection{}
	}
	respond.WriteJSON(w, http.StatusOK, cols)
}

// GetUpcoming serves GET /api/events/upcoming with optional lat/lng/city.
func (h *EventsHandler) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	var loc *model.Location
	q := r.URL.Query()
	if q.Get("lat") != "" && q.Get("lng") != "" {
		lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
		lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
		if errLat == nil && errLng == nil {
			loc = &model.Location{Lat: lat, Lng: lng, City: q.Get("city")}
		}
	}
	respond.WriteJSON(w, http.StatusOK, h.src.GetUpcomingEvents(loc))
}

// GetNearEarthObjects serves GET /api/neo?start=&end=. Upstream failure
// degrades to an empty feed, matching the rest of the read surface.
func (h *EventsHandler) GetNearEarthObjects(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		respond.WriteBadRequest(w, "start and end dates required (YYYY-MM-DD)")
		return
	}
	feed, err := h.neo.NearEarthObjects(r.Context(), start, end)
	if err != nil {
		log.Warn().Err(err).Msg("neo feed unavailable")
		respond.WriteJSON(w, http.StatusOK, nasa.NEOFeed{NearEarthObjects: map[string][]nasa.NEOItem{}})
		return
	}
	respond.WriteJSON(w, http.StatusOK, feed)
}
