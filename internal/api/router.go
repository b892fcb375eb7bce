package api

import (
	"github.com/gorilla/mux"
)

// NewRouter wires HTTP routes to handlers.
func NewRouter(src EventSource, neo NEOSource, tracker ProgressTracker) *mux.Router {
	root := mux.NewRouter()
	root.Use(Recover)
	root.Use(RequestID)

	// Events
	events := NewEventsHandler(src, neo)
	root.HandleFunc("/api/events/historical", events.GetHistorical).Methods("GET")
	root.HandleFunc("/api/events/curated", events.GetCurated).Methods("GET")
	root.HandleFunc("/api/events/upcoming", events.GetUpcoming).Methods("GET")
	root.HandleFunc("/api/events/{eventId}", events.GetByID).Methods("GET")
	root.HandleFunc("/api/events/{eventId}/collections", events.GetCollectionsForEvent).Methods("GET")
	root.HandleFunc("/api/neo", events.GetNearEarthObjects).Methods("GET")

	// Progress
	progress := NewProgressHandler(tracker)
	root.HandleFunc("/api/progress", progress.Get).Methods("GET")
	root.HandleFunc("/api/progress/events/{eventId}/view", progress.ViewEvent).Methods("POST")
	root.HandleFunc("/api/progress/collections/{collectionId}/complete", progress.CompleteCollection).Methods("POST")
	root.HandleFunc("/api/progress/birthdate", progress.SetBirthdate).Methods("PUT")
	root.HandleFunc("/api/progress/location", progress.SetLocation).Methods("PUT")
	root.HandleFunc("/api/progress/interactions/solar-system", progress.IncrementSolarSystem).Methods("POST")
	root.HandleFunc("/api/progress/interactions/upcoming", progress.IncrementUpcoming).Methods("POST")

	// Catalogs
	root.HandleFunc("/api/badges", progress.Badges).Methods("GET")
	root.HandleFunc("/api/collections", progress.Collections).Methods("GET")

	// Health
	healthHandler := NewHealthHandler()
	root.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	return root
}
