// Package aggregator implements the event aggregation service: a
// read-through TTL cache over the NASA APIs that produces categorized
// SpaceEvent lists per calendar date and degrades to empty results when the
// upstream sources fail. Curated catalog events are served separately by the
// API layer and never mix into aggregated results.
package aggregator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/celestial/celestial-chronicles/internal/model"
	"github.com/celestial/celestial-chronicles/internal/nasa"
)

// Source is the subset of the NASA client the aggregator needs.
type Source interface {
	APOD(ctx context.Context, date string) (*nasa.APODResult, error)
	SearchImages(ctx context.Context, query string, limit int) (*nasa.ImageSearchResult, error)
}

// searchQueries is the fixed keyword list; one entry is selected
// deterministically per date by (month + day) mod len.
var searchQueries = []string{
	"space exploration", "astronaut", "spacecraft", "satellite",
	"mars rover", "space station", "apollo mission", "shuttle",
	"hubble telescope", "planetary", "solar system", "galaxy",
}

const (
	defaultCacheTTL   = time.Hour
	defaultFloorYear  = 1995
	defaultSearchSize = 5
)

type cacheEntry struct {
	events    []model.SpaceEvent
	fetchedAt time.Time
}

// Service aggregates, categorizes and caches space-history events per
// calendar date. Entries expire lazily after the TTL; they are never purged
// proactively. Concurrent misses for the same key are not coalesced: both
// callers fetch and the last writer's entry wins, which is harmless for
// read-only data.
type Service struct {
	src        Source
	log        zerolog.Logger
	ttl        time.Duration
	floorYear  int
	searchSize int
	now        func() time.Time

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithCacheTTL overrides the cache entry time-to-live.
func WithCacheTTL(d time.Duration) ServiceOption {
	return func(s *Service) { s.ttl = d }
}

// WithFloorYear overrides the oldest year scanned for a picture of the day.
func WithFloorYear(year int) ServiceOption {
	return func(s *Service) { s.floorYear = year }
}

// WithSearchPageSize overrides the image search result count.
func WithSearchPageSize(n int) ServiceOption {
	return func(s *Service) { s.searchSize = n }
}

// WithClock overrides the time source. Tests use this to step past the TTL.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// NewService creates an aggregation service over the given source.
func NewService(src Source, log zerolog.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		src:        src,
		log:        log,
		ttl:        defaultCacheTTL,
		floorYear:  defaultFloorYear,
		searchSize: defaultSearchSize,
		now:        time.Now,
		cache:      make(map[string]cacheEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func cacheKey(month, day int) string {
	return fmt.Sprintf("%d-%d", month, day)
}

// GetHistoricalEvents returns the aggregated events for the calendar date.
// A valid cache entry is returned verbatim; otherwise the sources are
// queried, the result cached with the current timestamp, and returned.
// Source failures never propagate: the result degrades toward empty.
func (s *Service) GetHistoricalEvents(ctx context.Context, month, day int) []model.SpaceEvent {
	key := cacheKey(month, day)

	s.mu.Lock()
	if entry, ok := s.cache[key]; ok && s.now().Sub(entry.fetchedAt) < s.ttl {
		s.mu.Unlock()
		return entry.events
	}
	s.mu.Unlock()

	events := s.fetchHistoricalEvents(ctx, month, day)

	s.mu.Lock()
	s.cache[key] = cacheEntry{events: events, fetchedAt: s.now()}
	s.mu.Unlock()
	return events
}

// fetchHistoricalEvents combines two lookups: a picture-of-the-day scan over
// past years (first titled hit wins, at most one record) and one keyword
// image search selected deterministically from the fixed query list. The two
// sources use disjoint id prefixes, so no dedup step is needed here.
func (s *Service) fetchHistoricalEvents(ctx context.Context, month, day int) []model.SpaceEvent {
	events := []model.SpaceEvent{}

	for year := s.now().Year() - 1; year >= s.floorYear; year-- {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		apod, err := s.src.APOD(ctx, date)
		if err != nil {
			// Per-year failures are non-fatal, keep scanning.
			continue
		}
		if apod == nil || apod.Title == "" {
			continue
		}
		events = append(events, model.SpaceEvent{
			ID:           "apod-" + date,
			Date:         model.EventDate{Month: month, Day: day, Year: year},
			Title:        apod.Title,
			Description:  apod.Explanation,
			Category:     model.CategoryDiscovery,
			ImageURL:     apod.URL,
			Significance: "Featured as NASA's Astronomy Picture of the Day",
			NASAID:       "apod-" + date,
		})
		break
	}

	query := searchQueries[(month+day)%len(searchQueries)]
	res, err := s.src.SearchImages(ctx, query, s.searchSize)
	if err != nil {
		s.log.Warn().Err(err).Str("query", query).Msg("image search failed, degrading to partial result")
		return events
	}

	for _, item := range res.Collection.Items {
		if len(item.Data) == 0 || len(item.Links) == 0 {
			continue
		}
		d := item.Data[0]
		created, err := time.Parse(time.RFC3339, d.DateCreated)
		if err != nil {
			s.log.Debug().Str("nasa_id", d.NASAID).Str("date_created", d.DateCreated).Msg("skipping item with unparsable creation date")
			continue
		}
		created = created.UTC()

		description := d.Description
		if description == "" {
			description = "NASA space exploration image."
		}
		events = append(events, model.SpaceEvent{
			ID: "nasa-" + d.NASAID,
			Date: model.EventDate{
				Month: int(created.Month()),
				Day:   created.Day(),
				Year:  created.Year(),
			},
			Title:        d.Title,
			Description:  description,
			Category:     categorizeKeywords(d.Keywords),
			ImageURL:     item.Links[0].Href,
			Significance: "Documented by NASA space exploration programs.",
			RelatedBody:  relatedBody(d.Keywords),
			NASAID:       d.NASAID,
		})
	}
	return events
}

// GetEventByID scans every cached entry for the id. Events are only
// resolvable after a GetHistoricalEvents call populated a cache entry
// containing them; there is no lookup-by-id network path. Expired entries
// are still searched since the data they hold is immutable.
func (s *Service) GetEventByID(id string) (model.SpaceEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entry := range s.cache {
		for _, e := range entry.events {
			if e.ID == id {
				return e, nil
			}
		}
	}
	return model.SpaceEvent{}, fmt.Errorf("event %q: %w", id, model.ErrNotFound)
}
