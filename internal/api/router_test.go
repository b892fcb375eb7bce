package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celestial/celestial-chronicles/internal/catalog"
	"github.com/celestial/celestial-chronicles/internal/model"
	"github.com/celestial/celestial-chronicles/internal/nasa"
)

// fakeSource returns canned event data.
type fakeSource struct {
	historical []model.SpaceEvent
	byID       map[string]model.SpaceEvent
	upcoming   []model.UpcomingEvent
	lastLoc    *model.Location
}

func (f *fakeSource) GetHistoricalEvents(ctx context.Context, month, day int) []model.SpaceEvent {
	return f.historical
}

func (f *fakeSource) GetEventByID(id string) (model.SpaceEvent, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return model.SpaceEvent{}, fmt.Errorf("event %q: %w", id, model.ErrNotFound)
}

func (f *fakeSource) GetUpcomingEvents(loc *model.Location) []model.UpcomingEvent {
	f.lastLoc = loc
	return f.upcoming
}

// fakeNEO scripts the near-Earth feed.
type fakeNEO struct {
	feed *nasa.NEOFeed
	err  error
}

func (f *fakeNEO) NearEarthObjects(ctx context.Context, startDate, endDate string) (*nasa.NEOFeed, error) {
	return f.feed, f.err
}

// fakeTracker records calls and returns a fixed progress snapshot.
type fakeTracker struct {
	p     model.UserProgress
	calls []string
}

func (f *fakeTracker) Progress() model.UserProgress { return f.p }

func (f *fakeTracker) ViewEvent(ctx context.Context, eventID string) model.UserProgress {
	f.calls = append(f.calls, "view:"+eventID)
	return f.p
}

func (f *fakeTracker) CompleteCollection(ctx context.Context, collectionID string) model.UserProgress {
	f.calls = append(f.calls, "complete:"+collectionID)
	return f.p
}

func (f *fakeTracker) SetBirthdate(ctx context.Context, birthdate time.Time) model.UserProgress {
	f.calls = append(f.calls, "birthdate:"+birthdate.Format("2006-01-02"))
	return f.p
}

func (f *fakeTracker) SetLocation(ctx context.Context, loc model.Location) model.UserProgress {
	f.calls = append(f.calls, "location:"+loc.City)
	return f.p
}

func (f *fakeTracker) IncrementSolarSystemInteractions(ctx context.Context) model.UserProgress {
	f.calls = append(f.calls, "solar")
	return f.p
}

func (f *fakeTracker) IncrementUpcomingViews(ctx context.Context) model.UserProgress {
	f.calls = append(f.calls, "upcoming")
	return f.p
}

func newTestServer(src *fakeSource, neo *fakeNEO, tracker *fakeTracker) *httptest.Server {
	return httptest.NewServer(NewRouter(src, neo, tracker))
}

func defaultFakes() (*fakeSource, *fakeNEO, *fakeTracker) {
	src := &fakeSource{
		historical: []model.SpaceEvent{{ID: "apod-2023-07-20", Title: "Lunar View"}},
		byID:       map[string]model.SpaceEvent{"apod-2023-07-20": {ID: "apod-2023-07-20", Title: "Lunar View"}},
		upcoming:   []model.UpcomingEvent{{ID: "upcoming-iss-flyover", Name: "ISS Flyover"}},
	}
	neo := &fakeNEO{feed: &nasa.NEOFeed{ElementCount: 2}}
	tracker := &fakeTracker{p: model.UserProgress{
		TotalPoints:  60,
		EventsViewed: []string{"apollo-11"},
		Badges:       []model.Badge{{ID: "first-step", Name: "First Step"}},
	}}
	return src, neo, tracker
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestGetHistorical(t *testing.T) {
	src, neo, tracker := defaultFakes()
	srv := newTestServer(src, neo, tracker)
	defer srv.Close()

	var events []model.SpaceEvent
	resp := getJSON(t, srv.URL+"/api/events/historical?month=7&day=20", &events)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, events, 1)
	assert.Equal(t, "Lunar View", events[0].Title)
}

func TestGetHistorical_ValidatesDate(t *testing.T) {
	src, neo, tracker := defaultFakes()
	srv := newTestServer(src, neo, tracker)
	defer srv.Close()

	for _, query := range []string{
		"month=13&day=1", "month=0&day=1", "month=abc&day=1",
		"month=7&day=32", "month=7&day=0", "month=7", "day=20", "",
	} {
		resp := getJSON(t, srv.URL+"/api/events/historical?"+query, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "query %q", query)
	}
}

func TestGetEventByID(t *testing.T) {
	src, neo, tracker := defaultFakes()
	srv := newTestServer(src, neo, tracker)
	defer srv.Close()

	var event model.SpaceEvent
	resp := getJSON(t, srv.URL+"/api/events/apod-2023-07-20", &event)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Lunar View", event.Title)

	resp = getJSON(t, srv.URL+"/api/events/never-fetched", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetCurated(t *testing.T) {
	src, neo, tracker := defaultFakes()
	srv := newTestServer(src, neo, tracker)
	defer srv.Close()

	var events []model.SpaceEvent
	resp := getJSON(t, srv.URL+"/api/events/curated?month=7&day=20", &events)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, events, 1)
	assert.Equal(t, "apollo-11", events[0].ID)

	events = nil
	resp = getJSON(t, srv.URL+"/api/events/curated?month=12&day=25", &events)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, events)

	resp = getJSON(t, srv.URL+"/api/events/curated?month=0&day=1", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetCollectionsForEvent(t *testing.T) {
	src, neo, tracker := defaultFakes()
	srv := newTestServer(src, neo, tracker)
	defer srv.Close()

	var cols []model.Collection
	resp := getJSON(t, srv.URL+"/api/events/apollo-11/collections", &cols)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, cols, 1)
	assert.Equal(t, "apollo-missions", cols[0].ID)

	cols = nil
	resp = getJSON(t, srv.URL+"/api/events/apod-2023-07-20/collections", &cols)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, cols)
}

func TestGetUpcoming_ParsesLocation(t *testing.T) {
	src, neo, tracker := defaultFakes()
	srv := newTestServer(src, neo, tracker)
	defer srv.Close()

	resp := getJSON(t, srv.URL+"/api/events/upcoming?lat=51.5&lng=-0.12&city=London", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, src.lastLoc)
	assert.Equal(t, "London", src.lastLoc.City)
	assert.InDelta(t, 51.5, src.lastLoc.Lat, 0.001)

	getJSON(t, srv.URL+"/api/events/upcoming", nil)
	assert.Nil(t, src.lastLoc, "no coordinates means no location")
}

func TestGetNearEarthObjects(t *testing.T) {
	src, neo, tracker := defaultFakes()
	srv := newTestServer(src, neo, tracker)
	defer srv.Close()

	var feed nasa.NEOFeed
	resp := getJSON(t, srv.URL+"/api/neo?start=2024-06-01&end=2024-06-02", &feed)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, feed.ElementCount)

	resp = getJSON(t, srv.URL+"/api/neo?start=2024-06-01", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "end date required")
}

func TestGetNearEarthObjects_DegradesToEmptyFeed(t *testing.T) {
	src, _, tracker := defaultFakes()
	neo := &fakeNEO{err: errors.New("rate limited")}
	srv := newTestServer(src, neo, tracker)
	defer srv.Close()

	var feed nasa.NEOFeed
	resp := getJSON(t, srv.URL+"/api/neo?start=2024-06-01&end=2024-06-02", &feed)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, feed.ElementCount)
	assert.NotNil(t, feed.NearEarthObjects)
}

func TestProgressEndpoints(t *testing.T) {
	src, neo, tracker := defaultFakes()
	srv := newTestServer(src, neo, tracker)
	defer srv.Close()

	var p model.UserProgress
	resp := getJSON(t, srv.URL+"/api/progress", &p)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 60, p.TotalPoints)

	resp, err := http.Post(srv.URL+"/api/progress/events/apollo-11/view", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/api/progress/collections/apollo-missions/complete", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/api/progress/collections/not-a-collection/complete", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/api/progress/interactions/solar-system", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/api/progress/interactions/upcoming", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, []string{
		"view:apollo-11",
		"complete:apollo-missions",
		"solar",
		"upcoming",
	}, tracker.calls)
}

func putJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPut, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func TestSetBirthdate(t *testing.T) {
	src, neo, tracker := defaultFakes()
	srv := newTestServer(src, neo, tracker)
	defer srv.Close()

	resp := putJSON(t, srv.URL+"/api/progress/birthdate", `{"birthdate":"2000-01-01"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"birthdate:2000-01-01"}, tracker.calls)

	resp = putJSON(t, srv.URL+"/api/progress/birthdate", `{"birthdate":"01/01/2000"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = putJSON(t, srv.URL+"/api/progress/birthdate", `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSetLocation(t *testing.T) {
	src, neo, tracker := defaultFakes()
	srv := newTestServer(src, neo, tracker)
	defer srv.Close()

	resp := putJSON(t, srv.URL+"/api/progress/location", `{"lat":59.9,"lng":10.7,"city":"Oslo"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"location:Oslo"}, tracker.calls)
}

func TestBadgesEndpoint(t *testing.T) {
	src, neo, _ := defaultFakes()
	earned := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	tracker := &fakeTracker{p: model.UserProgress{
		Badges: []model.Badge{{ID: "first-step", EarnedAt: &earned}},
	}}
	srv := newTestServer(src, neo, tracker)
	defer srv.Close()

	var badges []model.Badge
	resp := getJSON(t, srv.URL+"/api/badges", &badges)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, badges, len(catalog.Badges))

	for i, b := range badges {
		assert.Equal(t, catalog.Badges[i].ID, b.ID, "catalog order preserved")
		if b.ID == "first-step" {
			require.NotNil(t, b.EarnedAt)
			assert.Equal(t, earned, b.EarnedAt.UTC())
		} else {
			assert.Nil(t, b.EarnedAt)
		}
	}
}

func TestCollectionsEndpoint(t *testing.T) {
	src, neo, _ := defaultFakes()
	tracker := &fakeTracker{p: model.UserProgress{
		// apollo-missions completed explicitly; mars-exploration completed
		// implicitly by having viewed all members.
		CollectionsCompleted: []string{"apollo-missions"},
		EventsViewed:         []string{"mariner-4-flyby", "spirit-landing", "perseverance-landing"},
	}}
	srv := newTestServer(src, neo, tracker)
	defer srv.Close()

	var out []struct {
		model.Collection
		Completed bool `json:"completed"`
	}
	resp := getJSON(t, srv.URL+"/api/collections", &out)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, out, len(catalog.Collections))

	completed := map[string]bool{}
	for _, c := range out {
		completed[c.ID] = c.Completed
	}
	assert.True(t, completed["apollo-missions"])
	assert.True(t, completed["mars-exploration"])
	assert.False(t, completed["space-firsts"])
	assert.False(t, completed["women-in-space"], "empty collection stays incomplete")
}

func TestHealthEndpoint(t *testing.T) {
	src, neo, tracker := defaultFakes()
	srv := newTestServer(src, neo, tracker)
	defer srv.Close()

	BindServiceHealth(func() bool { return true })
	BindComponentHealth(func() map[string]bool {
		return map[string]bool{"nasa-api": true, "progress-store-sqlite": true}
	})
	var body struct {
		Status     string          `json:"status"`
		Components map[string]bool `json:"components"`
	}
	resp := getJSON(t, srv.URL+"/api/health", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body.Status)
	assert.True(t, body.Components["nasa-api"])

	BindServiceHealth(func() bool { return false })
	BindComponentHealth(func() map[string]bool {
		return map[string]bool{"nasa-api": false, "progress-store-sqlite": true}
	})
	resp = getJSON(t, srv.URL+"/api/health", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "degraded still serves 200")
	assert.Equal(t, "degraded", body.Status)
	assert.False(t, body.Components["nasa-api"])
}

func TestRequestIDHeader(t *testing.T) {
	src, neo, tracker := defaultFakes()
	srv := newTestServer(src, neo, tracker)
	defer srv.Close()

	resp := getJSON(t, srv.URL+"/api/progress", nil)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}
