package nasa

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPOD(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/planetary/apod", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "1995-06-16", r.URL.Query().Get("date"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"date":"1995-06-16","title":"Neutron Star Earth","explanation":"A neutron star compared to Earth.","url":"https://apod.nasa.gov/image/e_lens.gif","media_type":"image"}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithAPIBaseURL(srv.URL))
	res, err := c.APOD(context.Background(), "1995-06-16")
	require.NoError(t, err)
	assert.Equal(t, "Neutron Star Earth", res.Title)
	assert.Equal(t, "https://apod.nasa.gov/image/e_lens.gif", res.URL)
}

func TestAPOD_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"msg":"no data for date"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient("test-key", WithAPIBaseURL(srv.URL))
	_, err := c.APOD(context.Background(), "1990-01-01")
	assert.Error(t, err)
}

func TestSearchImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "apollo mission", r.URL.Query().Get("q"))
		assert.Equal(t, "image", r.URL.Query().Get("media_type"))
		assert.Equal(t, "5", r.URL.Query().Get("page_size"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"collection":{"items":[
			{"data":[{"title":"Apollo 11 Crew","description":"Portrait.","date_created":"1969-03-30T00:00:00Z","nasa_id":"S69-31739","keywords":["apollo","crew"]}],
			 "links":[{"href":"https://images-assets.nasa.gov/image/S69-31739/thumb.jpg","rel":"preview"}]}
		]}}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithImagesBaseURL(srv.URL))
	res, err := c.SearchImages(context.Background(), "apollo mission", 5)
	require.NoError(t, err)
	require.Len(t, res.Collection.Items, 1)
	item := res.Collection.Items[0]
	assert.Equal(t, "S69-31739", item.Data[0].NASAID)
	assert.Equal(t, []string{"apollo", "crew"}, item.Data[0].Keywords)
	assert.Equal(t, "https://images-assets.nasa.gov/image/S69-31739/thumb.jpg", item.Links[0].Href)
}

func TestNearEarthObjects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/neo/rest/v1/feed", r.URL.Path)
		assert.Equal(t, "2024-06-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2024-06-02", r.URL.Query().Get("end_date"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"element_count":1,"near_earth_objects":{"2024-06-01":[
			{"id":"54016","name":"(2020 HS7)","estimated_diameter":{"meters":{"estimated_diameter_min":30.5,"estimated_diameter_max":68.2}},
			 "close_approach_data":[{"close_approach_date":"2024-06-01","relative_velocity":{"kilometers_per_hour":"41000"},"miss_distance":{"kilometers":"1200000"}}]}
		]}}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithAPIBaseURL(srv.URL))
	feed, err := c.NearEarthObjects(context.Background(), "2024-06-01", "2024-06-02")
	require.NoError(t, err)
	assert.Equal(t, 1, feed.ElementCount)
	require.Len(t, feed.NearEarthObjects["2024-06-01"], 1)
	neo := feed.NearEarthObjects["2024-06-01"][0]
	assert.Equal(t, "(2020 HS7)", neo.Name)
	assert.InDelta(t, 68.2, neo.EstimatedDiameter.Meters.Max, 0.001)
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "moon", r.URL.Query().Get("q"))
		w.Write([]byte(`{"collection":{"items":[]}}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithImagesBaseURL(srv.URL))
	assert.NoError(t, c.Ping(context.Background()))
}

func TestPing_Unhealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient("test-key", WithImagesBaseURL(srv.URL))
	assert.Error(t, c.Ping(context.Background()))
}
