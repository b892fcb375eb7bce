// Package nasa wraps the public NASA HTTP APIs used by the aggregator: the
// Astronomy Picture of the Day, the image-library search, and the near-Earth
// object feed. Both services are treated as unreliable and non-authoritative;
// callers decide how to degrade.
package nasa

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultAPIBaseURL    = "https://api.nasa.gov"
	defaultImagesBaseURL = "https://images-api.nasa.gov"
)

// APODResult is one Astronomy Picture of the Day record.
type APODResult struct {
	Date        string `json:"date"`
	Explanation string `json:"explanation"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	MediaType   string `json:"media_type"`
	HDURL       string `json:"hdurl,omitempty"`
}

// ImageSearchResult mirrors the images-api.nasa.gov search response shape.
type ImageSearchResult struct {
	Collection struct {
		Items []ImageSearchItem `json:"items"`
	} `json:"collection"`
}

// ImageSearchItem is one hit in an image search response.
type ImageSearchItem struct {
	Data []struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		DateCreated string   `json:"date_created"`
		NASAID      string   `json:"nasa_id"`
		Keywords    []string `json:"keywords,omitempty"`
	} `json:"data"`
	Links []struct {
		Href string `json:"href"`
		Rel  string `json:"rel"`
	} `json:"links,omitempty"`
}

// NEOFeed is the near-Earth object feed keyed by approach date.
type NEOFeed struct {
	ElementCount     int                  `json:"element_count"`
	NearEarthObjects map[string][]NEOItem `json:"near_earth_objects"`
}

// NEOItem is one near-Earth object in a feed.
type NEOItem struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	EstimatedDiameter struct {
		Meters struct {
			Min float64 `json:"estimated_diameter_min"`
			Max float64 `json:"estimated_diameter_max"`
		} `json:"meters"`
	} `json:"estimated_diameter"`
	CloseApproachData []struct {
		CloseApproachDate string `json:"close_approach_date"`
		RelativeVelocity  struct {
			KilometersPerHour string `json:"kilometers_per_hour"`
		} `json:"relative_velocity"`
		MissDistance struct {
			Kilometers string `json:"kilometers"`
		} `json:"miss_distance"`
	} `json:"close_approach_data"`
}

// Client calls the NASA APIs. Zero-value base URLs fall back to the public
// endpoints; tests point them at a local httptest server.
type Client struct {
	api    *resty.Client
	images *resty.Client
	apiKey string
}

// Option configures a Client.
type Option func(*Client)

// WithAPIBaseURL overrides the api.nasa.gov base URL.
func WithAPIBaseURL(u string) Option {
	return func(c *Client) { c.api.SetBaseURL(u) }
}

// WithImagesBaseURL overrides the images-api.nasa.gov base URL.
func WithImagesBaseURL(u string) Option {
	return func(c *Client) { c.images.SetBaseURL(u) }
}

// WithTimeout sets the per-request timeout on both underlying clients.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.api.SetTimeout(d)
		c.images.SetTimeout(d)
	}
}

// NewClient creates a Client with the given API key (DEMO_KEY works with
// heavy rate limits).
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		api:    resty.New().SetBaseURL(defaultAPIBaseURL).SetTimeout(10 * time.Second),
		images: resty.New().SetBaseURL(defaultImagesBaseURL).SetTimeout(10 * time.Second),
		apiKey: apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APOD fetches the Astronomy Picture of the Day for an exact date
// (YYYY-MM-DD). At most one titled record exists per date.
func (c *Client) APOD(ctx context.Context, date string) (*APODResult, error) {
	var out APODResult
	resp, err := c.api.R().
		SetContext(ctx).
		SetQueryParam("api_key", c.apiKey).
		SetQueryParam("date", date).
		SetResult(&out).
		Get("/planetary/apod")
	if err != nil {
		return nil, fmt.Errorf("apod request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("apod status %d: %s", resp.StatusCode(), resp.String())
	}
	return &out, nil
}

// SearchImages runs a keyword search against the NASA image library,
// returning up to limit image records.
func (c *Client) SearchImages(ctx context.Context, query string, limit int) (*ImageSearchResult, error) {
	var out ImageSearchResult
	resp, err := c.images.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetQueryParam("media_type", "image").
		SetQueryParam("page_size", strconv.Itoa(limit)).
		SetResult(&out).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("image search request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("image search status %d: %s", resp.StatusCode(), resp.String())
	}
	return &out, nil
}

// NearEarthObjects fetches the NEO feed for a start/end date range
// (YYYY-MM-DD, at most 7 days apart per the upstream contract).
func (c *Client) NearEarthObjects(ctx context.Context, startDate, endDate string) (*NEOFeed, error) {
	var out NEOFeed
	resp, err := c.api.R().
		SetContext(ctx).
		SetQueryParam("api_key", c.apiKey).
		SetQueryParam("start_date", startDate).
		SetQueryParam("end_date", endDate).
		SetResult(&out).
		Get("/neo/rest/v1/feed")
	if err != nil {
		return nil, fmt.Errorf("neo feed request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("neo feed status %d: %s", resp.StatusCode(), resp.String())
	}
	return &out, nil
}

// Ping probes the image search endpoint with a minimal query. Used by the
// health monitor; failures only mark the component unhealthy, the service
// keeps serving cached and curated data.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.images.R().
		SetContext(ctx).
		SetQueryParam("q", "moon").
		SetQueryParam("page_size", "1").
		Get("/search")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("nasa images status %d", resp.StatusCode())
	}
	return nil
}
