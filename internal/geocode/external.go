package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultNominatimURL is the public Nominatim search endpoint.
const DefaultNominatimURL = "https://nominatim.openstreetmap.org/search"

// apiPrecision maps Nominatim result types to precision levels.
var apiPrecision = map[string]string{
	"house":         "exact",
	"building":      "exact",
	"street":        "street",
	"neighbourhood": "locality",
	"suburb":        "locality",
	"city":          "city",
	"town":          "city",
	"village":       "city",
	"state":         "state",
	"country":       "country",
}

// apiUncertaintyKm maps precision levels to error radii.
var apiUncertaintyKm = map[string]float64{
	"exact":    0.1,
	"street":   0.5,
	"locality": 2.0,
	"city":     10.0,
	"state":    100.0,
	"country":  500.0,
}

// NominatimClient geocodes against a Nominatim-compatible endpoint.
// Queries are restricted to India.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewNominatimClient creates a client. An empty baseURL uses the
// public endpoint.
func NewNominatimClient(baseURL, userAgent string, timeout time.Duration) *NominatimClient {
	if baseURL == "" {
		baseURL = DefaultNominatimURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &NominatimClient{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Type        string `json:"type"`
	AddressType string `json:"addresstype"`
}

// Geocode queries the endpoint and returns the best hit, or nil when
// the service has none.
func (c *NominatimClient) Geocode(ctx context.Context, query string) (*Result, error) {
	params := url.Values{}
	params.Set("q", query+", India")
	params.Set("format", "jsonv2")
	params.Set("countrycodes", "in")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build geocode request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode request: unexpected status %d", resp.StatusCode)
	}

	var hits []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(hits) == 0 {
		return nil, nil
	}

	hit := hits[0]
	lat, err := strconv.ParseFloat(hit.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse latitude %q: %w", hit.Lat, err)
	}
	lng, err := strconv.ParseFloat(hit.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse longitude %q: %w", hit.Lon, err)
	}

	precision := precisionFor(hit.Type, hit.AddressType)
	return &Result{
		Lat:           lat,
		Lng:           lng,
		Source:        "external",
		Precision:     precision,
		UncertaintyKm: apiUncertaintyKm[precision],
	}, nil
}

func precisionFor(resultType, addressType string) string {
	if p, ok := apiPrecision[resultType]; ok {
		return p
	}
	if p, ok := apiPrecision[addressType]; ok {
		return p
	}
	return "locality"
}
