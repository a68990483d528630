package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Placeholders shown instead of a resolved place name. Lookups never block
// attendance actions; a bad result is just displayed as-is.
const (
	PlaceNotFound    = "Location not found"
	PlaceUnresolved  = "Unable to resolve location"
	nominatimBaseURL = "https://nominatim.openstreetmap.org"
)

// Geocoder resolves a coordinate pair to a human-readable place name via a
// Nominatim-style reverse lookup, memoizing per coordinate pair so repeated
// rows in the attendance table cost one external call.
type Geocoder struct {
	BaseURL    string
	HTTPClient *http.Client

	mu    sync.Mutex
	cache map[string]string
}

func NewGeocoder() *Geocoder {
	return &Geocoder{
		BaseURL:    nominatimBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		cache:      make(map[string]string),
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		University    string `json:"university"`
		Building      string `json:"building"`
		Neighbourhood string `json:"neighbourhood"`
		Road          string `json:"road"`
		Suburb        string `json:"suburb"`
	} `json:"address"`
}

// Resolve returns the place name for lat,lng. Specific tags win over the
// full formatted address; transport failures yield a placeholder and are not
// cached, so a later call may still succeed.
func (g *Geocoder) Resolve(ctx context.Context, lat, lng float64) string {
	key := strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)

	g.mu.Lock()
	if name, ok := g.cache[key]; ok {
		g.mu.Unlock()
		return name
	}
	g.mu.Unlock()

	url := fmt.Sprintf("%s/reverse?format=json&lat=%s&lon=%s",
		g.BaseURL,
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lng, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return PlaceUnresolved
	}
	// Nominatim's usage policy requires an identifying agent
	req.Header.Set("User-Agent", "attenda-client")

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return PlaceUnresolved
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return PlaceUnresolved
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return PlaceUnresolved
	}

	name := pickPlaceName(body)

	g.mu.Lock()
	g.cache[key] = name
	g.mu.Unlock()
	return name
}

func pickPlaceName(r reverseResponse) string {
	a := r.Address
	for _, candidate := range []string{a.University, a.Building, a.Neighbourhood, a.Road, a.Suburb} {
		if candidate != "" {
			return candidate
		}
	}
	if r.DisplayName != "" {
		return r.DisplayName
	}
	return PlaceNotFound
}
