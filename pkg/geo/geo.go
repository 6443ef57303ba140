// Package geo resolves approximate device coordinates for optional
// enrichment of new transactions. Resolution is best effort with a bounded
// timeout; a save never blocks or fails because location was unavailable.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Timeout bounds a single lookup.
const Timeout = 10 * time.Second

// Position is a resolved coordinate pair.
type Position struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Locator resolves the device position.
type Locator interface {
	Locate(ctx context.Context) (Position, error)
}

// HTTPLocator asks an IP-geolocation endpoint that answers with a JSON body
// containing lat/lon fields.
type HTTPLocator struct {
	URL    string
	Client *http.Client
}

// Locate fetches the position. Callers should wrap ctx with Timeout.
func (l *HTTPLocator) Locate(ctx context.Context) (Position, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return Position{}, fmt.Errorf("geo: build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return Position{}, fmt.Errorf("geo: lookup: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Position{}, fmt.Errorf("geo: lookup status %d", resp.StatusCode)
	}
	var pos Position
	if err := json.NewDecoder(resp.Body).Decode(&pos); err != nil {
		return Position{}, fmt.Errorf("geo: decode: %w", err)
	}
	return pos, nil
}

// Resolve runs a bounded lookup and returns nil on any failure, matching the
// proceed-without-coordinates contract.
func Resolve(ctx context.Context, l Locator) *Position {
	if l == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()
	pos, err := l.Locate(ctx)
	if err != nil {
		return nil
	}
	return &pos
}
