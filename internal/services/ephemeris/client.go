// Package ephemeris talks to the Swiss Ephemeris sidecar over HTTP. The
// sidecar owns the astronomical math; this package only moves JSON.
package ephemeris

import (
	"context"
	"fmt"
	"time"

	domsvc "github.com/newdevoleper/match-making/internal/domain/service"
	"github.com/newdevoleper/match-making/pkg/config"
	xhttp "github.com/newdevoleper/match-making/pkg/http"
)

// HTTPServiceBase centralizes client construction and JSON POST handling
// for the sidecar endpoints.
type HTTPServiceBase struct {
	baseURL string
	client  *xhttp.Client
}

// NewHTTPServiceBase builds an HTTP client with timeout and base URL from config.
func NewHTTPServiceBase(cfg *config.Config) *HTTPServiceBase {
	timeout := cfg.Ephemeris.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &HTTPServiceBase{
		baseURL: cfg.Ephemeris.BaseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// PostJSON posts the given payload to `path` under baseURL and decodes JSON into dest.
func (b *HTTPServiceBase) PostJSON(ctx context.Context, path string, payload interface{}, dest interface{}) error {
	if b.client == nil || b.baseURL == "" {
		return fmt.Errorf("ephemeris http client not initialized")
	}
	err := b.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    b.baseURL + path,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: payload,
	}, dest)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	return nil
}

// PostJSONWithRetry posts JSON with up to `attempts` retries for transient errors.
func (b *HTTPServiceBase) PostJSONWithRetry(ctx context.Context, path string, payload interface{}, dest interface{}, attempts int) error {
	if attempts <= 1 {
		return b.PostJSON(ctx, path, payload, dest)
	}
	var err error
	for i := 1; i <= attempts; i++ {
		err = b.PostJSON(ctx, path, payload, dest)
		if err == nil {
			return nil
		}
		select {
		case <-time.After(time.Duration(i) * 50 * time.Millisecond):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

// HTTPEphemeris implements the Ephemeris port against the sidecar.
type HTTPEphemeris struct {
	base     *HTTPServiceBase
	attempts int
}

func NewHTTPEphemeris(cfg *config.Config) *HTTPEphemeris {
	attempts := cfg.Ephemeris.RetryAttempts
	if attempts <= 0 {
		attempts = 3
	}
	return &HTTPEphemeris{base: NewHTTPServiceBase(cfg), attempts: attempts}
}

type cuspsRequest struct {
	JD     float64 `json:"jd"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	System string  `json:"system"`
}

type cuspsResponse struct {
	Cusps []float64 `json:"cusps"`
}

type bodiesRequest struct {
	JD       float64 `json:"jd"`
	Sidereal bool    `json:"sidereal"`
	Ayanamsa string  `json:"ayanamsa"`
}

type bodiesResponse struct {
	Bodies map[string]float64 `json:"bodies"`
}

func (e *HTTPEphemeris) Cusps(ctx context.Context, jd, lat, lon float64) ([12]float64, error) {
	var out [12]float64
	var cr cuspsResponse
	req := cuspsRequest{JD: jd, Lat: lat, Lon: lon, System: "P"}
	if err := e.base.PostJSONWithRetry(ctx, "/houses", req, &cr, e.attempts); err != nil {
		return out, fmt.Errorf("post houses: %w", err)
	}
	if len(cr.Cusps) < 12 {
		return out, fmt.Errorf("houses response has %d cusps, want 12", len(cr.Cusps))
	}
	copy(out[:], cr.Cusps[:12])
	return out, nil
}

func (e *HTTPEphemeris) Bodies(ctx context.Context, jd float64) (map[string]float64, error) {
	var br bodiesResponse
	req := bodiesRequest{JD: jd, Sidereal: true, Ayanamsa: "krishnamurti"}
	if err := e.base.PostJSONWithRetry(ctx, "/bodies", req, &br, e.attempts); err != nil {
		return nil, fmt.Errorf("post bodies: %w", err)
	}
	if len(br.Bodies) == 0 {
		return nil, fmt.Errorf("bodies response is empty")
	}
	return br.Bodies, nil
}

var _ domsvc.Ephemeris = (*HTTPEphemeris)(nil)
