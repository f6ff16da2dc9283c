package ephemeris

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	domsvc "github.com/newdevoleper/match-making/internal/domain/service"
	"github.com/newdevoleper/match-making/internal/service/cache"
)

// CachedEphemeris decorates an Ephemeris with a byte cache keyed on the
// request parameters. Ephemeris output for a fixed instant never changes,
// so the TTL only bounds memory, not staleness. Cache errors fall through
// to the inner source.
type CachedEphemeris struct {
	inner domsvc.Ephemeris
	cache cache.BytesCache
	ttl   time.Duration
}

func NewCachedEphemeris(inner domsvc.Ephemeris, c cache.BytesCache, ttl time.Duration) *CachedEphemeris {
	return &CachedEphemeris{inner: inner, cache: c, ttl: ttl}
}

func (e *CachedEphemeris) Cusps(ctx context.Context, jd, lat, lon float64) ([12]float64, error) {
	key := fmt.Sprintf("eph:cusps:%.8f:%.4f:%.4f", jd, lat, lon)
	var out [12]float64
	if b, ok, err := e.cache.GetBytes(key); err == nil && ok {
		if json.Unmarshal(b, &out) == nil {
			return out, nil
		}
	}

	out, err := e.inner.Cusps(ctx, jd, lat, lon)
	if err != nil {
		return out, err
	}
	if b, err := json.Marshal(out); err == nil {
		_ = e.cache.SetBytes(key, b, e.ttl)
	}
	return out, nil
}

func (e *CachedEphemeris) Bodies(ctx context.Context, jd float64) (map[string]float64, error) {
	key := fmt.Sprintf("eph:bodies:%.8f", jd)
	if b, ok, err := e.cache.GetBytes(key); err == nil && ok {
		var out map[string]float64
		if json.Unmarshal(b, &out) == nil {
			return out, nil
		}
	}

	out, err := e.inner.Bodies(ctx, jd)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(out); err == nil {
		_ = e.cache.SetBytes(key, b, e.ttl)
	}
	return out, nil
}

var _ domsvc.Ephemeris = (*CachedEphemeris)(nil)
