package ephemeris

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/newdevoleper/match-making/internal/service/cache"
)

type countingSource struct {
	cuspCalls, bodyCalls int
	err                  error
}

func (s *countingSource) Cusps(context.Context, float64, float64, float64) ([12]float64, error) {
	s.cuspCalls++
	if s.err != nil {
		return [12]float64{}, s.err
	}
	return [12]float64{0, 30, 60, 90, 120, 150, 180, 210, 240, 270, 300, 330}, nil
}

func (s *countingSource) Bodies(context.Context, float64) (map[string]float64, error) {
	s.bodyCalls++
	if s.err != nil {
		return nil, s.err
	}
	return map[string]float64{"Sun": 123.45, "Moon": 10}, nil
}

func TestCachedEphemerisHitsOnce(t *testing.T) {
	src := &countingSource{}
	c := NewCachedEphemeris(src, cache.NewTTLCache(), time.Minute)
	ctx := context.Background()

	first, err := c.Cusps(ctx, 2451545, 12.97, 77.59)
	if err != nil {
		t.Fatalf("Cusps: %v", err)
	}
	second, err := c.Cusps(ctx, 2451545, 12.97, 77.59)
	if err != nil {
		t.Fatalf("Cusps (cached): %v", err)
	}
	if first != second {
		t.Fatalf("cached cusps differ: %v vs %v", first, second)
	}
	if src.cuspCalls != 1 {
		t.Fatalf("inner source called %d times, want 1", src.cuspCalls)
	}

	if _, err := c.Bodies(ctx, 2451545); err != nil {
		t.Fatalf("Bodies: %v", err)
	}
	if _, err := c.Bodies(ctx, 2451545); err != nil {
		t.Fatalf("Bodies (cached): %v", err)
	}
	if src.bodyCalls != 1 {
		t.Fatalf("inner source called %d times, want 1", src.bodyCalls)
	}
}

func TestCachedEphemerisDistinctKeys(t *testing.T) {
	src := &countingSource{}
	c := NewCachedEphemeris(src, cache.NewTTLCache(), time.Minute)
	ctx := context.Background()

	if _, err := c.Cusps(ctx, 2451545, 12.97, 77.59); err != nil {
		t.Fatalf("Cusps: %v", err)
	}
	if _, err := c.Cusps(ctx, 2451546, 12.97, 77.59); err != nil {
		t.Fatalf("Cusps: %v", err)
	}
	if src.cuspCalls != 2 {
		t.Fatalf("distinct instants must not share a cache entry, calls = %d", src.cuspCalls)
	}
}

func TestCachedEphemerisPropagatesError(t *testing.T) {
	src := &countingSource{err: errors.New("sidecar down")}
	c := NewCachedEphemeris(src, cache.NewTTLCache(), time.Minute)

	if _, err := c.Bodies(context.Background(), 2451545); err == nil {
		t.Fatalf("expected inner error to propagate")
	}
}
