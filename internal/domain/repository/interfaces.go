package repository

import (
	"context"

	"github.com/newdevoleper/match-making/internal/domain/models"
)

// ResultSink receives the summary record of every completed match for the
// downstream reporting pipeline. Sink failures must never affect the
// already-computed result.
type ResultSink interface {
	Init(ctx context.Context) error // ensure topic/table, health checks
	Publish(ctx context.Context, rec *models.MatchRecord) error
	Close() error
}

type Metrics interface {
	RecordChartAnalyzed()
	RecordMatchVerdict(verdict string)
	RecordGunaScore(score int)
	RecordLatency(op string, seconds float64)
	RecordError(kind string)
	RecordSinkPublished(backend string)
}
