package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/newdevoleper/match-making/internal/domain/models"
	"github.com/newdevoleper/match-making/internal/domain/repository"
	pkgkafka "github.com/newdevoleper/match-making/pkg/kafka"
)

// KafkaSink publishes match records to a Kafka topic.
type KafkaSink struct {
	producer *pkgkafka.Producer
	topic    string
	metrics  repository.Metrics
}

// NewKafkaSink creates a Kafka-backed result sink.
func NewKafkaSink(producer *pkgkafka.Producer, topic string, metrics repository.Metrics) repository.ResultSink {
	return &KafkaSink{producer: producer, topic: topic, metrics: metrics}
}

func (s *KafkaSink) Init(ctx context.Context) error {
	return nil // Topic creation is an ops concern
}

func (s *KafkaSink) Publish(ctx context.Context, rec *models.MatchRecord) error {
	key := []byte(rec.Native1 + ":" + rec.Native2)
	if err := s.producer.Publish(ctx, s.topic, key, rec); err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.RecordSinkPublished("kafka")
	}
	return nil
}

func (s *KafkaSink) Close() error {
	if s.producer != nil {
		return s.producer.Close()
	}
	return nil
}

// ClickHouseSink stores match records in a ClickHouse table.
type ClickHouseSink struct {
	db      *sql.DB
	table   string
	metrics repository.Metrics
}

// NewClickHouseSink creates a ClickHouse-backed result sink.
func NewClickHouseSink(db *sql.DB, table string, metrics repository.Metrics) repository.ResultSink {
	return &ClickHouseSink{db: db, table: table, metrics: metrics}
}

func (s *ClickHouseSink) Init(ctx context.Context) error {
	q := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		generated_at DateTime,
		native1 String,
		native2 String,
		guna UInt8,
		verdict String
	) ENGINE = MergeTree() ORDER BY (generated_at, native1)`, s.table)
	_, err := s.db.ExecContext(ctx, q)
	return err
}

func (s *ClickHouseSink) Publish(ctx context.Context, rec *models.MatchRecord) error {
	q := fmt.Sprintf("INSERT INTO %s (generated_at, native1, native2, guna, verdict) VALUES (?, ?, ?, ?, ?)", s.table)
	_, err := s.db.ExecContext(ctx, q,
		rec.GeneratedAt,
		rec.Native1,
		rec.Native2,
		uint8(rec.Guna),
		rec.Verdict,
	)
	if err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.RecordSinkPublished("clickhouse")
	}
	return nil
}

func (s *ClickHouseSink) Close() error {
	return nil // Pool managed by pkg
}

// NoopSink discards records when no reporting backend is configured.
type NoopSink struct{}

func NewNoopSink() repository.ResultSink { return &NoopSink{} }

func (s *NoopSink) Init(ctx context.Context) error                             { return nil }
func (s *NoopSink) Publish(ctx context.Context, rec *models.MatchRecord) error { return nil }
func (s *NoopSink) Close() error                                               { return nil }
