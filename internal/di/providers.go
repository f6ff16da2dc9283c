package di

import (
	"context"
	"fmt"
	"time"

	"github.com/newdevoleper/match-making/internal/domain/repository"
	domsvc "github.com/newdevoleper/match-making/internal/domain/service"
	"github.com/newdevoleper/match-making/internal/handler/api"
	internalrepo "github.com/newdevoleper/match-making/internal/repository"
	icache "github.com/newdevoleper/match-making/internal/service/cache"
	"github.com/newdevoleper/match-making/internal/service/ratelimit"
	"github.com/newdevoleper/match-making/internal/services/ephemeris"
	"github.com/newdevoleper/match-making/internal/usecase"
	pkgch "github.com/newdevoleper/match-making/pkg/clickhouse"
	"github.com/newdevoleper/match-making/pkg/config"
	xhttp "github.com/newdevoleper/match-making/pkg/http"
	pkgkafka "github.com/newdevoleper/match-making/pkg/kafka"
	applogger "github.com/newdevoleper/match-making/pkg/logger"
	"github.com/newdevoleper/match-making/pkg/metrics"
	"github.com/newdevoleper/match-making/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	format := "console"
	if cfg.Environment == "production" {
		format = "json"
	}
	return applogger.New(&applogger.Config{Level: "info", Format: format, Output: "stdout"})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideEphemeris creates the ephemeris source, wrapped in a cache when enabled.
func ProvideEphemeris(cfg *config.Config) domsvc.Ephemeris {
	var eph domsvc.Ephemeris = ephemeris.NewHTTPEphemeris(cfg)
	if !cfg.Ephemeris.Cache.Enabled {
		return eph
	}

	var c icache.BytesCache
	if cfg.Ephemeris.Cache.Redis.Enabled {
		c = icache.NewRedisCache(icache.RedisConfig{
			Addr:     cfg.Ephemeris.Cache.Redis.Addr,
			Password: cfg.Ephemeris.Cache.Redis.Password,
			DB:       cfg.Ephemeris.Cache.Redis.DB,
		})
	} else {
		c = icache.NewTTLCache()
	}

	ttl := cfg.Ephemeris.Cache.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return ephemeris.NewCachedEphemeris(eph, c, ttl)
}

// ProvideResultSink creates the configured reporting sink.
func ProvideResultSink(cfg *config.Config, m repository.Metrics) (repository.ResultSink, error) {
	switch cfg.Sink.Type {
	case "kafka":
		producer, err := pkgkafka.NewProducer(
			pkgkafka.WithBrokers(cfg.Kafka.Brokers),
			pkgkafka.WithCompression(cfg.Kafka.Compression),
			pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
			pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
			pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
			pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
			pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
			pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
			pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
			pkgkafka.WithHashByKey(true),
		)
		if err != nil {
			return nil, fmt.Errorf("kafka producer: %w", err)
		}
		return internalrepo.NewKafkaSink(producer, cfg.Kafka.Topic, m), nil

	case "clickhouse":
		client, err := pkgch.NewClient(
			pkgch.WithHost(cfg.ClickHouse.Host),
			pkgch.WithPort(cfg.ClickHouse.Port),
			pkgch.WithDatabase(cfg.ClickHouse.Database),
			pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
			pkgch.WithMaxConnections(10, 5),
			pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
			pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
			pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
			pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
		)
		if err != nil {
			return nil, fmt.Errorf("clickhouse client: %w", err)
		}
		sink := internalrepo.NewClickHouseSink(client.DB(), cfg.ClickHouse.Table, m)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := sink.Init(ctx); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("clickhouse schema: %w", err)
		}
		return sink, nil

	default:
		return internalrepo.NewNoopSink(), nil
	}
}

// ProvideChartAnalyzer creates the chart analysis use case.
func ProvideChartAnalyzer(eph domsvc.Ephemeris, m repository.Metrics) *usecase.ChartAnalyzer {
	return usecase.NewChartAnalyzer(eph, m)
}

// ProvideMatchMaker creates the compatibility use case.
func ProvideMatchMaker(
	analyzer *usecase.ChartAnalyzer,
	sink repository.ResultSink,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.MatchMaker {
	return usecase.NewMatchMaker(analyzer, sink, m, l)
}

// ProvideHandler creates the Echo HTTP handler.
func ProvideHandler(cfg *config.Config, l *applogger.Logger, mm *usecase.MatchMaker) xhttp.Handler {
	return api.NewMatchEchoHandler(l, mm, ratelimit.New(), api.RateLimitSettings{
		Enabled:      cfg.RateLimit.Enabled,
		Capacity:     cfg.RateLimit.Capacity,
		RefillPerSec: cfg.RateLimit.RefillPerSec,
	})
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	sink repository.ResultSink,
	handler xhttp.Handler,
) *server.App {
	return server.New(cfg, l, sink, handler)
}
