//go:build wireinject
// +build wireinject

package di

import (
	"github.com/newdevoleper/match-making/pkg/config"
	"github.com/newdevoleper/match-making/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure
		ProvideEphemeris,
		ProvideResultSink,

		// Use cases
		ProvideChartAnalyzer,
		ProvideMatchMaker,

		// Delivery
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
