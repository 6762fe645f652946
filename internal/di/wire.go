//go:build wireinject
// +build wireinject

package di

import (
	"Starluck/pkg/config"
	"Starluck/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,
		ProvideEphemeris,
		ProvideChartService,
		ProvideDebugStore,
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
