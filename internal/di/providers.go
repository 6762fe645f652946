package di

import (
	"fmt"

	"Starluck/internal/ephemeris"
	"Starluck/internal/handler/api"
	"Starluck/internal/service/chart"
	"Starluck/internal/service/debug"
	"Starluck/pkg/cache"
	"Starluck/pkg/config"
	xhttp "Starluck/pkg/http"
	applogger "Starluck/pkg/logger"
	"Starluck/pkg/metrics"
	"Starluck/pkg/server"
)

// ProvideLogger creates the structured logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideCache builds the position cache. Disabled cache yields nil; a
// failed Redis connection degrades to the in-memory layer.
func ProvideCache(cfg *config.Config, log *applogger.Logger) (cache.Service, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	if cfg.Cache.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(
			cache.WithRedisHost(cfg.Cache.Redis.Host),
			cache.WithRedisPort(cfg.Cache.Redis.Port),
			cache.WithRedisPassword(cfg.Cache.Redis.Password),
			cache.WithRedisDB(cfg.Cache.Redis.DB),
		)
		if err != nil {
			log.Warn("redis unavailable, falling back to memory cache", applogger.Error(err))
		} else {
			return cache.NewLayeredCache(redisCache,
				cache.WithLayeredMemorySize(cfg.Cache.MemoryMaxSize),
			), nil
		}
	}

	return cache.NewMemoryCache(cache.WithMemoryMaxSize(cfg.Cache.MemoryMaxSize)), nil
}

// ProvideEphemeris selects the position backend once at startup. The
// chosen backend serves every chart; requests never mix backends.
func ProvideEphemeris(cfg *config.Config, log *applogger.Logger, rec *metrics.Recorder, c cache.Service) (ephemeris.Provider, error) {
	var provider ephemeris.Provider

	switch cfg.Ephemeris.Backend {
	case "swiss":
		swiss, err := ephemeris.NewSwiss(cfg.Ephemeris.Path)
		if err != nil {
			return nil, fmt.Errorf("swiss backend: %w", err)
		}
		provider = swiss
	case "analytic":
		provider = ephemeris.NewAnalytic()
	default: // auto
		swiss, err := ephemeris.NewSwiss(cfg.Ephemeris.Path)
		if err != nil {
			log.Warn("swiss ephemeris unavailable, using analytic backend", applogger.Error(err))
			provider = ephemeris.NewAnalytic()
		} else {
			provider = swiss
		}
	}

	rec.SetBackend(provider.Name())
	log.Info("ephemeris backend selected", applogger.String("backend", provider.Name()))

	if cfg.Cache.Enabled && c != nil {
		provider = ephemeris.NewCached(provider, c, cfg.Cache.TTL)
	}
	return provider, nil
}

// ProvideChartService creates the chart computation service.
func ProvideChartService(p ephemeris.Provider, log *applogger.Logger, rec *metrics.Recorder) *chart.Service {
	return chart.NewService(p, log, rec)
}

// ProvideDebugStore creates the debug output store.
func ProvideDebugStore(cfg *config.Config, log *applogger.Logger) *debug.Store {
	return debug.NewStore(cfg.Debug.OutputDir, cfg.Debug.EnableOutputs, log)
}

// ProvideHandler creates the HTTP handler surface.
func ProvideHandler(log *applogger.Logger, svc *chart.Service, dbg *debug.Store) xhttp.Handler {
	return api.NewChartsHandler(log, svc, dbg, server.Version, svc.Backend() == "swiss")
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, log *applogger.Logger, handler xhttp.Handler, c cache.Service) *server.App {
	return server.New(cfg, log, handler, c)
}
