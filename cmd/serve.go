package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"pouringat.com/PouringAt/configs"
	"pouringat.com/PouringAt/pkg/auth"
	"pouringat.com/PouringAt/pkg/geocode"
	"pouringat.com/PouringAt/pkg/integrations"
	"pouringat.com/PouringAt/pkg/metrics"
	"pouringat.com/PouringAt/pkg/ratelimit"
	"pouringat.com/PouringAt/pkg/repository"
	"pouringat.com/PouringAt/pkg/search"
	"pouringat.com/PouringAt/pkg/server"
	"pouringat.com/PouringAt/pkg/server/api"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".PouringAt.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(cliCtx *Context) error {
	logConfig := zap.NewProductionConfig()
	if cliCtx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	limitConfig := ratelimit.FromConfig(conf.RateLimit)
	if err := limitConfig.Validate(); err != nil {
		logger.Error("invalid rate limit config", zap.Error(err))

		return fmt.Errorf("%w: %w", configs.ErrConfiguration, err)
	}

	proxies, err := server.ParseTrustedProxies(conf.Server.TrustedProxies)
	if err != nil {
		logger.Error("invalid trusted proxies", zap.Error(err))

		return fmt.Errorf("%w: %w", configs.ErrConfiguration, err)
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})

	defer func() {
		if err := multierr.Combine(redisClient.Close(), repo.Close()); err != nil {
			logger.Error("error closing connections", zap.Error(err))
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	searchMetrics := metrics.New(registry)

	geocoder := geocode.NewCachingGeocoder(
		geocode.NewGoogleGeocoder(conf.Geocoder, searchMetrics, logger), repo, conf.Geocoder.CacheTTL, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	searchService := search.NewService(geocoder, repo, newLimiter(ctx, redisClient, limitConfig, logger),
		search.OptionsFromConfig(conf.Search), searchMetrics, logger)

	authManager := auth.NewAuthManager(conf.Auth, logger)
	interceptors := connect.WithInterceptors(server.NewErrorInterceptor(logger), authManager.GrpcAuthInterceptor())

	mux := http.NewServeMux()
	mux.Handle(api.NewSearchServiceHandler(server.NewSearchServer(searchService, conf.Search.PreviewCount, proxies, logger), interceptors))
	mux.Handle(api.NewVenueServiceHandler(server.NewVenueServer(repo, geocoder, logger), interceptors))
	mux.Handle(api.NewTapServiceHandler(
		server.NewTapServer(repo, integrations.GetIntegrations(conf.Integrations.Brewery, logger), logger), interceptors))

	checker := grpchealth.NewStaticChecker(api.SearchServiceName, api.VenueServiceName, api.TapServiceName)
	mux.Handle(grpchealth.NewHandler(checker))
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	svr := &http.Server{
		Addr:              fmt.Sprintf(":%d", conf.Server.Port),
		ReadHeaderTimeout: timeout,
		Handler:           h2c.NewHandler(configureCORS(mux), &http2.Server{}),
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := svr.Shutdown(shutdownCtx); err != nil {
			logger.Error("error shutting down server", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("address", svr.Addr))

	err = svr.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

// newLimiter uses Redis when it answers at startup and otherwise falls back to a per-process
// limiter, which is only accurate with a single instance.
func newLimiter(ctx context.Context, client *redis.Client, config ratelimit.Config, logger *zap.Logger) ratelimit.Limiter {
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := client.Ping(pingCtx).Err()
	if err == nil {
		return ratelimit.NewRedisLimiter(client, config)
	}

	logger.Warn("redis unavailable, using in-memory rate limiter", zap.String("addr", client.Options().Addr), zap.Error(err))

	limiter := ratelimit.NewMemoryLimiter(config)

	go func() {
		ticker := time.NewTicker(config.Window)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				limiter.Cleanup()
			}
		}
	}()

	return limiter
}

func configureCORS(mux *http.ServeMux) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS", "HEAD"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"authorization",
			"connect-accept-encoding",
			"connect-content-encoding",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-encoding",
			"content-type",
			"grpc-accept-encoding",
			"grpc-encoding",
			"grpc-timeout",
			"origin",
			"user-agent",
			"x-grpc-web",
			"x-user-agent",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
			"retry-after",
		},
		MaxAge: 86400, // 24 hours
	})

	return corsOpts.Handler(mux)
}
