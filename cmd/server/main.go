package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	decoderhandler "dochub/internal/decoder/handler"
	"dochub/internal/header"
	headerhandler "dochub/internal/header/handler"
	jwttoken "dochub/internal/jwt_token"
	"dochub/internal/platform/config"
	"dochub/internal/platform/httpserver"
	"dochub/internal/platform/logger"
	"dochub/internal/platform/metrics"
	"dochub/internal/platform/redis"
	profilehandler "dochub/internal/profile/handler"
	"dochub/internal/profile/service"
	"dochub/internal/profile/store"
	httptransport "dochub/internal/transport/http"
	"dochub/pkg/platform/circuit"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(os.Stdout, cfg.Log)

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	profiles, closeStore, err := buildProfileStore(ctx, cfg.Redis, log)
	if err != nil {
		return err
	}
	defer closeStore()

	profileSvc, err := service.New(profiles, service.WithLogger(log))
	if err != nil {
		return err
	}

	jwtService := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:         log,
		Metrics:        m,
		Gatherer:       reg,
		JWTValidator:   jwttoken.NewJWTServiceAdapter(jwtService),
		RequestTimeout: cfg.RequestTimeout,
		Header:         headerhandler.New(header.NewResolver(), profileSvc, log, m),
		Decoder:        decoderhandler.New(log, m),
		Profile:        profilehandler.New(profileSvc, log, m),
	})
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting dochub", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// buildProfileStore selects Redis, guarded by a circuit breaker, when
// configured and the in-memory store otherwise.
func buildProfileStore(ctx context.Context, cfg config.RedisConfig, log *slog.Logger) (service.Store, func(), error) {
	client, err := redis.New(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		log.Warn("REDIS_URL not set, using in-memory profile store")
		return store.NewInMemoryStore(), func() {}, nil
	}
	log.Info("using redis profile store")
	breaker := circuit.New("profile-store-redis")
	return store.NewFailoverStore(store.NewRedisStore(client.Client), breaker, log), func() { _ = client.Close() }, nil
}
