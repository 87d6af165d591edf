package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/bdevic/habitstats/internal/achievements"
	"github.com/bdevic/habitstats/internal/config"
	"github.com/bdevic/habitstats/internal/db"
	"github.com/bdevic/habitstats/internal/entries"
	"github.com/bdevic/habitstats/internal/habits"
	"github.com/bdevic/habitstats/internal/heatmap"
	"github.com/bdevic/habitstats/internal/middleware"
	"github.com/bdevic/habitstats/internal/streaks"
	"github.com/bdevic/habitstats/internal/telemetry/metrics"
	"github.com/bdevic/habitstats/internal/telemetry/tracing"
	"github.com/bdevic/habitstats/internal/workouts"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	habitsHandler       *habits.Handler
	entriesHandler      *entries.Handler
	achievementsHandler *achievements.Handler
	heatmapHandler      *heatmap.Handler
	workoutsHandler     *workouts.Handler

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	RedisPassword           string
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "habitstats_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // will be set to 1 when all is set and ran

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	otelShutdown, err := tracing.HoneycombSetup(
		params.HoneycombTracingEnabled,
		"habitstats-backend",
		rdb,
	)
	if err != nil {
		return nil, fmt.Errorf("honeycomb tracing setup: %w", err)
	}

	userID := params.Config.DemoUserID

	habitsRepo := habits.NewRepo(dbPool)
	entriesRepo := entries.NewRepo(dbPool)
	streaksRepo := streaks.NewRepo(dbPool)
	achievementsRepo := achievements.NewRepo(dbPool)
	achievementsEvaluator := achievements.NewEvaluator(achievementsRepo)
	heatmapCache := heatmap.NewCache(
		rdb,
		time.Duration(params.Config.HeatmapCacheTTLMinutes)*time.Minute,
	)
	entriesService := entries.NewService(
		habitsRepo,
		entriesRepo,
		streaksRepo,
		achievementsEvaluator,
		heatmapCache,
		metricsManager,
	)

	return &Server{
		versionInfo:         params.VersionInfo,
		config:              params.Config,
		dbPool:              dbPool,
		redisClient:         rdb,
		habitsHandler:       habits.NewHandler(habitsRepo, streaksRepo, entriesRepo, userID),
		entriesHandler:      entries.NewHandler(entriesService, entriesRepo),
		achievementsHandler: achievements.NewHandler(achievementsRepo, userID),
		heatmapHandler:      heatmap.NewHandler(habitsRepo, entriesRepo, heatmapCache, userID),
		workoutsHandler:     workouts.NewHandler(habitsRepo, entriesRepo),
		metricsManager:      metricsManager,
		promRegistry:        promRegistry,
		otelShutdown:        otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("habitstats-router"))

	r.HandleFunc("/habits", s.habitsHandler.HandleList).Methods("GET", "OPTIONS")
	r.HandleFunc("/habits", s.habitsHandler.HandleAdd).Methods("POST", "OPTIONS")
	r.HandleFunc("/habits/{id}", s.habitsHandler.HandleGet).Methods("GET", "OPTIONS")
	r.HandleFunc("/habits/{id}", s.habitsHandler.HandleUpdate).Methods("PUT", "OPTIONS")
	r.HandleFunc("/habits/{id}", s.habitsHandler.HandleDelete).Methods("DELETE", "OPTIONS")
	r.HandleFunc("/habits/{id}/entries", s.entriesHandler.HandleList).Methods("GET", "OPTIONS")
	r.HandleFunc("/habits/{id}/workouts/analysis", s.workoutsHandler.HandleAnalysis).Methods("GET", "OPTIONS")
	r.HandleFunc("/achievements", s.achievementsHandler.HandleList).Methods("GET", "OPTIONS")
	r.HandleFunc("/heatmap", s.heatmapHandler.HandleGet).Methods("GET", "OPTIONS")
	r.HandleFunc("/entries/{id}", s.entriesHandler.HandleGet).Methods("GET", "OPTIONS")

	// logging an entry is the only write endpoint hit repeatedly
	// throughout the day, keep it behind a rate limiter
	entriesRouter := r.PathPrefix("/entries").Subrouter()
	entriesRouter.HandleFunc("", s.entriesHandler.HandleLog).Methods("POST", "OPTIONS")
	entriesRouter.Use(
		middleware.RateLimit(
			redis_rate.NewLimiter(s.redisClient),
			"entries",
			s.config.LogEntryRateLimitAllowedPerMin,
			s.metricsManager,
		),
	)

	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(s.versionInfo)); err != nil {
			log.Errorf("failed to write version info: %s", err)
		}
	}).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Warnf("unknown path: %s %s", r.Method, r.URL.Path)
		http.Error(w, "not found", http.StatusNotFound)
	})

	r.Use(
		middleware.PanicRecovery(s.metricsManager),
		middleware.LogRequest(),
		middleware.RequestMetrics(s.metricsManager),
		middleware.Cors(),
		middleware.DrainAndCloseRequest(),
	)

	return r
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	if port == 0 {
		port = s.config.Port
	}
	if host == "" {
		host = s.config.Host
	}

	router := s.routerSetup()
	ipAndPort := fmt.Sprintf("%s:%d", host, port)

	s.httpServer = &http.Server{
		Addr:         ipAndPort,
		Handler:      router,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsAddr := net.JoinHostPort(
		s.config.PrometheusMetricsHost,
		s.config.PrometheusMetricsPort,
	)
	metricsRouter := mux.NewRouter()
	metricsRouter.Handle(
		"/metrics",
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	)
	s.metricsHttpServer = &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	go func() {
		log.Infof("prometheus metrics server listening on: %s", metricsAddr)
		if err := s.metricsHttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics server, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debugln("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	if s.otelShutdown != nil {
		s.otelShutdown()
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client: %s", err)
		}
	}

	if s.dbPool != nil {
		s.dbPool.Close()
	}

	// flush buffered sentry events before the server shuts down
	sentry.Flush(5 * time.Second)

	maxWaitDuration := 15 * time.Second
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics server: %s", err)
		}
	}
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
	}

	log.Debugln("graceful shutdown finished")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Inc()
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Dec()
	}
}
