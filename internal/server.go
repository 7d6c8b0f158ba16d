package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gymplan/internal/config"
	"github.com/2beens/gymplan/internal/db"
	"github.com/2beens/gymplan/internal/middleware"
	"github.com/2beens/gymplan/internal/nutrition"
	"github.com/2beens/gymplan/internal/progress"
	"github.com/2beens/gymplan/internal/shopping"
	"github.com/2beens/gymplan/internal/store"
	"github.com/2beens/gymplan/internal/telemetry/metrics"
	"github.com/2beens/gymplan/internal/workout"
	"github.com/2beens/gymplan/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient *redis.Client

	nutritionSource *nutrition.Source
	workoutSource   *workout.Source
	dataStore       store.Store
	progressService *progress.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
}

type NewServerParams struct {
	Config        *config.Config
	RedisPassword string
	VersionInfo   string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	var dbPool *pgxpool.Pool
	var extraCollectors []prometheus.Collector
	if cfg.StoreBackend == "postgres" {
		pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost: cfg.PostgresHost,
			DBPort: cfg.PostgresPort,
			DBName: cfg.PostgresDBName,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}
		dbPool = pool
		extraCollectors = append(extraCollectors, pgxpoolprometheus.NewCollector(
			dbPool,
			map[string]string{"db_name": cfg.PostgresDBName},
		))
	}

	promRegistry := metrics.SetupPrometheus(extraCollectors...)
	metricsManager := metrics.NewManager("backend", "gymplan", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	dataStore, err := newDataStore(cfg, rdb, dbPool)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:          cfg,
		dbPool:          dbPool,
		redisClient:     rdb,
		versionInfo:     params.VersionInfo,
		nutritionSource: nutrition.NewSource(cfg.DataRoot),
		workoutSource:   workout.NewSource(cfg.DataRoot),
		dataStore:       dataStore,
		progressService: progress.NewService(dataStore),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
	}

	return s, nil
}

// newDataStore builds the store backend from the config. With fallback
// enabled, a failing redis or postgres backend falls through to an
// in-memory store instead of surfacing errors to the client.
func newDataStore(cfg *config.Config, rdb *redis.Client, dbPool *pgxpool.Pool) (store.Store, error) {
	var backend store.Store
	switch cfg.StoreBackend {
	case "", "memory":
		return store.NewMemoryStore(), nil
	case "redis":
		backend = store.NewRedisStore(rdb)
	case "postgres":
		backend = store.NewPostgresStore(dbPool)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.StoreBackend)
	}

	if cfg.StoreFallbackEnabled {
		return store.NewFallbackStore(backend, store.NewMemoryStore()), nil
	}
	return backend, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()

	nutritionHandler := nutrition.NewHandler(s.nutritionSource)
	nutritionHandler.SetupRoutes(r)

	workoutHandler := workout.NewHandler(s.workoutSource)
	workoutHandler.SetupRoutes(r)

	shoppingHandler := shopping.NewHandler(s.nutritionSource, s.metricsManager)
	shoppingHandler.SetupRoutes(r)

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	storeHandler := store.NewHandler(s.dataStore, s.metricsManager)
	storeHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.DatabaseRateLimit)

	progressHandler := progress.NewHandler(s.progressService)
	progressHandler.SetupRoutes(r)

	r.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteResponse(w, "text/plain", s.versionInfo)
	}).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.MetricsHost, s.config.MetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}
