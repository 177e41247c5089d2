package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

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
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fitjournal/internal/auth"
	"github.com/2beens/fitjournal/internal/bodyprogress"
	"github.com/2beens/fitjournal/internal/calendar"
	"github.com/2beens/fitjournal/internal/config"
	"github.com/2beens/fitjournal/internal/db"
	"github.com/2beens/fitjournal/internal/devicestore"
	"github.com/2beens/fitjournal/internal/docstore"
	"github.com/2beens/fitjournal/internal/middleware"
	"github.com/2beens/fitjournal/internal/onerm"
	"github.com/2beens/fitjournal/internal/profile"
	"github.com/2beens/fitjournal/internal/routines"
	"github.com/2beens/fitjournal/internal/telemetry/metrics"
	"github.com/2beens/fitjournal/internal/telemetry/tracing"
	"github.com/2beens/fitjournal/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config   *config.Config
	dbPool   *pgxpool.Pool
	docs     docstore.Store
	devices  devicestore.Store
	location *time.Location

	redisClient  *redis.Client
	rateLimiter  middleware.RequestRateLimiter
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	PostgresUser            string
	PostgresPassword        string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	location, err := params.Config.Location()
	if err != nil {
		return nil, err
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.PostgresUser,
		DBPassword:     params.PostgresPassword,
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
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitjournal", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	devices, err := devicestore.NewFileStore(params.Config.DeviceStoreDir)
	if err != nil {
		return nil, fmt.Errorf("new device store: %w", err)
	}

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

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitjournal-backend", rdb)
	if err != nil {
		return nil, err
	}

	docs := docstore.NewPsqlStore(dbPool)
	authService := auth.NewAuthService(auth.DefaultTTL, docs, profile.NewStore(docs), rdb)
	go func() {
		ticker := time.NewTicker(params.Config.SessionsCleanupInterval.Duration)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				authService.ScanAndClean(ctx)
			}
		}
	}()

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		docs:        docs,
		devices:     devices,
		location:    location,
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		rateLimiter:  redis_rate.NewLimiter(rdb),
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", s.handleRoot).Methods("GET").Name("root")
	r.HandleFunc("/version", s.handleVersion).Methods("GET").Name("version")

	authHandler := auth.NewHandler(s.authService)
	authHandler.SetupRoutes(r, s.rateLimiter, s.config.LoginRateLimitAllowedPerMin, s.metricsManager)

	profileStore := profile.NewStore(s.docs)
	profile.NewHandler(profileStore).SetupRoutes(r)

	routinesStore := routines.NewStore(s.docs)
	routines.NewHandler(
		routinesStore,
		routines.NewService(routinesStore),
		s.metricsManager,
	).SetupRoutes(r)

	toggles := calendar.NewToggleCache(s.config.ToggleCacheSizeMB * 1024 * 1024)
	trainingCalendar := calendar.NewCalendar(calendar.DefaultCatalog(), profileStore, toggles, s.location)
	calendar.NewHandler(trainingCalendar, s.metricsManager).SetupRoutes(r)

	bodyprogress.NewHandler(
		bodyprogress.NewJournal(s.devices, s.location),
		s.metricsManager,
	).SetupRoutes(r)

	onerm.NewHandler().SetupRoutes(r)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker, auth.ErrNotLogged)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.CorsAllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.LimitRequestBody(s.config.MaxRequestBodyKB))

	return r, nil
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, s.versionInfo)
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      otelhttp.NewHandler(router, "fitjournal-http"),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
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

	s.otelShutdown()
	log.Trace("otel shut down ...")

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

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}
