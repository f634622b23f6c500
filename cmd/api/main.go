package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "importduty/api/swagger" // swagger docs
	"importduty/internal/config"
	"importduty/internal/database"
	"importduty/internal/handler"
	"importduty/internal/metrics"
	"importduty/internal/middleware"
	"importduty/internal/repository"
	"importduty/internal/service"
	"importduty/internal/tariff"
	"importduty/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	easy "github.com/t-tomalak/logrus-easy-formatter"
)

//go:generate swag init --dir ../../ --generalInfo cmd/api/main.go --output ../../api/swagger --outputTypes go

var (
	ratesFile = flag.String("rates", "", "YAML rate table overriding the built-in 2025 rates (overrides RATES_FILE)")

	logLevels = map[string]logrus.Level{
		"trace": logrus.TraceLevel,
		"debug": logrus.DebugLevel,
		"info":  logrus.InfoLevel,
		"warn":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
	}

	log = logrus.WithField("module", "api")
)

// @title           Kenya Import Duty Calculator API
// @version         1.0
// @description     Computes import duty, excise, VAT, IDF and RDL for vehicles, motorcycles and general cargo.
// @host            localhost:8080
// @BasePath        /
func main() {
	flag.Parse()
	cfg := config.Load()
	setupLogging(cfg.Log)

	if err := run(cfg); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
	log.Info("Server stopped")
}

// run wires the service and blocks until the server stops. Every resource it
// opens is released before it returns.
func run(cfg *config.Config) error {
	path := cfg.Tax.RatesFile
	if *ratesFile != "" {
		path = *ratesFile
	}
	rates := tariff.DefaultRates()
	if path != "" {
		var err error
		if rates, err = tariff.LoadRates(path); err != nil {
			return fmt.Errorf("rate table load failed: %w", err)
		}
		log.WithField("file", path).Info("loaded rate table")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog := tariff.DefaultCatalog()
	catalogSource := "builtin"
	if cfg.Database.Enabled {
		db, err := database.NewConnection(cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		defer database.Close(db)
		log.Info("Connected to PostgreSQL successfully.")

		hsRepo := repository.NewHSCodeRepository(db)
		txManager := repository.NewTransactionManager(db)
		if catalog, err = service.LoadCatalog(ctx, hsRepo, txManager); err != nil {
			return fmt.Errorf("hs code catalog load failed: %w", err)
		}
		catalogSource = "database"
	}
	log.WithFields(logrus.Fields{"source": catalogSource, "entries": catalog.Len()}).Info("hs code catalog ready")

	// Prometheus registry with process and runtime collectors
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Set up dependencies (Service -> Handler)
	calcService := service.NewCalculationService(service.CalculationServiceConfig{
		Rates:          rates,
		Catalog:        catalog,
		AssessmentYear: cfg.Tax.AssessmentYear,
		StrictHSCode:   cfg.Tax.StrictHSCode,
		Metrics:        m,
	})
	catalogService := service.NewCatalogService(catalog)

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(calcService, m)
	websocket.SetAllowedOrigins(cfg.Server.CORSOrigins)
	go wsHub.Run(ctx)

	// Initialize Handlers
	calcHandler := handler.NewCalculationHandler(calcService)
	hsCodeHandler := handler.NewHSCodeHandler(catalogService)
	healthHandler := handler.NewHealthHandler(catalogSource)

	// Set up Gin Router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(), middleware.Metrics(m))

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.CORSOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", middleware.HeaderRequestID}
	corsConfig.ExposeHeaders = []string{middleware.HeaderRequestID}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	// API Routing
	healthHandler.RegisterRoutes(router.Group(""))
	calcHandler.RegisterRoutes(router.Group(""))
	hsCodeHandler.RegisterRoutes(router.Group(""))
	router.GET("/api/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("graceful shutdown failed")
		}
	}()

	log.Infof("Server listening on :%s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func setupLogging(cfg config.LogConfig) {
	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&easy.Formatter{
			TimestampFormat: "2006-01-02 15:04:05.0000",
			LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
		})
	}

	if level, ok := logLevels[cfg.Level]; ok {
		logrus.SetLevel(level)
	} else {
		log.Warnf("unknown LOG_LEVEL %q, using info", cfg.Level)
		logrus.SetLevel(logrus.InfoLevel)
	}
}
