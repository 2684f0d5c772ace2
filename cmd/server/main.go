package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/texnomart/backend/internal/audit"
	"github.com/texnomart/backend/internal/cache"
	"github.com/texnomart/backend/internal/config"
	"github.com/texnomart/backend/internal/es"
	"github.com/texnomart/backend/internal/events"
	"github.com/texnomart/backend/internal/httpserver"
	"github.com/texnomart/backend/internal/logging"
	loggingmw "github.com/texnomart/backend/internal/middleware/logging"
	"github.com/texnomart/backend/internal/notify"
	"github.com/texnomart/backend/internal/repo"
	"github.com/texnomart/backend/internal/service"
	"github.com/texnomart/backend/internal/service/search"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", "texnomart")
	slog.SetDefault(logger)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("db init: %v", err)
	}

	gormRepo := &repo.GormRepo{DB: db}

	var indexer *search.Indexer
	if cfg.ES_URL != "" {
		esClient, err := es.NewClient(cfg)
		if err != nil {
			logger.Error("es_connect_error", "error", err)
		} else {
			indexer = &search.Indexer{ES: esClient, Index: cfg.ES_INDEX}
		}
	}

	var producer *events.Producer
	if cfg.KAFKA_ADDRESS != "" {
		producer = events.NewProducer(cfg.KAFKA_ADDRESS)
		defer producer.Close()
	}

	var notifier *notify.Notifier
	if cfg.SMTP_HOST != "" {
		smtpPort, _ := strconv.Atoi(cfg.SMTP_PORT)
		notifier = notify.NewNotifier(cfg.SMTP_HOST, smtpPort, cfg.SMTP_USER, cfg.SMTP_PASSWORD, cfg.MAIL_FROM)
	}

	catalogSvc := &service.CatalogService{
		Repo:     gormRepo,
		Cache:    cache.New(cache.DefaultTTL),
		Audit:    audit.New(cfg.AUDIT_DIR),
		Notifier: notifier,
		Producer: producer,
		Search:   indexer,
	}
	orderSvc := &service.OrderService{Repo: gormRepo}
	authSvc := &service.AuthService{
		Repo:          gormRepo,
		JWTSecret:     []byte(cfg.JWT_SECRET),
		RefreshSecret: []byte(cfg.REFRESH_SECRET),
	}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		Catalog:   &httpserver.CatalogHTTP{Svc: catalogSvc},
		Orders:    &httpserver.OrderHTTP{Svc: orderSvc},
		Auth:      &httpserver.AuthHTTP{Svc: authSvc},
		JWTSecret: []byte(cfg.JWT_SECRET),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.PORT,
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("texnomart listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("texnomart stopped")
}
