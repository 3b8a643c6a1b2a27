package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/store-reservations/internal/audit"
	"github.com/BruksfildServices01/store-reservations/internal/catalog"
	"github.com/BruksfildServices01/store-reservations/internal/config"
	dbpkg "github.com/BruksfildServices01/store-reservations/internal/db"
	domain "github.com/BruksfildServices01/store-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/store-reservations/internal/infra/kv"
	kvmemory "github.com/BruksfildServices01/store-reservations/internal/infra/kv/memory"
	kvpostgres "github.com/BruksfildServices01/store-reservations/internal/infra/kv/postgres"
	kvredis "github.com/BruksfildServices01/store-reservations/internal/infra/kv/redis"
	s3store "github.com/BruksfildServices01/store-reservations/internal/infra/s3"
	"github.com/BruksfildServices01/store-reservations/internal/logging"
	"github.com/BruksfildServices01/store-reservations/internal/media"
	"github.com/BruksfildServices01/store-reservations/internal/persistence"
	"github.com/BruksfildServices01/store-reservations/internal/reservation"
	"github.com/BruksfildServices01/store-reservations/internal/routes"
	"github.com/BruksfildServices01/store-reservations/internal/session"
)

const gracefulTimeout = 10 * time.Second

func main() {

	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	// prices go out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()

	// ======================================================
	// STORAGE
	// ======================================================
	var db *gorm.DB
	if cfg.StorageDriver == kv.DriverPostgres {
		db, err = dbpkg.NewDB(cfg.DBUrl)
		if err != nil {
			logger.Fatal("failed to open database", zap.Error(err))
		}
	}

	store, closeStore, err := openStore(cfg, db)
	if err != nil {
		logger.Fatal("failed to open reservation storage", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}
	defer closeStore()

	// ======================================================
	// AUDIT
	// ======================================================
	var sink interface {
		audit.Sink
		audit.Reader
	} = audit.NewMemorySink(0)
	if db != nil {
		sink = audit.NewGormSink(db)
	}
	dispatcher := audit.NewDispatcher(sink)

	// ======================================================
	// STORES
	// ======================================================
	products := catalog.NewStore(catalog.Seed(), catalog.WithNotifier(dispatcher))

	adapter := persistence.New(store, cfg.ReservationsKey)
	saved := adapter.Load(ctx)
	reservations := reservation.NewStore(products, adapter, saved,
		reservation.WithNotifier(dispatcher),
		reservation.WithPolicy(domain.ParsePolicy(cfg.TransitionPolicy)),
	)
	logger.Info("reservations loaded",
		zap.String("driver", cfg.StorageDriver),
		zap.Int("count", len(saved)),
	)

	auth, err := session.NewAuthenticator(cfg.AdminPasswordHash, cfg.AdminPassword, cfg.JWTSecret, cfg.SessionTTL)
	if err != nil {
		logger.Fatal("failed to configure admin login", zap.Error(err))
	}

	// ======================================================
	// MEDIA
	// ======================================================
	var (
		objects    media.ObjectStore
		mediaFiles *media.MemoryStore
	)
	switch cfg.MediaDriver {
	case "s3":
		s3s, err := s3store.New(s3Config(cfg))
		if err != nil {
			logger.Fatal("failed to configure media bucket", zap.Error(err))
		}
		objects = s3s
	default:
		mediaFiles = media.NewMemoryStore(cfg.MediaBaseURL)
		objects = mediaFiles
	}

	// ======================================================
	// HTTP
	// ======================================================
	gin.SetMode(gin.ReleaseMode)
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:       cfg,
		Logger:       logger,
		Products:     products,
		Reservations: reservations,
		Auth:         auth,
		Images:       media.NewUploader(objects, cfg.MediaMaxWidth),
		AuditLogs:    sink,
		MediaFiles:   mediaFiles,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()
	logger.Info(fmt.Sprintf("Server running on %s", cfg.Addr()))

	<-shutdown

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gracefulTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
	}
	dispatcher.Close()
}

// openStore picks the key/value driver that holds the saved reservations.
func openStore(cfg *config.Config, db *gorm.DB) (kv.Store, func(), error) {
	noop := func() {}

	switch cfg.StorageDriver {
	case kv.DriverMemory, "":
		return kvmemory.New(), noop, nil

	case kv.DriverRedis:
		client := kvredis.NewClient(cfg.RedisAddr, cfg.RedisPassword)
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return kvredis.New(client), func() { _ = client.Close() }, nil

	case kv.DriverPostgres:
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return kvpostgres.New(db), closeDB, nil

	case kv.DriverS3:
		s, err := s3store.New(s3Config(cfg))
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

func s3Config(cfg *config.Config) s3store.Config {
	return s3store.Config{
		Region:          cfg.S3.Region,
		Bucket:          cfg.S3.Bucket,
		Endpoint:        cfg.S3.Endpoint,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
		PathStyle:       cfg.S3.PathStyle,
		PublicBaseURL:   cfg.S3.PublicBaseURL,
	}
}
