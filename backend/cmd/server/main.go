package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"socialgraph/backend/internal/api"
	"socialgraph/backend/internal/constants"
	"socialgraph/backend/internal/graph"
	"socialgraph/backend/internal/metrics"
	"socialgraph/backend/internal/social"
	"socialgraph/backend/pkg/config"
	apperrors "socialgraph/backend/pkg/errors"
	"socialgraph/backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	// Initialize logger
	if err := logger.Init(cfg.Env); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting social graph server...", zap.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("Server exited with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	log.Info("Server exited")
}

// run serves the API until ctx is cancelled
func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	collector := metrics.NewCollector(constants.MetricsNamespace)
	g := social.New(social.WithObserver(collector))

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(g, api.Options{
		DefaultPageSize: cfg.DefaultPageSize,
		MaxPageSize:     cfg.MaxPageSize,
		Metrics:         collector,
		Logger:          log,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	exporter, closeExporter, err := newExporter(ctx, cfg, g, collector)
	if err != nil {
		return err
	}
	defer closeExporter()

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("Server started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if exporter != nil {
		group.Go(func() error {
			log.Info("Neo4j export enabled", zap.Duration("interval", cfg.Neo4jExportInterval))
			return exporter.Run(gctx)
		})
	}

	group.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server forced to shutdown", zap.Error(err))
			return err
		}
		return nil
	})

	return group.Wait()
}

// newExporter connects to Neo4j when export is enabled. The returned close
// function is always safe to call.
func newExporter(ctx context.Context, cfg *config.Config, g *social.Graph, collector *metrics.Collector) (*graph.Exporter, func(), error) {
	noop := func() {}
	if !cfg.Neo4jExportEnabled {
		return nil, noop, nil
	}

	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
	)
	if err != nil {
		return nil, noop, apperrors.NewGraphConnectionFailed(cfg.Neo4jURI, err)
	}

	// Verify Neo4j connection
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(context.Background())
		return nil, noop, apperrors.NewGraphConnectionFailed(cfg.Neo4jURI, err)
	}

	repo := graph.NewRepository(driver)
	if err := repo.EnsureSchema(ctx); err != nil {
		driver.Close(context.Background())
		return nil, noop, err
	}
	closeRepo := func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := repo.Close(closeCtx); err != nil {
			logger.Get().Warn("Failed to close Neo4j driver", zap.Error(err))
		}
	}
	return graph.NewExporter(repo, g, cfg.Neo4jExportInterval, collector.ObserveExport), closeRepo, nil
}
