package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/trade-appraiser/api/openapi"
	"github.com/donaldgifford/trade-appraiser/internal/api/handlers"
	mw "github.com/donaldgifford/trade-appraiser/internal/api/middleware"
	"github.com/donaldgifford/trade-appraiser/internal/config"
	"github.com/donaldgifford/trade-appraiser/internal/engine"
	"github.com/donaldgifford/trade-appraiser/internal/store"
	"github.com/donaldgifford/trade-appraiser/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and retention scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pg, err := store.NewPostgresStore(startCtx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pg.Close()

	if err := pg.Migrate(startCtx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	eng := newEngine(cfg, pg, log)

	var sched *engine.Scheduler
	if cfg.Retention.Enabled {
		sched, err = engine.NewScheduler(eng, cfg.Retention.Interval, log)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.Start()
	}

	e := newServer(cfg, pg, eng, log)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := cfg.Server.Addr()
	log.Info("starting server", "addr", addr, "version", Version)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	if sched != nil {
		select {
		case <-sched.Stop().Done():
		case <-ctx.Done():
			log.Warn("retention run still in progress at shutdown")
		}
	}

	log.Info("server stopped")
	return nil
}

func newEngine(cfg *config.Config, s store.Store, log *slog.Logger) *engine.Engine {
	return engine.NewEngine(s,
		engine.WithLogger(log),
		engine.WithConcurrency(cfg.Appraisal.Concurrency),
		engine.WithCanonicalizeUnknown(cfg.Appraisal.CanonicalizeUnknown),
		engine.WithOutlierThreshold(cfg.Appraisal.OutlierStdDevThreshold),
		engine.WithRetentionMaxAge(cfg.Retention.MaxAge),
	)
}

// newServer builds the Echo instance with middleware, health probes,
// metrics, docs and every API route registered.
func newServer(cfg *config.Config, s store.Store, eng *engine.Engine, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(mw.Recovery(log))
	e.Use(mw.RequestLog(log))
	e.Use(mw.Metrics())
	if rl := cfg.Server.RateLimit; rl.Enabled {
		e.Use(mw.RateLimit(rl.PerSecond, rl.Burst))
	}

	health := handlers.NewHealthHandler(s)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaCfg := huma.DefaultConfig("Trade Appraiser API", Version)
	humaCfg.DocsPath = ""
	api := humaecho.New(e, humaCfg)

	handlers.RegisterReconRoutes(api, handlers.NewReconHandler())
	handlers.RegisterOfferRoutes(api, handlers.NewOffersHandler())
	handlers.RegisterExtractRoutes(api, handlers.NewExtractHandler())
	handlers.RegisterMarketRoutes(api, handlers.NewMarketHandler(cfg.Appraisal.OutlierStdDevThreshold))
	handlers.RegisterAppraisalRoutes(api, handlers.NewAppraisalsHandler(eng, s, cfg.Appraisal.MaxBatchSize))

	openapi.RegisterRoutes(e, humaCfg.OpenAPIPath+".json")

	return e
}
