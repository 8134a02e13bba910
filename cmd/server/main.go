// Package main provides the admissions portal API server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/fametro/portal-ingresso/internal/buildinfo"
	"github.com/fametro/portal-ingresso/internal/catalog"
	"github.com/fametro/portal-ingresso/internal/config"
	"github.com/fametro/portal-ingresso/internal/data"
	"github.com/fametro/portal-ingresso/internal/links"
	"github.com/fametro/portal-ingresso/internal/logger"
	"github.com/fametro/portal-ingresso/internal/metrics"
	"github.com/fametro/portal-ingresso/internal/query"
	"github.com/fametro/portal-ingresso/internal/sentry"
	"github.com/fametro/portal-ingresso/internal/source"
)

// HTTP server timeouts. The API serves small JSON payloads from in-memory
// indexes, so short read/write windows are enough.
const (
	httpReadTimeout  = 10 * time.Second
	httpWriteTimeout = 15 * time.Second
	httpIdleTimeout  = 60 * time.Second
)

// portalData is the immutable in-memory state behind every endpoint.
// It is built once at startup; requests only read it.
type portalData struct {
	Result       *catalog.Result
	Records      []links.Record
	Report       links.Report
	Availability query.Availability

	OffersSource string
	LinksSource  string
	BuiltAt      time.Time
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	log.Info("Starting portal-ingresso server",
		"version", buildinfo.Version, "commit", buildinfo.Commit)

	if err := sentry.Initialize(sentry.Config{
		DSN:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		Release:     buildinfo.Version,
		SampleRate:  cfg.SentrySampleRate,
	}); err != nil {
		log.WithError(err).Warn("Failed to initialize Sentry, error reporting disabled")
	}
	defer sentry.Flush(2 * time.Second)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewBuildInfoCollector())
	m := metrics.New(registry)
	log.Info("Metrics initialized")

	pd, err := buildPortalData(context.Background(), cfg, log, m)
	if err != nil {
		log.WithError(err).Error("Failed to build portal data")
		sentry.CaptureException(err)
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}
	log.WithFields(map[string]any{
		"courses":       len(pd.Result.Catalog),
		"link_records":  len(pd.Records),
		"offers_source": pd.OffersSource,
		"links_source":  pd.LinksSource,
	}).Info("Portal data built")

	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if sentry.IsEnabled() {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(securityHeadersMiddleware())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log, m))

	setupRoutes(router, pd, cfg, registry, m)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      gzhttp.GzipHandler(router),
		ReadTimeout:  httpReadTimeout,
		WriteTimeout: httpWriteTimeout,
		IdleTimeout:  httpIdleTimeout,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Failed to start server")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	log.Info("Server stopped")
}

// buildPortalData resolves both data feeds, loading them in parallel, and
// assembles every index the API serves. The configured external sources
// win when they load; the embedded tables are the fallback of last resort.
func buildPortalData(ctx context.Context, cfg *config.Config, log *logger.Logger, m *metrics.Metrics) (*portalData, error) {
	var (
		offers       catalog.RawOffers
		offersSource string
		records      []links.Record
		linksSource  string
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		offers, offersSource, err = source.Resolve[catalog.RawOffers](gctx, log, m,
			source.OffersYAML{Path: cfg.OffersYAMLPath},
			source.StaticOffers{Offers: data.Offers},
		)
		if err != nil {
			return fmt.Errorf("resolving offers: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		records, linksSource, err = source.Resolve[[]links.Record](gctx, log, m,
			source.SheetJSON{
				Path:    cfg.LinksJSONPath,
				URL:     cfg.LinksJSONURL,
				Timeout: cfg.SourceFetchTimeout,
			},
			source.StaticLinks{Units: data.PortalLinks},
		)
		if err != nil {
			return fmt.Errorf("resolving links: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := catalog.Build(offers)
	records = links.DedupeAndSort(records)
	report := links.BuildReport(records)

	for _, rec := range records {
		if rec.URL == "" {
			m.RecordDataQualityIssue("invalid_url")
		}
		if rec.Code == "" {
			m.RecordDataQualityIssue("empty_code")
		}
		if rec.DataWarning {
			m.RecordDataQualityIssue("unit_title_mismatch")
		}
		if !rec.UnitResolved {
			m.RecordDataQualityIssue("unresolved_unit")
		}
	}

	m.SetCatalogStats(len(result.Catalog), result.Skipped)
	m.SetLinkQA(report.Total, report.InvalidURLs, report.EmptyCodes,
		report.Warnings, report.UnresolvedUnits)

	return &portalData{
		Result:       result,
		Records:      records,
		Report:       report,
		Availability: query.BuildAvailability(result),
		OffersSource: offersSource,
		LinksSource:  linksSource,
		BuiltAt:      time.Now().UTC(),
	}, nil
}
