// Package main provides the admissions portal API server entry point.
package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fametro/portal-ingresso/internal/buildinfo"
	"github.com/fametro/portal-ingresso/internal/config"
	"github.com/fametro/portal-ingresso/internal/links"
	"github.com/fametro/portal-ingresso/internal/metrics"
	"github.com/fametro/portal-ingresso/internal/query"
	"github.com/fametro/portal-ingresso/internal/taxonomy"
)

// setupRoutes configures all HTTP routes
func setupRoutes(router *gin.Engine, pd *portalData, cfg *config.Config, registry *prometheus.Registry, m *metrics.Metrics) {
	rootHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":    "portal-ingresso",
			"version":    buildinfo.Version,
			"commit":     buildinfo.Commit,
			"build_date": buildinfo.BuildDate,
		})
	}
	router.GET("/", rootHandler)
	router.HEAD("/", rootHandler)

	// Liveness Probe - only checks that the process is running
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/healthz", healthHandler)
	router.HEAD("/healthz", healthHandler)

	// Readiness Probe - the server is ready once the in-memory indexes
	// exist; they are built before the listener starts, so this mostly
	// reports data shape for operators
	readyHandler := func(c *gin.Context) {
		if pd.Result == nil || len(pd.Result.Catalog) == 0 || len(pd.Records) == 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"reason": "portal data not built",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ready",
			"data": gin.H{
				"courses":       len(pd.Result.Catalog),
				"link_records":  len(pd.Records),
				"offers_source": pd.OffersSource,
				"links_source":  pd.LinksSource,
				"built_at":      pd.BuiltAt.Format(time.RFC3339),
			},
		})
	}
	router.GET("/ready", readyHandler)
	router.HEAD("/ready", readyHandler)

	api := router.Group("/api")
	{
		api.GET("/units", listUnitsHandler(pd))
		api.GET("/units/:unit/courses", unitCoursesHandler(pd, m))
		api.GET("/availability", availabilityHandler(pd, cfg, m))
		api.GET("/links", linksHandler(pd, m))
		api.GET("/links/export.csv", linksCSVHandler(pd))
		api.GET("/legacy/offers", legacyOffersHandler(pd))
		api.GET("/qa", qaHandler(pd))
	}

	// Prometheus metrics endpoint
	router.GET("/metrics",
		metricsAuthMiddleware(cfg.MetricsAuthEnabled(), cfg.MetricsUsername, cfg.MetricsPassword),
		gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
}

// listUnitsHandler returns the campuses in display order with the
// modalities each one actually offers.
func listUnitsHandler(pd *portalData) gin.HandlerFunc {
	type unitView struct {
		Key        taxonomy.Unit       `json:"key"`
		Title      string              `json:"title"`
		Theme      string              `json:"theme"`
		Modalities []taxonomy.Modality `json:"modalities"`
	}

	return func(c *gin.Context) {
		out := make([]unitView, 0, len(taxonomy.Units))
		for _, info := range taxonomy.Units {
			view := unitView{Key: info.Key, Title: info.Title, Theme: info.Theme}
			for _, mod := range taxonomy.CourseModalities {
				if len(pd.Result.Offers[info.Key][mod]) > 0 {
					view.Modalities = append(view.Modalities, mod)
				}
			}
			out = append(out, view)
		}
		c.JSON(http.StatusOK, gin.H{"units": out})
	}
}

// unitCoursesHandler runs the course search for one campus. Modality
// defaults to the first course tab; q and shift are optional filters.
func unitCoursesHandler(pd *portalData, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		res := taxonomy.ClassifyUnit(c.Param("unit"))
		if !res.Resolved {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown unit"})
			return
		}

		eng := query.New(pd.Result, res.Key)
		if raw := c.Query("modality"); raw != "" {
			mod := taxonomy.ClassifyModality(raw)
			if !courseModality(mod) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown modality"})
				return
			}
			eng.SetModality(mod)
		}
		eng.SetQuery(c.Query("q"))
		if shift := c.Query("shift"); shift != "" {
			eng.SetShiftFilter(shift)
		}

		courses := eng.VisibleCourses()
		c.JSON(http.StatusOK, gin.H{
			"unit":     res.Key,
			"title":    res.Key.Title(),
			"modality": eng.Modality(),
			"kind":     eng.Kind(),
			"count":    len(courses),
			"shifts":   eng.AvailableShiftChips(),
			"courses":  courses,
		})

		m.RecordQuery("unit_courses", time.Since(start).Seconds())
	}
}

// availabilityHandler answers "which campuses offer course X, and how".
func availabilityHandler(pd *portalData, cfg *config.Config, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		q := c.Query("q")
		if q == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing query"})
			return
		}

		limit := cfg.AvailabilityResultLimit
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
				return
			}
			if n < limit {
				limit = n
			}
		}

		results := query.FindCourses(pd.Result, pd.Availability, q, limit)
		c.JSON(http.StatusOK, gin.H{
			"query":   q,
			"count":   len(results),
			"results": results,
		})

		m.RecordQuery("availability", time.Since(start).Seconds())
	}
}

// linkFilterFromQuery reads the shared unit/modality/type/q filter params.
// A second return of false means the unit param named no known campus.
func linkFilterFromQuery(c *gin.Context) (query.LinkFilter, bool) {
	filter := query.LinkFilter{Query: c.Query("q")}
	if raw := c.Query("unit"); raw != "" {
		res := taxonomy.ClassifyUnit(raw)
		if !res.Resolved {
			return filter, false
		}
		filter.Unit = res.Key
	}
	if raw := c.Query("modality"); raw != "" {
		filter.Modality = taxonomy.ClassifyModality(raw)
	}
	if raw := c.Query("type"); raw != "" {
		filter.Type = taxonomy.ClassifyLinkType(raw)
	}
	return filter, true
}

// linksHandler serves the admission link listing, filtered and optionally
// grouped into per-unit blocks.
func linksHandler(pd *portalData, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		filter, ok := linkFilterFromQuery(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown unit"})
			return
		}

		records := query.FilterLinks(pd.Records, filter)

		if c.Query("grouped") == "true" {
			c.JSON(http.StatusOK, gin.H{
				"count":  len(records),
				"groups": query.GroupLinks(records),
			})
		} else {
			c.JSON(http.StatusOK, gin.H{
				"count": len(records),
				"links": records,
			})
		}

		m.RecordQuery("links", time.Since(start).Seconds())
	}
}

// linksCSVHandler exports the normalized link table as a spreadsheet,
// honoring the same filter params as the JSON listing.
func linksCSVHandler(pd *portalData) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, ok := linkFilterFromQuery(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown unit"})
			return
		}

		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", `attachment; filename="links-ingresso.csv"`)
		if err := links.WriteCSV(c.Writer, query.FilterLinks(pd.Records, filter)); err != nil {
			_ = c.Error(err)
		}
	}
}

// legacyOffersHandler serves the flat unit/modality course rows kept for
// consumers of the pre-catalog shape.
func legacyOffersHandler(pd *portalData) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, query.LegacyView(pd.Result))
	}
}

// qaHandler surfaces the data-quality report: record counters, incomplete
// blocks, and build provenance.
func qaHandler(pd *portalData) gin.HandlerFunc {
	return func(c *gin.Context) {
		blocks := links.SummarizeBlocks(pd.Records)
		incomplete := make([]links.BlockSummary, 0)
		for _, b := range blocks {
			if b.Status != links.BlockComplete {
				incomplete = append(incomplete, b)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"report":            pd.Report,
			"incomplete_blocks": incomplete,
			"catalog_skipped":   pd.Result.Skipped,
			"offers_source":     pd.OffersSource,
			"links_source":      pd.LinksSource,
			"built_at":          pd.BuiltAt.Format(time.RFC3339),
		})
	}
}

// courseModality reports whether m is one of the course search tabs.
func courseModality(m taxonomy.Modality) bool {
	for _, mod := range taxonomy.CourseModalities {
		if mod == m {
			return true
		}
	}
	return false
}
