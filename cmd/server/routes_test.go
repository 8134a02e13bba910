package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fametro/portal-ingresso/internal/catalog"
	"github.com/fametro/portal-ingresso/internal/config"
	"github.com/fametro/portal-ingresso/internal/data"
	"github.com/fametro/portal-ingresso/internal/links"
	"github.com/fametro/portal-ingresso/internal/metrics"
	"github.com/fametro/portal-ingresso/internal/query"
)

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	result := catalog.Build(data.Offers)
	records := links.DedupeAndSort(links.FromStructured(data.PortalLinks))
	pd := &portalData{
		Result:       result,
		Records:      records,
		Report:       links.BuildReport(records),
		Availability: query.BuildAvailability(result),
		OffersSource: "embedded",
		LinksSource:  "embedded",
		BuiltAt:      time.Now().UTC(),
	}

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	router := gin.New()
	setupRoutes(router, pd, cfg, registry, m)
	return router
}

func testConfig() *config.Config {
	return &config.Config{
		Port:                    "8080",
		LogLevel:                "error",
		AvailabilityResultLimit: 20,
		MetricsUsername:         "prometheus",
	}
}

func doGET(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := doGET(t, router, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeJSON(t, w)["status"])

	w = doGET(t, router, "/ready")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ready", decodeJSON(t, w)["status"])
}

func TestRootEndpoint(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := doGET(t, router, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "portal-ingresso", decodeJSON(t, w)["service"])
}

func TestListUnits(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := doGET(t, router, "/api/units")
	require.Equal(t, http.StatusOK, w.Code)

	units, ok := decodeJSON(t, w)["units"].([]any)
	require.True(t, ok)
	require.Len(t, units, 5)

	first, ok := units[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "sede", first["key"])
	assert.NotEmpty(t, first["modalities"])
}

func TestUnitCourses(t *testing.T) {
	router := newTestRouter(t, testConfig())

	t.Run("Query matches", func(t *testing.T) {
		w := doGET(t, router, "/api/units/sede/courses?q=direito")
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeJSON(t, w)
		assert.Equal(t, "ok", body["kind"])
		assert.Equal(t, float64(1), body["count"])
	})

	t.Run("Alias unit resolves", func(t *testing.T) {
		w := doGET(t, router, "/api/units/oeste/courses")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "compensa", decodeJSON(t, w)["unit"])
	})

	t.Run("Unknown unit is 404", func(t *testing.T) {
		w := doGET(t, router, "/api/units/centro/courses")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Unknown modality is 400", func(t *testing.T) {
		w := doGET(t, router, "/api/units/sede/courses?modality=noturno")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("No offerings vs no match", func(t *testing.T) {
		// compensa has no hybrid offerings at all
		w := doGET(t, router, "/api/units/oeste/courses?modality=hibrido")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "not_offered", decodeJSON(t, w)["kind"])

		w = doGET(t, router, "/api/units/sede/courses?q=zzznope")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "no_match", decodeJSON(t, w)["kind"])
	})

	t.Run("Forced shift modality has no chips", func(t *testing.T) {
		w := doGET(t, router, "/api/units/sede/courses?modality=ead")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, decodeJSON(t, w)["shifts"])
	})
}

func TestAvailability(t *testing.T) {
	router := newTestRouter(t, testConfig())

	t.Run("Diacritic-insensitive search", func(t *testing.T) {
		w := doGET(t, router, "/api/availability?q=administracao")
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeJSON(t, w)
		results, ok := body["results"].([]any)
		require.True(t, ok)
		assert.NotEmpty(t, results)
	})

	t.Run("Missing query is 400", func(t *testing.T) {
		w := doGET(t, router, "/api/availability")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Limit caps results", func(t *testing.T) {
		w := doGET(t, router, "/api/availability?q=a&limit=3")
		require.Equal(t, http.StatusOK, w.Code)
		assert.LessOrEqual(t, decodeJSON(t, w)["count"], float64(3))
	})

	t.Run("Invalid limit is 400", func(t *testing.T) {
		w := doGET(t, router, "/api/availability?q=a&limit=zero")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLinksEndpoint(t *testing.T) {
	router := newTestRouter(t, testConfig())

	t.Run("Unfiltered listing", func(t *testing.T) {
		w := doGET(t, router, "/api/links")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Greater(t, decodeJSON(t, w)["count"], float64(0))
	})

	t.Run("Alias unit filter", func(t *testing.T) {
		w := doGET(t, router, "/api/links?unit=oeste")
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeJSON(t, w)
		records, ok := body["links"].([]any)
		require.True(t, ok)
		require.NotEmpty(t, records)
		first, ok := records[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "compensa", first["unit_key"])
	})

	t.Run("Grouped listing", func(t *testing.T) {
		w := doGET(t, router, "/api/links?grouped=true")
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeJSON(t, w)
		groups, ok := body["groups"].([]any)
		require.True(t, ok)
		assert.NotEmpty(t, groups)
	})

	t.Run("Unknown unit is 404", func(t *testing.T) {
		w := doGET(t, router, "/api/links?unit=centro")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLinksCSVExport(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := doGET(t, router, "/api/links/export.csv")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), "unidade,modalidade,ingresso,codigo,titulo,url")

	t.Run("Filter params apply", func(t *testing.T) {
		w := doGET(t, router, "/api/links/export.csv?unit=leste")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "LESTE")
		assert.NotContains(t, w.Body.String(), "SEDE")
	})
}

func TestLegacyOffers(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := doGET(t, router, "/api/legacy/offers")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	sede, ok := body["sede"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, sede["presencial"])
}

func TestQAEndpoint(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := doGET(t, router, "/api/qa")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	report, ok := body["report"].(map[string]any)
	require.True(t, ok)
	assert.Greater(t, report["total"], float64(0))
	assert.Equal(t, float64(0), report["invalid_urls"])
}

func TestMetricsAuth(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsPassword = "secret"
	router := newTestRouter(t, cfg)

	t.Run("No credentials", func(t *testing.T) {
		w := doGET(t, router, "/metrics")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Wrong credentials", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
		req.SetBasicAuth("prometheus", "wrong")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Valid credentials", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
		req.SetBasicAuth("prometheus", "secret")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Auth disabled without password", func(t *testing.T) {
		open := newTestRouter(t, testConfig())
		w := doGET(t, open, "/metrics")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
