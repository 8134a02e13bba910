package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordDataQualityIssue(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordDataQualityIssue("invalid_url")
	m.RecordDataQualityIssue("invalid_url")
	m.RecordDataQualityIssue("empty_code")

	if got := testutil.ToFloat64(m.DataQualityIssues.WithLabelValues("invalid_url")); got != 2 {
		t.Errorf("invalid_url = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.DataQualityIssues.WithLabelValues("empty_code")); got != 1 {
		t.Errorf("empty_code = %v, want 1", got)
	}
}

func TestRecordSourceLoad(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordSourceLoad("portal_links_json", "error")
	m.RecordSourceLoad("embedded", "success")

	if got := testutil.ToFloat64(m.SourceLoadsTotal.WithLabelValues("portal_links_json", "error")); got != 1 {
		t.Errorf("json error loads = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.SourceLoadsTotal.WithLabelValues("embedded", "success")); got != 1 {
		t.Errorf("embedded success loads = %v, want 1", got)
	}
}

func TestRecordQuery(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordQuery("courses", 0.001)
	m.RecordQuery("courses", 0.002)

	if got := testutil.ToFloat64(m.QueryRequestsTotal.WithLabelValues("courses")); got != 2 {
		t.Errorf("courses requests = %v, want 2", got)
	}
}

func TestSetLinkQA(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.SetLinkQA(50, 2, 1, 3, 0)

	if got := testutil.ToFloat64(m.LinkRecords); got != 50 {
		t.Errorf("LinkRecords = %v, want 50", got)
	}
	if got := testutil.ToFloat64(m.LinkInvalidURLs); got != 2 {
		t.Errorf("LinkInvalidURLs = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.LinkWarnings); got != 3 {
		t.Errorf("LinkWarnings = %v, want 3", got)
	}

	// gauges reset on refresh, not accumulate
	m.SetLinkQA(40, 0, 0, 0, 0)
	if got := testutil.ToFloat64(m.LinkRecords); got != 40 {
		t.Errorf("LinkRecords after refresh = %v, want 40", got)
	}
}

func TestSetCatalogStats(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.SetCatalogStats(120, 2)
	if got := testutil.ToFloat64(m.CatalogCourses); got != 120 {
		t.Errorf("CatalogCourses = %v, want 120", got)
	}
	if got := testutil.ToFloat64(m.CatalogSkipped); got != 2 {
		t.Errorf("CatalogSkipped = %v, want 2", got)
	}
}
