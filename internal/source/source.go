// Package source loads the raw data feeds behind the catalog and link
// pipelines. Each feed is a Source capability; a resolver tries sources in
// priority order and falls back silently, so a broken or empty remote
// document never surfaces to users as long as the embedded tables exist.
package source

import (
	"context"

	apperrors "github.com/fametro/portal-ingresso/internal/errors"
	"github.com/fametro/portal-ingresso/internal/logger"
	"github.com/fametro/portal-ingresso/internal/metrics"
)

// Source loads one raw data feed. Load must return an error for empty
// payloads so the resolver can keep falling back.
type Source[T any] interface {
	Name() string
	Load(ctx context.Context) (T, error)
}

// Resolve tries sources in priority order and returns the first payload
// that loads, together with the winning source's name. Every attempt is
// logged and counted; failures below the winner are diagnostics, not
// errors. When every source fails, ErrMissingData is returned.
func Resolve[T any](ctx context.Context, log *logger.Logger, m *metrics.Metrics, sources ...Source[T]) (T, string, error) {
	var zero T

	for _, src := range sources {
		payload, err := src.Load(ctx)
		if err != nil {
			if m != nil {
				m.RecordSourceLoad(src.Name(), "error")
			}
			log.WithModule("source").
				WithField("source", src.Name()).
				WithError(err).
				Warn("Data source failed, falling back")
			continue
		}
		if m != nil {
			m.RecordSourceLoad(src.Name(), "success")
		}
		log.WithModule("source").
			WithField("source", src.Name()).
			Info("Data source selected")
		return payload, src.Name(), nil
	}

	return zero, "", apperrors.ErrMissingData
}
