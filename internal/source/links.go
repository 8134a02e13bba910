package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	apperrors "github.com/fametro/portal-ingresso/internal/errors"
	"github.com/fametro/portal-ingresso/internal/links"
)

// StaticLinks serves the embedded per-unit link blocks. It is the last
// source in the chain and the only one whose absence is fatal.
type StaticLinks struct {
	Units []links.StructuredUnit
}

func (s StaticLinks) Name() string { return "embedded" }

func (s StaticLinks) Load(_ context.Context) ([]links.Record, error) {
	if len(s.Units) == 0 {
		return nil, apperrors.NewSourceError(s.Name(), apperrors.ErrMissingData)
	}
	return links.FromStructured(s.Units), nil
}

// SheetJSON loads the richer sheet-derived link document from a local
// file or a remote URL. The file takes precedence when both are set.
type SheetJSON struct {
	Path    string
	URL     string
	Client  *http.Client
	Timeout time.Duration
}

func (s SheetJSON) Name() string { return "portal_links_json" }

func (s SheetJSON) Load(ctx context.Context) ([]links.Record, error) {
	raw, err := s.fetch(ctx)
	if err != nil {
		return nil, apperrors.NewSourceError(s.Name(), err)
	}

	var doc links.SheetDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, apperrors.NewSourceError(s.Name(), fmt.Errorf("decode: %w", err))
	}

	records := links.FromSheets(&doc)
	if len(records) == 0 {
		return nil, apperrors.NewSourceError(s.Name(),
			fmt.Errorf("empty payload: %w", apperrors.ErrSourceUnavailable))
	}
	return records, nil
}

func (s SheetJSON) fetch(ctx context.Context) ([]byte, error) {
	if s.Path != "" {
		return os.ReadFile(s.Path)
	}
	if s.URL == "" {
		return nil, apperrors.ErrSourceUnavailable
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, http.NoBody)
	if err != nil {
		return nil, err
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %w", resp.StatusCode, apperrors.ErrSourceUnavailable)
	}

	const maxPayload = 4 << 20 // generous bound for a sheet export
	return readAll(resp.Body, maxPayload)
}
