package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fametro/portal-ingresso/internal/catalog"
	apperrors "github.com/fametro/portal-ingresso/internal/errors"
	"github.com/fametro/portal-ingresso/internal/taxonomy"
)

// StaticOffers serves the embedded offerings tables.
type StaticOffers struct {
	Offers catalog.RawOffers
}

func (s StaticOffers) Name() string { return "embedded" }

func (s StaticOffers) Load(_ context.Context) (catalog.RawOffers, error) {
	if len(s.Offers) == 0 {
		return nil, apperrors.NewSourceError(s.Name(), apperrors.ErrMissingData)
	}
	return s.Offers, nil
}

// OffersYAML loads an offerings override document. The document maps unit
// keys to modality keys to items; each item is either a bare course name
// or a {name, shift} mapping:
//
//	sede:
//	  presencial:
//	    - name: Direito
//	      shift: Matutino
//	    - Administração
//	  ead:
//	    - Administração
type OffersYAML struct {
	Path string
}

func (s OffersYAML) Name() string { return "offers_yaml" }

// offerItem accepts the two raw item shapes.
type offerItem struct {
	Name  string
	Shift string
}

func (o *offerItem) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&o.Name)
	}
	var raw struct {
		Name  string `yaml:"name"`
		Shift string `yaml:"shift"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	o.Name = raw.Name
	o.Shift = raw.Shift
	return nil
}

func (s OffersYAML) Load(_ context.Context) (catalog.RawOffers, error) {
	if s.Path == "" {
		return nil, apperrors.NewSourceError(s.Name(), apperrors.ErrSourceUnavailable)
	}
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, apperrors.NewSourceError(s.Name(), err)
	}

	var doc map[string]map[string][]offerItem
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, apperrors.NewSourceError(s.Name(), fmt.Errorf("decode: %w", err))
	}
	if len(doc) == 0 {
		return nil, apperrors.NewSourceError(s.Name(),
			fmt.Errorf("empty payload: %w", apperrors.ErrSourceUnavailable))
	}

	offers := make(catalog.RawOffers, len(doc))
	for unitKey, modalities := range doc {
		unit := taxonomy.ClassifyUnit(unitKey).Key
		bucket := make(map[taxonomy.Modality][]catalog.Source, len(modalities))
		for modKey, items := range modalities {
			modality := taxonomy.ClassifyModality(modKey)
			sources := make([]catalog.Source, 0, len(items))
			for _, item := range items {
				sources = append(sources, catalog.Source{
					Name:  item.Name,
					Shift: taxonomy.Shift(item.Shift),
				})
			}
			bucket[modality] = sources
		}
		offers[unit] = bucket
	}
	return offers, nil
}

// readAll reads r up to limit bytes, erroring on larger payloads.
func readAll(r io.Reader, limit int64) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(raw)) > limit {
		return nil, fmt.Errorf("payload exceeds %d bytes", limit)
	}
	return raw, nil
}
