package simterms

import (
	"context"
	"fmt"

	"github.com/subsurf/simterms/termsource"
	"golang.org/x/sync/errgroup"
)

// Load builds a Terminology from the documents served by src.
//
// The vector and unit documents are fetched concurrently. Compressed variants
// (.gz, .zst, .lz4) are resolved by termsource.FetchDocument.
func Load(ctx context.Context, src termsource.Source, opts ...Option) (*Terminology, error) {
	o := applyOptions(opts)

	var rawVectors, rawUnits []byte
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rawVectors, err = termsource.FetchDocument(ctx, src, termsource.VectorsDocument)
		return err
	})
	g.Go(func() error {
		var err error
		rawUnits, err = termsource.FetchDocument(ctx, src, termsource.UnitsDocument)
		return err
	})
	if err := g.Wait(); err != nil {
		o.logger.LogLoad(0, 0, err)
		return nil, err
	}

	var vectors map[string]VectorMetadata
	if err := o.codec.Unmarshal(rawVectors, &vectors); err != nil {
		err = fmt.Errorf("decode %s: %w", termsource.VectorsDocument, err)
		o.logger.LogLoad(0, 0, err)
		return nil, err
	}
	var units UnitTable
	if err := o.codec.Unmarshal(rawUnits, &units); err != nil {
		err = fmt.Errorf("decode %s: %w", termsource.UnitsDocument, err)
		o.logger.LogLoad(0, 0, err)
		return nil, err
	}
	if len(vectors) == 0 {
		err := fmt.Errorf("empty document: %s", termsource.VectorsDocument)
		o.logger.LogLoad(0, 0, err)
		return nil, err
	}
	if len(units) == 0 {
		err := fmt.Errorf("empty document: %s", termsource.UnitsDocument)
		o.logger.LogLoad(0, 0, err)
		return nil, err
	}

	o.logger.LogLoad(len(vectors), len(units), nil)

	return &Terminology{
		vectors: vectors,
		units:   units,
		unitSet: o.unitSet,
		logger:  o.logger,
		metrics: o.metrics,
	}, nil
}
