package termsource

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// ErrNotFound is returned when a requested document does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Well-known document names. Sources are expected to serve the reference
// tables under these names, optionally with a compression suffix
// (.gz, .zst or .lz4).
const (
	VectorsDocument = "reservoir_simulation_vectors.json"
	UnitsDocument   = "reservoir_simulation_unit_terminology.json"
)

// Source is an abstraction for fetching immutable reference documents.
//
// Fetch returns the raw (possibly compressed) document bytes. Missing
// documents are reported with ErrNotFound.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// FetchDocument fetches a document from src, probing compressed variants
// when the plain name is absent. The returned bytes are always decompressed.
func FetchDocument(ctx context.Context, src Source, name string) ([]byte, error) {
	for _, candidate := range []string{name, name + ".gz", name + ".zst", name + ".lz4"} {
		data, err := src.Fetch(ctx, candidate)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", candidate, err)
		}
		return Decompress(candidate, data)
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}
