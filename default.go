package simterms

import (
	"embed"
	"fmt"
	"sync"

	"github.com/subsurf/simterms/codec"
)

//go:embed data/reservoir_simulation_vectors.json data/reservoir_simulation_unit_terminology.json
var embeddedData embed.FS

var (
	embeddedOnce    sync.Once
	embeddedVectors map[string]VectorMetadata
	embeddedUnits   UnitTable
)

func embeddedTables() (map[string]VectorMetadata, UnitTable) {
	embeddedOnce.Do(func() {
		decode := func(name string, v any) {
			raw, err := embeddedData.ReadFile("data/" + name)
			if err == nil {
				err = codec.Default.Unmarshal(raw, v)
			}
			if err != nil {
				// Embedded documents are fixed at compile time; failing to
				// decode them is a build defect, not a runtime condition.
				panic(fmt.Errorf("simterms: embedded %s: %w", name, err))
			}
		}
		decode("reservoir_simulation_vectors.json", &embeddedVectors)
		decode("reservoir_simulation_unit_terminology.json", &embeddedUnits)
	})
	return embeddedVectors, embeddedUnits
}

// Default returns a Terminology backed by the embedded reference documents.
// The documents are parsed once per process; the resulting tables are shared
// read-only between all Terminology values built from them.
func Default(opts ...Option) *Terminology {
	vectors, units := embeddedTables()
	return New(vectors, units, opts...)
}
