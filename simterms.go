package simterms

import (
	"sort"
	"strings"
	"time"
)

// DefaultUnitSet is the unit set used when none is given.
// It follows the Eclipse E100 METRIC conventions.
const DefaultUnitSet = "METRIC"

// VectorMetadata describes a simulation vector base name.
type VectorMetadata struct {
	// Description is the human readable description, e.g. "Oil Production Rate".
	Description string `json:"description"`
	// Type classifies the vector, e.g. "field", "well", "region" or
	// "region_to_region". Underscores are rendered as spaces when the type
	// is embedded in a description.
	Type string `json:"type"`
}

// UnitTable maps a unit set name (e.g. "METRIC") to a mapping from raw
// simulator unit strings to friendlier forms.
type UnitTable map[string]map[string]string

// Terminology resolves simulation vector codes and units against the loaded
// reference tables.
//
// A Terminology is immutable after construction and safe for concurrent use.
type Terminology struct {
	vectors map[string]VectorMetadata
	units   UnitTable

	unitSet string
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Terminology from already loaded reference tables.
//
// The tables are used as-is and must not be mutated afterwards. Use Load to
// build the tables from a termsource.Source, or Default for the embedded
// reference data.
func New(vectors map[string]VectorMetadata, units UnitTable, opts ...Option) *Terminology {
	o := applyOptions(opts)
	return &Terminology{
		vectors: vectors,
		units:   units,
		unitSet: o.unitSet,
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// Metadata returns the metadata for a vector base name.
func (t *Terminology) Metadata(base string) (VectorMetadata, bool) {
	m, ok := t.vectors[base]
	return m, ok
}

// UnitSets returns the names of the loaded unit sets, sorted.
func (t *Terminology) UnitSets() []string {
	sets := make([]string, 0, len(t.units))
	for name := range t.units {
		sets = append(sets, name)
	}
	sort.Strings(sets)
	return sets
}

// ReformatUnit returns a friendlier form of a raw simulator unit if the unit
// set defines one, otherwise the raw unit unchanged. An empty unitSet selects
// the configured default set.
//
// An unknown unit set is a configuration mistake and returns
// *ErrUnknownUnitSet; an unknown raw unit is not an error.
func (t *Terminology) ReformatUnit(unit, unitSet string) (string, error) {
	start := time.Now()

	if unitSet == "" {
		unitSet = t.unitSet
	}
	set, ok := t.units[unitSet]
	if !ok {
		t.metrics.RecordUnitReformat(time.Since(start), false)
		return "", &ErrUnknownUnitSet{UnitSet: unitSet}
	}
	friendly, ok := set[unit]
	t.metrics.RecordUnitReformat(time.Since(start), ok)
	if !ok {
		return unit, nil
	}
	return friendly, nil
}

// VectorBase returns the base name of a simulation vector code: the part
// before the first colon, stripped of any underscore suffix.
// E.g. WOPR for "WOPR:OP_1" and ROIP for "ROIP_REG:1".
func VectorBase(vector string) string {
	base, _, _ := strings.Cut(vector, ":")
	base, _, _ = strings.Cut(base, "_")
	return base
}

// VectorDescription returns a human readable description of a simulation
// vector code if the terminology table knows it, otherwise the vector name
// itself. A miss is advisory only: it is logged at WARN on the configured
// logger and counted by the metrics collector, never an error.
func (t *Terminology) VectorDescription(vector string) string {
	start := time.Now()

	name, node, hasNode := strings.Cut(vector, ":")

	// Region vectors for FIP arrays other than FIPNUM use a fixed-width
	// 8 character encoding where the last 3 characters name the array.
	// For an array "FIPREG": ROIP is ROIP_REG, RPR is RPR__REG and ROIPL
	// is ROIPLREG. Underscores fill the gap.
	var fip string
	if len(name) == 8 {
		candidate, array := strings.TrimRight(name[:5], "_"), name[5:]
		if meta, ok := t.vectors[candidate]; ok && meta.Type == "region" {
			name = candidate
			fip = array
		}
	}

	meta, ok := t.vectors[name]
	if !ok {
		t.metrics.RecordDescription(time.Since(start), true)
		t.logger.LogDescriptionMiss(name)
		return name
	}

	description := meta.Description
	if hasNode {
		kind := strings.ReplaceAll(meta.Type, "_", " ")
		if fip != "" {
			description += ", " + kind + " " + fip + " " + node
		} else {
			description += ", " + kind + " " + node
		}
	}

	t.metrics.RecordDescription(time.Since(start), false)
	return description
}
