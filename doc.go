// Package simterms translates raw reservoir-simulation vector codes into
// human readable descriptions and friendlier physical unit labels.
//
// A vector code is a short mnemonic, optionally qualified by a node (well,
// group or region identifier) after a colon, e.g. "WOPR:OP_1" or "ROIP:1".
// The package resolves such codes against two static reference tables, the
// vector terminology and the unit terminology, and additionally guesses the
// historical/non-historical counterpart of a vector name.
//
// # Quick Start
//
// Embedded reference data:
//
//	t := simterms.Default()
//	fmt.Println(t.VectorDescription("WOPR:OP_1")) // Oil Production Rate, well OP_1
//	unit, _ := t.ReformatUnit("SM3/DAY", "")      // Sm³/day
//	base := simterms.VectorBase("ROIP_REG:1")     // ROIP
//	hist, _ := simterms.HistoricalVector("WOPR", nil, true) // WOPRH
//
// Reference data from a source:
//
//	src := termsource.NewFileSource("/project/share/terminology")
//	t, err := simterms.Load(ctx, src)
//
//	s3src, _ := s3.New(ctx, "my-bucket", "terminology/")
//	t, err := simterms.Load(ctx, s3src)
//
// # Lookup Semantics
//
// Vector description lookups never fail: an unknown vector name falls back to
// the name itself and is surfaced only as an advisory WARN on the configured
// logger. Unit reformatting falls back to the raw unit for unknown units, but
// an unknown unit set is a configuration error and is returned to the caller.
//
// Region vectors for FIP arrays other than FIPNUM arrive in a fixed-width
// 8 character encoding packing the base name and a 3 character array name;
// VectorDescription resolves these transparently.
//
// All lookups run against tables that are immutable after construction, so a
// Terminology is safe for concurrent use without synchronization.
package simterms
