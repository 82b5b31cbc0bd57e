package simterms

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTerminology(opts ...Option) *Terminology {
	vectors := map[string]VectorMetadata{
		"WOPR": {Description: "Oil Production Rate", Type: "well"},
		"WBHP": {Description: "Bottom Hole Pressure", Type: "well"},
		"FOPT": {Description: "Oil Production Total", Type: "field"},
		"ROIP": {Description: "Oil In Place (liquid+gas phase)", Type: "region"},
		"RPR":  {Description: "Pressure average", Type: "region"},
		"ROFR": {Description: "Inter-region oil flow rate", Type: "region_to_region"},
		"BPR":  {Description: "Oil phase pressure", Type: "block"},
	}
	units := UnitTable{
		"METRIC": {
			"SM3/DAY": "Sm³/day",
			"BARSA":   "bara",
		},
	}
	return New(vectors, units, opts...)
}

func TestVectorBase(t *testing.T) {
	tests := []struct {
		vector string
		want   string
	}{
		{vector: "WOPR:OP_1", want: "WOPR"},
		{vector: "ROIP_REG:1", want: "ROIP"},
		{vector: "NOQUALIFIER", want: "NOQUALIFIER"},
		{vector: "FOPT", want: "FOPT"},
		{vector: "WBHP:A_1:junk", want: "WBHP"},
		{vector: "", want: ""},
		{vector: ":1", want: ""},
		{vector: "_X:1", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.vector, func(t *testing.T) {
			assert.Equal(t, tt.want, VectorBase(tt.vector))
		})
	}
}

func TestVectorBaseIdempotent(t *testing.T) {
	for _, v := range []string{"WOPR:OP_1", "ROIP_REG:1", "NOQUALIFIER", "", "R_1_2:3"} {
		base := VectorBase(v)
		assert.Equal(t, base, VectorBase(base), "vector %q", v)
	}
}

func TestReformatUnit(t *testing.T) {
	term := testTerminology()

	tests := []struct {
		name    string
		unit    string
		unitSet string
		want    string
	}{
		{name: "mapped", unit: "SM3/DAY", unitSet: "METRIC", want: "Sm³/day"},
		{name: "mapped default set", unit: "BARSA", unitSet: "", want: "bara"},
		{name: "unknown unit passthrough", unit: "FURLONG/DAY", unitSet: "METRIC", want: "FURLONG/DAY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := term.ReformatUnit(tt.unit, tt.unitSet)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReformatUnitUnknownSet(t *testing.T) {
	term := testTerminology()

	_, err := term.ReformatUnit("SM3/DAY", "UNKNOWN_SET")
	require.Error(t, err)

	var unknownSet *ErrUnknownUnitSet
	require.ErrorAs(t, err, &unknownSet)
	assert.Equal(t, "UNKNOWN_SET", unknownSet.UnitSet)
}

func TestReformatUnitConfiguredDefaultSet(t *testing.T) {
	term := testTerminology(WithDefaultUnitSet("FIELD"))

	// The configured default set does not exist in the table.
	_, err := term.ReformatUnit("SM3/DAY", "")
	var unknownSet *ErrUnknownUnitSet
	require.ErrorAs(t, err, &unknownSet)
	assert.Equal(t, "FIELD", unknownSet.UnitSet)

	// Explicit set still works.
	got, err := term.ReformatUnit("SM3/DAY", "METRIC")
	require.NoError(t, err)
	assert.Equal(t, "Sm³/day", got)
}

func TestVectorDescription(t *testing.T) {
	term := testTerminology()

	tests := []struct {
		name   string
		vector string
		want   string
	}{
		{name: "known base no node", vector: "WOPR", want: "Oil Production Rate"},
		{name: "well node", vector: "WOPR:OP_1", want: "Oil Production Rate, well OP_1"},
		{name: "region node", vector: "ROIP:1", want: "Oil In Place (liquid+gas phase), region 1"},
		{name: "region array single fill", vector: "ROIP_REG:1", want: "Oil In Place (liquid+gas phase), region REG 1"},
		{name: "region array double fill", vector: "RPR__REG:2", want: "Pressure average, region REG 2"},
		{name: "region array without node", vector: "ROIP_REG", want: "Oil In Place (liquid+gas phase)"},
		{name: "inter-region type spaces", vector: "ROFR:1-2", want: "Inter-region oil flow rate, region to region 1-2"},
		{name: "eight chars non-region prefix", vector: "WBHP____", want: "WBHP____"},
		{name: "eight chars unknown prefix", vector: "XXXXXAAA", want: "XXXXXAAA"},
		{name: "unknown vector", vector: "NOTAVEC", want: "NOTAVEC"},
		{name: "unknown vector with node", vector: "NOTAVEC:1", want: "NOTAVEC"},
		{name: "empty", vector: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, term.VectorDescription(tt.vector))
		})
	}
}

func TestVectorDescriptionEightCharTestIsPostSplit(t *testing.T) {
	term := testTerminology()

	// The full code is 8 characters but the name before the colon is not,
	// so no region reinterpretation happens.
	assert.Equal(t, "Oil Production Rate, well OP_", term.VectorDescription("WOPR:OP_"))
}

func TestVectorDescriptionMissAdvisory(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, nil))
	metrics := &BasicMetricsCollector{}
	term := testTerminology(WithLogger(logger), WithMetricsCollector(metrics))

	got := term.VectorDescription("NOTAVEC")
	assert.Equal(t, "NOTAVEC", got)
	assert.Contains(t, buf.String(), "no description found for vector")
	assert.Contains(t, buf.String(), "NOTAVEC")

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.DescriptionCount)
	assert.Equal(t, int64(1), stats.DescriptionMisses)

	buf.Reset()
	term.VectorDescription("WOPR")
	assert.Empty(t, buf.String())

	stats = metrics.GetStats()
	assert.Equal(t, int64(2), stats.DescriptionCount)
	assert.Equal(t, int64(1), stats.DescriptionMisses)
}

func TestVectorDescriptionKnownBasesRoundTrip(t *testing.T) {
	term := Default()

	for _, base := range []string{"WOPR", "FOPT", "ROIP", "RPR", "BPR", "TIME"} {
		meta, ok := term.Metadata(base)
		require.True(t, ok, "base %s", base)
		assert.Equal(t, meta.Description, term.VectorDescription(base))
	}
}

func TestMetadata(t *testing.T) {
	term := testTerminology()

	meta, ok := term.Metadata("ROFR")
	require.True(t, ok)
	assert.Equal(t, "region_to_region", meta.Type)

	_, ok = term.Metadata("NOTAVEC")
	assert.False(t, ok)
}

func TestUnitSets(t *testing.T) {
	term := New(nil, UnitTable{"METRIC": {}, "FIELD": {}, "LAB": {}})
	assert.Equal(t, []string{"FIELD", "LAB", "METRIC"}, term.UnitSets())
}

func TestConcurrentLookups(t *testing.T) {
	term := testTerminology()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = term.VectorDescription("ROIP_REG:1")
				_, _ = term.ReformatUnit("SM3/DAY", "")
				_ = VectorBase("WOPR:OP_1")
			}
		}()
	}
	wg.Wait()
}

func TestDefaultEmbeddedTables(t *testing.T) {
	term := Default()

	assert.Equal(t, "Oil Production Rate, well OP_1", term.VectorDescription("WOPR:OP_1"))
	assert.Equal(t, "Oil In Place (liquid+gas phase), region REG 1", term.VectorDescription("ROIP_REG:1"))

	got, err := term.ReformatUnit("SM3/DAY", "")
	require.NoError(t, err)
	assert.Equal(t, "Sm³/day", got)

	assert.Equal(t, []string{"METRIC"}, term.UnitSets())

	_, err = term.ReformatUnit("SM3/DAY", "FIELD")
	var unknownSet *ErrUnknownUnitSet
	assert.True(t, errors.As(err, &unknownSet))
}
