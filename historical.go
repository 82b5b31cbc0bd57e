package simterms

import "strings"

// HistoricalFlags maps full vector codes to their is_historical flag, as
// exported from summary metadata (see package smeta).
type HistoricalFlags map[string]bool

// HistoricalVector makes a best guess at converting between historical and
// non-historical vector name spellings.
//
// With returnHistorical true, the guessed historical counterpart of vector is
// returned if the guess looks like a genuine historical vector, e.g. "WOPR"
// yields "WOPRH". With returnHistorical false, the non-historical counterpart
// is returned if vector itself looks historical, e.g. "WOPRH" yields "WOPR".
// A node qualifier after a colon is preserved either way. The second return
// value reports whether a counterpart was found.
//
// flags is accepted for forward compatibility but currently ignored: the
// is_historical column is not reliably populated by upstream exporters, so
// the guesser always falls back to the naming heuristic (a historical base
// ends with "H" and lives in the F, G or W namespace).
func HistoricalVector(vector string, flags HistoricalFlags, returnHistorical bool) (string, bool) {
	return historicalVector(vector, nil, returnHistorical)
}

func historicalVector(vector string, flags HistoricalFlags, returnHistorical bool) (string, bool) {
	base, node, hasNode := strings.Cut(vector, ":")

	if returnHistorical {
		hist := base + "H"
		if hasNode {
			hist += ":" + node
		}
		if _, ok := historicalVector(hist, flags, false); !ok {
			return "", false
		}
		return hist, true
	}

	if flags == nil {
		if strings.HasSuffix(base, "H") && startsWithAny(base, "F", "G", "W") {
			stripped := base[:len(base)-1]
			if hasNode {
				stripped += ":" + node
			}
			return stripped, true
		}
		return "", false
	}

	if flags[vector] {
		stripped := strings.TrimSuffix(base, "H")
		if hasNode {
			stripped += ":" + node
		}
		return stripped, true
	}
	return "", false
}

func startsWithAny(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
