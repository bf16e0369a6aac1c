// Package matrix classifies probability x severity risk scores into
// qualitative bands.
package matrix

import (
	"math"

	"github.com/sesmt-lab/sentinela/pkg/domain/model/config"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// Classify maps a numeric score to a qualitative band. It is total and
// never fails: NaN and anything below 1 degrade to the lowest band, and
// scores above the highest configured band fall into critical (the top
// band is open-ended). Bands are assumed ordered, contiguous and
// non-overlapping; that invariant is enforced at config load time.
func Classify(score float64, bands []config.Band) types.Band {
	if len(bands) == 0 {
		bands = config.DefaultBands()
	}

	if math.IsNaN(score) || score < 1 {
		return types.BandLow
	}

	for _, band := range bands {
		if score <= float64(band.Max) {
			return band.Level
		}
	}

	return types.BandCritical
}

// RequiresJustification reports whether an assessment with the given
// score demands a technical justification. True iff the score classifies
// as high or critical.
func RequiresJustification(score float64, bands []config.Band) bool {
	switch Classify(score, bands) {
	case types.BandHigh, types.BandCritical:
		return true
	default:
		return false
	}
}
