package matrix_test

import (
	"math"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/sesmt-lab/sentinela/pkg/domain/model/config"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
	"github.com/sesmt-lab/sentinela/pkg/service/matrix"
)

func TestClassifyDefaultBands(t *testing.T) {
	cases := []struct {
		name     string
		score    float64
		expected types.Band
	}{
		{"minimum score", 1, types.BandLow},
		{"top of low", 4, types.BandLow},
		{"bottom of medium", 5, types.BandMedium},
		{"top of medium", 9, types.BandMedium},
		{"bottom of high", 10, types.BandHigh},
		{"top of high", 16, types.BandHigh},
		{"bottom of critical", 17, types.BandCritical},
		{"maximum matrix score", 25, types.BandCritical},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Value(t, matrix.Classify(tc.score, nil)).Equal(tc.expected)
		})
	}
}

func TestClassifyDegradedInputs(t *testing.T) {
	t.Run("NaN degrades to low", func(t *testing.T) {
		gt.Value(t, matrix.Classify(math.NaN(), nil)).Equal(types.BandLow)
	})

	t.Run("zero degrades to low", func(t *testing.T) {
		gt.Value(t, matrix.Classify(0, nil)).Equal(types.BandLow)
	})

	t.Run("negative degrades to low", func(t *testing.T) {
		gt.Value(t, matrix.Classify(-5, nil)).Equal(types.BandLow)
	})

	t.Run("above top band stays critical", func(t *testing.T) {
		gt.Value(t, matrix.Classify(26, nil)).Equal(types.BandCritical)
		gt.Value(t, matrix.Classify(1000, nil)).Equal(types.BandCritical)
	})
}

func TestClassifyMonotonic(t *testing.T) {
	order := map[types.Band]int{
		types.BandLow:      0,
		types.BandMedium:   1,
		types.BandHigh:     2,
		types.BandCritical: 3,
	}

	prev := types.BandLow
	for score := 1; score <= 30; score++ {
		band := matrix.Classify(float64(score), nil)
		gt.Bool(t, order[band] >= order[prev]).True()
		prev = band
	}
}

func TestClassifyCustomBands(t *testing.T) {
	bands := []config.Band{
		{Level: types.BandLow, Name: "Baixo", Min: 1, Max: 8},
		{Level: types.BandHigh, Name: "Alto", Min: 9, Max: 25},
	}

	gt.Value(t, matrix.Classify(8, bands)).Equal(types.BandLow)
	gt.Value(t, matrix.Classify(9, bands)).Equal(types.BandHigh)
	gt.Value(t, matrix.Classify(30, bands)).Equal(types.BandCritical)
}

func TestRequiresJustification(t *testing.T) {
	cases := []struct {
		score    float64
		expected bool
	}{
		{1, false},
		{4, false},
		{9, false},
		{10, true},
		{16, true},
		{17, true},
		{25, true},
	}

	for _, tc := range cases {
		gt.Value(t, matrix.RequiresJustification(tc.score, nil)).Equal(tc.expected)
	}
}
