package config

import "github.com/sesmt-lab/sentinela/pkg/domain/types"

// Band represents one classification band of the risk matrix. Bands are
// ordered ascending and must be contiguous and non-overlapping; this is
// a configuration invariant enforced at load time, not by the classifier.
type Band struct {
	Level types.Band
	Name  string
	Min   int
	Max   int
}

// MatrixConfig holds the risk matrix configuration
type MatrixConfig struct {
	Bands []Band
}

// DefaultBands returns the standard 5x5 matrix bands.
func DefaultBands() []Band {
	return []Band{
		{Level: types.BandLow, Name: "Baixo", Min: 1, Max: 4},
		{Level: types.BandMedium, Name: "Medio", Min: 5, Max: 9},
		{Level: types.BandHigh, Name: "Alto", Min: 10, Max: 16},
		{Level: types.BandCritical, Name: "Critico", Min: 17, Max: 25},
	}
}

// BandsOrDefault returns the configured bands, falling back to the
// default matrix when none are configured.
func (c *MatrixConfig) BandsOrDefault() []Band {
	if c == nil || len(c.Bands) == 0 {
		return DefaultBands()
	}
	return c.Bands
}
