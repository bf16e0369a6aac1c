package model

import (
	"time"

	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// RiskMeasurement is instrument-measured exposure data layered atop a
// qualitative assessment. Zero or more per risk; appended and removed
// freely until the environment is finalized.
type RiskMeasurement struct {
	ID              types.MeasurementID
	RiskID          types.RiskID
	Type            string
	MeasuredValue   float64
	Unit            string
	ExposureTime    string
	Method          string
	Instrument      string
	MeasurementDate string
	// Comparison against the regulatory reference limit; empty when no
	// reference is configured for the measurement type.
	Comparison types.Comparison
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
