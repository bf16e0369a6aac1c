package model

import "github.com/m-mizutani/goerr/v2"

// Validation errors. This is the closed taxonomy of caller-facing
// failures; classification, aggregation and migration never error.
var (
	// ErrActivityRequired is returned when a risk is created without a
	// parent activity.
	ErrActivityRequired = goerr.New("risk requires a parent activity")

	// ErrQualitativeRequired is returned when quantitative data is
	// recorded for a risk that has no qualitative assessment yet.
	ErrQualitativeRequired = goerr.New("qualitative assessment required before quantitative data")

	// ErrQuantitativeNotAllowed is returned when the risk's agent
	// category does not admit instrument measurement.
	ErrQuantitativeNotAllowed = goerr.New("risk category does not allow quantitative measurement")

	// ErrEnvironmentFinalized is returned on any attempt to create or
	// mutate children of a finalized environment.
	ErrEnvironmentFinalized = goerr.New("environment is finalized and cannot be modified")
)

// Context keys for error values
const (
	RiskIDKey        = "risk_id"
	ActivityIDKey    = "activity_id"
	EnvironmentIDKey = "environment_id"
	AgentCategoryKey = "agent_category"
)
