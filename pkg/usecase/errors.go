package usecase

import (
	"errors"

	"github.com/sesmt-lab/sentinela/pkg/repository/firestore"
	"github.com/sesmt-lab/sentinela/pkg/repository/memory"
)

// Sentinel errors for use case layer
var (
	// ErrNotFound is the backend-neutral not-found error exposed to
	// controllers.
	ErrNotFound = errors.New("resource not found")

	// ErrScaleOutOfRange is returned when probability or severity falls
	// outside the 1..5 matrix scale.
	ErrScaleOutOfRange = errors.New("probability and severity must be between 1 and 5")
)

// isNotFound collapses the per-backend not-found sentinels.
func isNotFound(err error) bool {
	return errors.Is(err, memory.ErrNotFound) || errors.Is(err, firestore.ErrNotFound)
}
