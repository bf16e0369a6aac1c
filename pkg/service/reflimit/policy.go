// Package reflimit classifies measured exposure values against
// regulatory reference limits. The limits themselves are external
// configuration data; this package only applies them.
package reflimit

import (
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// ErrNoReference is returned when no reference limit is configured for
// a measurement type and unit.
var ErrNoReference = goerr.New("no reference limit configured")

// Comparator is the pluggable comparison policy supplied by a
// reference-limits collaborator.
type Comparator interface {
	Compare(measurementType string, value float64, unit string) (types.Comparison, error)
}

// Reference is one configured limit: values below the action level are
// "below", values between action level and limit are "near", values
// above the limit are "above".
type Reference struct {
	Type        string
	Unit        string
	ActionLevel float64
	Limit       float64
}

func refKey(measurementType, unit string) string {
	return measurementType + "/" + unit
}

// StaticTable is a Comparator backed by an in-memory table. The table
// can be swapped wholesale by the refresh worker.
type StaticTable struct {
	mu   sync.RWMutex
	refs map[string]Reference
}

var _ Comparator = &StaticTable{}

// NewStaticTable builds a comparator from the given references.
func NewStaticTable(refs []Reference) *StaticTable {
	t := &StaticTable{}
	t.Replace(refs)
	return t
}

// Replace swaps the whole reference table.
func (t *StaticTable) Replace(refs []Reference) {
	table := make(map[string]Reference, len(refs))
	for _, ref := range refs {
		table[refKey(ref.Type, ref.Unit)] = ref
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.refs = table
}

// Len returns the number of configured references.
func (t *StaticTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.refs)
}

// Compare classifies a measured value against its configured reference.
func (t *StaticTable) Compare(measurementType string, value float64, unit string) (types.Comparison, error) {
	t.mu.RLock()
	ref, ok := t.refs[refKey(measurementType, unit)]
	t.mu.RUnlock()

	if !ok {
		return "", goerr.Wrap(ErrNoReference, "unknown measurement type",
			goerr.V("type", measurementType), goerr.V("unit", unit))
	}

	switch {
	case value < ref.ActionLevel:
		return types.ComparisonBelow, nil
	case value <= ref.Limit:
		return types.ComparisonNear, nil
	default:
		return types.ComparisonAbove, nil
	}
}
