package types

// ItemState represents the outcome of a single checklist item after an
// inspection answer has been matched against it.
type ItemState string

const (
	// ItemUnknown means no inspection exists for the checklist at all.
	ItemUnknown ItemState = "unknown"
	// ItemOK means the item was answered affirmatively.
	ItemOK ItemState = "ok"
	// ItemNonConforming means the item was answered negatively.
	ItemNonConforming ItemState = "non_conforming"
	// ItemPending means an inspection exists but the item has no answer.
	ItemPending ItemState = "pending"
)

// String returns the string representation of the item state
func (s ItemState) String() string {
	return string(s)
}
