package reflimit

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

type tableFile struct {
	References []referenceEntry `toml:"reference"`
}

type referenceEntry struct {
	Type        string  `toml:"type"`
	Unit        string  `toml:"unit"`
	ActionLevel float64 `toml:"action_level"`
	Limit       float64 `toml:"limit"`
}

// Validate checks if the reference entry is valid
func (r *referenceEntry) Validate() error {
	if r.Type == "" {
		return goerr.New("reference type is required")
	}
	if r.Unit == "" {
		return goerr.New("reference unit is required", goerr.V("type", r.Type))
	}
	if r.Limit <= 0 {
		return goerr.New("reference limit must be positive", goerr.V("type", r.Type), goerr.V("limit", r.Limit))
	}
	if r.ActionLevel < 0 || r.ActionLevel > r.Limit {
		return goerr.New("action level must be between 0 and the limit",
			goerr.V("type", r.Type), goerr.V("action_level", r.ActionLevel), goerr.V("limit", r.Limit))
	}
	return nil
}

// LoadTable loads reference limits from a TOML file.
func LoadTable(path string) ([]Reference, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read reference limit file", goerr.V("path", path))
	}

	var file tableFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse reference limit TOML", goerr.V("path", path))
	}

	seen := make(map[string]bool)
	refs := make([]Reference, 0, len(file.References))
	for i := range file.References {
		entry := &file.References[i]
		if err := entry.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid reference limit", goerr.V("path", path))
		}
		key := refKey(entry.Type, entry.Unit)
		if seen[key] {
			return nil, goerr.New("duplicate reference limit", goerr.V("type", entry.Type), goerr.V("unit", entry.Unit))
		}
		seen[key] = true
		refs = append(refs, Reference{
			Type:        entry.Type,
			Unit:        entry.Unit,
			ActionLevel: entry.ActionLevel,
			Limit:       entry.Limit,
		})
	}

	return refs, nil
}
