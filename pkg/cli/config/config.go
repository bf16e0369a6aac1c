// Package config holds the CLI flag groups and file-based configuration
// of the service.
package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	domainConfig "github.com/sesmt-lab/sentinela/pkg/domain/model/config"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// BandEntry is one risk matrix band in the configuration file.
type BandEntry struct {
	Level string `toml:"level"`
	Name  string `toml:"name"`
	Min   int    `toml:"min"`
	Max   int    `toml:"max"`
}

// Validate checks if the band entry is valid
func (b *BandEntry) Validate() error {
	level := types.Band(b.Level)
	if !level.IsValid() {
		return goerr.New("invalid band level", goerr.V("level", b.Level))
	}
	if b.Name == "" {
		return goerr.New("band name is required", goerr.V("level", b.Level))
	}
	if b.Min < 1 {
		return goerr.New("band min must be at least 1", goerr.V("level", b.Level), goerr.V("min", b.Min))
	}
	if b.Max < b.Min {
		return goerr.New("band max must not be below min",
			goerr.V("level", b.Level), goerr.V("min", b.Min), goerr.V("max", b.Max))
	}
	return nil
}

// AppConfig represents the application configuration file
type AppConfig struct {
	path string

	Bands []BandEntry `toml:"band"`
}

// Flags returns CLI flags for application configuration
func (a *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to application configuration TOML (risk matrix bands)",
			Sources:     cli.EnvVars("SENTINELA_CONFIG"),
			Destination: &a.path,
		},
	}
}

// Validate checks if the AppConfig is valid. Bands must be ordered
// ascending, contiguous and non-overlapping, and each level may appear
// only once.
func (a *AppConfig) Validate() error {
	seen := make(map[string]bool)
	for i := range a.Bands {
		band := &a.Bands[i]
		if err := band.Validate(); err != nil {
			return goerr.Wrap(err, "invalid band")
		}
		if seen[band.Level] {
			return goerr.New("duplicate band level", goerr.V("level", band.Level))
		}
		seen[band.Level] = true

		if i > 0 {
			prev := &a.Bands[i-1]
			if band.Min != prev.Max+1 {
				return goerr.New("bands must be contiguous and ascending",
					goerr.V("prev_level", prev.Level), goerr.V("prev_max", prev.Max),
					goerr.V("level", band.Level), goerr.V("min", band.Min))
			}
		}
	}
	return nil
}

// Load reads and validates the configuration file. A missing path
// yields an empty configuration, which downstream code treats as the
// default matrix.
func (a *AppConfig) Load() error {
	if a.path == "" {
		return nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(a.path)
	if err != nil {
		return goerr.Wrap(err, "failed to read config file", goerr.V("path", a.path))
	}

	if err := toml.Unmarshal(data, a); err != nil {
		return goerr.Wrap(err, "failed to parse config TOML", goerr.V("path", a.path))
	}

	if err := a.Validate(); err != nil {
		return goerr.Wrap(err, "invalid config file", goerr.V("path", a.path))
	}

	return nil
}

// MatrixConfig converts the configured bands to the domain
// representation.
func (a *AppConfig) MatrixConfig() *domainConfig.MatrixConfig {
	bands := make([]domainConfig.Band, 0, len(a.Bands))
	for _, b := range a.Bands {
		bands = append(bands, domainConfig.Band{
			Level: types.Band(b.Level),
			Name:  b.Name,
			Min:   b.Min,
			Max:   b.Max,
		})
	}
	return &domainConfig.MatrixConfig{Bands: bands}
}
