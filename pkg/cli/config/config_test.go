package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/sesmt-lab/sentinela/pkg/cli/config"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestAppConfigLoad(t *testing.T) {
	t.Run("valid band configuration", func(t *testing.T) {
		path := writeConfigFile(t, `
[[band]]
level = "low"
name = "Trivial"
min = 1
max = 6

[[band]]
level = "medium"
name = "Moderado"
min = 7
max = 12

[[band]]
level = "high"
name = "Substancial"
min = 13
max = 18

[[band]]
level = "critical"
name = "Intoleravel"
min = 19
max = 25
`)
		cfg := config.NewAppConfigForTest(path)
		gt.NoError(t, cfg.Load()).Required()

		matrix := cfg.MatrixConfig()
		gt.Array(t, matrix.Bands).Length(4)
		gt.Value(t, matrix.Bands[0].Level).Equal(types.BandLow)
		gt.Value(t, matrix.Bands[0].Name).Equal("Trivial")
		gt.Value(t, matrix.Bands[3].Min).Equal(19)
		gt.Value(t, matrix.Bands[3].Max).Equal(25)
	})

	t.Run("empty path loads nothing", func(t *testing.T) {
		cfg := config.NewAppConfigForTest("")
		gt.NoError(t, cfg.Load())
		gt.Array(t, cfg.Bands).Length(0)
	})

	t.Run("missing file fails", func(t *testing.T) {
		cfg := config.NewAppConfigForTest(filepath.Join(t.TempDir(), "missing.toml"))
		gt.Error(t, cfg.Load())
	})

	t.Run("malformed TOML fails", func(t *testing.T) {
		cfg := config.NewAppConfigForTest(writeConfigFile(t, "[[band"))
		gt.Error(t, cfg.Load())
	})
}

func TestAppConfigValidate(t *testing.T) {
	valid := func() *config.AppConfig {
		return &config.AppConfig{Bands: []config.BandEntry{
			{Level: "low", Name: "Trivial", Min: 1, Max: 4},
			{Level: "medium", Name: "Moderado", Min: 5, Max: 9},
			{Level: "high", Name: "Substancial", Min: 10, Max: 16},
			{Level: "critical", Name: "Intoleravel", Min: 17, Max: 25},
		}}
	}

	t.Run("default-shaped bands pass", func(t *testing.T) {
		gt.NoError(t, valid().Validate())
	})

	t.Run("unknown level is rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Bands[0].Level = "extreme"
		gt.Error(t, cfg.Validate())
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Bands[1].Name = ""
		gt.Error(t, cfg.Validate())
	})

	t.Run("duplicate level is rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Bands[1].Level = "low"
		gt.Error(t, cfg.Validate())
	})

	t.Run("gap between bands is rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Bands[1].Min = 6
		gt.Error(t, cfg.Validate())
	})

	t.Run("overlapping bands are rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Bands[1].Min = 4
		gt.Error(t, cfg.Validate())
	})

	t.Run("min below one is rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Bands[0].Min = 0
		gt.Error(t, cfg.Validate())
	})

	t.Run("max below min is rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Bands[2].Max = 9
		gt.Error(t, cfg.Validate())
	})
}

func TestLoggerConfigure(t *testing.T) {
	t.Run("json logger writes to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		logger := config.NewLoggerForTest("debug", "json", path)

		closer, err := logger.Configure()
		gt.NoError(t, err).Required()
		closer()

		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected log file to exist: %v", err)
		}
	})

	t.Run("invalid level is rejected", func(t *testing.T) {
		logger := config.NewLoggerForTest("verbose", "console", "stdout")
		_, err := logger.Configure()
		gt.Error(t, err)
	})

	t.Run("invalid format is rejected", func(t *testing.T) {
		logger := config.NewLoggerForTest("info", "xml", "stdout")
		_, err := logger.Configure()
		gt.Error(t, err)
	})
}
