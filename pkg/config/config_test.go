package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/derby/pkg/race"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "race.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	config := Default()
	require.NoError(t, config.Validate())
	assert.Equal(t, []string{"red", "blue", "green", "yellow"}, config.Colors)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, heredoc.Doc(`
		colors: [orange, purple]
		clicker: gauntlet
		delay: 10ms
		series:
		  races: 12
	`))

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"orange", "purple"}, config.Colors)
	assert.Equal(t, "gauntlet", config.Clicker)
	assert.Equal(t, 10*time.Millisecond, config.Delay)
	assert.Equal(t, 12, config.Series.Races)

	// Fields missing from the file keep their defaults.
	assert.Equal(t, 4, config.Series.Concurrency)
	assert.Equal(t, int64(1), config.Series.Seed)
}

func TestLoadEmptyFile(t *testing.T) {
	config, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(writeConfig(t, "colors: [red, red]\n"))
	assert.True(t, errors.Is(err, race.ErrInvalidConfiguration))

	_, err = Load(writeConfig(t, "colors: []\n"))
	assert.True(t, errors.Is(err, race.ErrInvalidConfiguration))

	_, err = Load(writeConfig(t, "clicker: swiss\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "finish-line: 20\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "delay: -1s\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadOrCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "derby", "race.yaml")

	config, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
	assert.FileExists(t, path)

	// An existing file is loaded as is.
	config.Colors = []string{"cyan"}
	require.NoError(t, config.Save(path))

	config, err = LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"cyan"}, config.Colors)
}

func TestSeriesConfig(t *testing.T) {
	config := Default()
	s := config.SeriesConfig()

	assert.Equal(t, config.Colors, s.Colors)
	assert.Equal(t, config.Clicker, s.Clicker)
	assert.Equal(t, 100, s.Races)
	assert.Equal(t, 4, s.Concurrency)
	assert.Equal(t, int64(1), s.Seed)
}
