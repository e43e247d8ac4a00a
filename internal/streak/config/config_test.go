package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"games: games.pgn\nplayer: Hikaru\ntrials: 500\nseed: 42\nlenient: true\n",
	), 0644))

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Games:       "games.pgn",
		Player:      "Hikaru",
		Trials:      500,
		Seed:        42,
		Concurrency: runtime.NumCPU(),
		Lenient:     true,
	}, config)
	assert.NoError(t, config.Validate())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trials: [many]\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Default()
	valid.Games = "games.pgn"
	valid.Player = "Hikaru"
	require.NoError(t, valid.Validate())

	noGames := valid
	noGames.Games = ""
	assert.Error(t, noGames.Validate())

	noPlayer := valid
	noPlayer.Player = ""
	assert.Error(t, noPlayer.Validate())

	negative := valid
	negative.Trials = -1
	assert.Error(t, negative.Validate())

	zero := valid
	zero.Trials = 0
	assert.NoError(t, zero.Validate())
}
