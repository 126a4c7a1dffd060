package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pngstash/pngstash/pkg/config"
)

func TestCommandRegistration(t *testing.T) {
	commandNames := []string{}
	for _, c := range rootCmd.Commands() {
		commandNames = append(commandNames, c.Name())
	}

	for _, want := range []string{"encode", "decode", "remove", "print", "init"} {
		assert.Contains(t, commandNames, want)
	}
}

func TestEncodeCommandFlags(t *testing.T) {
	flag := encodeCmd.Flags().Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, "o", flag.Shorthand)

	persistent := rootCmd.PersistentFlags().Lookup("config")
	require.NotNil(t, persistent)
	assert.Equal(t, "c", persistent.Shorthand)
}

func TestChunkTypeArg(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pngstash_cmd_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	cfg := config.DefaultConfig()
	cfg.DefaultChunkType = "hIdE"
	require.NoError(t, config.SaveConfig(cfg, configPath))

	require.NoError(t, rootCmd.PersistentFlags().Set("config", configPath))
	defer rootCmd.PersistentFlags().Set("config", "")

	t.Run("explicit argument wins", func(t *testing.T) {
		got, err := chunkTypeArg(decodeCmd, []string{"file.png", "ruSt"}, 1)
		require.NoError(t, err)
		assert.Equal(t, "ruSt", got)
	})

	t.Run("falls back to config default", func(t *testing.T) {
		got, err := chunkTypeArg(rootCmd, []string{"file.png"}, 1)
		require.NoError(t, err)
		assert.Equal(t, "hIdE", got)
	})
}
