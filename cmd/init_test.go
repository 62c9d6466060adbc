package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "glotscan.dev/pkg/glotscan/internal/model"
)

type writtenConfig struct {
	Sources      []m.SourceRoot      `yaml:"sources"`
	Functions    map[string][]string `yaml:"functions"`
	Translations struct {
		Dir   string `yaml:"dir"`
		Group string `yaml:"group"`
	} `yaml:"translations"`
	Locale struct {
		Base string `yaml:"base"`
	} `yaml:"locale"`
}

func readWrittenConfig(t *testing.T, path string) writtenConfig {
	t.Helper()

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg writtenConfig
	require.NoError(t, yaml.Unmarshal(contents, &cfg))

	return cfg
}

func TestInitCmd_WritesConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init"})

	err = cmd.Execute()
	require.NoError(t, err)

	targetPath := filepath.Join(tempDir, configFileName)
	t.Cleanup(func() { _ = os.Remove(targetPath) })
	info, err := os.Stat(targetPath)
	require.NoError(t, err)
	require.False(t, info.IsDir())

	cfg := readWrittenConfig(t, targetPath)
	assert.Empty(t, cfg.Sources)
	assert.Equal(t, []string{"T", "L", "_"}, cfg.Functions["lua"])
	assert.Equal(t, []string{"_", "gettext", "t"}, cfg.Functions["python"])
	assert.Len(t, cfg.Functions, 5)
	assert.Equal(t, defaultTranslationsDir, cfg.Translations.Dir)
	assert.Equal(t, defaultGroup, cfg.Translations.Group)
	assert.Equal(t, defaultBaseLocale, cfg.Locale.Base)
}

func TestInitCmd_WritesGivenSourceRoots(t *testing.T) {
	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })
	t.Cleanup(func() { rootNameFlag = "" })

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init", "./web", "./admin", "--name", "shop"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, output.String(), "with 2 source root(s)")

	cfg := readWrittenConfig(t, filepath.Join(tempDir, configFileName))
	assert.Equal(t, []m.SourceRoot{{Name: "shop", Path: "./web"}, {Name: "shop", Path: "./admin"}}, cfg.Sources)
	assert.NotEmpty(t, cfg.Functions)
	assert.Nil(t, viper.Get(sourcesConfigKey), "global configuration is not changed")
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))
	t.Cleanup(func() { _ = os.Remove(targetPath) })

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init"})

	err = cmd.Execute()
	require.Error(t, err)
}
