package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glotscan.dev/pkg/glotscan/internal/domain"
	m "glotscan.dev/pkg/glotscan/internal/model"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "glotscan", configBaseName)
	assert.Equal(t, "glotscan.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "cache.path", cacheConfigKey)
	assert.Equal(t, "no-cache", noCacheFlagName)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "scan.parallel", parallelConfigKey)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, "translations.group", translationsGroupKey)
	assert.Equal(t, false, defaultNoCache)
	assert.Equal(t, "GLOTSCAN", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestFunctionsFromConfig_Defaults(t *testing.T) {
	functions, err := functionsFromConfig()
	require.NoError(t, err)

	for lang, names := range domain.DefaultFunctions {
		assert.Equal(t, names, functions[lang], string(lang))
	}
}

func TestFunctionsFromConfig_Override(t *testing.T) {
	previous := viper.Get(functionsConfigKey)
	t.Cleanup(func() { viper.Set(functionsConfigKey, previous) })

	viper.Set(functionsConfigKey, map[string]any{"PHP": []string{"lang"}})

	functions, err := functionsFromConfig()
	require.NoError(t, err)
	assert.Equal(t, map[m.Language][]string{m.LanguagePHP: {"lang"}}, functions)
}

func TestSourcesFromConfig(t *testing.T) {
	previous := viper.Get(sourcesConfigKey)
	t.Cleanup(func() { viper.Set(sourcesConfigKey, previous) })

	viper.Set(sourcesConfigKey, []map[string]any{
		{"name": "web", "path": "./web", "exclude": []string{"dist"}},
		{"name": "api", "path": "./api", "include": []string{"*.php"}},
	})

	roots, err := sourcesFromConfig()
	require.NoError(t, err)
	assert.Equal(t, []m.SourceRoot{
		{Name: "web", Path: "./web", Exclude: []string{"dist"}},
		{Name: "api", Path: "./api", Include: []string{"*.php"}},
	}, roots)
}

func TestConfigureLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	logPath := filepath.Join(t.TempDir(), "glotscan.log")

	configureLogger(logPath, true)
	slog.Debug("Scanned root", "root", "app")

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "level=DEBUG")
	assert.Contains(t, string(contents), "root=app")
}
