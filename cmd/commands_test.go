package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"glotscan.dev/pkg/glotscan/internal/adapter"
	"glotscan.dev/pkg/glotscan/internal/domain"
	m "glotscan.dev/pkg/glotscan/internal/model"
)

const pagesText = "Found %1$s items in %2$s pages."

type cliEnv struct {
	root  string
	state string
}

// newCLIEnv creates a source tree and points cache, translations, metrics
// and the log at a temporary state directory.
func newCLIEnv(t *testing.T) cliEnv {
	t.Helper()

	env := cliEnv{root: t.TempDir(), state: t.TempDir()}

	write := func(name, content string) {
		path := filepath.Join(env.root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	write("index.php", "<?php\necho t('"+pagesText+"');\necho t('Save');\n")
	write("static/app.js", "alert(t('Save'));\nalert(t(label));\n")
	write("vendor/lib.php", "<?php t('Vendored');\n")

	t.Setenv("GLOTSCAN_CACHE_PATH", filepath.Join(env.state, "cache"))
	t.Setenv("GLOTSCAN_TRANSLATIONS_DIR", filepath.Join(env.state, "translations"))
	t.Setenv("GLOTSCAN_METRICS_FILE", filepath.Join(env.state, "metrics", "glotscan.prom"))
	t.Setenv("GLOTSCAN_LOG_FILENAME", filepath.Join(env.state, "glotscan.log"))
	t.Setenv("GLOTSCAN_TRANSLATIONS_GROUP", "app")

	return env
}

// run executes the root command and returns everything it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())

	return out.String(), err
}

// resetFlags restores every flag of cmd and its children, since the command
// tree is shared by all tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if !f.Changed {
			return
		}

		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}

		f.Changed = false
	}

	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)

	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func TestScanCmd(t *testing.T) {
	env := newCLIEnv(t)

	out, err := run(t, "scan", env.root, "-x", "vendor")
	require.NoError(t, err)

	assert.Contains(t, out, "TOKENIZED")
	assert.Contains(t, out, "call to t has no literal text argument")
	assert.NotContains(t, out, "Vendored")

	_, err = os.Stat(filepath.Join(env.state, "cache"))
	require.NoError(t, err, "scan writes the cache")

	metrics, err := os.ReadFile(filepath.Join(env.state, "metrics", "glotscan.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "glotscan_collection_entries 2")
}

func TestScanCmd_MissingRoot(t *testing.T) {
	newCLIEnv(t)

	_, err := run(t, "scan", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestListCmd(t *testing.T) {
	env := newCLIEnv(t)

	_, err := run(t, "translations", "set", "Save", "Speichern", "--locale", "de")
	require.NoError(t, err)

	out, err := run(t, "list", env.root, "--name", "shop", "--locale", "de", "-x", "vendor")
	require.NoError(t, err)

	assert.Contains(t, out, "Entries of app (de)")
	assert.Contains(t, out, "Speichern")
	assert.Contains(t, out, "TOTAL ENTRIES 2")
	assert.Contains(t, out, "1 TRANSLATED")
	assert.NotContains(t, out, "Warnings", "warnings are only listed on request")
}

func TestExportCmd(t *testing.T) {
	env := newCLIEnv(t)

	_, err := run(t, "translations", "set", "Save", "Enregistrer", "--locale", "fr")
	require.NoError(t, err)

	target := filepath.Join(env.state, "out", "strings.yaml")

	_, err = run(t, "export", env.root, "--format", "yaml", "--output", target, "-x", "vendor")
	require.NoError(t, err)

	raw, err := os.ReadFile(target)
	require.NoError(t, err)

	var doc adapter.ExportDocument
	require.NoError(t, yaml.Unmarshal(raw, &doc))

	assert.Equal(t, "app", doc.Group)
	assert.Equal(t, []string{"fr"}, doc.Locales)
	require.Len(t, doc.Entries, 2)
	assert.Equal(t, "Save", doc.Entries[1].Text)
	assert.Equal(t, map[string]string{"fr": "Enregistrer"}, doc.Entries[1].Translations)
}

func TestExportCmd_UnknownFormat(t *testing.T) {
	env := newCLIEnv(t)

	_, err := run(t, "export", env.root, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}

func TestTranslationsCmd_SetGet(t *testing.T) {
	env := newCLIEnv(t)

	out, err := run(t, "translations", "set", pagesText, "%2$s Seiten, %1$s Einträge", "-l", "de_DE", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "+"+m.EntryID(pagesText, ""))

	_, err = run(t, "translations", "get", pagesText, "-l", "de-DE")
	require.Error(t, err, "dry run writes nothing")

	out, err = run(t, "translations", "set", pagesText, "%2$s Seiten, %1$s Einträge", "-l", "de-DE", "--verify", env.root)
	require.NoError(t, err)
	assert.Contains(t, out, "Added "+m.EntryID(pagesText, ""))
	assert.Contains(t, out, filepath.Join(env.state, "translations", "app.de-DE"))

	out, err = run(t, "translations", "get", pagesText, "--locale", "de-DE")
	require.NoError(t, err)
	assert.Equal(t, "%2$s Seiten, %1$s Einträge\n", out)

	out, err = run(t, "translations", "set", pagesText, "%1$s Einträge", "-l", "de-DE")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated")
}

func TestTranslationsCmd_SetRejects(t *testing.T) {
	env := newCLIEnv(t)

	_, err := run(t, "translations", "set", "Not used anywhere", "x", "-l", "de", "--verify", env.root)
	require.ErrorIs(t, err, domain.ErrUnknownEntry)

	_, err = run(t, "translations", "set", pagesText, "%3$s", "-l", "de")
	require.ErrorIs(t, err, domain.ErrPlaceholderIndex)

	_, err = run(t, "translations", "set", "Save", "Speichern")
	require.Error(t, err, "locale is required")
}

func TestTranslationsCmd_Show(t *testing.T) {
	env := newCLIEnv(t)

	out, err := run(t, "translations", "show", env.root, "-x", "vendor")
	require.NoError(t, err)
	assert.Contains(t, out, "No translations yet")

	_, err = run(t, "translations", "set", "Save", "Enregistrer", "-l", "fr")
	require.NoError(t, err)

	out, err = run(t, "translations", "show", env.root, "-x", "vendor")
	require.NoError(t, err)
	assert.Contains(t, out, "PERCENT")
	assert.Contains(t, out, "50.0%")
}

func TestLookupCmd(t *testing.T) {
	newCLIEnv(t)

	_, err := run(t, "translations", "set", pagesText, "Auf %2$s Seiten %1$s Einträge.", "-l", "de")
	require.NoError(t, err)

	out, err := run(t, "lookup", pagesText, "50", "6")
	require.NoError(t, err)
	assert.Equal(t, "Found 50 items in 6 pages.\n", out)

	out, err = run(t, "lookup", pagesText, "50", "6", "--locale", "de")
	require.NoError(t, err)
	assert.Equal(t, "Auf 6 Seiten 50 Einträge.\n", out)

	_, err = run(t, "lookup", pagesText, "50", "--locale", "de")
	require.ErrorIs(t, err, domain.ErrArgumentCount)

	_, err = run(t, "lookup", "Save", "--namespace", "sidebar", "--locale", "de")
	require.ErrorIs(t, err, domain.ErrUnknownNamespace)
}
