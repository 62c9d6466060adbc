// Package cmd provides the root command and CLI setup for glotscan.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"glotscan.dev/pkg/glotscan/internal/adapter"
	"glotscan.dev/pkg/glotscan/internal/controller"
	"glotscan.dev/pkg/glotscan/internal/domain"
	"glotscan.dev/pkg/glotscan/internal/domain/tokenizers"
	m "glotscan.dev/pkg/glotscan/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var registry *tokenizers.Registry
var workflow domain.Workflow
var ui controller.UI

// cachePathFlag is where extractions of unchanged files are kept between scans.
var cachePathFlag string

// noCacheFlag makes every scan tokenize all files again.
var noCacheFlag bool

// excludeFolders lists folder names skipped in every source root.
var excludeFolders []string

var parallelFlag int
var rootNameFlag string
var groupFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies. The rest is assembled once flags
	// have been parsed, see buildWorkflow.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	registry = tokenizers.NewRegistry()
}

const pathsHelp = `Paths name source roots to scan:
  - glotscan scan              scan the roots from glotscan.yaml, or "."
  - glotscan scan ./app        scan one directory
  - glotscan scan ./app ./lib  scan several roots in parallel`

const rootLongDescription = `Glotscan extracts translatable strings from PHP, JavaScript, Python, Go
and Lua sources, keeps them in a strings collection and manages the
translation files that belong to it.

` + pathsHelp

const scanLongDescription = `Scan source roots for translation function calls and print a summary
(default: configured sources or the current directory).

` + pathsHelp

const listLongDescription = `List every string entry of the collection, optionally next to its
translation in one locale.

` + pathsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "glotscan",
		Short:        "Translatable string extraction and translation tool",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger("", viper.GetBool(logVerboseKey))

			w, err := workflowFactory()
			if err != nil {
				return err
			}

			workflow = w

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cachePathFlag, cacheFlagName, viper.GetString(cacheConfigKey), "path of the extraction cache file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(cacheFlagName), cacheConfigKey)

	cmd.PersistentFlags().BoolVar(&noCacheFlag, noCacheFlagName, viper.GetBool(noCacheFlagName), "ignore cached extractions (re-tokenize every file)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noCacheFlagName), noCacheFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludeFolders, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude folders with this name (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of source roots scanned in parallel")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.PersistentFlags().StringVar(&rootNameFlag, nameFlagName, "", "display name for source roots given as arguments")

	cmd.PersistentFlags().StringVar(&groupFlag, groupFlagName, viper.GetString(translationsGroupKey), "translation group")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(groupFlagName), translationsGroupKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// workflowFactory is called before every command runs.
var workflowFactory = buildWorkflow

// buildWorkflow assembles the workflow from the effective configuration.
func buildWorkflow() (domain.Workflow, error) {
	functions, err := functionsFromConfig()
	if err != nil {
		return nil, err
	}

	cache := adapter.NewLocalCacheStore(m.Path(viper.GetString(cacheConfigKey)))
	scanner := domain.NewScanner(fsAdapter, cache, registry, domain.NewDetector(functions))
	store := adapter.NewLocalTranslationStore(m.Path(viper.GetString(translationsDirKey)))

	var metrics adapter.ScanMetrics = adapter.NopScanMetrics{}
	if path := viper.GetString(metricsFileKey); path != "" {
		metrics = adapter.NewPrometheusScanMetrics(path)
	}

	return domain.NewWorkflow(scanner, store, adapter.NewDocumentExporter(), metrics, ui), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// scanArgs builds the scan arguments shared by every command that scans.
func scanArgs(args []string) (domain.ScanArgs, error) {
	roots, err := parseRoots(args, rootNameFlag)
	if err != nil {
		return domain.ScanArgs{}, err
	}

	return domain.ScanArgs{
		Roots:    roots,
		Exclude:  viper.GetStringSlice(excludeConfigKey),
		UseCache: !viper.GetBool(noCacheFlagName),
		Parallel: viper.GetInt(parallelConfigKey),
	}, nil
}

// parseRoots turns path arguments into source roots. Without arguments the
// configured sources are used, and without those the working directory.
func parseRoots(args []string, name string) ([]m.SourceRoot, error) {
	if len(args) == 0 {
		roots, err := sourcesFromConfig()
		if err != nil {
			return nil, err
		}

		if len(roots) > 0 {
			return roots, nil
		}

		args = []string{"."}
	}

	roots := make([]m.SourceRoot, 0, len(args))
	for _, arg := range args {
		rootName := name
		if rootName == "" {
			rootName = displayName(arg)
		}

		roots = append(roots, m.SourceRoot{Name: rootName, Path: m.Path(arg)})
	}

	return roots, nil
}

func displayName(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Base(filepath.Clean(path))
	}

	return filepath.Base(abs)
}
