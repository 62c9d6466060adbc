package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [paths...]",
		Short: "Generate a default glotscan.yaml configuration file",
		Long: `Create a glotscan.yaml in the current working directory populated with the
current defaults, including the translation function names per language,
so it can be edited manually. Paths given as arguments are written as the
configured source roots; --name sets their display name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if err := writeInitialConfig(targetPath, args); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			if len(args) == 0 {
				cmd.Printf("Wrote %s. Add source roots under %q to scan them by default.\n", targetPath, sourcesConfigKey)
				return nil
			}

			cmd.Printf("Wrote %s with %d source root(s).\n", targetPath, len(args))

			return nil
		},
	}
}

// writeInitialConfig writes the effective settings to path, refusing to
// overwrite an existing file. The global configuration is left untouched.
func writeInitialConfig(path string, roots []string) error {
	v := viper.New()
	for key, value := range viper.AllSettings() {
		v.Set(key, value)
	}

	if len(roots) > 0 {
		parsed, err := parseRoots(roots, rootNameFlag)
		if err != nil {
			return err
		}

		sources := make([]map[string]any, 0, len(parsed))
		for _, r := range parsed {
			sources = append(sources, map[string]any{"name": r.Name, "path": string(r.Path)})
		}

		v.Set(sourcesConfigKey, sources)
	}

	return v.SafeWriteConfigAs(path)
}

func init() {
	rootCmd.AddCommand(initCmd)
}
