package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"glotscan.dev/pkg/glotscan/internal/adapter"
	"glotscan.dev/pkg/glotscan/internal/domain"
)

var exportFormatFlag string
var exportOutputFlag string
var exportLocalesFlag []string

// exportCmd represents the export command.
var exportCmd = newExportCmd()

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [paths...]",
		Short: "Export the strings collection with its translations",
		Long: `Scan the source roots and write the strings collection, the translations
of each locale and the extraction warnings as JSON or YAML, or one locale
as a gettext PO catalog.

` + pathsHelp,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			format, err := adapter.ParseExportFormat(exportFormatFlag)
			if err != nil {
				return err
			}

			scan, err := scanArgs(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if exportOutputFlag != "" && exportOutputFlag != "-" {
				file, createErr := createOutput(exportOutputFlag)
				if createErr != nil {
					return createErr
				}

				defer func() {
					err = errors.Join(err, file.Close())
				}()

				out = file
			}

			return workflow.Export(cmd.Context(), domain.ExportArgs{
				ScanArgs: scan,
				Group:    viper.GetString(translationsGroupKey),
				Locales:  exportLocalesFlag,
				Format:   format,
				Output:   out,
			})
		},
	}

	cmd.Flags().StringVarP(&exportFormatFlag, formatFlagName, "f", string(adapter.FormatJSON), "output format (json, yaml or po)")
	cmd.Flags().StringVarP(&exportOutputFlag, outputFlagName, "o", "", "write to this file instead of stdout")
	cmd.Flags().StringSliceVarP(&exportLocalesFlag, localeFlagName, "l", nil, "locales to include (default: every locale with a translation file)")

	return cmd
}

func createOutput(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}

	return file, nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
