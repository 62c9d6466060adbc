package cmd

import (
	"github.com/spf13/cobra"
)

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Extract translatable strings and print a summary",
		Long:  scanLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			scan, err := scanArgs(args)
			if err != nil {
				return err
			}

			return workflow.Report(cmd.Context(), scan)
		},
	}
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
