package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"glotscan.dev/pkg/glotscan/internal/domain"
)

var listLocaleFlag string
var listWarningsFlag bool

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List string entries and their translations",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			scan, err := scanArgs(args)
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{
				ScanArgs:     scan,
				Group:        viper.GetString(translationsGroupKey),
				Locale:       listLocaleFlag,
				ShowWarnings: listWarningsFlag,
			})
		},
	}

	cmd.Flags().StringVarP(&listLocaleFlag, localeFlagName, "l", "", "show translations of this locale")
	cmd.Flags().BoolVarP(&listWarningsFlag, warningsFlagName, "w", false, "print extraction warnings after the entries")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
