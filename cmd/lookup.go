package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"glotscan.dev/pkg/glotscan/internal/domain"
	m "glotscan.dev/pkg/glotscan/internal/model"
)

var lookupLocaleFlag string
var lookupContextFlag string
var lookupNamespaceFlag string

// lookupCmd represents the lookup command.
var lookupCmd = newLookupCmd()

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <text> [args...]",
		Short: "Translate a string the way the application would",
		Long: `Resolve text in a locale and substitute the remaining arguments into its
positional placeholders. Without --locale the base locale is used and the
text itself is formatted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]any, 0, len(args)-1)
			for _, a := range args[1:] {
				values = append(values, a)
			}

			translated, err := workflow.Lookup(cmd.Context(), domain.LookupArgs{
				Group:     viper.GetString(translationsGroupKey),
				Base:      viper.GetString(baseLocaleKey),
				Locale:    lookupLocaleFlag,
				Namespace: m.Namespace(lookupNamespaceFlag),
				Text:      args[0],
				Context:   lookupContextFlag,
				Args:      values,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), translated)

			return err
		},
	}

	cmd.Flags().StringVarP(&lookupLocaleFlag, localeFlagName, "l", "", "locale to switch to before the lookup")
	cmd.Flags().StringVarP(&lookupContextFlag, contextFlagName, "c", "", "context that disambiguates the text")
	cmd.Flags().StringVarP(&lookupNamespaceFlag, namespaceFlagName, "n", string(m.NamespaceContent), "locale namespace (application or content)")

	return cmd
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
