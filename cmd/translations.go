package cmd

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"glotscan.dev/pkg/glotscan/internal/domain"
)

var translationLocaleFlag string
var translationContextFlag string
var translationDryRunFlag bool
var translationVerifyFlag bool

// translationsCmd groups the commands working on translation files.
var translationsCmd = newTranslationsCmd()

func newTranslationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "translations",
		Aliases: []string{"tr"},
		Short:   "Manage translation files",
		Long: `Read and write the translation files of a group. Translations are keyed by
the id of the string entry they translate, which is derived from the text
and its optional context.`,
	}

	cmd.AddCommand(newTranslationsSetCmd(), newTranslationsGetCmd(), newTranslationsShowCmd())

	return cmd
}

func newTranslationsSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <text> <translation> [paths...]",
		Short: "Store the translation of one string",
		Long: `Store the translation of text in a locale. The translation may only use the
positional placeholders the text defines. With --verify the source roots
are scanned first and unknown texts are rejected.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			setArgs := domain.SetTranslationArgs{
				Group:       viper.GetString(translationsGroupKey),
				Locale:      translationLocaleFlag,
				Text:        args[0],
				Context:     translationContextFlag,
				Translation: args[1],
				DryRun:      translationDryRunFlag,
			}

			if translationVerifyFlag {
				scan, err := scanArgs(args[2:])
				if err != nil {
					return err
				}

				setArgs.Scan = &scan
			}

			change, err := workflow.SetTranslation(cmd.Context(), setArgs)
			if err != nil {
				return err
			}

			if translationDryRunFlag {
				if change.Diff == "" {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), "No changes")
					return err
				}

				_, err = fmt.Fprint(cmd.OutOrStdout(), change.Diff)

				return err
			}

			verb := "Added"
			if change.Existed {
				verb = "Updated"
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s in %s\n", verb, change.EntryID, change.Path)

			return err
		},
	}

	configureTranslationFlags(cmd)
	cmd.Flags().BoolVar(&translationDryRunFlag, dryRunFlagName, false, "print the change as a unified diff without writing it")
	cmd.Flags().BoolVar(&translationVerifyFlag, verifyFlagName, false, "scan the sources and reject texts that are not in the collection")

	return cmd
}

func newTranslationsGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <text>",
		Short: "Print the stored translation of one string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			group := viper.GetString(translationsGroupKey)

			translated, ok, err := workflow.GetTranslation(cmd.Context(), group, translationLocaleFlag, args[0], translationContextFlag)
			if err != nil {
				return err
			}

			if !ok {
				return fmt.Errorf("no %s translation of %q in group %s", translationLocaleFlag, args[0], group)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), translated)

			return err
		},
	}

	configureTranslationFlags(cmd)

	return cmd
}

func newTranslationsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [paths...]",
		Short: "Show translation coverage per locale",
		Long: `Scan the source roots and compare the collection with the translation file
of every locale in the group.

` + pathsHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			scan, err := scanArgs(args)
			if err != nil {
				return err
			}

			coverage, err := workflow.Coverage(cmd.Context(), domain.CoverageArgs{
				ScanArgs: scan,
				Group:    viper.GetString(translationsGroupKey),
			})
			if err != nil {
				return err
			}

			if len(coverage) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No translations yet")
				return err
			}

			renderCoverage(cmd, coverage)

			return nil
		},
	}
}

func renderCoverage(cmd *cobra.Command, coverage []domain.LocaleCoverage) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Locale", "Translated", "Total", "Percent", "Orphaned", "Mismatched"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, c := range coverage {
		percent := 0.0
		if c.Total > 0 {
			percent = float64(c.Translated) / float64(c.Total) * 100
		}

		table.Append([]string{
			c.Locale,
			strconv.Itoa(c.Translated),
			strconv.Itoa(c.Total),
			fmt.Sprintf("%.1f%%", percent),
			strconv.Itoa(c.Orphaned),
			strconv.Itoa(c.Mismatched),
		})
	}

	table.Render()
}

func configureTranslationFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&translationLocaleFlag, localeFlagName, "l", "", "locale of the translation")
	cobra.CheckErr(cmd.MarkFlagRequired(localeFlagName))
	cmd.Flags().StringVarP(&translationContextFlag, contextFlagName, "c", "", "context that disambiguates the text")
}

func init() {
	rootCmd.AddCommand(translationsCmd)
}
