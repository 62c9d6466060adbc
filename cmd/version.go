package cmd

import (
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"glotscan.dev/pkg/glotscan/internal/domain/tokenizers"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, the Go version and the source languages glotscan can scan.",
		Run: func(cmd *cobra.Command, _ []string) {
			printBuildInfo(cmd)
			printLanguages(cmd, tokenizers.NewRegistry())
		},
	}
}

func printBuildInfo(cmd *cobra.Command) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		cmd.Println("version: unknown")
		return
	}

	cmd.Println("glotscan version\t", info.Main.Version)
	cmd.Println("go version\t", info.GoVersion)
}

func printLanguages(cmd *cobra.Command, r *tokenizers.Registry) {
	langs := make([]string, 0)
	for _, lang := range r.Languages() {
		langs = append(langs, string(lang))
	}

	cmd.Println("languages\t", strings.Join(langs, ", "))
	cmd.Println("extensions\t", strings.Join(r.Extensions(), " "))
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
