package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootFlags struct {
	verbose       bool
	statePath     string
	configPath    string
	envFile       string
	clipboardFile string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "palettegen",
		Short:         "Generate five-color palettes from color harmony rules",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, interactive terminals get the TUI.
			if supportsUnicode(cmd.OutOrStdout()) {
				return runTUI(cmd, flags)
			}
			return runGenerate(cmd, flags, &generateOptions{count: 1})
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.statePath, "state", "", "Path to the saved state file (default ~/.palettegen/state.json)")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the configuration file (default ~/.palettegen/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "Load environment overrides from this file when present")
	cmd.PersistentFlags().StringVar(&flags.clipboardFile, "clipboard-file", "", "Also write copied text to this file")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newLockCmd(flags))
	cmd.AddCommand(newModeCmd(flags))
	cmd.AddCommand(newFormatCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newHistoryCmd(flags))
	cmd.AddCommand(newInfoCmd(flags))
	cmd.AddCommand(newCopyCmd(flags))
	cmd.AddCommand(newLangCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
