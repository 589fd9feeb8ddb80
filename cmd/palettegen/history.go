package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettegen/internal/app"
)

func newHistoryCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List, restore or clear past palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(cmd, flags)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List past palettes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(cmd, flags)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "load <n>",
		Short: "Restore history entry n (1 is the most recent); clears all locks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return newCommandError("load history", args[0], err, "Pass the entry number shown by 'palettegen history'.")
			}

			ac, err := newAppContext(cmd, flags, contextOptions{})
			if err != nil {
				return err
			}
			defer ac.Close()

			if _, err := ac.Dispatch(app.LoadHistory{Index: n - 1}); err != nil {
				return newCommandError("load history", fmt.Sprintf("entry %d", n), err, "Pass the entry number shown by 'palettegen history'.")
			}
			printPalette(cmd.OutOrStdout(), ac.Controller)
			return nil
		},
	})

	var confirmed bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget every past palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ac, err := newAppContext(cmd, flags, contextOptions{})
			if err != nil {
				return err
			}
			defer ac.Close()

			if !confirmed {
				prompt := ac.Controller.Translator().T("messages.confirmClear")
				return newCommandError("clear history", prompt, errors.New("confirmation required"), "Re-run with --yes to clear the history.")
			}
			if _, err := ac.Dispatch(app.ClearHistory{}); err != nil {
				return newCommandError("clear history", "dispatching", err, "Re-run with --verbose for details.")
			}
			fmt.Fprintln(cmd.OutOrStdout(), ac.Controller.Translator().T("messages.historyCleared"))
			return nil
		},
	}
	clearCmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "Clear without asking")
	cmd.AddCommand(clearCmd)

	return cmd
}

func runHistoryList(cmd *cobra.Command, flags *rootFlags) error {
	ac, err := newAppContext(cmd, flags, contextOptions{})
	if err != nil {
		return err
	}
	defer ac.Close()

	printHistory(cmd.OutOrStdout(), ac.Controller)
	return nil
}
