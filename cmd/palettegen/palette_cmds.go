package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettegen/internal/app"
	"github.com/alexisbeaulieu97/palettegen/internal/format"
	"github.com/alexisbeaulieu97/palettegen/internal/harmony"
	"github.com/alexisbeaulieu97/palettegen/internal/i18n"
)

func parseSlots(args []string) ([]int, error) {
	slots := make([]int, 0, len(args))
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("slot %q is not a number", part)
			}
			slots = append(slots, n)
		}
	}
	return slots, nil
}

func newLockCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "lock <slot>...",
		Short: "Toggle locks on palette slots (1-5)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slots, err := parseSlots(args)
			if err != nil {
				return newCommandError("lock", "parsing slots", err, "Pass slot numbers such as 'lock 1 3' or 'lock 2,4'.")
			}

			ac, err := newAppContext(cmd, flags, contextOptions{})
			if err != nil {
				return err
			}
			defer ac.Close()

			if err := ac.EnsurePalette(); err != nil {
				return newCommandError("lock", "generating first palette", err, "Re-run with --verbose for details.")
			}
			for _, slot := range slots {
				if _, err := ac.Dispatch(app.ToggleLock{Index: slot - 1}); err != nil {
					return newCommandError("lock", fmt.Sprintf("toggling slot %d", slot), err, "Slots are numbered 1 to 5.")
				}
			}

			printPalette(cmd.OutOrStdout(), ac.Controller)
			return nil
		},
	}
}

func newModeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "mode [name]",
		Short: "Show or change the harmony mode; changing it regenerates the palette",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ac, err := newAppContext(cmd, flags, contextOptions{})
			if err != nil {
				return err
			}
			defer ac.Close()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				tr := ac.Controller.Translator()
				for _, m := range harmony.Modes() {
					marker := " "
					if m == ac.Controller.Mode() {
						marker = "*"
					}
					fmt.Fprintf(out, "%s %-14s %s\n", marker, m, tr.Mode(m))
				}
				return nil
			}

			m, err := harmony.ParseMode(args[0])
			if err != nil {
				return newCommandError("set mode", args[0], err, "Run 'palettegen mode' to list the available modes.")
			}
			if _, err := ac.Dispatch(app.ChangeMode{Mode: m}); err != nil {
				return newCommandError("set mode", args[0], err, "Run 'palettegen mode' to list the available modes.")
			}
			printPalette(out, ac.Controller)
			return nil
		},
	}
}

func newFormatCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "format [hex|rgb|hsl]",
		Short: "Show or change how colors are displayed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ac, err := newAppContext(cmd, flags, contextOptions{})
			if err != nil {
				return err
			}
			defer ac.Close()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, ac.Controller.Format())
				return nil
			}

			f, err := format.ParseCodeFormat(args[0])
			if err != nil {
				return newCommandError("set format", args[0], err, "Use hex, rgb or hsl.")
			}
			if _, err := ac.Dispatch(app.ChangeFormat{Format: f}); err != nil {
				return newCommandError("set format", args[0], err, "Use hex, rgb or hsl.")
			}
			printPalette(out, ac.Controller)
			return nil
		},
	}
}

func newInfoCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Describe the contrast and temperature of the current palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ac, err := newAppContext(cmd, flags, contextOptions{})
			if err != nil {
				return err
			}
			defer ac.Close()

			if err := ac.EnsurePalette(); err != nil {
				return newCommandError("describe palette", "generating first palette", err, "Re-run with --verbose for details.")
			}
			printInfo(cmd.OutOrStdout(), ac.Controller)
			return nil
		},
	}
}

func newCopyCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <slot>",
		Short: "Copy one color's hex code to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slots, err := parseSlots(args)
			if err != nil || len(slots) != 1 {
				return newCommandError("copy", "parsing slot", fmt.Errorf("expected one slot, got %q", args[0]), "Pass a single slot number between 1 and 5.")
			}

			ac, err := newAppContext(cmd, flags, contextOptions{})
			if err != nil {
				return err
			}
			defer ac.Close()

			if err := ac.EnsurePalette(); err != nil {
				return newCommandError("copy", "generating first palette", err, "Re-run with --verbose for details.")
			}
			res, err := ac.Dispatch(app.Copy{Index: slots[0] - 1})
			if err != nil {
				return newCommandError("copy", fmt.Sprintf("slot %d", slots[0]), err, "Slots are numbered 1 to 5.")
			}

			fmt.Fprintln(cmd.OutOrStdout(), ac.Controller.Palette()[slots[0]-1].Hex())
			reportCopy(cmd, ac, res.Copied)
			return nil
		},
	}
}

func reportCopy(cmd *cobra.Command, ac *AppContext, copied bool) {
	tr := ac.Controller.Translator()
	if copied {
		fmt.Fprintln(cmd.ErrOrStderr(), tr.T("messages.copied"))
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), tr.T("messages.copyFailed"))
}

func newLangCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "lang [tag]",
		Short: "Show or change the interface language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ac, err := newAppContext(cmd, flags, contextOptions{})
			if err != nil {
				return err
			}
			defer ac.Close()

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				if _, err := ac.Dispatch(app.SetLanguage{Tag: args[0]}); err != nil {
					return newCommandError("set language", args[0], err, "Use one of "+strings.Join(i18n.Supported(), ", ")+".")
				}
			}

			tr := ac.Controller.Translator()
			fmt.Fprintf(out, "%s (%s)\n", tr.T("name"), tr.Lang())
			return nil
		},
	}
}
