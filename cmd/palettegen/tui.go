package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettegen/internal/tui"
)

func runTUI(cmd *cobra.Command, flags *rootFlags) error {
	ac, err := newAppContext(cmd, flags, contextOptions{logToFile: true})
	if err != nil {
		return err
	}
	defer ac.Close()

	if _, err := ac.Controller.Start(ac.Ctx); err != nil {
		return newCommandError("start interface", "generating first palette", err, "Re-run with --verbose for details.")
	}

	ac.Logger.Info("interface started")
	m := tui.NewModel(ac.Ctx, ac.Controller, supportsUnicode(cmd.OutOrStdout()))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ac.Ctx))
	if _, err := p.Run(); err != nil {
		ac.Logger.Error(err, "interface failed")
		return fmt.Errorf("failed to run interface: %w", err)
	}
	ac.Logger.Info("interface closed")
	return nil
}
