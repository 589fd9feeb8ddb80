package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettegen/internal/app"
	"github.com/alexisbeaulieu97/palettegen/internal/format"
	"github.com/alexisbeaulieu97/palettegen/internal/harmony"
)

type generateOptions struct {
	mode       string
	codeFormat string
	locks      []int
	count      int
	seed       uint64
	seeded     bool
	jsonOutput bool
}

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new palette, keeping locked colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seeded = cmd.Flags().Changed("seed")
			return runGenerate(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "Harmony mode (complementary, analogous, triadic, tetradic, monochromatic)")
	cmd.Flags().StringVarP(&opts.codeFormat, "format", "f", "", "Code format (hex, rgb, hsl)")
	cmd.Flags().IntSliceVarP(&opts.locks, "lock", "l", nil, "Lock these slots (1-5) before generating")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "Number of palettes to generate")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for reproducible palettes")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the palette as a JSON export")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags *rootFlags, opts *generateOptions) error {
	if opts.count < 1 {
		return newCommandError("generate", "validating --count", fmt.Errorf("count must be at least 1, got %d", opts.count), "Pass --count 1 or more.")
	}

	ctxOpts := contextOptions{}
	if opts.seeded {
		ctxOpts.sampler = harmony.NewSampler(opts.seed)
	}
	ac, err := newAppContext(cmd, flags, ctxOpts)
	if err != nil {
		return err
	}
	defer ac.Close()

	if opts.codeFormat != "" {
		f, err := format.ParseCodeFormat(opts.codeFormat)
		if err != nil {
			return newCommandError("generate", "parsing --format", err, "Use hex, rgb or hsl.")
		}
		if _, err := ac.Dispatch(app.ChangeFormat{Format: f}); err != nil {
			return newCommandError("generate", "changing format", err, "Use hex, rgb or hsl.")
		}
	}

	for _, slot := range opts.locks {
		if ac.Controller.Locked(slot - 1) {
			continue
		}
		if _, err := ac.Dispatch(app.ToggleLock{Index: slot - 1}); err != nil {
			return newCommandError("generate", fmt.Sprintf("locking slot %d", slot), err, "Slots are numbered 1 to 5.")
		}
	}

	remaining := opts.count
	if opts.mode != "" {
		m, err := harmony.ParseMode(opts.mode)
		if err != nil {
			return newCommandError("generate", "parsing --mode", err, "Run 'palettegen mode' to list the available modes.")
		}
		if m != ac.Controller.Mode() {
			// Changing mode already produces a palette.
			if _, err := ac.Dispatch(app.ChangeMode{Mode: m}); err != nil {
				return newCommandError("generate", "changing mode", err, "Run 'palettegen mode' to list the available modes.")
			}
			remaining--
		}
	}

	for range remaining {
		if _, err := ac.Dispatch(app.Generate{}); err != nil {
			return newCommandError("generate", "generating palette", err, "Re-run with --verbose for details.")
		}
	}

	if opts.jsonOutput {
		res, err := ac.Dispatch(app.Export{Kind: format.ExportJSON})
		if err != nil {
			return newCommandError("generate", "rendering JSON", err, "Re-run with --verbose for details.")
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Export.Body)
		return nil
	}

	printPalette(cmd.OutOrStdout(), ac.Controller)
	return nil
}
