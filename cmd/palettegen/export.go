package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettegen/internal/app"
	"github.com/alexisbeaulieu97/palettegen/internal/format"
	"github.com/alexisbeaulieu97/palettegen/internal/tokenrepo"
)

type exportOptions struct {
	copy     bool
	repo     string
	init     bool
	subdir   string
	showDiff bool
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:       "export <css|tailwind|json>",
		Short:     "Print the palette as CSS variables, a Tailwind config or JSON",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"css", "tailwind", "json"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.copy, "copy", "c", false, "Copy the export to the clipboard")
	cmd.Flags().StringVar(&opts.repo, "repo", "", "Commit all exports into this git repository")
	cmd.Flags().BoolVar(&opts.init, "init", false, "Initialize the repository if it does not exist")
	cmd.Flags().StringVar(&opts.subdir, "subdir", "", "Write the files below this directory of the repository")
	cmd.Flags().BoolVar(&opts.showDiff, "diff", false, "Show what changed in the repository files")

	return cmd
}

func runExport(cmd *cobra.Command, flags *rootFlags, opts *exportOptions, name string) error {
	kind, err := format.ParseExportKind(name)
	if err != nil {
		return newCommandError("export", name, err, "Use css, tailwind or json.")
	}

	ac, err := newAppContext(cmd, flags, contextOptions{})
	if err != nil {
		return err
	}
	defer ac.Close()

	if err := ac.EnsurePalette(); err != nil {
		return newCommandError("export", "generating first palette", err, "Re-run with --verbose for details.")
	}

	var intent app.Intent = app.Export{Kind: kind}
	if opts.copy {
		intent = app.CopyExport{Kind: kind}
	}
	res, err := ac.Dispatch(intent)
	if err != nil {
		return newCommandError("export", name, err, "Re-run with --verbose for details.")
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Export.Body)
	if opts.copy {
		reportCopy(cmd, ac, res.Copied)
	}

	target := tokenrepo.Options{Dir: opts.repo, Init: opts.init, Subdir: opts.subdir}
	if target.Dir == "" {
		target.Dir = ac.Config.Export.Repo
		target.Init = target.Init || ac.Config.Export.InitRepo
	}
	if target.Subdir == "" {
		target.Subdir = ac.Config.Export.Subdir
	}
	if target.Dir == "" {
		return nil
	}
	return publish(cmd, ac, target, opts.showDiff)
}

func publish(cmd *cobra.Command, ac *AppContext, target tokenrepo.Options, showDiff bool) error {
	repo := target.Dir
	payloads := make([]format.Payload, 0, len(format.ExportKinds()))
	for _, kind := range format.ExportKinds() {
		res, err := ac.Dispatch(app.Export{Kind: kind})
		if err != nil {
			return newCommandError("publish palette", kind.String(), err, "Re-run with --verbose for details.")
		}
		payloads = append(payloads, *res.Export)
	}

	pub := tokenrepo.NewPublisher(target, ac.Logger)
	commit, err := pub.Publish(ac.Ctx, payloads, ac.Controller.Mode(), ac.Controller.Palette().Hexes())
	switch {
	case errors.Is(err, tokenrepo.ErrNoChanges):
		fmt.Fprintf(cmd.ErrOrStderr(), "%s already holds this palette\n", repo)
		return nil
	case errors.Is(err, tokenrepo.ErrInvalidSubdir):
		return newCommandError("publish palette", target.Subdir, err, "Use a relative --subdir such as design/tokens.")
	case err != nil:
		return newCommandError("publish palette", repo, err, "Pass --init to create the repository, or check that it is a git working tree.")
	}

	if showDiff {
		fmt.Fprint(cmd.ErrOrStderr(), commit.Diff)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "committed %s to %s\n", shortHash(commit.Hash), repo)
	return nil
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
