package main

import (
	"encoding/json"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettegen/internal/format"
	"github.com/alexisbeaulieu97/palettegen/internal/harmony"
	"github.com/alexisbeaulieu97/palettegen/internal/i18n"
)

// Set through -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type buildInfo struct {
	Version   string   `json:"version"`
	Commit    string   `json:"commit"`
	Built     string   `json:"built"`
	Modes     []string `json:"modes"`
	Formats   []string `json:"formats"`
	Languages []string `json:"languages"`
}

// currentBuild fills gaps left by a plain `go install` from the module's
// embedded build info.
func currentBuild() buildInfo {
	info := buildInfo{Version: version, Commit: commit, Built: date, Languages: i18n.Supported()}
	if bi, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.Commit == "none":
				info.Commit = s.Value
			case s.Key == "vcs.time" && info.Built == "unknown":
				info.Built = s.Value
			}
		}
	}
	for _, m := range harmony.Modes() {
		info.Modes = append(info.Modes, m.String())
	}
	for _, f := range format.CodeFormats() {
		info.Formats = append(info.Formats, f.String())
	}
	return info
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information and supported modes, formats and languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := currentBuild()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "palettegen %s\ncommit: %s\nbuilt: %s\n", info.Version, info.Commit, info.Built)
			fmt.Fprintf(out, "modes: %s\n", strings.Join(info.Modes, ", "))
			fmt.Fprintf(out, "formats: %s\n", strings.Join(info.Formats, ", "))
			fmt.Fprintf(out, "languages: %s\n", strings.Join(info.Languages, ", "))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print build information as JSON")

	return cmd
}
