package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/palettegen/internal/app"
)

func printPalette(w io.Writer, ctrl *app.Controller) {
	tr := ctrl.Translator()
	for i, code := range ctrl.Codes() {
		suffix := ""
		if ctrl.Locked(i) {
			suffix = "  [" + tr.T("ui.locked") + "]"
		}
		fmt.Fprintf(w, "%d  %s%s\n", i+1, code, suffix)
	}
}

func printInfo(w io.Writer, ctrl *app.Controller) {
	tr := ctrl.Translator()
	fmt.Fprintf(w, "%s: %s\n", tr.T("info.mode"), tr.Mode(ctrl.Mode()))

	info, ok := ctrl.Info()
	if !ok {
		return
	}
	fmt.Fprintf(w, "%s: %s\n", tr.T("info.contrast"), tr.T("info."+string(info.Contrast)))
	fmt.Fprintf(w, "%s: %s\n", tr.T("info.temperature"), tr.T("info."+string(info.Temperature)))
}

func printHistory(w io.Writer, ctrl *app.Controller) {
	entries := ctrl.History()
	if len(entries) == 0 {
		fmt.Fprintln(w, ctrl.Translator().T("messages.historyEmpty"))
		return
	}
	for i, e := range entries {
		fmt.Fprintf(w, "%2d  %s\n", i+1, strings.Join(e, " "))
	}
}
