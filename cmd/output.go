package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const rule = "───────────────────────────────────────────────────────────────"

func banner(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "     %s\n", title)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(w)
}

func heading(w io.Writer, title string) {
	fmt.Fprintf(w, "%s:\n", strings.ToUpper(title))
	fmt.Fprintln(w, rule)
}

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// failed prints the failure block shown in place of results
func failed(w io.Writer, what string, err error) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  ╔═════════════════════════════════════════╗")
	fmt.Fprintf(w, "  ║  %-39s║\n", strings.ToUpper(what)+" FAILED")
	fmt.Fprintln(w, "  ╚═════════════════════════════════════════╝")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %v\n\n", err)
}

func check(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
