package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/filedesk/internal/client/store"
	"golang.org/x/term"
)

const (
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

// isTerminal is a test seam for term.IsTerminal on stdout.
var isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

func colorize(s, color string) string {
	if !isTerminal() {
		return s
	}
	return color + s + ansiReset
}

// renderState prints the loading marker, the error, then the file list.
func renderState(st store.State) {
	if st.Loading {
		printlnFn("Loading...")
	}
	if st.Err != "" {
		printlnFn(colorize("Error: "+st.Err, ansiRed))
	}
	if len(st.Files) == 0 {
		printlnFn("No files.")
		return
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, f := range st.Files {
		name := f.Name()
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\n", f.ID(), name)
	}
	_ = tw.Flush()

	printlnFn(strings.TrimRight(sb.String(), "\n"))
}
