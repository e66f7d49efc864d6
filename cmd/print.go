package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown report to the terminal, styled when the
// terminal supports it. Rendering failures fall back to the raw markdown so
// the report is never lost.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprint(os.Stdout, md)
		return
	}
	fmt.Fprint(os.Stdout, out)
}
