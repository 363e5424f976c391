// Command fathomcheck is the smallest possible driver over this module's
// elaborator: it never reads source text (no lexer or parser is built —
// out of scope by design), only a small embedded fixture set of
// hand-authored surface modules, selected by name. It exists to prove
// the pipeline end to end, not as a production entry point.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jtojnar/fathom/internal/surface"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

var rootCmd = &cobra.Command{
	Use:   "fathomcheck",
	Short: "Elaborate and inspect fathom fixture modules",
	Long: bold("fathomcheck") + ` drives the fathom elaborator over a small
set of embedded example modules (run "fathomcheck check --list" to see
them), reporting diagnostics and, for well-formed modules, generated
documentation.`,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(docCmd)
	rootCmd.AddCommand(replCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
		os.Exit(1)
	}
}

func lookupFixture(name string) (*surface.Module, error) {
	m, ok := fixtures[name]
	if !ok {
		return nil, fmt.Errorf("no such fixture %q (available: %v)", name, fixtureNames())
	}
	return m, nil
}
