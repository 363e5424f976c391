package docgen

import (
	"bufio"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	heading1 = color.New(color.FgCyan, color.Bold).SprintFunc()
	heading2 = color.New(color.FgGreen, color.Bold).SprintFunc()
	comment  = color.New(color.Faint).SprintFunc()
)

// PreviewTerminal re-renders Generate's Markdown output with headings and
// HTML comments colorized for a terminal, the way cmd/fathomcheck's doc
// subcommand shows a generated page without writing it to disk (file
// output is out of scope by design).
func PreviewTerminal(w io.Writer, markdown string) error {
	scanner := bufio.NewScanner(strings.NewReader(markdown))
	out := bufio.NewWriter(w)
	defer out.Flush()

	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "## "):
			if _, err := out.WriteString(heading2(line) + "\n"); err != nil {
				return err
			}
		case strings.HasPrefix(line, "# "):
			if _, err := out.WriteString(heading1(line) + "\n"); err != nil {
				return err
			}
		case strings.HasPrefix(line, "<!--") || strings.HasPrefix(line, "-->") || strings.HasPrefix(line, "  This file"):
			if _, err := out.WriteString(comment(line) + "\n"); err != nil {
				return err
			}
		default:
			if _, err := out.WriteString(line + "\n"); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}
