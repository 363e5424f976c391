package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jtojnar/fathom/internal/diagnostic"
	"github.com/jtojnar/fathom/internal/diagnostic/render"
	"github.com/jtojnar/fathom/internal/docgen"
	"github.com/jtojnar/fathom/internal/elaborate"
)

var docRaw bool

var docCmd = &cobra.Command{
	Use:   "doc <fixture>",
	Short: "Generate Markdown documentation for a fixture module",
	Args:  cobra.ExactArgs(1),
	RunE:  runDoc,
}

func init() {
	docCmd.Flags().BoolVar(&docRaw, "raw", false, "print plain Markdown instead of a colorized terminal preview")
}

func runDoc(cmd *cobra.Command, args []string) error {
	sm, err := lookupFixture(args[0])
	if err != nil {
		return err
	}

	sink := &diagnostic.SliceSink{}
	m := elaborate.ElaborateModule(sm, sink)
	if sink.HasErrors() {
		for _, d := range sink.Diagnostics {
			render.Render(cmd.OutOrStdout(), d, nil)
		}
		return fmt.Errorf("fixture %q does not elaborate cleanly", args[0])
	}

	var buf bytes.Buffer
	if err := docgen.Generate(&buf, m); err != nil {
		return err
	}

	if docRaw {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	return docgen.PreviewTerminal(cmd.OutOrStdout(), buf.String())
}
