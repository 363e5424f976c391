package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jtojnar/fathom/internal/diagnostic"
	"github.com/jtojnar/fathom/internal/diagnostic/render"
	"github.com/jtojnar/fathom/internal/elaborate"
)

var checkList bool

var checkCmd = &cobra.Command{
	Use:   "check [fixture]",
	Short: "Elaborate a fixture module and report diagnostics",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkList, "list", false, "list the available fixture names")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkList || len(args) == 0 {
		for _, n := range fixtureNames() {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		if len(args) == 0 && !checkList {
			return fmt.Errorf("missing fixture name (try --list)")
		}
		return nil
	}

	sm, err := lookupFixture(args[0])
	if err != nil {
		return err
	}

	sink := &diagnostic.SliceSink{}
	m := elaborate.ElaborateModule(sm, sink)

	for _, d := range sink.Diagnostics {
		render.Render(cmd.OutOrStdout(), d, nil)
	}

	if sink.HasErrors() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d item(s) elaborated with errors\n", red("failed"), len(m.Items))
		return fmt.Errorf("fixture %q has elaboration errors", args[0])
	}

	if err := elaborate.Validate(m); err != nil {
		return fmt.Errorf("elaboration succeeded but independent validation disagreed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d item(s) elaborated and validated\n", green("ok"), len(m.Items))
	return nil
}
