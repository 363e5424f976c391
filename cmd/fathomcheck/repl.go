package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/jtojnar/fathom/internal/core"
	"github.com/jtojnar/fathom/internal/diagnostic"
	"github.com/jtojnar/fathom/internal/diagnostic/render"
	"github.com/jtojnar/fathom/internal/elaborate"
	"github.com/jtojnar/fathom/internal/module"
	"github.com/jtojnar/fathom/internal/resugar"
	"github.com/jtojnar/fathom/internal/span"
	"github.com/jtojnar/fathom/internal/surface"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively elaborate aliases one at a time",
	RunE: func(cmd *cobra.Command, args []string) error {
		newSession().start(cmd.OutOrStdout())
		return nil
	},
}

// session holds the accumulated items of an interactive repl: each
// `:alias` command re-elaborates the whole accumulated list against a
// fresh tcenv.Env, mirroring a small REPL loop but
// operating on core.Term/value.Value rather than a typed AST, since
// there is no lexer or parser to drive incremental elaboration off a
// running environment's surface syntax directly.
type session struct {
	items []surface.Item
}

func newSession() *session { return &session{} }

func (s *session) start(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(false)
	line.SetCompleter(func(prefix string) (c []string) {
		for _, cmd := range []string{":list", ":load", ":alias", ":show", ":check", ":help", ":quit"} {
			if strings.HasPrefix(cmd, prefix) {
				c = append(c, cmd)
			}
		}
		return
	})

	fmt.Fprintln(out, bold("fathomcheck repl"))
	fmt.Fprintln(out, dim("Type :help for commands, :quit to exit."))

	for {
		input, err := line.Prompt("fathom> ")
		if err == io.EOF {
			fmt.Fprintln(out, green("goodbye"))
			return
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
			continue
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if s.handle(input, out) {
			return
		}
	}
}

// handle processes one line of input, returning true if the session
// should end.
func (s *session) handle(input string, out io.Writer) bool {
	fields := strings.Fields(input)
	switch fields[0] {
	case ":quit", ":q":
		fmt.Fprintln(out, green("goodbye"))
		return true

	case ":help", ":h":
		printReplHelp(out)

	case ":list":
		for _, n := range fixtureNames() {
			fmt.Fprintln(out, n)
		}

	case ":load":
		if len(fields) < 2 {
			fmt.Fprintln(out, "usage: :load <fixture>")
			return false
		}
		sm, err := lookupFixture(fields[1])
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
			return false
		}
		s.items = append(s.items, sm.Items...)
		fmt.Fprintf(out, "loaded %d item(s) from %q\n", len(sm.Items), fields[1])

	case ":alias":
		rest := strings.TrimSpace(strings.TrimPrefix(input, ":alias"))
		item, err := parseAliasCommand(rest)
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
			return false
		}
		s.items = append(s.items, item)
		s.elaborateAndReport(out, item.Label())

	case ":check", ":show":
		s.elaborateAndReport(out, "")

	default:
		fmt.Fprintf(out, "%s: unknown command %q (try :help)\n", red("error"), fields[0])
	}
	return false
}

// parseAliasCommand reads the tiny fixed grammar `name : Type = value`.
// This is a command-line convenience, not a general expression parser —
// the value token is either an all-digit literal or a bare identifier,
// the only two leaf term shapes a hand-built fixture ever needs.
func parseAliasCommand(rest string) (*surface.Alias, error) {
	eq := strings.SplitN(rest, "=", 2)
	if len(eq) != 2 {
		return nil, fmt.Errorf("usage: :alias <name> : <Type> = <value>")
	}
	head := strings.SplitN(eq[0], ":", 2)
	if len(head) != 2 {
		return nil, fmt.Errorf("usage: :alias <name> : <Type> = <value>")
	}

	label := strings.TrimSpace(head[0])
	typeName := strings.TrimSpace(head[1])
	valueTok := strings.TrimSpace(eq[1])
	if label == "" || typeName == "" || valueTok == "" {
		return nil, fmt.Errorf("usage: :alias <name> : <Type> = <value>")
	}

	var value surface.Term
	if _, err := strconv.ParseUint(valueTok, 10, 64); err == nil {
		value = number(valueTok)
	} else {
		value = name(valueTok)
	}

	return surface.NewAlias(span.Zero, label, "", name(typeName), value), nil
}

func (s *session) elaborateAndReport(out io.Writer, highlight string) {
	sm := &surface.Module{FileID: "<repl>", Items: s.items}
	sink := &diagnostic.SliceSink{}
	m := elaborate.ElaborateModule(sm, sink)

	for _, d := range sink.Diagnostics {
		render.Render(out, d, nil)
	}
	if sink.HasErrors() {
		return
	}

	if err := elaborate.Validate(m); err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("unsound"), err)
		return
	}

	for _, it := range m.Items {
		name, term, typ := itemSummary(it)
		if highlight != "" && name != highlight {
			continue
		}
		fmt.Fprintf(out, "%s : %s = %s\n", yellow(name), resugar.FromTerm(typ).String(), term)
	}
}

func printReplHelp(out io.Writer) {
	fmt.Fprintln(out, `Commands:
  :list                         list embedded fixture names
  :load <fixture>               load a fixture's items into this session
  :alias <name> : <Type> = <v>  elaborate and add a new alias
  :check | :show                re-elaborate and print every item so far
  :help                         show this message
  :quit                         exit`)
}

func itemSummary(it module.Item) (name, term string, typ core.Term) {
	switch it := it.(type) {
	case *module.Alias:
		return it.Name, it.Term.String(), it.Type
	case *module.Struct:
		return it.Name, it.Type.String(), it.Type
	default:
		return "?", "?", nil
	}
}
