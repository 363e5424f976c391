// Package docgen renders an elaborated module.Module as Markdown
// documentation: one "## Name" heading per struct, a fields table (with
// or without a description column depending on whether any field
// carries documentation), and the "**invalid data description**"
// sentinel for any field whose type elaboration left as the error term.
// No HTML generator and no host-language code generator are built — by
// design, excluding every generator but this one; only one concrete
// downstream consumer is needed to prove the wire contract.
package docgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/jtojnar/fathom/internal/core"
	"github.com/jtojnar/fathom/internal/module"
)

const generatedBy = "fathomcheck"

// sizedGlobalNames lists every Global reference compileType renders by
// its bare name (U8, U16Le, ..., F64Be). Any other Global (Bool, String,
// Char, a user-declared IntType alias, ...) falls through to
// compileType's generic cases.
var sizedGlobalNames = map[string]bool{
	"U8": true, "U16Le": true, "U16Be": true, "U32Le": true, "U32Be": true,
	"U64Le": true, "U64Be": true, "S8": true, "S16Le": true, "S16Be": true,
	"S32Le": true, "S32Be": true, "S64Le": true, "S64Be": true,
	"F32Le": true, "F32Be": true, "F64Le": true, "F64Be": true,
}

// Generate writes m's Markdown documentation to w.
func Generate(w io.Writer, m *module.Module) error {
	if _, err := fmt.Fprintln(w, "<!--"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  This file is automatically @generated by %s\n", generatedBy); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  It is not intended for manual editing."); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "-->"); err != nil {
		return err
	}

	if m.FrontMatter != nil && m.FrontMatter.Title != "" {
		if _, err := fmt.Fprintf(w, "\n# %s\n", m.FrontMatter.Title); err != nil {
			return err
		}
		if m.FrontMatter.Summary != "" {
			if _, err := fmt.Fprintf(w, "\n%s\n", m.FrontMatter.Summary); err != nil {
				return err
			}
		}
	}

	for _, item := range m.Items {
		s, ok := item.(*module.Struct)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if err := generateStruct(w, s); err != nil {
			return err
		}
	}
	return nil
}

func generateStruct(w io.Writer, s *module.Struct) error {
	if _, err := fmt.Fprintf(w, "## %s\n", s.Name); err != nil {
		return err
	}
	if s.Doc != "" {
		if _, err := fmt.Fprintf(w, "\n%s\n", s.Doc); err != nil {
			return err
		}
	}
	if len(s.Fields) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w, "\n### Fields"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	anyDoc := false
	for _, f := range s.Fields {
		if f.Doc != "" {
			anyDoc = true
			break
		}
	}

	if !anyDoc {
		fmt.Fprintln(w, "| Name | Type |")
		fmt.Fprintln(w, "| ---- | ---- |")
		for _, f := range s.Fields {
			fmt.Fprintf(w, "| %s | %s |\n", f.Name, compileType(f.Type))
		}
		return nil
	}

	fmt.Fprintln(w, "| Name | Type | Description |")
	fmt.Fprintln(w, "| ---- | ---- | ------------|")
	for _, f := range s.Fields {
		fmt.Fprintf(w, "| %s | %s | %s |\n", f.Name, compileType(f.Type), fieldDescription(f.Doc))
	}
	return nil
}

func fieldDescription(doc string) string {
	lines := strings.Split(doc, "\n")
	if len(lines) == 0 || lines[0] == "" {
		return ""
	}
	first := strings.TrimRight(lines[0], ".")
	if len(lines) == 1 {
		return first
	}
	return first + "..."
}

// compileType renders a field's core.Term type for display: sized
// formats by their bare name, the error sentinel as the
// invalid-data-description marker, and everything else (record types,
// applied Pi types, user-declared aliases, ...) by the term's own
// String().
func compileType(t core.Term) string {
	if core.IsError(t) {
		return "**invalid data description**"
	}
	if g, ok := t.(*core.Global); ok && sizedGlobalNames[g.Name] {
		return g.Name
	}
	return t.String()
}
