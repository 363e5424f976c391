package elaborate

import (
	"github.com/jtojnar/fathom/internal/core"
	"github.com/jtojnar/fathom/internal/diagnostic"
	"github.com/jtojnar/fathom/internal/ident"
	"github.com/jtojnar/fathom/internal/module"
	"github.com/jtojnar/fathom/internal/nbe"
	"github.com/jtojnar/fathom/internal/span"
	"github.com/jtojnar/fathom/internal/surface"
	"github.com/jtojnar/fathom/internal/tcenv"
	"github.com/jtojnar/fathom/internal/value"
)

// ElaborateModule elaborates every item of sm in source order, threading
// a tcenv.Env so later items (and later struct fields) can refer to
// earlier ones. A duplicate item label reports ItemRedefinition and
// keeps the first definition and reports a diagnostic for the
// duplicate, rather than overwriting the original binding.
func ElaborateModule(sm *surface.Module, sink diagnostic.Sink) *module.Module {
	fm, doc := module.ParseFrontMatter(sm.Doc)
	env := tcenv.Default()
	ctx := &TermContext{Env: env, Sink: sink}

	first := map[string]surface.Item{}
	items := make([]module.Item, 0, len(sm.Items))

	for _, it := range sm.Items {
		label := it.Label()
		if prior, dup := first[label]; dup {
			sink.Report(diagnostic.ItemRedefinition(it.Span(), label, prior.Span()))
			continue
		}
		first[label] = it

		switch it := it.(type) {
		case *surface.Alias:
			mi, newEnv := elaborateAlias(ctx, it)
			ctx = ctx.withEnv(newEnv)
			items = append(items, mi)
		case *surface.Struct:
			mi, newEnv := elaborateStruct(ctx, it)
			ctx = ctx.withEnv(newEnv)
			items = append(items, mi)
		}
	}

	return &module.Module{FileID: sm.FileID, Doc: doc, FrontMatter: fm, Items: items}
}

func elaborateAlias(ctx *TermContext, a *surface.Alias) (*module.Alias, *tcenv.Env) {
	var typeTerm core.Term
	var typeValue value.Value
	var termTerm core.Term

	if a.Type != nil {
		typeTerm = ElaborateUniverse(ctx, a.Type)
		if core.IsError(typeTerm) {
			typeValue = errorValue
		} else {
			var err error
			typeValue, err = nbe.Normalize(ctx.Env, typeTerm)
			if err != nil {
				typeValue = errorValue
			}
		}
		termTerm = Check(ctx, a.Term, typeValue)
	} else {
		termTerm, typeValue = Synth(ctx, a.Term)
		typeTerm = value.Quote(typeValue)
	}

	termValue, err := nbe.Normalize(ctx.Env, termTerm)
	if err != nil {
		termValue = errorValue
	}

	newEnv := ctx.Env.WithItem(a.Label(), tcenv.Global{Value: termValue, Type: typeValue})
	return &module.Alias{Name: a.Label(), Doc: a.Doc, Type: typeTerm, Term: termTerm}, newEnv
}

func elaborateStruct(ctx *TermContext, s *surface.Struct) (*module.Struct, *tcenv.Env) {
	seen := map[string]surface.StructField{}
	fields, recordType := elaborateFields(ctx, s.Fields, seen)

	recordTypeValue, err := nbe.Normalize(ctx.Env, recordType)
	if err != nil {
		recordTypeValue = errorValue
	}
	formatUniverse := value.Value(&value.Universe{Sort: core.Format, Level: 0})
	newEnv := ctx.Env.WithItem(s.Label(), tcenv.Global{Value: recordTypeValue, Type: formatUniverse})

	return &module.Struct{Name: s.Label(), Doc: s.Doc, Fields: fields, Type: recordType}, newEnv
}

// elaborateFields recursively elaborates a struct's fields, building the
// flattened module.Field slice (for docgen) alongside the nested
// core.RecordType chain (for validation and normalization) in one pass:
// each field's binder is brought into scope for every field after it, so
// a later field's type may refer to an earlier field's decoded value
// (e.g. a length-prefixed array).
func elaborateFields(ctx *TermContext, fields []surface.StructField, seen map[string]surface.StructField) ([]module.Field, core.Term) {
	if len(fields) == 0 {
		return nil, core.NewRecordTypeEmpty(span.Zero)
	}

	f := fields[0]
	if prior, dup := seen[f.Label]; dup {
		ctx.Sink.Report(diagnostic.FieldRedeclaration(f.Span, f.Label, prior.Span))
		return elaborateFields(ctx, fields[1:], seen)
	}
	seen[f.Label] = f

	fieldTypeTerm := ElaborateUniverse(ctx, f.Type)
	fieldTypeValue, err := nbe.Normalize(ctx.Env, fieldTypeTerm)
	if err != nil {
		fieldTypeValue = errorValue
	}

	binder := ident.Fresh(f.Label)
	restCtx := ctx.withLocal(f.Label, binder, fieldTypeValue)

	restFields, restType := elaborateFields(restCtx, fields[1:], seen)

	out := make([]module.Field, 0, len(restFields)+1)
	out = append(out, module.Field{
		Name:   f.Label,
		Doc:    f.Doc,
		Offset: f.Span.Start.Offset,
		Type:   fieldTypeTerm,
	})
	out = append(out, restFields...)

	recordType := core.NewRecordType(f.Span, ident.Label(f.Label), binder, fieldTypeTerm, restType)
	return out, recordType
}
