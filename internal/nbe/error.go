package nbe

import (
	"fmt"

	"github.com/jtojnar/fathom/internal/span"
)

// ErrorKind enumerates the ways evaluation of an already-elaborated core
// term can fail. Every one of these indicates a bug in the elaborator (a
// well-typed term should never reach any of these), not a user-facing
// diagnostic; internal/elaborate treats a non-nil error from this package
// as a defect to be reported loudly rather than folded into the normal
// diagnostic stream.
type ErrorKind int

const (
	ErrUnsubstitutedBoundIndex ErrorKind = iota
	ErrArgumentAppliedToNonFunction
	ErrExpectedBoolExpr
	ErrProjectedNonExistentField
	ErrNoPatternApplicable
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnsubstitutedBoundIndex:
		return "unsubstituted bound index reached the evaluator"
	case ErrArgumentAppliedToNonFunction:
		return "argument applied to a non-function value"
	case ErrExpectedBoolExpr:
		return "boolean elimination on a non-boolean scrutinee"
	case ErrProjectedNonExistentField:
		return "projection of a field absent from the record"
	case ErrNoPatternApplicable:
		return "integer elimination on a non-integer, non-neutral scrutinee"
	default:
		return "unknown internal evaluator error"
	}
}

// InternalError reports a defect discovered while normalizing an
// already-elaborated term.
type InternalError struct {
	Kind ErrorKind
	Span span.Span
	Note string
}

func (e *InternalError) Error() string {
	if e.Note != "" {
		return fmt.Sprintf("internal: %s: %s (%s)", e.Kind, e.Note, e.Span)
	}
	return fmt.Sprintf("internal: %s (%s)", e.Kind, e.Span)
}

func internalErr(kind ErrorKind, sp span.Span, note string) error {
	return &InternalError{Kind: kind, Span: sp, Note: note}
}
