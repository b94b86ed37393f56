package format

import "github.com/basil-lang/basil/internal/ast"

// IsMultiline decides whether rendering expr must span more than one
// physical line. It is pure and safe to call repeatedly on the same node;
// callers that query it often for the same subtree may want to memoize by
// node identity themselves, since no caching happens here.
func IsMultiline(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.SpaceBefore, *ast.SpaceAfter:
		// A trivia wrapper only exists when its trivia list is non-empty.
		return true
	case *ast.Defs, *ast.When:
		return true
	case *ast.NumLit, *ast.Ident, *ast.Tag, *ast.Accessor, *ast.FieldAccess,
		*ast.MalformedIdent, *ast.MalformedClosure:
		return false
	case *ast.PlainStr, *ast.InterpStr:
		return false
	case *ast.BlockStr:
		return len(e.Lines) > 1
	case *ast.List:
		if hasCommentTrivia(e.TrailingTrivia) {
			return true
		}
		for _, item := range e.Items {
			if IsMultiline(item) {
				return true
			}
		}
		return false
	case *ast.Record:
		if hasCommentTrivia(e.TrailingTrivia) {
			return true
		}
		for _, f := range e.Fields {
			if IsMultiline(f) {
				return true
			}
		}
		return false
	case *ast.FieldExpr:
		return isFieldMultiline(e.Field)
	case *ast.Apply:
		if IsMultiline(e.Head) {
			return true
		}
		for _, a := range e.Args {
			if IsMultiline(a) {
				return true
			}
		}
		return false
	case *ast.Closure:
		// Body first: it's the common case and avoids walking every pattern
		// when the body alone already forces expansion.
		if IsMultiline(e.Body) {
			return true
		}
		for _, p := range e.Patterns {
			if IsPatternMultiline(p) {
				return true
			}
		}
		return false
	case *ast.If:
		return IsMultiline(e.Cond) || IsMultiline(e.Then) || IsMultiline(e.Else)
	case *ast.BinOp:
		// Right-recursion here is exactly what makes a right-associated
		// operator chain propagate multilineness along its right spine:
		// IsMultiline(e.Right) re-enters this same case when Right is
		// itself a BinOp.
		return IsMultiline(e.Left) || IsMultiline(e.Right)
	case *ast.UnaryOp:
		return IsMultiline(e.Operand)
	case *ast.ParensAround:
		return IsMultiline(e.Inner)
	case *ast.Nested:
		return IsMultiline(e.Inner)
	case *ast.PrecedenceConflict:
		return IsMultiline(e.Inner)
	default:
		return false
	}
}

func isFieldMultiline(f ast.Field) bool {
	switch ft := f.(type) {
	case *ast.RequiredField:
		return IsMultiline(ft.Value)
	case *ast.OptionalField:
		return IsMultiline(ft.Value)
	default:
		// LabelOnlyField, MalformedField: always compact.
		return false
	}
}

// IsPatternMultiline is the multiline predicate for patterns: the
// formatter only needs it and the pattern's String() render form.
func IsPatternMultiline(p ast.Pattern) bool {
	switch pt := p.(type) {
	case *ast.SpacedPattern:
		return true
	case *ast.TagPattern:
		for _, a := range pt.Args {
			if IsPatternMultiline(a) {
				return true
			}
		}
		return false
	case *ast.ConsPattern:
		return IsPatternMultiline(pt.Head) || IsPatternMultiline(pt.Tail)
	case *ast.ListPattern:
		for _, it := range pt.Items {
			if IsPatternMultiline(it) {
				return true
			}
		}
		return false
	case *ast.TuplePattern:
		for _, it := range pt.Items {
			if IsPatternMultiline(it) {
				return true
			}
		}
		return false
	case *ast.RecordPattern:
		for _, f := range pt.Fields {
			if f.Value != nil && IsPatternMultiline(f.Value) {
				return true
			}
		}
		return false
	case *ast.AsPattern:
		return IsPatternMultiline(pt.Inner)
	default:
		return false
	}
}

// hasCommentTrivia reports whether any trivia in the list is a comment
// (as opposed to a bare newline run), the condition that forces a
// collection carrying no items of its own to still render multiline.
func hasCommentTrivia(trivia ast.TriviaList) bool {
	for _, t := range trivia {
		if t.IsComment() {
			return true
		}
	}
	return false
}

// spansMultipleLines reports whether a contiguous group of patterns (an
// alternative list in a when branch) covers more than one physical source
// line, per §4.C.4's "first and last pattern's source regions span more
// than one line" rule — distinct from IsPatternMultiline, which reflects
// structural trivia rather than source layout.
func spansMultipleLines(patterns []ast.Pattern) bool {
	if len(patterns) == 0 {
		return false
	}
	first := patterns[0].Position()
	last := patterns[len(patterns)-1].Position()
	return first.Start.Line != last.End.Line
}
