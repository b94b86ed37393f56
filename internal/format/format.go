// Package format implements the pretty-printer: it renders a parsed,
// trivia-preserving expression tree back into canonical source text,
// choosing between compact and expanded layouts node by node via
// IsMultiline and reproducing every comment the parser captured.
package format

import (
	"strings"

	"github.com/basil-lang/basil/internal/ast"
)

// ParensMode governs whether an Apply must parenthesize itself when it
// appears as an argument to another application.
type ParensMode int

const (
	ParensNotNeeded ParensMode = iota
	ParensInApply
)

// NewlinesMode governs whether a trivia wrapper may emit the blank-line
// newlines it carries, as opposed to only the comments within it.
type NewlinesMode int

const (
	NewlinesNo NewlinesMode = iota
	NewlinesYes
)

// IndentStep is the width of one indentation level.
const IndentStep = 4

// Format appends the canonical rendering of expr to buf. It never fails
// and has no side effects beyond the buffer.
func Format(expr ast.Expr, buf *strings.Builder, parens ParensMode, newlines NewlinesMode, indent int) {
	switch e := expr.(type) {
	case *ast.SpaceBefore:
		writeLeadingTrivia(buf, e.Trivia, newlines, indent)
		Format(e.Inner, buf, parens, newlines, indent)
	case *ast.SpaceAfter:
		Format(e.Inner, buf, parens, newlines, indent)
		writeTrailingTrivia(buf, e.Trivia, newlines, indent)

	case *ast.NumLit:
		formatNumLit(buf, e)
	case *ast.Tag:
		buf.WriteString(e.String())
	case *ast.Ident:
		if e.Module != "" {
			buf.WriteString(e.Module)
			buf.WriteByte('.')
		}
		buf.WriteString(e.Name)

	case *ast.PlainStr:
		buf.WriteByte('"')
		buf.WriteString(e.Text)
		buf.WriteByte('"')
	case *ast.InterpStr:
		formatInterpString(buf, e.Segments)
	case *ast.BlockStr:
		formatBlockString(buf, e, indent)

	case *ast.List:
		formatList(buf, e, indent)
	case *ast.Record:
		formatRecord(buf, e, indent)

	case *ast.FieldAccess:
		Format(e.Base, buf, ParensNotNeeded, NewlinesYes, indent)
		buf.WriteByte('.')
		buf.WriteString(e.Field)
	case *ast.Accessor:
		buf.WriteByte('.')
		buf.WriteString(e.Field)

	case *ast.Apply:
		formatApply(buf, e, parens, indent)
	case *ast.Closure:
		formatClosure(buf, e, indent)
	case *ast.Defs:
		formatDefs(buf, e, indent)
	case *ast.If:
		formatIf(buf, e, indent)
	case *ast.When:
		formatWhen(buf, e, indent)
	case *ast.BinOp:
		formatBinOp(buf, e, false, parens, indent)
	case *ast.UnaryOp:
		buf.WriteString(e.Op)
		Format(e.Operand, buf, parens, newlines, indent)

	case *ast.ParensAround:
		buf.WriteByte('(')
		Format(e.Inner, buf, ParensNotNeeded, NewlinesYes, indent)
		buf.WriteByte(')')
	case *ast.Nested:
		Format(e.Inner, buf, parens, newlines, indent)
	case *ast.PrecedenceConflict:
		Format(e.Inner, buf, parens, newlines, indent)

	case *ast.FieldExpr:
		formatField(buf, e.Field, indent)

	case *ast.MalformedIdent, *ast.MalformedClosure:
		// Emit nothing.
	}
}

func formatNumLit(buf *strings.Builder, n *ast.NumLit) {
	if n.Negative {
		buf.WriteByte('-')
	}
	switch n.Base {
	case ast.Hex:
		buf.WriteString("0x")
	case ast.Octal:
		buf.WriteString("0o")
	case ast.Binary:
		buf.WriteString("0b")
	}
	buf.WriteString(n.Text)
}

func formatApply(buf *strings.Builder, e *ast.Apply, parens ParensMode, indent int) {
	if parens == ParensInApply {
		buf.WriteByte('(')
	}
	Format(e.Head, buf, ParensInApply, NewlinesYes, indent)

	anyMultiline := false
	for _, a := range e.Args {
		if IsMultiline(a) {
			anyMultiline = true
			break
		}
	}

	if anyMultiline {
		argIndent := indent + IndentStep
		for _, a := range e.Args {
			buf.WriteByte('\n')
			writeIndent(buf, argIndent)
			Format(a, buf, ParensInApply, NewlinesYes, argIndent)
		}
	} else {
		for _, a := range e.Args {
			buf.WriteByte(' ')
			Format(a, buf, ParensInApply, NewlinesYes, indent)
		}
	}

	if parens == ParensInApply {
		buf.WriteByte(')')
	}
}

func formatDefs(buf *strings.Builder, e *ast.Defs, indent int) {
	for i, def := range e.Definitions {
		writeIndent(buf, indent)
		buf.WriteString(def.Pattern.String())
		buf.WriteString(" = ")
		Format(def.Value, buf, ParensNotNeeded, NewlinesYes, indent)
		if i < len(e.Definitions)-1 {
			buf.WriteByte('\n')
		}
	}

	// A SpaceBefore-wrapped return expression positions itself — its own
	// leading-trivia handling supplies the line break after the last
	// definition along with any preserved blank line — so the unconditional
	// break belongs here only when Ret carries no recorded trivia of its own.
	if _, ok := e.Ret.(*ast.SpaceBefore); ok {
		Format(e.Ret, buf, ParensNotNeeded, NewlinesYes, indent)
		return
	}
	buf.WriteByte('\n')
	writeIndent(buf, indent)
	Format(e.Ret, buf, ParensNotNeeded, NewlinesYes, indent)
}

func formatField(buf *strings.Builder, f ast.Field, indent int) {
	switch ft := f.(type) {
	case *ast.RequiredField:
		buf.WriteString(ft.Name)
		buf.WriteString(": ")
		Format(ft.Value, buf, ParensNotNeeded, NewlinesYes, indent)
	case *ast.OptionalField:
		buf.WriteString(ft.Name)
		buf.WriteString("? ")
		Format(ft.Value, buf, ParensNotNeeded, NewlinesYes, indent)
	case *ast.LabelOnlyField:
		buf.WriteString(ft.Name)
	case *ast.MalformedField:
		// Emit nothing.
	}
}

func writeIndent(buf *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}
}

func writeCommentLine(buf *strings.Builder, t ast.Trivia) {
	if t.Kind == ast.DocComment {
		buf.WriteString("##")
	} else {
		buf.WriteByte('#')
	}
	buf.WriteString(t.Text)
	buf.WriteByte('\n')
}

// writeLeadingTrivia renders the trivia of a SpaceBefore wrapper, always
// leaving the cursor positioned at `indent` for the Inner expression that
// follows — Inner is never optional, so it is always safe to indent for it.
func writeLeadingTrivia(buf *strings.Builder, trivia ast.TriviaList, newlines NewlinesMode, indent int) {
	blankRun := 0
	for _, t := range trivia {
		switch t.Kind {
		case ast.Newline:
			if newlines == NewlinesYes {
				if blankRun < 2 {
					buf.WriteByte('\n')
				}
				blankRun++
			}
		case ast.LineComment, ast.DocComment:
			blankRun = 0
			writeIndent(buf, indent)
			writeCommentLine(buf, t)
		}
	}
	writeIndent(buf, indent)
}

// writeTrailingTrivia renders the trivia of a SpaceAfter wrapper. Unlike
// writeLeadingTrivia it never indents after its last item, since nothing
// guarantees more content follows on the same logical position — doing so
// would risk emitting a whitespace-only line.
func writeTrailingTrivia(buf *strings.Builder, trivia ast.TriviaList, newlines NewlinesMode, indent int) {
	blankRun := 0
	for _, t := range trivia {
		switch t.Kind {
		case ast.Newline:
			if newlines == NewlinesYes {
				if blankRun < 2 {
					buf.WriteByte('\n')
				}
				blankRun++
			}
		case ast.LineComment, ast.DocComment:
			blankRun = 0
			buf.WriteByte('\n')
			writeIndent(buf, indent)
			writeCommentLine(buf, t)
		}
	}
}

func formatInterpString(buf *strings.Builder, segments []ast.StrSegment) {
	buf.WriteByte('"')
	for _, seg := range segments {
		writeInterpSegment(buf, seg)
	}
	buf.WriteByte('"')
}

func writeInterpSegment(buf *strings.Builder, seg ast.StrSegment) {
	switch seg.Kind {
	case ast.SegPlain:
		buf.WriteString(seg.Text)
	case ast.SegUnicodeEscape:
		buf.WriteString(`\u(`)
		buf.WriteString(seg.Text)
		buf.WriteByte(')')
	case ast.SegCharEscape:
		buf.WriteByte('\\')
		buf.WriteByte(seg.Escape)
	case ast.SegInterp:
		buf.WriteString(`\(`)
		if seg.Interp != nil {
			Format(seg.Interp, buf, ParensNotNeeded, NewlinesNo, 0)
		}
		buf.WriteByte(')')
	}
}

func formatBlockString(buf *strings.Builder, e *ast.BlockStr, indent int) {
	buf.WriteString(`"""`)
	if len(e.Lines) > 1 {
		for _, line := range e.Lines {
			buf.WriteByte('\n')
			writeIndent(buf, indent)
			for _, seg := range line {
				writeInterpSegment(buf, seg)
			}
		}
		buf.WriteByte('\n')
		writeIndent(buf, indent)
	} else if len(e.Lines) == 1 {
		for _, seg := range e.Lines[0] {
			writeInterpSegment(buf, seg)
		}
	}
	buf.WriteString(`"""`)
}
