package format

import (
	"strings"

	"github.com/basil-lang/basil/internal/ast"
)

// formatRecord renders §4.C.1.
func formatRecord(buf *strings.Builder, e *ast.Record, indent int) {
	if e.Update == nil && len(e.Fields) == 0 {
		if !hasCommentTrivia(e.TrailingTrivia) {
			buf.WriteString("{}")
			return
		}
		buf.WriteByte('{')
		writeTrailingCommentsAfterComma(buf, e.TrailingTrivia, indent+IndentStep)
		buf.WriteByte('\n')
		writeIndent(buf, indent)
		buf.WriteByte('}')
		return
	}

	buf.WriteByte('{')
	if e.Update != nil {
		buf.WriteByte(' ')
		Format(e.Update, buf, ParensNotNeeded, NewlinesYes, indent)
		buf.WriteString(" &")
	}

	multiline := IsMultiline(e)

	if multiline {
		fieldIndent := indent + IndentStep
		for _, f := range e.Fields {
			buf.WriteByte('\n')
			writeIndent(buf, fieldIndent)
			formatRecordField(buf, f, fieldIndent)
		}
		writeTrailingCommentsAfterComma(buf, e.TrailingTrivia, fieldIndent)
		buf.WriteByte('\n')
		writeIndent(buf, indent)
		buf.WriteByte('}')
		return
	}

	if len(e.Fields) > 0 {
		buf.WriteByte(' ')
		for i, f := range e.Fields {
			writeFieldInner(buf, f, indent)
			if i < len(e.Fields)-1 {
				buf.WriteString(", ")
			}
		}
		buf.WriteByte(' ')
	} else {
		buf.WriteByte(' ')
	}
	buf.WriteByte('}')
}

func formatRecordField(buf *strings.Builder, item ast.Expr, fieldIndent int) {
	switch wrapper := item.(type) {
	case *ast.SpaceBefore:
		for _, t := range wrapper.Trivia {
			if t.Kind == ast.LineComment || t.Kind == ast.DocComment {
				writeCommentLine(buf, t)
				writeIndent(buf, fieldIndent)
			}
		}
		if sa, ok := wrapper.Inner.(*ast.SpaceAfter); ok {
			writeFieldInner(buf, sa.Inner, fieldIndent)
			buf.WriteByte(',')
			writeTrailingCommentsAfterComma(buf, sa.Trivia, fieldIndent)
			return
		}
		writeFieldInner(buf, wrapper.Inner, fieldIndent)
		buf.WriteByte(',')
	case *ast.SpaceAfter:
		writeFieldInner(buf, wrapper.Inner, fieldIndent)
		buf.WriteByte(',')
		writeTrailingCommentsAfterComma(buf, wrapper.Trivia, fieldIndent)
	default:
		writeFieldInner(buf, item, fieldIndent)
		buf.WriteByte(',')
	}
}

func writeFieldInner(buf *strings.Builder, e ast.Expr, indent int) {
	if fe, ok := e.(*ast.FieldExpr); ok {
		formatField(buf, fe.Field, indent)
		return
	}
	Format(e, buf, ParensNotNeeded, NewlinesYes, indent)
}
