package format

import (
	"strings"

	"github.com/basil-lang/basil/internal/ast"
)

// formatList renders §4.C.5.
func formatList(buf *strings.Builder, e *ast.List, indent int) {
	if len(e.Items) == 0 {
		if !hasCommentTrivia(e.TrailingTrivia) {
			buf.WriteString("[]")
			return
		}
		buf.WriteByte('[')
		writeTrailingCommentsAfterComma(buf, e.TrailingTrivia, indent+IndentStep)
		buf.WriteByte('\n')
		writeIndent(buf, indent)
		buf.WriteByte(']')
		return
	}

	buf.WriteByte('[')

	multiline := IsMultiline(e)

	if multiline {
		itemIndent := indent + IndentStep
		for _, item := range e.Items {
			buf.WriteByte('\n')
			writeIndent(buf, itemIndent)
			formatListItem(buf, item, itemIndent)
		}
		writeTrailingCommentsAfterComma(buf, e.TrailingTrivia, itemIndent)
		buf.WriteByte('\n')
		writeIndent(buf, indent)
		buf.WriteByte(']')
		return
	}

	for i, it := range e.Items {
		buf.WriteByte(' ')
		Format(it, buf, ParensNotNeeded, NewlinesYes, indent)
		if i < len(e.Items)-1 {
			buf.WriteByte(',')
		}
	}
	buf.WriteString(" ]")
}

func formatListItem(buf *strings.Builder, item ast.Expr, itemIndent int) {
	switch wrapper := item.(type) {
	case *ast.SpaceBefore:
		for _, t := range wrapper.Trivia {
			if t.Kind == ast.LineComment || t.Kind == ast.DocComment {
				writeCommentLine(buf, t)
				writeIndent(buf, itemIndent)
			}
		}
		if sa, ok := wrapper.Inner.(*ast.SpaceAfter); ok {
			Format(sa.Inner, buf, ParensNotNeeded, NewlinesYes, itemIndent)
			buf.WriteByte(',')
			writeTrailingCommentsAfterComma(buf, sa.Trivia, itemIndent)
			return
		}
		Format(wrapper.Inner, buf, ParensNotNeeded, NewlinesYes, itemIndent)
		buf.WriteByte(',')
	case *ast.SpaceAfter:
		Format(wrapper.Inner, buf, ParensNotNeeded, NewlinesYes, itemIndent)
		buf.WriteByte(',')
		writeTrailingCommentsAfterComma(buf, wrapper.Trivia, itemIndent)
	default:
		Format(item, buf, ParensNotNeeded, NewlinesYes, itemIndent)
		buf.WriteByte(',')
	}
}

// writeTrailingCommentsAfterComma renders comments that migrated past an
// item's trailing comma. It deliberately leaves the cursor right after the
// last comment's text rather than on a fresh line: whatever follows (the
// next item, or the closing bracket) supplies its own single leading
// newline, so duplicating one here would leave a blank line behind.
func writeTrailingCommentsAfterComma(buf *strings.Builder, trivia ast.TriviaList, indent int) {
	for _, t := range trivia {
		if t.Kind == ast.LineComment || t.Kind == ast.DocComment {
			buf.WriteByte('\n')
			writeIndent(buf, indent)
			if t.Kind == ast.DocComment {
				buf.WriteString("##")
			} else {
				buf.WriteByte('#')
			}
			buf.WriteString(t.Text)
		}
	}
}
