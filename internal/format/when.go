package format

import (
	"strings"

	"github.com/basil-lang/basil/internal/ast"
)

// formatWhen renders §4.C.4.
func formatWhen(buf *strings.Builder, e *ast.When, indent int) {
	buf.WriteString("when")

	if IsMultiline(e.Cond) {
		condIndent := indent + IndentStep
		if _, ok := e.Cond.(*ast.SpaceBefore); !ok {
			buf.WriteByte('\n')
			writeIndent(buf, condIndent)
		}
		Format(e.Cond, buf, ParensNotNeeded, NewlinesYes, condIndent)
		buf.WriteByte('\n')
		writeIndent(buf, indent)
	} else {
		buf.WriteByte(' ')
		Format(e.Cond, buf, ParensNotNeeded, NewlinesYes, indent)
		buf.WriteByte(' ')
	}
	buf.WriteString("is\n")

	branchIndent := indent + IndentStep
	bodyIndent := indent + 2*IndentStep

	for i, br := range e.Branches {
		writeIndent(buf, branchIndent)
		formatWhenBranch(buf, br, branchIndent, bodyIndent)
		if i < len(e.Branches)-1 {
			buf.WriteString("\n\n")
		}
	}
}

func formatWhenBranch(buf *strings.Builder, br ast.WhenBranch, branchIndent, bodyIndent int) {
	buf.WriteString(br.Patterns[0].String())

	multiAlt := spansMultipleLines(br.Patterns)
	for _, p := range br.Patterns[1:] {
		if multiAlt {
			buf.WriteByte('\n')
			writeIndent(buf, branchIndent)
			buf.WriteString("| ")
		} else {
			buf.WriteString(" | ")
		}
		buf.WriteString(p.String())
	}

	if br.Guard != nil {
		buf.WriteString(" if ")
		Format(br.Guard, buf, ParensNotNeeded, NewlinesYes, branchIndent)
	}

	buf.WriteString(" ->\n")
	writeIndent(buf, bodyIndent)

	if sb, ok := br.Body.(*ast.SpaceBefore); ok {
		for _, t := range sb.Trivia {
			if t.Kind == ast.LineComment || t.Kind == ast.DocComment {
				writeCommentLine(buf, t)
				writeIndent(buf, bodyIndent)
			}
		}
		Format(sb.Inner, buf, ParensNotNeeded, NewlinesYes, bodyIndent)
		return
	}
	Format(br.Body, buf, ParensNotNeeded, NewlinesYes, bodyIndent)
}
