package format

import (
	"strings"

	"github.com/basil-lang/basil/internal/ast"
)

// formatClosure renders §4.C.2.
func formatClosure(buf *strings.Builder, e *ast.Closure, indent int) {
	buf.WriteByte('\\')

	anyPatternMultiline := false
	for _, p := range e.Patterns {
		if IsPatternMultiline(p) {
			anyPatternMultiline = true
			break
		}
	}
	patternIndent := indent
	if anyPatternMultiline {
		patternIndent = indent + IndentStep
	}

	for i, p := range e.Patterns {
		if i > 0 {
			if anyPatternMultiline {
				buf.WriteByte(',')
				buf.WriteByte('\n')
				writeIndent(buf, patternIndent)
			} else {
				buf.WriteString(", ")
			}
		}
		buf.WriteString(p.String())
	}

	if anyPatternMultiline {
		buf.WriteByte('\n')
		writeIndent(buf, patternIndent)
	} else {
		buf.WriteByte(' ')
	}
	buf.WriteString("->")

	bodyIndent := indent
	if IsMultiline(e.Body) {
		bodyIndent = indent + IndentStep
	}

	if _, ok := e.Body.(*ast.SpaceBefore); !ok {
		buf.WriteByte(' ')
	}
	Format(e.Body, buf, ParensNotNeeded, NewlinesYes, bodyIndent)
}
