package format

import (
	"strings"

	"github.com/basil-lang/basil/internal/ast"
)

// formatIf renders §4.C.3: any multiline branch forces the whole
// conditional onto column-aligned if/then/else lines.
func formatIf(buf *strings.Builder, e *ast.If, indent int) {
	multiline := IsMultiline(e.Cond) || IsMultiline(e.Then) || IsMultiline(e.Else)
	retIndent := indent
	if multiline {
		retIndent = indent + IndentStep
	}

	buf.WriteString("if")
	writeIfLeading(buf, e.Cond, multiline, retIndent)
	Format(e.Cond, buf, ParensNotNeeded, NewlinesYes, retIndent)
	writeIfTransition(buf, multiline, indent)

	buf.WriteString("then")
	writeIfLeading(buf, e.Then, multiline, retIndent)
	Format(e.Then, buf, ParensNotNeeded, NewlinesYes, retIndent)
	writeIfTransition(buf, multiline, indent)

	buf.WriteString("else")
	writeIfLeading(buf, e.Else, multiline, retIndent)
	Format(e.Else, buf, ParensNotNeeded, NewlinesYes, retIndent)
}

func writeIfLeading(buf *strings.Builder, branch ast.Expr, multiline bool, retIndent int) {
	if !multiline {
		buf.WriteByte(' ')
		return
	}
	if _, ok := branch.(*ast.SpaceBefore); !ok {
		buf.WriteByte('\n')
		writeIndent(buf, retIndent)
	}
}

func writeIfTransition(buf *strings.Builder, multiline bool, outerIndent int) {
	if !multiline {
		buf.WriteByte(' ')
		return
	}
	buf.WriteByte('\n')
	writeIndent(buf, outerIndent)
}
