package format

import (
	"strings"

	"github.com/basil-lang/basil/internal/ast"
)

// formatBinOp renders §4.C.6. inChain carries the multilineness already
// decided by an enclosing link of the same right-associated chain, so that
// once any link forces expansion the whole chain adopts it.
func formatBinOp(buf *strings.Builder, e *ast.BinOp, inChain bool, parens ParensMode, indent int) {
	Format(e.Left, buf, ParensNotNeeded, NewlinesNo, indent)

	multiline := IsMultiline(e.Left) || IsMultiline(e.Right) || inChain
	if multiline {
		buf.WriteByte('\n')
		writeIndent(buf, indent+IndentStep)
	} else {
		buf.WriteByte(' ')
	}

	buf.WriteString(e.Op)

	// A SpaceBefore right operand positions itself (comment lines and/or a
	// forced newline via its own trivia), so the operator must not also
	// leave a trailing space on its own line waiting for that newline.
	if _, ok := e.Right.(*ast.SpaceBefore); !ok {
		buf.WriteByte(' ')
	}

	if rb, ok := e.Right.(*ast.BinOp); ok {
		formatBinOp(buf, rb, multiline, parens, indent)
	} else {
		Format(e.Right, buf, ParensNotNeeded, NewlinesYes, indent)
	}
}
