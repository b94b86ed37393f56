package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/basil-lang/basil/internal/ast"
)

func render(expr ast.Expr) string {
	var buf strings.Builder
	Format(expr, &buf, ParensNotNeeded, NewlinesYes, 0)
	return buf.String()
}

func num(text string) *ast.NumLit { return &ast.NumLit{Text: text} }

func requireNoTrailingWhitespace(t *testing.T, got string) {
	t.Helper()
	for _, line := range strings.Split(got, "\n") {
		require.Falsef(t, strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t"),
			"line has trailing whitespace: %q", line)
	}
}

func TestIfUnchanged(t *testing.T) {
	expr := &ast.If{
		Cond: &ast.Tag{Name: "True"},
		Then: num("1"),
		Else: num("2"),
	}
	require.Equal(t, "if True then 1 else 2", render(expr))
}

func TestCompactListNormalizesSpacing(t *testing.T) {
	expr := &ast.List{Items: []ast.Expr{num("1"), num("2"), num("3")}}
	require.Equal(t, "[ 1, 2, 3 ]", render(expr))
}

func TestListWithMultilineItemExpandsTopLevelOnly(t *testing.T) {
	nested := &ast.List{Items: []ast.Expr{num("2"), num("3")}}
	pipeline := &ast.BinOp{
		Left: &ast.Ident{Name: "a"},
		Op:   "|>",
		Right: ast.NewSpaceBefore(&ast.Ident{Name: "b"}, ast.TriviaList{ast.NewlineTrivia()}),
	}
	expr := &ast.List{Items: []ast.Expr{num("1"), nested, pipeline}}

	got := render(expr)

	require.True(t, IsMultiline(expr), "expected the outer list to be multiline")
	require.False(t, IsMultiline(nested), "expected the nested [2, 3] list to stay compact on its own")

	lines := strings.Split(got, "\n")
	require.Equal(t, "[", lines[0], "expected the list to open on its own line")
	require.Contains(t, got, "\n    1,\n", "expected item 1 on its own line at +4 with a trailing comma")
	require.Contains(t, got, "\n    [ 2, 3 ],\n", "expected the nested list on its own line, still compact")
	require.True(t, strings.HasSuffix(got, "\n]"), "expected the list to close at outer indent, got:\n%s", got)
	requireNoTrailingWhitespace(t, got)
}

func TestWhenBranchesIndentedWithBlankLineBetween(t *testing.T) {
	expr := &ast.When{
		Cond: &ast.Ident{Name: "x"},
		Branches: []ast.WhenBranch{
			{Patterns: []ast.Pattern{&ast.TagPattern{Name: "A"}}, Body: num("1")},
			{Patterns: []ast.Pattern{&ast.TagPattern{Name: "B"}}, Body: num("2")},
		},
	}
	want := "when x is\n    A ->\n        1\n\n    B ->\n        2"
	require.Equal(t, want, render(expr))
}

func TestRecordCompactSpacing(t *testing.T) {
	expr := &ast.Record{Fields: []ast.Expr{
		&ast.FieldExpr{Field: &ast.RequiredField{Name: "x", Value: num("1")}},
		&ast.FieldExpr{Field: &ast.RequiredField{Name: "y", Value: num("2")}},
	}}
	require.Equal(t, "{ x: 1, y: 2 }", render(expr))
}

func TestRecordCommentMigratesBetweenFields(t *testing.T) {
	xField := ast.NewSpaceAfter(
		&ast.FieldExpr{Field: &ast.RequiredField{Name: "x", Value: num("1")}},
		ast.TriviaList{ast.LineCommentTrivia(" hi")},
	)
	yField := &ast.FieldExpr{Field: &ast.RequiredField{Name: "y", Value: num("2")}}
	expr := &ast.Record{Fields: []ast.Expr{xField, yField}}

	got := render(expr)

	require.Contains(t, got, "x: 1,\n", "expected field x to be followed by its comma before the comment")
	require.Contains(t, got, "# hi\n", "expected the trailing comment preserved on its own line")

	idx := strings.Index(got, "# hi")
	yIdx := strings.Index(got, "y: 2")
	require.NotEqual(t, -1, idx)
	require.NotEqual(t, -1, yIdx)
	require.Less(t, idx, yIdx, "expected the comment to appear between x and y, got:\n%s", got)

	requireNoTrailingWhitespace(t, got)
}

func TestEmptyListAndRecord(t *testing.T) {
	require.Equal(t, "[]", render(&ast.List{}))
	require.Equal(t, "{}", render(&ast.Record{}))
}

func TestEmptyListAndRecordWithFloatingComment(t *testing.T) {
	list := &ast.List{TrailingTrivia: ast.TriviaList{ast.LineCommentTrivia(" todo")}}
	require.True(t, IsMultiline(list), "a floating comment must force a multiline render")
	require.Equal(t, "[\n    # todo\n]", render(list))

	record := &ast.Record{TrailingTrivia: ast.TriviaList{ast.LineCommentTrivia(" todo")}}
	require.True(t, IsMultiline(record), "a floating comment must force a multiline render")
	require.Equal(t, "{\n    # todo\n}", render(record))
}

func TestApplyArgumentsInline(t *testing.T) {
	expr := &ast.Apply{
		Head: &ast.Ident{Name: "f"},
		Args: []ast.Expr{num("1"), num("2")},
	}
	require.Equal(t, "f 1 2", render(expr))
}

func TestClosureCompact(t *testing.T) {
	expr := &ast.Closure{
		Patterns: []ast.Pattern{&ast.IdentPattern{Name: "x"}, &ast.IdentPattern{Name: "y"}},
		Body:     &ast.BinOp{Left: &ast.Ident{Name: "x"}, Op: "+", Right: &ast.Ident{Name: "y"}},
	}
	require.Equal(t, `\x, y -> x + y`, render(expr))
}

func TestDefsForcesExactlyOneNewlineWithoutBlankTrivia(t *testing.T) {
	expr := &ast.Defs{
		Definitions: []ast.Def{
			{Pattern: &ast.IdentPattern{Name: "x"}, Value: num("1")},
		},
		Ret: &ast.Ident{Name: "x"},
	}
	require.Equal(t, "x = 1\nx", render(expr))
}

func TestDefsPreservesBlankLineBeforeReturn(t *testing.T) {
	expr := &ast.Defs{
		Definitions: []ast.Def{
			{Pattern: &ast.IdentPattern{Name: "x"}, Value: num("1")},
		},
		Ret: ast.NewSpaceBefore(&ast.Ident{Name: "x"}, ast.TriviaList{ast.NewlineTrivia(), ast.NewlineTrivia()}),
	}
	require.Equal(t, "x = 1\n\nx", render(expr))
}

func TestDefsCollapsesTripleBlankLineToOne(t *testing.T) {
	expr := &ast.Defs{
		Definitions: []ast.Def{
			{Pattern: &ast.IdentPattern{Name: "x"}, Value: num("1")},
		},
		Ret: ast.NewSpaceBefore(&ast.Ident{Name: "x"},
			ast.TriviaList{ast.NewlineTrivia(), ast.NewlineTrivia(), ast.NewlineTrivia(), ast.NewlineTrivia()}),
	}
	require.Equal(t, "x = 1\n\nx", render(expr), "triple blank lines should collapse to one")
}

func TestNoTrailingWhitespaceAcrossConstructs(t *testing.T) {
	exprs := []ast.Expr{
		&ast.If{Cond: &ast.Tag{Name: "True"}, Then: num("1"), Else: num("2")},
		&ast.List{Items: []ast.Expr{num("1"), num("2")}},
		&ast.Record{Fields: []ast.Expr{&ast.FieldExpr{Field: &ast.RequiredField{Name: "x", Value: num("1")}}}},
		&ast.Closure{Patterns: []ast.Pattern{&ast.IdentPattern{Name: "x"}}, Body: &ast.Ident{Name: "x"}},
	}
	for _, e := range exprs {
		requireNoTrailingWhitespace(t, render(e))
	}
}

func TestIndentationIsAlwaysAMultipleOfFour(t *testing.T) {
	expr := &ast.When{
		Cond: &ast.Ident{Name: "x"},
		Branches: []ast.WhenBranch{
			{Patterns: []ast.Pattern{&ast.TagPattern{Name: "A"}}, Body: num("1")},
			{Patterns: []ast.Pattern{&ast.TagPattern{Name: "B"}}, Body: num("2")},
		},
	}
	got := render(expr)
	for _, line := range strings.Split(got, "\n") {
		if line == "" {
			continue
		}
		n := 0
		for n < len(line) && line[n] == ' ' {
			n++
		}
		require.Zerof(t, n%IndentStep, "line %q has an indent of %d spaces, not a multiple of %d", line, n, IndentStep)
	}
}

func TestMultilineAgreementWithNewlineInOutput(t *testing.T) {
	exprs := []ast.Expr{
		&ast.If{Cond: &ast.Tag{Name: "True"}, Then: num("1"), Else: num("2")},
		&ast.List{Items: []ast.Expr{num("1"), num("2")}},
		&ast.List{Items: []ast.Expr{ast.NewSpaceBefore(num("1"), ast.TriviaList{ast.NewlineTrivia()})}},
	}
	for _, e := range exprs {
		multiline := IsMultiline(e)
		hasNewline := strings.Contains(render(e), "\n")
		require.Equalf(t, multiline, hasNewline, "IsMultiline(%T)=%v but output newline-presence=%v", e, multiline, hasNewline)
	}
}
