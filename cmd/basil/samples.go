package main

import "github.com/basil-lang/basil/internal/ast"

// sampleExpressions builds a handful of hand-constructed ASTs that exercise
// the formatter's compact and expanded layouts, for "basil fmt-demo".
func sampleExpressions() []ast.Expr {
	return []ast.Expr{
		&ast.If{
			Cond: &ast.Tag{Name: "True"},
			Then: &ast.NumLit{Text: "1"},
			Else: &ast.NumLit{Text: "2"},
		},
		&ast.List{Items: []ast.Expr{
			&ast.NumLit{Text: "1"},
			&ast.NumLit{Text: "2"},
			&ast.NumLit{Text: "3"},
		}},
		&ast.Record{Fields: []ast.Expr{
			&ast.FieldExpr{Field: &ast.RequiredField{Name: "x", Value: &ast.NumLit{Text: "1"}}},
			&ast.FieldExpr{Field: &ast.RequiredField{Name: "y", Value: &ast.NumLit{Text: "2"}}},
		}},
		&ast.Closure{
			Patterns: []ast.Pattern{&ast.IdentPattern{Name: "x"}},
			Body:     &ast.BinOp{Left: &ast.Ident{Name: "x"}, Op: "+", Right: &ast.NumLit{Text: "1"}},
		},
		&ast.When{
			Cond: &ast.Ident{Name: "x"},
			Branches: []ast.WhenBranch{
				{Patterns: []ast.Pattern{&ast.TagPattern{Name: "Some", Args: []ast.Pattern{&ast.IdentPattern{Name: "v"}}}}, Body: &ast.Ident{Name: "v"}},
				{Patterns: []ast.Pattern{&ast.TagPattern{Name: "None"}}, Body: &ast.NumLit{Text: "0"}},
			},
		},
	}
}
