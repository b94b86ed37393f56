package main

import (
	"errors"

	"github.com/basil-lang/basil/internal/ast"
	"github.com/basil-lang/basil/internal/module"
)

var errNoParser = errors.New("basil: no Parser implementation is wired into this build")

type unimplementedParser struct{}

func (unimplementedParser) ParseHeader(_ *module.Arena, _ *module.ParseState) (*ast.Header, *module.ParseState, error) {
	return nil, nil, errNoParser
}

func (unimplementedParser) ParseDefs(_ *module.Arena, _ *module.ParseState) ([]ast.Def, *module.ParseState, error) {
	return nil, nil, errNoParser
}

type unimplementedCanonicalizer struct{}

func (unimplementedCanonicalizer) Canonicalize(_ *module.Arena, _ []ast.Def, _ string, _ []string, _ *module.Scope, _ *module.VarStore) (*module.ModuleOutput, error) {
	return nil, errNoParser
}

type unimplementedConstraintBuilder struct{}

func (unimplementedConstraintBuilder) ConstrainModule(_ string, _ []ast.Def, _ map[module.Symbol]module.TypeVar) (module.Constraint, error) {
	return nil, errNoParser
}
