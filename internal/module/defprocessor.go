package module

import (
	"fmt"

	"github.com/basil-lang/basil/internal/ast"
)

// processDefinitions is component F, the definition processor: single-
// threaded per module, it parses the module body, canonicalizes it
// against scope, and builds the module-level constraint. It is called
// from inside Worker.Load once the header has been handled and the
// dependency set has been published.
func processDefinitions(arena *Arena, state *ParseState, home, filename string, header *ast.Header, scope *Scope, vars *VarStore, parser Parser, canon Canonicalizer, cbuild ConstraintBuilder) ([]Def, map[Symbol]TypeVar, Constraint, error) {
	defs, _, err := parser.ParseDefs(arena, state)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("parsing module body: %w", err)
	}

	out, err := canon.Canonicalize(arena, defs, home, header.Exposes, scope, vars)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("canonicalizing module: %w", err)
	}

	constraint, err := cbuild.ConstrainModule(home, out.Declarations, out.Lookups)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("building module constraint: %w", err)
	}

	return declsFromOutput(home, filename, out), out.ExposedImports, constraint, nil
}
