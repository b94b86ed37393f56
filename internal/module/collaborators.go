package module

import "github.com/basil-lang/basil/internal/ast"

// Arena stands in for the bump-allocated region a real parser would use to
// own one file's AST nodes. This core never inspects its contents; it only
// threads the pointer identity through so a Parser implementation can tie
// node lifetime to one parse, per the ownership model: arenas are created,
// consumed and destroyed inside a single worker and never cross a worker
// boundary.
type Arena struct {
	File string
}

// NewArena allocates a fresh arena for one file.
func NewArena(file string) *Arena { return &Arena{File: file} }

// ParseState is the opaque cursor threaded between a header parse and the
// following body parse. A real Parser implementation owns its shape; the
// core only passes it through unexamined.
type ParseState struct {
	Source string
	Offset int
}

// Symbol is a fully qualified identifier "module.name".
type Symbol string

// NewSymbol builds a Symbol from a home module name and a local name.
func NewSymbol(home, name string) Symbol { return Symbol(home + "." + name) }

// ScopeEntry is what a Scope maps an unqualified identifier to: its fully
// qualified symbol plus the source region of the import (or definition)
// that introduced it.
type ScopeEntry struct {
	Symbol Symbol
	Region ast.Span
}

// Scope is a mapping from unqualified identifier to (symbol, region). The
// module loader seeds it from import headers; the canonicalizer extends it
// with the module's own top-level definitions.
type Scope struct {
	entries map[string]ScopeEntry
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{entries: make(map[string]ScopeEntry)}
}

// Insert records ident → entry, overwriting any prior binding (later
// imports/definitions shadow earlier ones, matching single-threaded,
// per-module scope construction).
func (s *Scope) Insert(ident string, entry ScopeEntry) {
	s.entries[ident] = entry
}

// Lookup returns the entry bound to ident, if any.
func (s *Scope) Lookup(ident string) (ScopeEntry, bool) {
	e, ok := s.entries[ident]
	return e, ok
}

// Constraint is the opaque type-system obligation produced by constraining
// a module's declarations. Its structure is owned by the external solver;
// this core only carries it from the constraint builder to the solver.
type Constraint interface {
	constraintNode()
}

// Subs is the opaque substitution map produced and consumed across solver
// invocations.
type Subs map[Symbol]string

// ModuleOutput is what canonicalization produces: the module's
// declarations, the type variables assigned to its exposed imports, and
// the set of free-variable lookups the constraint builder needs.
type ModuleOutput struct {
	Declarations   []ast.Def
	ExposedImports map[Symbol]TypeVar
	Lookups        map[Symbol]TypeVar
}

// TypeVar is a handle into the shared VarStore.
type TypeVar uint64

// Parser is the external collaborator that turns source text into AST
// nodes. Its header/body split lets the loader emit the dependency set
// (from the header) before paying for the (potentially much larger) body
// parse.
type Parser interface {
	ParseHeader(arena *Arena, state *ParseState) (*ast.Header, *ParseState, error)
	ParseDefs(arena *Arena, state *ParseState) ([]ast.Def, *ParseState, error)
}

// Canonicalizer resolves identifiers against scope into fully qualified
// symbols and builds the IR the solver consumes.
type Canonicalizer interface {
	Canonicalize(arena *Arena, defs []ast.Def, home string, exposes []string, scope *Scope, vars *VarStore) (*ModuleOutput, error)
}

// ConstraintBuilder turns a module's canonical declarations into a single
// Constraint.
type ConstraintBuilder interface {
	ConstrainModule(home string, declarations []ast.Def, lookups map[Symbol]TypeVar) (Constraint, error)
}

// Solver is the external type-constraint solver. Problems accumulates
// non-fatal solve errors across invocations; subs accumulates the
// resulting substitution.
type Solver interface {
	Solve(varsBySymbol map[Symbol]TypeVar, subsByModule map[string]Subs, problems *[]error, subs *Subs, c Constraint) error
}
