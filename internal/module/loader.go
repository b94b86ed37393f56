package module

import (
	"os"
	"sort"

	"github.com/basil-lang/basil/internal/ast"
	bilerrors "github.com/basil-lang/basil/internal/errors"
	"github.com/basil-lang/basil/internal/sid"
)

// depsMsg is the single message shape workers publish to the coordinator:
// the dependency set discovered while parsing one module's header. Workers
// always send exactly one, even when the set is empty — the coordinator's
// pending arithmetic depends on that.
type depsMsg struct {
	deps map[string]struct{}
}

// Worker runs the per-file loading steps described in §4.D. It is safe for
// concurrent use by many goroutines: every field is either immutable after
// construction or (VarStore) independently thread-safe.
type Worker struct {
	resolver *Resolver
	parser   Parser
	canon    Canonicalizer
	cbuild   ConstraintBuilder
	vars     *VarStore
}

// NewWorker builds a Worker sharing the given collaborators and variable
// store across every module it loads.
func NewWorker(resolver *Resolver, parser Parser, canon Canonicalizer, cbuild ConstraintBuilder, vars *VarStore) *Worker {
	return &Worker{resolver: resolver, parser: parser, canon: canon, cbuild: cbuild, vars: vars}
}

// Load runs steps 1-8 for one module, publishing its dependency set to
// depsCh as step 5 and returning the finished Module only once steps 6-8
// have also completed — mirroring the reference implementation's choice
// to let a worker's own join/await resolve only when the whole blocking
// sequence is done, while the deps send happens without waiting on the
// coordinator.
func (w *Worker) Load(moduleName string, depsCh chan<- depsMsg) Module {
	filename := w.resolver.Resolve(moduleName)

	src, err := os.ReadFile(filename)
	if err != nil {
		depsCh <- depsMsg{deps: map[string]struct{}{}}
		return FileProblemModule(filename, err)
	}

	arena := NewArena(filename)
	state := &ParseState{Source: string(src)}

	header, state, err := w.parser.ParseHeader(arena, state)
	if err != nil {
		depsCh <- depsMsg{deps: map[string]struct{}{}}
		return ParsingFailedModule(bilerrors.PAR004, filename, err)
	}

	scope := NewScope()
	deps := make(map[string]struct{}, len(header.Imports))
	for _, imp := range header.Imports {
		deps[imp.Module] = struct{}{}
		for _, ident := range imp.Exposed {
			scope.Insert(ident, ScopeEntry{Symbol: NewSymbol(imp.Module, ident), Region: imp.Span})
		}
	}

	// Step 5: fire-and-forget publish. depsCh is sized so this never blocks.
	depsCh <- depsMsg{deps: deps}

	home := header.Name
	if header.Kind == ast.AppHeader {
		home = appHome
	}

	decls, exposed, constraint, err := processDefinitions(arena, state, home, filename, header, scope, w.vars, w.parser, w.canon, w.cbuild)
	if err != nil {
		// Per §4.F, a body parse (or canonicalization/constraint) failure
		// is currently a precondition failure for the pipeline; we still
		// surface it as a module result rather than panicking, so a
		// caller can choose to treat it as fatal.
		return ParsingFailedModule(bilerrors.PAR001, filename, err)
	}

	return ValidModule(header.Name, decls, exposed, constraint)
}

// appHome is the symbol-prefix sentinel used by anonymous "app" modules,
// per the data model's Home concept (see the Open Questions resolution in
// DESIGN.md for why this core keeps the sentinel rather than introducing
// an explicit Home variant).
const appHome = "."

func declsFromOutput(home, filename string, out *ModuleOutput) []Def {
	decls := make([]Def, 0, len(out.Declarations))
	for i, d := range out.Declarations {
		name := patternName(d.Pattern)
		if name == "" {
			continue
		}
		sym := NewSymbol(home, name)
		vars := make([]TypeVar, 0, 1)
		if tv, ok := out.Lookups[sym]; ok {
			vars = append(vars, tv)
		}
		span := d.Pattern.Position()
		id := sid.NewSID(filename, offsetOf(span.Start), offsetOf(span.End), "def", []int{i})
		decls = append(decls, Def{Symbol: sym, ID: id, Vars: vars})
	}
	return decls
}

// offsetOf turns a line/column position into a single comparable integer
// for sid.NewSID, which wants plain offsets; this core's positions never
// carry a byte offset, only line and column.
func offsetOf(p ast.Pos) int {
	return p.Line*1_000_000 + p.Column
}

func patternName(p ast.Pattern) string {
	switch pt := p.(type) {
	case *ast.IdentPattern:
		return pt.Name
	case *ast.AsPattern:
		return pt.Name
	default:
		return ""
	}
}

// sortedDeps returns the elements of a dependency set in sorted order,
// used whenever a batch of new dependencies is spawned so that each
// batch's contribution to the dependency list is ordered by name.
func sortedDeps(deps map[string]struct{}) []string {
	out := make([]string, 0, len(deps))
	for d := range deps {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
