package module

import "fmt"

// SolverDriver runs the external solver over a loaded module and its
// dependencies, per §4.G.
type SolverDriver struct {
	solver Solver
}

// NewSolverDriver wraps the external Solver collaborator.
func NewSolverDriver(solver Solver) *SolverDriver {
	return &SolverDriver{solver: solver}
}

// Run builds vars_by_symbol from the primary module and every valid
// dependency, then invokes the solver once per dependency constraint (in
// the coordinator's dependency order) followed by once more on the
// primary module's constraint. Non-Valid dependencies are fatal: a
// FileProblem or ParsingFailed anywhere in the dependency list aborts
// before any solver call is made.
func (d *SolverDriver) Run(primary Module, deps []Module) (Subs, []error, error) {
	if !primary.IsValid() {
		return nil, nil, fmt.Errorf("module: cannot solve a non-Valid primary module: %s", primary)
	}

	varsBySymbol := make(map[Symbol]TypeVar)
	for sym, tv := range primary.ExposedImports {
		varsBySymbol[sym] = tv
	}
	addDeclVars(varsBySymbol, primary.Declarations)

	type depConstraint struct {
		name       string
		constraint Constraint
	}
	var ordered []depConstraint

	for _, dep := range deps {
		if !dep.IsValid() {
			return nil, nil, fmt.Errorf("module: dependency failed to load: %s", dep)
		}
		for sym, tv := range dep.ExposedImports {
			varsBySymbol[sym] = tv
		}
		addDeclVars(varsBySymbol, dep.Declarations)
		ordered = append(ordered, depConstraint{name: dep.Name, constraint: dep.Constraint})
	}

	subsByModule := make(map[string]Subs)
	var problems []error
	var subs Subs

	for _, dc := range ordered {
		if err := d.solver.Solve(varsBySymbol, subsByModule, &problems, &subs, dc.constraint); err != nil {
			return nil, problems, fmt.Errorf("module: solving dependency %s: %w", dc.name, err)
		}
	}

	if err := d.solver.Solve(varsBySymbol, subsByModule, &problems, &subs, primary.Constraint); err != nil {
		return nil, problems, fmt.Errorf("module: solving primary module: %w", err)
	}

	return subs, problems, nil
}

func addDeclVars(varsBySymbol map[Symbol]TypeVar, decls []Def) {
	for _, d := range decls {
		for _, tv := range d.Vars {
			varsBySymbol[d.Symbol] = tv
		}
	}
}
