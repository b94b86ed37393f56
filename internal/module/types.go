package module

import (
	"fmt"

	bilerrors "github.com/basil-lang/basil/internal/errors"
	"github.com/basil-lang/basil/internal/sid"
)

// ModuleError is a structured loader-phase failure, reported through the
// shared error-code taxonomy in internal/errors.
type ModuleError struct {
	Code    string
	Message string
	Path    string
	Cause   error
}

func (e *ModuleError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ModuleError) Unwrap() error { return e.Cause }

// Report renders this error as the repository's canonical structured
// report type, for callers that surface diagnostics over JSON.
func (e *ModuleError) Report() *bilerrors.Report {
	rep := &bilerrors.Report{
		Schema:  "basil.error/v1",
		Code:    e.Code,
		Phase:   "loader",
		Message: e.Message,
		Data:    map[string]any{"path": e.Path},
	}
	if e.Code == bilerrors.LDR001 {
		rep.WithFix("check that the module name matches a file on the import search path", 0.4)
	}
	return rep
}

func fileProblem(path string, cause error) *ModuleError {
	return &ModuleError{Code: bilerrors.LDR001, Message: "module file not found or unreadable", Path: path, Cause: cause}
}

func parseFailure(code, path string, cause error) *ModuleError {
	return &ModuleError{Code: code, Message: "module failed to parse", Path: path, Cause: cause}
}

// Module is the sum type a loader worker produces: Valid, FileProblem, or
// ParsingFailed. Exactly one of the three constructors below is used to
// build any given Module.
type Module struct {
	kind moduleKind

	// Valid
	Name           string // empty for an App (anonymous) module
	Declarations   []Def
	ExposedImports map[Symbol]TypeVar
	Constraint     Constraint

	// FileProblem / ParsingFailed
	Filename string
	Err      *ModuleError
}

type moduleKind int

const (
	kindValid moduleKind = iota
	kindFileProblem
	kindParsingFailed
)

// Def is a canonicalized top-level declaration, named so the solver driver
// can enumerate pattern-bound variables without reaching back into ast.Def.
type Def struct {
	Symbol Symbol
	ID     sid.SID   // stable across reloads of the same file, for incremental callers
	Vars   []TypeVar // every pattern-bound variable this definition introduces (straight + recursive)
}

// ValidModule builds a successfully loaded module.
func ValidModule(name string, decls []Def, exposed map[Symbol]TypeVar, c Constraint) Module {
	return Module{kind: kindValid, Name: name, Declarations: decls, ExposedImports: exposed, Constraint: c}
}

// FileProblemModule builds a module that failed at the file-read stage.
func FileProblemModule(filename string, cause error) Module {
	return Module{kind: kindFileProblem, Filename: filename, Err: fileProblem(filename, cause)}
}

// ParsingFailedModule builds a module that failed to parse, at either the
// header stage (code PAR004) or the body stage (code PAR001, also used for
// canonicalization and constraint failures reported by the definition
// processor).
func ParsingFailedModule(code, filename string, cause error) Module {
	return Module{kind: kindParsingFailed, Filename: filename, Err: parseFailure(code, filename, cause)}
}

func (m Module) IsValid() bool         { return m.kind == kindValid }
func (m Module) IsFileProblem() bool   { return m.kind == kindFileProblem }
func (m Module) IsParsingFailed() bool { return m.kind == kindParsingFailed }

func (m Module) String() string {
	switch m.kind {
	case kindValid:
		name := m.Name
		if name == "" {
			name = "(app)"
		}
		return fmt.Sprintf("Valid(%s, %d decls)", name, len(m.Declarations))
	case kindFileProblem:
		return fmt.Sprintf("FileProblem(%s)", m.Filename)
	case kindParsingFailed:
		return fmt.Sprintf("ParsingFailed(%s)", m.Filename)
	default:
		return "Module(?)"
	}
}
