package errors

import (
	"encoding/json"
	"errors"

	"github.com/basil-lang/basil/internal/ast"
)

// Report is the canonical structured error type for Basil.
// All error builders should return *Report, which can be wrapped as ReportError.
type Report struct {
	Schema  string         `json:"schema"`         // Always "basil.error/v1"
	Code    string         `json:"code"`           // Error code (PAR001, LDR001, etc.)
	Phase   string         `json:"phase"`          // Phase: "parser", "loader", "link", "typecheck", etc.
	Message string         `json:"message"`        // Human-readable message
	Span    *ast.Span      `json:"span,omitempty"` // Source location (optional)
	Data    map[string]any `json:"data,omitempty"` // Structured data (sorted keys)
	Fix     *Fix           `json:"fix,omitempty"`  // Suggested fix (optional)
}

// Fix is a suggested remediation attached to a Report. Confidence is a
// rough 0-1 score a caller can use to decide whether to surface the
// suggestion as an actionable quick-fix or as plain hint text.
type Fix struct {
	Suggestion string  `json:"suggestion"`
	Confidence float64 `json:"confidence"`
}

// WithFix attaches a suggested remediation to the report and returns it,
// so callers can chain it onto a builder without an intermediate variable.
func (r *Report) WithFix(suggestion string, confidence float64) *Report {
	r.Fix = &Fix{Suggestion: suggestion, Confidence: confidence}
	return r
}

// WithSpan attaches a source span to the report.
func (r *Report) WithSpan(span ast.Span) *Report {
	r.Span = &span
	return r
}

// WithData merges a key/value pair into the report's structured data,
// initializing the map on first use.
func (r *Report) WithData(key string, value any) *Report {
	if r.Data == nil {
		r.Data = map[string]any{}
	}
	r.Data[key] = value
	return r
}

// ReportError wraps a Report as an error
// This allows structured reports to survive errors.As() unwrapping
type ReportError struct {
	Rep *Report
}

// Error implements the error interface
func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown error"
	}
	return e.Rep.Code + ": " + e.Rep.Message
}

// AsReport attempts to extract a Report from an error chain
// Returns the Report and true if found, nil and false otherwise
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// WrapReport wraps a Report as a ReportError
// Call sites should return errors.WrapReport(report) to preserve structure
func WrapReport(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// ToJSON converts a Report to JSON (deterministic: top-level keys in struct
// field order, Data keys sorted)
func (r *Report) ToJSON(compact bool) (string, error) {
	var data []byte
	var err error

	if compact {
		data, err = json.Marshal(r)
	} else {
		data, err = json.MarshalIndent(r, "", "  ")
	}

	if err != nil {
		return "", err
	}
	return string(data), nil
}

// NewGeneric creates a generic error report for runtime errors
func NewGeneric(phase string, err error) *Report {
	return &Report{
		Schema:  "basil.error/v1",
		Code:    "RUNTIME",
		Phase:   phase,
		Message: err.Error(),
		Data:    map[string]any{},
	}
}
