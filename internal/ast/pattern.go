package ast

import "strings"

// Pattern is implemented by every pattern variant. The formatter depends
// only on IsPatternMultiline (computed by internal/format from the
// pattern's structure: a SpacedPattern anywhere inside it makes it
// multiline) and on String as the render operation for a compact pattern.
type Pattern interface {
	Node
	patternNode()
}

// IdentPattern binds a single name.
type IdentPattern struct {
	Span Span
	Name string
}

func (n *IdentPattern) patternNode()   {}
func (n *IdentPattern) Position() Span { return n.Span }
func (n *IdentPattern) String() string { return n.Name }

// WildcardPattern is "_".
type WildcardPattern struct {
	Span Span
}

func (n *WildcardPattern) patternNode()   {}
func (n *WildcardPattern) Position() Span { return n.Span }
func (n *WildcardPattern) String() string { return "_" }

// LiteralPattern matches a literal value rendered verbatim (number, string,
// or bool).
type LiteralPattern struct {
	Span Span
	Text string
}

func (n *LiteralPattern) patternNode()   {}
func (n *LiteralPattern) Position() Span { return n.Span }
func (n *LiteralPattern) String() string { return n.Text }

// TagPattern matches a global or private tag, optionally applied to
// argument patterns (e.g. "Some x", "@Wrap y").
type TagPattern struct {
	Span    Span
	Private bool
	Name    string
	Args    []Pattern
}

func (n *TagPattern) patternNode()   {}
func (n *TagPattern) Position() Span { return n.Span }
func (n *TagPattern) String() string {
	name := n.Name
	if n.Private {
		name = "@" + name
	}
	if len(n.Args) == 0 {
		return name
	}
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return name + " " + strings.Join(parts, " ")
}

// ConsPattern is "head :: tail" list-cons destructuring.
type ConsPattern struct {
	Span Span
	Head Pattern
	Tail Pattern
}

func (n *ConsPattern) patternNode()   {}
func (n *ConsPattern) Position() Span { return n.Span }
func (n *ConsPattern) String() string { return n.Head.String() + " :: " + n.Tail.String() }

// ListPattern matches a fixed-length list "[ p1, p2, ... ]".
type ListPattern struct {
	Span  Span
	Items []Pattern
}

func (n *ListPattern) patternNode()   {}
func (n *ListPattern) Position() Span { return n.Span }
func (n *ListPattern) String() string {
	parts := make([]string, len(n.Items))
	for i, p := range n.Items {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// TuplePattern matches "( p1, p2, ... )".
type TuplePattern struct {
	Span  Span
	Items []Pattern
}

func (n *TuplePattern) patternNode()   {}
func (n *TuplePattern) Position() Span { return n.Span }
func (n *TuplePattern) String() string {
	parts := make([]string, len(n.Items))
	for i, p := range n.Items {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// FieldPattern is one entry of a RecordPattern: "name" or "name: pattern".
type FieldPattern struct {
	Span    Span
	Name    string
	Value   Pattern // nil for the bare-name shorthand
}

func (n *FieldPattern) fieldNode()     {}
func (n *FieldPattern) Position() Span { return n.Span }
func (n *FieldPattern) String() string {
	if n.Value == nil {
		return n.Name
	}
	return n.Name + ": " + n.Value.String()
}

// RecordPattern matches "{ f1, f2: p2, ... }".
type RecordPattern struct {
	Span   Span
	Fields []FieldPattern
}

func (n *RecordPattern) patternNode()   {}
func (n *RecordPattern) Position() Span { return n.Span }
func (n *RecordPattern) String() string {
	parts := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		parts[i] = f.String()
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// AsPattern binds a name to the whole of an inner pattern: "pattern as name".
type AsPattern struct {
	Span  Span
	Inner Pattern
	Name  string
}

func (n *AsPattern) patternNode()   {}
func (n *AsPattern) Position() Span { return n.Span }
func (n *AsPattern) String() string { return n.Inner.String() + " as " + n.Name }

// SpacedPattern wraps a pattern with leading/trailing trivia, mirroring
// SpaceBefore/SpaceAfter for expressions. Only one of Before/After is ever
// set by the parser for a given wrapper instance, matching the expression
// trivia wrappers' shape.
type SpacedPattern struct {
	Span   Span
	Inner  Pattern
	Before TriviaList
	After  TriviaList
}

func (n *SpacedPattern) patternNode()   {}
func (n *SpacedPattern) Position() Span { return n.Inner.Position() }
func (n *SpacedPattern) String() string { return n.Inner.String() }

// MalformedPattern is a pattern the parser could not accept.
type MalformedPattern struct {
	Span Span
	Raw  string
}

func (n *MalformedPattern) patternNode()   {}
func (n *MalformedPattern) Position() Span { return n.Span }
func (n *MalformedPattern) String() string { return "" }
