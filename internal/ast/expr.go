package ast

import (
	"strconv"
	"strings"
)

// Expr is implemented by every expression variant, including the two
// trivia wrappers (SpaceBefore, SpaceAfter) defined in trivia.go.
type Expr interface {
	Node
	exprNode()
}

// NumBase distinguishes the written radix of an integer literal. Floats are
// always Decimal.
type NumBase int

const (
	Decimal NumBase = iota
	Hex
	Octal
	Binary
)

func (b NumBase) prefix() string {
	switch b {
	case Hex:
		return "0x"
	case Octal:
		return "0o"
	case Binary:
		return "0b"
	default:
		return ""
	}
}

// NumLit is a numeric literal: decimal, float, or a non-decimal integer
// carrying an explicit base prefix and optional sign.
type NumLit struct {
	Span     Span
	Base     NumBase
	Negative bool
	IsFloat  bool
	Text     string // digit text verbatim, no sign or prefix
}

func (n *NumLit) exprNode()      {}
func (n *NumLit) Position() Span { return n.Span }
func (n *NumLit) String() string {
	sign := ""
	if n.Negative {
		sign = "-"
	}
	return sign + n.Base.prefix() + n.Text
}

// Ident is a (possibly module-qualified) lowercase identifier reference.
type Ident struct {
	Span   Span
	Module string // empty when unqualified
	Name   string
}

func (n *Ident) exprNode()      {}
func (n *Ident) Position() Span { return n.Span }
func (n *Ident) String() string {
	if n.Module != "" {
		return n.Module + "." + n.Name
	}
	return n.Name
}

// Tag is a global (capitalized) or private (leading '@') tag constructor.
type Tag struct {
	Span    Span
	Private bool
	Name    string
}

func (n *Tag) exprNode()      {}
func (n *Tag) Position() Span { return n.Span }
func (n *Tag) String() string {
	if n.Private {
		return "@" + n.Name
	}
	return n.Name
}

// StrSegmentKind tags the kind of content inside an interpolated or block
// string segment.
type StrSegmentKind int

const (
	SegPlain StrSegmentKind = iota
	SegUnicodeEscape
	SegCharEscape
	SegInterp
)

// StrSegment is one piece of an interpolated-line or block-string line.
type StrSegment struct {
	Kind   StrSegmentKind
	Text   string // raw plaintext, or hex digits for SegUnicodeEscape
	Escape byte   // escaped character for SegCharEscape (e.g. 'n', 't', '"')
	Interp Expr   // for SegInterp; rendered with ParensNotNeeded, NewlinesNo
}

// PlainStr is a single-line string with no interpolation or escapes beyond
// what is already folded into Text.
type PlainStr struct {
	Span Span
	Text string
}

func (n *PlainStr) exprNode()      {}
func (n *PlainStr) Position() Span { return n.Span }
func (n *PlainStr) String() string { return `"` + n.Text + `"` }

// InterpStr is a single-line string containing one or more interpolated
// segments.
type InterpStr struct {
	Span     Span
	Segments []StrSegment
}

func (n *InterpStr) exprNode()      {}
func (n *InterpStr) Position() Span { return n.Span }
func (n *InterpStr) String() string {
	var b strings.Builder
	b.WriteByte('"')
	for _, seg := range n.Segments {
		writeSegment(&b, seg)
	}
	b.WriteByte('"')
	return b.String()
}

// BlockStr is a triple-quoted string made of one or more segment-lines,
// each of which is itself a sequence of segments.
type BlockStr struct {
	Span  Span
	Lines [][]StrSegment
}

func (n *BlockStr) exprNode()      {}
func (n *BlockStr) Position() Span { return n.Span }
func (n *BlockStr) String() string {
	var b strings.Builder
	b.WriteString(`"""`)
	for i, line := range n.Lines {
		if len(n.Lines) > 1 {
			if i > 0 {
				b.WriteByte('\n')
			}
		}
		for _, seg := range line {
			writeSegment(&b, seg)
		}
	}
	b.WriteString(`"""`)
	return b.String()
}

func writeSegment(b *strings.Builder, seg StrSegment) {
	switch seg.Kind {
	case SegPlain:
		b.WriteString(seg.Text)
	case SegUnicodeEscape:
		b.WriteString(`\u(` + seg.Text + `)`)
	case SegCharEscape:
		b.WriteByte('\\')
		b.WriteByte(seg.Escape)
	case SegInterp:
		b.WriteString(`\(`)
		if seg.Interp != nil {
			b.WriteString(seg.Interp.String())
		}
		b.WriteByte(')')
	}
}

// List is an ordered sequence of located items. A SpaceAfter wrapping the
// last item carries comments that trail that item; TrailingTrivia carries
// comments that float after every item (or, when Items is empty, inside
// the brackets themselves) with nothing else to attach to.
type List struct {
	Span           Span
	Items          []Expr
	TrailingTrivia TriviaList
}

func (n *List) exprNode()      {}
func (n *List) Position() Span { return n.Span }
func (n *List) String() string {
	parts := make([]string, len(n.Items))
	for i, it := range n.Items {
		parts[i] = it.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Field is implemented by the record-field variants.
type Field interface {
	Node
	fieldNode()
}

// RequiredField is a "name : expr" record field.
type RequiredField struct {
	Span  Span
	Name  string
	Value Expr
}

func (n *RequiredField) fieldNode()     {}
func (n *RequiredField) Position() Span { return n.Span }
func (n *RequiredField) String() string { return n.Name + " : " + n.Value.String() }

// OptionalField is a "name ? expr" record field.
type OptionalField struct {
	Span  Span
	Name  string
	Value Expr
}

func (n *OptionalField) fieldNode()     {}
func (n *OptionalField) Position() Span { return n.Span }
func (n *OptionalField) String() string { return n.Name + " ? " + n.Value.String() }

// LabelOnlyField is a bare "name" record field (shorthand for name : name).
type LabelOnlyField struct {
	Span Span
	Name string
}

func (n *LabelOnlyField) fieldNode()     {}
func (n *LabelOnlyField) Position() Span { return n.Span }
func (n *LabelOnlyField) String() string { return n.Name }

// MalformedField is a field the parser could not make sense of; it is
// carried as raw text and renders as nothing.
type MalformedField struct {
	Span Span
	Raw  string
}

func (n *MalformedField) fieldNode()     {}
func (n *MalformedField) Position() Span { return n.Span }
func (n *MalformedField) String() string { return "" }

// FieldExpr adapts a Field so it can additionally be carried as a bare Expr
// inside a SpaceBefore/SpaceAfter wrapper, per the data model's statement
// that fields "may themselves be wrapped". It simply forwards to Field.
type FieldExpr struct {
	Field Field
}

func (n *FieldExpr) exprNode()      {}
func (n *FieldExpr) Position() Span { return n.Field.Position() }
func (n *FieldExpr) String() string { return n.Field.String() }

// Record is an unordered set of named fields with an optional update base
// ("{ base & field: value }"). TrailingTrivia carries comments that float
// after every field (or, when Fields is empty, inside the braces
// themselves) with nothing else to attach to.
type Record struct {
	Span           Span
	Update         Expr // nil when absent
	Fields         []Expr
	TrailingTrivia TriviaList
}

func (n *Record) exprNode()      {}
func (n *Record) Position() Span { return n.Span }
func (n *Record) String() string {
	parts := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		parts[i] = f.String()
	}
	body := strings.Join(parts, ", ")
	if n.Update != nil {
		return "{ " + n.Update.String() + " & " + body + " }"
	}
	if body == "" {
		return "{}"
	}
	return "{ " + body + " }"
}

// FieldAccess is "base.field".
type FieldAccess struct {
	Span  Span
	Base  Expr
	Field string
}

func (n *FieldAccess) exprNode()      {}
func (n *FieldAccess) Position() Span { return n.Span }
func (n *FieldAccess) String() string { return n.Base.String() + "." + n.Field }

// Accessor is a bare ".field" accessor function.
type Accessor struct {
	Span  Span
	Field string
}

func (n *Accessor) exprNode()      {}
func (n *Accessor) Position() Span { return n.Span }
func (n *Accessor) String() string { return "." + n.Field }

// Apply is a function application: a head expression plus a non-empty
// ordered argument list.
type Apply struct {
	Span Span
	Head Expr
	Args []Expr
}

func (n *Apply) exprNode()      {}
func (n *Apply) Position() Span { return n.Span }
func (n *Apply) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return n.Head.String() + " " + strings.Join(parts, " ")
}

// Closure is a lambda: a non-empty ordered pattern list plus a body.
type Closure struct {
	Span     Span
	Patterns []Pattern
	Body     Expr
}

func (n *Closure) exprNode()      {}
func (n *Closure) Position() Span { return n.Span }
func (n *Closure) String() string {
	parts := make([]string, len(n.Patterns))
	for i, p := range n.Patterns {
		parts[i] = p.String()
	}
	return `\` + strings.Join(parts, ", ") + " -> " + n.Body.String()
}

// Def is one binding in a let-form: "pattern = value".
type Def struct {
	Span    Span
	Pattern Pattern
	Value   Expr
}

// Defs is a let-form: a non-empty ordered sequence of definitions plus a
// return expression.
type Defs struct {
	Span        Span
	Definitions []Def
	Ret         Expr
}

func (n *Defs) exprNode()      {}
func (n *Defs) Position() Span { return n.Span }
func (n *Defs) String() string {
	var b strings.Builder
	for _, d := range n.Definitions {
		b.WriteString(d.Pattern.String())
		b.WriteString(" = ")
		b.WriteString(d.Value.String())
		b.WriteByte('\n')
	}
	b.WriteString(n.Ret.String())
	return b.String()
}

// If is a conditional: condition, then-branch, else-branch.
type If struct {
	Span Span
	Cond Expr
	Then Expr
	Else Expr
}

func (n *If) exprNode()      {}
func (n *If) Position() Span { return n.Span }
func (n *If) String() string {
	return "if " + n.Cond.String() + " then " + n.Then.String() + " else " + n.Else.String()
}

// WhenBranch is one alternative of a pattern-match: a non-empty pattern
// list, an optional guard, and a body.
type WhenBranch struct {
	Span     Span
	Patterns []Pattern
	Guard    Expr // nil when absent
	Body     Expr
}

// When is a pattern-match: scrutinee plus a non-empty ordered branch list.
type When struct {
	Span     Span
	Cond     Expr
	Branches []WhenBranch
}

func (n *When) exprNode()      {}
func (n *When) Position() Span { return n.Span }
func (n *When) String() string {
	var b strings.Builder
	b.WriteString("when ")
	b.WriteString(n.Cond.String())
	b.WriteString(" is\n")
	for _, br := range n.Branches {
		parts := make([]string, len(br.Patterns))
		for i, p := range br.Patterns {
			parts[i] = p.String()
		}
		b.WriteString(strings.Join(parts, " | "))
		if br.Guard != nil {
			b.WriteString(" if ")
			b.WriteString(br.Guard.String())
		}
		b.WriteString(" -> ")
		b.WriteString(br.Body.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// BinOp is a binary operator application: left, operator token, right.
// Right-associated chains (a + b + c parses as a + (b + c)) are what makes
// the multiline predicate propagate along the right spine.
type BinOp struct {
	Span  Span
	Left  Expr
	Op    string
	Right Expr
}

func (n *BinOp) exprNode()      {}
func (n *BinOp) Position() Span { return n.Span }
func (n *BinOp) String() string { return n.Left.String() + " " + n.Op + " " + n.Right.String() }

// UnaryOp is "-" (Negate) or "!" (Not) applied to an operand.
type UnaryOp struct {
	Span    Span
	Op      string
	Operand Expr
}

func (n *UnaryOp) exprNode()      {}
func (n *UnaryOp) Position() Span { return n.Span }
func (n *UnaryOp) String() string { return n.Op + n.Operand.String() }

// ParensAround is an explicit "( inner )" the parser chose to keep.
type ParensAround struct {
	Span  Span
	Inner Expr
}

func (n *ParensAround) exprNode()      {}
func (n *ParensAround) Position() Span { return n.Span }
func (n *ParensAround) String() string { return "(" + n.Inner.String() + ")" }

// Nested is a transparent wrapper the parser uses to record that an
// expression was produced via a nested grammar production; it carries no
// syntax of its own and always delegates to Inner.
type Nested struct {
	Span  Span
	Inner Expr
}

func (n *Nested) exprNode()      {}
func (n *Nested) Position() Span { return n.Span }
func (n *Nested) String() string { return n.Inner.String() }

// PrecedenceConflict marks an expression the parser accepted despite an
// ambiguous operator precedence; it still carries a best-effort Inner
// expression to delegate rendering to.
type PrecedenceConflict struct {
	Span  Span
	Inner Expr
}

func (n *PrecedenceConflict) exprNode()      {}
func (n *PrecedenceConflict) Position() Span { return n.Span }
func (n *PrecedenceConflict) String() string { return n.Inner.String() }

// MalformedIdent is an identifier the parser could not accept; it renders
// as nothing.
type MalformedIdent struct {
	Span Span
	Text string
}

func (n *MalformedIdent) exprNode()      {}
func (n *MalformedIdent) Position() Span { return n.Span }
func (n *MalformedIdent) String() string { return "" }

// MalformedClosure is a closure the parser could not fully accept; it
// renders as nothing.
type MalformedClosure struct {
	Span Span
}

func (n *MalformedClosure) exprNode()      {}
func (n *MalformedClosure) Position() Span { return n.Span }
func (n *MalformedClosure) String() string { return "" }

// Unquote helpers used by the lexer/parser when building numeric literals.

// ParseIntBase maps a lexed prefix ("0x","0o","0b","") to a NumBase.
func ParseIntBase(prefix string) NumBase {
	switch prefix {
	case "0x":
		return Hex
	case "0o":
		return Octal
	case "0b":
		return Binary
	default:
		return Decimal
	}
}

// QuoteCharEscape renders the canonical escape letter for a decoded
// control character, for a parser that rebuilds StrSegment.Escape from a
// rune it has already validated (the lexer itself leaves escapes
// undecoded).
func QuoteCharEscape(r rune) byte {
	switch r {
	case '\n':
		return 'n'
	case '\t':
		return 't'
	case '\r':
		return 'r'
	case '"':
		return '"'
	case '\\':
		return '\\'
	default:
		return byte(r)
	}
}

// FormatUnicodeHex renders a rune as the hex digits used inside \u(...).
func FormatUnicodeHex(r rune) string {
	return strconv.FormatInt(int64(r), 16)
}
