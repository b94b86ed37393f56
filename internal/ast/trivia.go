package ast

import "strings"

// TriviaKind distinguishes the three things that can appear between tokens.
type TriviaKind int

const (
	// Newline is a bare line break. A run of two or more in sequence marks
	// a blank line the caller may choose to preserve.
	Newline TriviaKind = iota
	// LineComment is a "# ..." comment; its Text excludes the leading "#".
	LineComment
	// DocComment is a "## ..." comment; it behaves like LineComment for
	// layout purposes but is kept distinct so tooling can treat it specially.
	DocComment
)

func (k TriviaKind) String() string {
	switch k {
	case Newline:
		return "Newline"
	case LineComment:
		return "LineComment"
	case DocComment:
		return "DocComment"
	default:
		return "TriviaKind(?)"
	}
}

// Trivia is one item of interleaved whitespace/comment material captured by
// the parser. Comment text never includes the leading "#" or "##".
type Trivia struct {
	Kind TriviaKind
	Text string
}

// NewlineTrivia constructs a bare-newline item.
func NewlineTrivia() Trivia { return Trivia{Kind: Newline} }

// LineCommentTrivia constructs a line-comment item; text excludes the "#".
func LineCommentTrivia(text string) Trivia { return Trivia{Kind: LineComment, Text: text} }

// DocCommentTrivia constructs a doc-comment item; text excludes the "##".
func DocCommentTrivia(text string) Trivia { return Trivia{Kind: DocComment, Text: text} }

// IsComment reports whether t carries comment text (as opposed to a bare
// newline).
func (t Trivia) IsComment() bool { return t.Kind == LineComment || t.Kind == DocComment }

// TriviaList is an ordered sequence of trivia items. The list held by a
// SpaceBefore or SpaceAfter is never empty (NewSpaceBefore/NewSpaceAfter
// panic on an empty list); other holders, such as a List or Record's
// TrailingTrivia, may be empty.
type TriviaList []Trivia

// HasComment reports whether any item in the list carries comment text.
func (ts TriviaList) HasComment() bool {
	for _, t := range ts {
		if t.IsComment() {
			return true
		}
	}
	return false
}

// NewlineRun counts the longest run of consecutive bare-newline items,
// used to detect an "empty line before" (a run of two or more).
func (ts TriviaList) NewlineRun() int {
	best, cur := 0, 0
	for _, t := range ts {
		if t.Kind == Newline {
			cur++
			if cur > best {
				best = cur
			}
		} else {
			cur = 0
		}
	}
	return best
}

// HasBlankLine reports whether the list contains a run of 2+ newlines,
// i.e. an explicit blank line in the source.
func (ts TriviaList) HasBlankLine() bool { return ts.NewlineRun() >= 2 }

// SpaceBefore pairs an expression (or field) with trivia that precedes it.
// The wrapped Inner must not itself be a SpaceBefore: same-type chained
// trivia wrappers are ill-formed and the parser is responsible for
// normalizing them away before construction. Wrapping a SpaceAfter is
// allowed.
type SpaceBefore struct {
	Inner  Expr
	Trivia TriviaList
}

// NewSpaceBefore constructs a SpaceBefore, panicking on empty trivia or a
// chained wrapper (see the cyclic-trivia-wrapper design note).
func NewSpaceBefore(inner Expr, trivia TriviaList) *SpaceBefore {
	if len(trivia) == 0 {
		panic("ast: SpaceBefore requires non-empty trivia")
	}
	if _, ok := inner.(*SpaceBefore); ok {
		panic("ast: chained SpaceBefore wrappers are ill-formed")
	}
	return &SpaceBefore{Inner: inner, Trivia: trivia}
}

func (n *SpaceBefore) exprNode()        {}
func (n *SpaceBefore) Position() Span   { return n.Inner.Position() }
func (n *SpaceBefore) String() string {
	var b strings.Builder
	for _, t := range n.Trivia {
		b.WriteString(triviaString(t))
	}
	b.WriteString(n.Inner.String())
	return b.String()
}

// SpaceAfter pairs an expression (or field) with trivia that follows it.
type SpaceAfter struct {
	Inner  Expr
	Trivia TriviaList
}

// NewSpaceAfter constructs a SpaceAfter, panicking on empty trivia or a
// chained wrapper.
func NewSpaceAfter(inner Expr, trivia TriviaList) *SpaceAfter {
	if len(trivia) == 0 {
		panic("ast: SpaceAfter requires non-empty trivia")
	}
	if _, ok := inner.(*SpaceAfter); ok {
		panic("ast: chained SpaceAfter wrappers are ill-formed")
	}
	return &SpaceAfter{Inner: inner, Trivia: trivia}
}

func (n *SpaceAfter) exprNode()      {}
func (n *SpaceAfter) Position() Span { return n.Inner.Position() }
func (n *SpaceAfter) String() string {
	var b strings.Builder
	b.WriteString(n.Inner.String())
	for _, t := range n.Trivia {
		b.WriteString(triviaString(t))
	}
	return b.String()
}

func triviaString(t Trivia) string {
	switch t.Kind {
	case Newline:
		return "\n"
	case LineComment:
		return "#" + t.Text + "\n"
	case DocComment:
		return "##" + t.Text + "\n"
	default:
		return ""
	}
}

// StripSpaces peels off any SpaceBefore/SpaceAfter wrapper and returns the
// inner expression together with the leading and trailing trivia found, if
// any. This is the common entry point for formatter and canonicalizer code
// that needs to reason about an expression's own shape, ignoring trivia.
func StripSpaces(e Expr) (inner Expr, before, after TriviaList) {
	if sb, ok := e.(*SpaceBefore); ok {
		in, b2, a2 := StripSpaces(sb.Inner)
		return in, append(append(TriviaList{}, sb.Trivia...), b2...), a2
	}
	if sa, ok := e.(*SpaceAfter); ok {
		in, b2, a2 := StripSpaces(sa.Inner)
		return in, b2, append(append(TriviaList{}, a2...), sa.Trivia...)
	}
	return e, nil, nil
}
