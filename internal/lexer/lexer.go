package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/basil-lang/basil/internal/ast"
)

// Lexer tokenizes source text into the token stream the parser consumes.
// Comments and blank lines are never discarded: NextToken accumulates them
// as pending trivia, which the caller drains with TakeTrivia and attaches
// to the surrounding expression as a SpaceBefore/SpaceAfter wrapper. This
// is what lets the formatter reproduce every comment byte-for-byte.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
	line         int
	column       int
	file         string

	pending ast.TriviaList
}

// New creates a new Lexer over input, tagging every token's position with
// filename.
func New(input string, filename string) *Lexer {
	l := &Lexer{input: input, file: filename, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
	} else {
		var size int
		l.ch, size = utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.position = l.readPosition
		l.readPosition += size
		l.column++
		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	ch, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return ch
}

func (l *Lexer) peekAhead(n int) rune {
	pos := l.readPosition
	for i := 1; i < n; i++ {
		if pos >= len(l.input) {
			return 0
		}
		_, size := utf8.DecodeRuneInString(l.input[pos:])
		pos += size
	}
	if pos >= len(l.input) {
		return 0
	}
	ch, _ := utf8.DecodeRuneInString(l.input[pos:])
	return ch
}

// TakeTrivia drains and returns whatever trivia has accumulated since the
// last call, or nil if none has.
func (l *Lexer) TakeTrivia() ast.TriviaList {
	if len(l.pending) == 0 {
		return nil
	}
	t := l.pending
	l.pending = nil
	return t
}

// NextToken returns the next non-trivia token, having first accumulated
// any comments/newlines skipped along the way into pending trivia.
func (l *Lexer) NextToken() Token {
	l.skipTrivia()

	line := l.line
	column := l.column
	var tok Token

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = NewToken(EQ, "==", line, column, l.file)
		} else {
			tok = NewToken(ASSIGN, "=", line, column, l.file)
		}
	case '+':
		tok = NewToken(PLUS, "+", line, column, l.file)
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			tok = NewToken(ARROW, "->", line, column, l.file)
		} else {
			tok = NewToken(MINUS, "-", line, column, l.file)
		}
	case '^':
		tok = NewToken(CARET, "^", line, column, l.file)
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = NewToken(NEQ, "!=", line, column, l.file)
		} else {
			tok = NewToken(BANG, "!", line, column, l.file)
		}
	case '*':
		tok = NewToken(STAR, "*", line, column, l.file)
	case '/':
		if l.peekChar() == '/' {
			l.readChar()
			tok = NewToken(DSLASH, "//", line, column, l.file)
		} else {
			tok = NewToken(SLASH, "/", line, column, l.file)
		}
	case '%':
		if l.peekChar() == '%' {
			l.readChar()
			tok = NewToken(DPERCENT, "%%", line, column, l.file)
		} else {
			tok = NewToken(PERCENT, "%", line, column, l.file)
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = NewToken(LTE, "<=", line, column, l.file)
		} else {
			tok = NewToken(LT, "<", line, column, l.file)
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = NewToken(GTE, ">=", line, column, l.file)
		} else {
			tok = NewToken(GT, ">", line, column, l.file)
		}
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			tok = NewToken(AND, "&&", line, column, l.file)
		} else {
			tok = NewToken(AMP, "&", line, column, l.file)
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			tok = NewToken(OR, "||", line, column, l.file)
		} else if l.peekChar() == '>' {
			l.readChar()
			tok = NewToken(PIPE_GT, "|>", line, column, l.file)
		} else {
			tok = NewToken(ILLEGAL, "|", line, column, l.file)
		}
	case ':':
		if l.peekChar() == ':' {
			l.readChar()
			tok = NewToken(DCOLON, "::", line, column, l.file)
		} else {
			tok = NewToken(COLON, ":", line, column, l.file)
		}
	case '.':
		tok = NewToken(DOT, ".", line, column, l.file)
	case ',':
		tok = NewToken(COMMA, ",", line, column, l.file)
	case '(':
		tok = NewToken(LPAREN, "(", line, column, l.file)
	case ')':
		tok = NewToken(RPAREN, ")", line, column, l.file)
	case '{':
		tok = NewToken(LBRACE, "{", line, column, l.file)
	case '}':
		tok = NewToken(RBRACE, "}", line, column, l.file)
	case '[':
		tok = NewToken(LBRACKET, "[", line, column, l.file)
	case ']':
		tok = NewToken(RBRACKET, "]", line, column, l.file)
	case '?':
		tok = NewToken(QUESTION, "?", line, column, l.file)
	case '@':
		tok = NewToken(AT, "@", line, column, l.file)
	case '\\':
		tok = NewToken(BACKSLASH, "\\", line, column, l.file)
	case '"':
		if l.peekChar() == '"' && l.peekAhead(2) == '"' {
			tok.Type = STRING
			tok.Literal = l.readBlockString()
		} else {
			tok.Type = STRING
			tok.Literal = l.readString()
		}
		tok.Line, tok.Column, tok.File = line, column, l.file
		return tok
	case 0:
		tok = NewToken(EOF, "", line, column, l.file)
		return tok
	default:
		if isLetter(l.ch) {
			literal := l.readIdentifier()
			tok = NewToken(LookupIdent(literal), literal, line, column, l.file)
			return tok
		} else if isDigit(l.ch) {
			literal, isFloat := l.readNumber()
			if isFloat {
				tok = NewToken(FLOAT, literal, line, column, l.file)
			} else {
				tok = NewToken(INT, literal, line, column, l.file)
			}
			return tok
		}
		tok = NewToken(ILLEGAL, string(l.ch), line, column, l.file)
	}

	l.readChar()
	return tok
}

// skipTrivia advances past runs of whitespace and "#"/"##" comments,
// recording each newline and comment into l.pending in source order.
func (l *Lexer) skipTrivia() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r':
			l.readChar()
		case l.ch == '\n':
			l.pending = append(l.pending, ast.NewlineTrivia())
			l.readChar()
		case l.ch == '#':
			l.pending = append(l.pending, l.readComment())
		default:
			return
		}
	}
}

// readComment consumes a "#" or "##" comment up to (not including) the
// terminating newline and returns the corresponding trivia item.
func (l *Lexer) readComment() ast.Trivia {
	doc := l.peekChar() == '#'
	l.readChar() // consume '#'
	if doc {
		l.readChar() // consume second '#'
	}
	start := l.position
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	text := l.input[start:l.position]
	if doc {
		return ast.DocCommentTrivia(text)
	}
	return ast.LineCommentTrivia(text)
}

// readString reads a plain or interpolation-bearing single-line string
// body (the raw text between the quotes, escapes left undecoded so the
// parser can split it into segments per §4.C's interpolation rules).
func (l *Lexer) readString() string {
	var out strings.Builder
	l.readChar() // skip opening quote
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\\' {
			out.WriteRune(l.ch)
			l.readChar()
			if l.ch != 0 {
				out.WriteRune(l.ch)
				l.readChar()
			}
			continue
		}
		out.WriteRune(l.ch)
		l.readChar()
	}
	l.readChar() // skip closing quote
	return out.String()
}

// readBlockString reads a triple-quoted string body, raw, between the
// opening and closing """ delimiters.
func (l *Lexer) readBlockString() string {
	var out strings.Builder
	l.readChar()
	l.readChar()
	l.readChar()
	for {
		if l.ch == '"' && l.peekChar() == '"' && l.peekAhead(2) == '"' {
			l.readChar()
			l.readChar()
			l.readChar()
			break
		}
		if l.ch == 0 {
			break
		}
		out.WriteRune(l.ch)
		l.readChar()
	}
	return out.String()
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' || l.ch == '\'' {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readNumber() (string, bool) {
	position := l.position
	isFloat := false

	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'o' || l.peekChar() == 'b') {
		l.readChar() // consume '0'
		l.readChar() // consume base letter
		for isDigit(l.ch) || strings.ContainsRune("abcdefABCDEF", l.ch) {
			l.readChar()
		}
		return l.input[position:l.position], false
	}

	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		isFloat = true
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		isFloat = true
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[position:l.position], isFloat
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isDigit(ch rune) bool {
	return unicode.IsDigit(ch)
}

// Error represents a lexer error.
type Error struct {
	Message string
	Line    int
	Column  int
	File    string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
}
