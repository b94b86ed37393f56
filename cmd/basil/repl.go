package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/basil-lang/basil/internal/lexer"
)

const replHistoryFile = ".basil_repl_history"

// runRepl drives an interactive liner session that tokenizes whatever line
// the user enters and prints the resulting token stream. It exists to give
// the lexer a hands-on surface now, ahead of a real parser landing.
func runRepl() {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetMultiLineMode(true)
	line.SetCompleter(replCompleter)

	histPath := filepath.Join(os.TempDir(), replHistoryFile)
	if f, err := os.Open(histPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	fmt.Println(bold("basil repl"), "- enter an expression to see its tokens, Ctrl-D to quit")

	for {
		text, err := line.Prompt(cyan("basil> "))
		if err != nil {
			fmt.Println()
			fmt.Println(green("goodbye"))
			break
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		line.AppendHistory(text)
		runReplLine(text)
	}

	if f, err := os.Create(histPath); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}

func runReplLine(text string) {
	l := lexer.New(text, "<repl>")
	for {
		tok := l.NextToken()
		if tok.Type == lexer.EOF {
			break
		}
		fmt.Printf("  %-12s %q\n", cyan(tok.Type.String()), tok.Literal)
	}
}

// replCompleter offers keyword completions for whatever word precedes the
// cursor, the same shape of completer the teacher's REPL wires into liner.
func replCompleter(line string) []string {
	fields := strings.Fields(line)
	prefix := ""
	if len(fields) > 0 && !strings.HasSuffix(line, " ") {
		prefix = fields[len(fields)-1]
	}

	var out []string
	for _, kw := range lexer.Keywords() {
		if strings.HasPrefix(kw, prefix) {
			out = append(out, strings.TrimSuffix(line, prefix)+kw)
		}
	}
	return out
}
