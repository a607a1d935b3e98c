// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"strings"
)

// StatementKind classifies a preprocessed source line.
type StatementKind int

//go:generate go tool stringer -linecomment -type=StatementKind
const (
	STMT_INSTRUCTION = StatementKind(0) // instruction
	STMT_LABEL       = StatementKind(1) // label
	STMT_EQUATE      = StatementKind(2) // equate
)

// Statement is one logical source line after preprocessing: comment
// stripped, commas normalized to spaces, label and equate lines
// classified. The original line number is kept for diagnostics.
type Statement struct {
	LineNo int
	Kind   StatementKind
	Label  string   // Label name, for STMT_LABEL.
	Words  []string // Tokens, for instruction and equate lines.
}

func (stmt Statement) String() string {
	if stmt.Kind == STMT_LABEL {
		return stmt.Label + ":"
	}
	return strings.Join(stmt.Words, " ")
}

// Preprocess reads raw source text and yields the logical statement
// stream. Blank and comment-only lines are dropped. Preprocessing is a
// pure transformation with no error paths of its own; malformed content
// is left for the passes to report against the recorded line number.
func Preprocess(input io.Reader) (stmts []Statement, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		// Everything after ';' is comment, even mid-line.
		if n := strings.IndexByte(text, ';'); n >= 0 {
			text = text[:n]
		}
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}

		if strings.HasSuffix(text, ":") {
			label := strings.TrimSpace(strings.TrimSuffix(text, ":"))
			stmts = append(stmts, Statement{LineNo: lineno, Kind: STMT_LABEL, Label: label})
			continue
		}

		words := tokenize(strings.ReplaceAll(text, ",", " "))
		if len(words) == 0 {
			continue
		}

		kind := STMT_INSTRUCTION
		if strings.EqualFold(words[0], ".equ") {
			kind = STMT_EQUATE
		}
		stmts = append(stmts, Statement{LineNo: lineno, Kind: kind, Words: words})
	}

	err = scanner.Err()
	return
}

// tokenize splits a line on whitespace, keeping $( ... ) evaluation
// groups together as single tokens so expressions may contain spaces.
func tokenize(line string) (words []string) {
	for len(line) > 0 {
		line = strings.TrimLeft(line, " \t")
		if len(line) == 0 {
			break
		}

		end := len(line)
		if strings.HasPrefix(line, "$(") {
			depth := 0
			for n, c := range line {
				if c == '(' {
					depth += 1
				}
				if c == ')' {
					depth -= 1
					if depth == 0 {
						end = n + 1
						break
					}
				}
			}
		} else if n := strings.IndexAny(line, " \t"); n >= 0 {
			end = n
		}

		words = append(words, line[:end])
		line = line[end:]
	}

	return
}
