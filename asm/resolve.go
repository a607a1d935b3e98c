// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"regexp"
)

// Symbols is the output of pass one: every label bound to its byte
// address, every equate bound to its replacement token, and the total
// encoded program size. Immutable once Resolve returns; pass two only
// reads it.
type Symbols struct {
	Label  map[string]int    // Map of labels to byte addresses.
	Equate map[string]string // Map of equates to replacement tokens.
	Size   int               // Total encoded size, in bytes.
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Resolve walks the statement stream and builds the symbol table.
//
// A label binds to the cumulative width of every instruction before its
// definition. Widths come from the grammar alone, so a recognized
// mnemonic advances the address by its fixed width even when its
// operands later fail to encode; this keeps every address after pass
// one final. Errors are recorded and the scan continues, so one run
// surfaces every symbol problem in the source.
func Resolve(stmts []Statement, ds *Diagnostics) (syms *Symbols) {
	syms = &Symbols{
		Label:  make(map[string]int, 16),
		Equate: make(map[string]string, 16),
	}

	var address int
	for _, stmt := range stmts {
		switch stmt.Kind {
		case STMT_LABEL:
			label := stmt.Label
			if !identRe.MatchString(label) || IsMnemonic(label) {
				ds.Error(stmt.LineNo, ErrLabelName(label))
				continue
			}
			if _, ok := syms.Label[label]; ok {
				ds.Error(stmt.LineNo, ErrLabelDuplicate(label))
				continue
			}
			syms.Label[label] = address

		case STMT_EQUATE:
			// .equ NAME VALUE
			if len(stmt.Words) != 3 {
				ds.Error(stmt.LineNo, ErrEquateSyntax)
				continue
			}
			name := stmt.Words[1]
			if !identRe.MatchString(name) || IsMnemonic(name) {
				ds.Error(stmt.LineNo, ErrEquateName(name))
				continue
			}
			if _, ok := syms.Equate[name]; ok {
				ds.Error(stmt.LineNo, ErrEquateDuplicate(name))
				continue
			}
			syms.Equate[name] = stmt.Words[2]

		case STMT_INSTRUCTION:
			spec, ok := LookupOp(stmt.Words[0])
			if !ok {
				ds.Error(stmt.LineNo, ErrMnemonicUnknown(stmt.Words[0]))
				continue
			}
			address += spec.Grammar.Width()
		}
	}

	syms.Size = address

	return
}
