// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Instruction is one encoded statement: the opcode byte plus its
// fixed-width operand bytes, annotated with the source line number and
// the starting byte address within the program.
type Instruction struct {
	LineNo   int
	Addr     int
	Mnemonic string
	Opcode   byte
	Operands []byte
}

// Width returns the encoded size in bytes, opcode included.
func (ins Instruction) Width() int {
	return 1 + len(ins.Operands)
}

// encoder carries pass-two state: the completed, read-only symbol table
// and the diagnostics collector.
type encoder struct {
	syms *Symbols
	ds   *Diagnostics
}

// Encode walks the statement stream a second time, parsing operands
// against each mnemonic's grammar and resolving label references
// through the pass-one table.
//
// A failed line records a diagnostic and encoding continues with the
// next line; the address still advances by the grammar width so every
// later instruction lands on the address pass one computed for it.
// Unknown mnemonics were already reported by pass one and are skipped
// silently here, keeping exactly one diagnostic per unknown mnemonic.
func Encode(stmts []Statement, syms *Symbols, ds *Diagnostics) (ins []Instruction) {
	enc := &encoder{syms: syms, ds: ds}

	var address int
	for _, stmt := range stmts {
		if stmt.Kind != STMT_INSTRUCTION {
			continue
		}

		spec, ok := LookupOp(stmt.Words[0])
		if !ok {
			continue
		}

		mnemonic := strings.ToUpper(stmt.Words[0])
		operands, err := enc.operands(mnemonic, spec.Grammar, stmt.Words[1:])
		if err == nil {
			ins = append(ins, Instruction{
				LineNo:   stmt.LineNo,
				Addr:     address,
				Mnemonic: mnemonic,
				Opcode:   spec.Opcode,
				Operands: operands,
			})
		} else {
			ds.Error(stmt.LineNo, err)
		}

		address += spec.Grammar.Width()
	}

	return
}

// operands expands and parses the operand tokens of one instruction
// per its grammar.
func (enc *encoder) operands(mnemonic string, grammar Grammar, words []string) (out []byte, err error) {
	words, err = enc.expand(words)
	if err != nil {
		return
	}

	if len(words) != grammar.Arity() {
		err = &ErrOperandCount{Mnemonic: mnemonic, Want: grammar.Arity(), Got: len(words)}
		return
	}

	switch grammar {
	case GRAMMAR_NONE:
		// Opcode only.

	case GRAMMAR_REG:
		var reg byte
		reg, err = register(words[0])
		if err != nil {
			return
		}
		out = []byte{reg}

	case GRAMMAR_ADDR:
		var addr byte
		addr, err = enc.address(words[0])
		if err != nil {
			return
		}
		out = []byte{addr}

	case GRAMMAR_REG_REG:
		var reg1, reg2 byte
		reg1, err = register(words[0])
		if err != nil {
			return
		}
		reg2, err = register(words[1])
		if err != nil {
			return
		}
		out = []byte{reg1, reg2}

	case GRAMMAR_REG_REG_IMM:
		var reg, arg byte
		reg, err = register(words[0])
		if err != nil {
			return
		}
		arg, err = registerOrImmediate(words[1])
		if err != nil {
			return
		}
		out = []byte{reg, arg}

	case GRAMMAR_REG_IMM:
		var reg, imm byte
		reg, err = register(words[0])
		if err != nil {
			return
		}
		imm, err = immediate(words[1])
		if err != nil {
			return
		}
		out = []byte{reg, imm}

	case GRAMMAR_REG_WIDE:
		var reg byte
		var addr int64
		reg, err = register(words[0])
		if err != nil {
			return
		}
		addr, err = parseNumber(words[1])
		if err != nil {
			return
		}
		if addr < 0 || addr > 0xffff {
			err = ErrWideAddressRange(addr)
			return
		}
		out = []byte{reg, byte(addr & 0xff), byte((addr >> 8) & 0xff)}
	}

	return
}

// expand substitutes equates and evaluates $( ... ) expression tokens.
// Expansion is confined to pass two: no expansion can change an
// instruction's width, so the pass-one addresses stay valid.
func (enc *encoder) expand(words []string) (out []string, err error) {
	out = slices.Clone(words)
	for n, word := range out {
		value, ok := enc.syms.Equate[word]
		if ok {
			word = value
		}

		if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
			var v64 int64
			v64, err = enc.eval(word[2 : len(word)-1])
			if err != nil {
				return
			}
			word = strconv.FormatInt(v64, 10)
		}

		out[n] = word
	}

	return
}

// eval computes a compile-time $( ... ) expression. Integer-valued
// equates are predeclared, so expressions may reference them by name.
func (enc *encoder) eval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range enc.syms.Equate {
		v64, verr := parseNumber(str)
		if verr != nil {
			// Non-integer equates are not visible to expressions.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// address resolves a jump or call target: a known label, or a decimal
// literal. The encoding is a single byte, so a target beyond 255 is a
// hard range error rather than a silent truncation.
func (enc *encoder) address(word string) (addr byte, err error) {
	target, ok := enc.syms.Label[word]
	if !ok {
		if !isDigits(word) {
			err = ErrLabelMissing(word)
			return
		}
		var v64 int64
		v64, err = strconv.ParseInt(word, 10, 64)
		if err != nil {
			err = ErrParseNumber(word)
			return
		}
		target = int(v64)
	}

	if target < 0 || target > 0xff {
		err = ErrAddressRange(target)
		return
	}

	addr = byte(target)
	return
}

// register resolves a register name to its encoded index.
func register(word string) (index byte, err error) {
	index, ok := LookupRegister(word)
	if !ok {
		err = ErrRegisterUnknown(word)
	}
	return
}

// registerOrImmediate resolves the second operand of the arithmetic
// grammar: a register name, used as its numeric index, or an immediate.
func registerOrImmediate(word string) (value byte, err error) {
	index, ok := LookupRegister(word)
	if ok {
		value = index
		return
	}
	return immediate(word)
}

// immediate parses a one-byte immediate. Out-of-range values are hard
// errors; nothing is masked or truncated.
func immediate(word string) (value byte, err error) {
	v64, err := parseNumber(word)
	if err != nil {
		return
	}
	if v64 < 0 || v64 > 0xff {
		err = ErrImmediateRange(v64)
		return
	}
	value = byte(v64)
	return
}

// parseNumber parses a decimal or 0x-prefixed hexadecimal literal.
func parseNumber(word string) (value int64, err error) {
	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
	}
	return
}

func isDigits(word string) bool {
	if len(word) == 0 {
		return false
	}
	for _, c := range word {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
