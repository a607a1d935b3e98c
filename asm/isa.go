// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strings"
)

// Grammar is the fixed operand shape of one mnemonic: operand count,
// operand kinds, and encoded width.
type Grammar int

//go:generate go tool stringer -linecomment -type=Grammar
const (
	GRAMMAR_NONE        = Grammar(0) // none
	GRAMMAR_REG         = Grammar(1) // reg
	GRAMMAR_ADDR        = Grammar(2) // addr
	GRAMMAR_REG_REG     = Grammar(3) // reg,reg
	GRAMMAR_REG_REG_IMM = Grammar(4) // reg,reg|imm
	GRAMMAR_REG_IMM     = Grammar(5) // reg,imm
	GRAMMAR_REG_WIDE    = Grammar(6) // reg,addr16
)

// Width returns the encoded instruction size in bytes, opcode included.
// Width depends only on the grammar, never on operand values; this is
// what lets pass one fix every label address without backpatching.
func (g Grammar) Width() int {
	switch g {
	case GRAMMAR_NONE:
		return 1
	case GRAMMAR_REG, GRAMMAR_ADDR:
		return 2
	case GRAMMAR_REG_WIDE:
		return 4
	default:
		return 3
	}
}

// Arity returns the number of operand tokens the grammar expects.
func (g Grammar) Arity() int {
	switch g {
	case GRAMMAR_NONE:
		return 0
	case GRAMMAR_REG, GRAMMAR_ADDR:
		return 1
	default:
		return 2
	}
}

// OpSpec binds a mnemonic to its opcode byte and operand grammar.
type OpSpec struct {
	Opcode  byte
	Grammar Grammar
}

// opMap is the complete UVM instruction set. Built once, never mutated.
var opMap = map[string]OpSpec{
	"LOAD":  {0x01, GRAMMAR_REG_IMM},
	"STORE": {0x02, GRAMMAR_REG_WIDE},
	"ADD":   {0x03, GRAMMAR_REG_REG_IMM},
	"SUB":   {0x04, GRAMMAR_REG_REG_IMM},
	"MUL":   {0x05, GRAMMAR_REG_REG_IMM},
	"DIV":   {0x06, GRAMMAR_REG_REG_IMM},
	"MOD":   {0x07, GRAMMAR_REG_REG_IMM},
	"JMP":   {0x08, GRAMMAR_ADDR},
	"JZ":    {0x09, GRAMMAR_ADDR},
	"JNZ":   {0x0a, GRAMMAR_ADDR},
	"CMP":   {0x0b, GRAMMAR_REG_REG},
	"CALL":  {0x0c, GRAMMAR_ADDR},
	"RET":   {0x0d, GRAMMAR_NONE},
	"PUSH":  {0x0e, GRAMMAR_REG},
	"POP":   {0x0f, GRAMMAR_REG},
	"HALT":  {0x10, GRAMMAR_NONE},
}

// regMap maps register names to their encoded index.
var regMap = map[string]byte{
	"A": 0,
	"B": 1,
	"C": 2,
	"D": 3,
}

// LookupOp resolves a mnemonic, case-insensitively.
func LookupOp(mnemonic string) (spec OpSpec, ok bool) {
	spec, ok = opMap[strings.ToUpper(mnemonic)]
	return
}

// LookupRegister resolves a register name, case-insensitively.
func LookupRegister(name string) (index byte, ok bool) {
	index, ok = regMap[strings.ToUpper(name)]
	return
}

// IsMnemonic reports whether a word names an instruction.
func IsMnemonic(word string) bool {
	_, ok := LookupOp(word)
	return ok
}
