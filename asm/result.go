package asm

import (
	"iter"
)

// Result is the outcome of one assembly run: the encoded instruction
// sequence, the pass-one symbol table, and every diagnostic from both
// passes. A Result is constructed fresh per run and never mutated after
// Assemble returns.
type Result struct {
	Instructions []Instruction
	Symbols      *Symbols
	Diags        Diagnostics
}

// OK reports whether assembly succeeded. A result carrying any
// error-severity diagnostic has no usable byte stream; warnings do not
// block success.
func (res *Result) OK() bool {
	return !res.Diags.HasErrors()
}

// Bytes returns the machine code: each instruction's opcode byte
// followed by its operand bytes, in program order. The stream has no
// header or length prefix; its length is its exact byte count.
func (res *Result) Bytes() (out []byte) {
	out = make([]byte, 0, res.Symbols.Size)
	for _, ins := range res.Instructions {
		out = append(out, ins.Opcode)
		out = append(out, ins.Operands...)
	}
	return
}

// Stream iterates the machine code as (address, byte) pairs, for
// serializers and dump tools.
func (res *Result) Stream() iter.Seq2[int, byte] {
	return func(yield func(addr int, b byte) bool) {
		for _, ins := range res.Instructions {
			if !yield(ins.Addr, ins.Opcode) {
				return
			}
			for n, b := range ins.Operands {
				if !yield(ins.Addr+1+n, b) {
					return
				}
			}
		}
	}
}
