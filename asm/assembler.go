// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"log"
)

// Assembler drives the two-pass pipeline: preprocess, resolve symbols,
// encode. The zero value is ready to use, and no state is carried
// between runs.
type Assembler struct {
	Verbose bool // If set, verbosely logs the statement stream.
}

// Assemble runs both passes over one source unit. The returned error
// reports input-stream failures only; assembly problems accumulate in
// the result's diagnostics, and res.OK() gates use of the byte stream.
func (asm *Assembler) Assemble(input io.Reader) (res *Result, err error) {
	stmts, err := Preprocess(input)
	if err != nil {
		return
	}

	if asm.Verbose {
		for _, stmt := range stmts {
			log.Printf("%v: %v\n", stmt.LineNo, stmt)
		}
	}

	res = &Result{}
	res.Symbols = Resolve(stmts, &res.Diags)
	res.Instructions = Encode(stmts, res.Symbols, &res.Diags)

	return
}
