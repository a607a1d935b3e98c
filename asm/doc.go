// Package asm implements a two-pass assembler for the UVM educational
// instruction set.
//
// The instruction set is a fixed, closed family of 16 mnemonics over four
// general-purpose registers (A-D). Pass one resolves label and equate
// definitions against a running byte address; pass two encodes operands
// against each mnemonic's fixed grammar and resolves label references
// through the pass-one table. Failures never abort a pass: every problem
// is collected as a line-attributed diagnostic, so one run reports every
// error in the source.
package asm
