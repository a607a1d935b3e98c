// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package listing renders assembly results for humans: hex and decimal
// machine-code dumps, the instruction and label tables, and a summary
// block. Everything here is a pure formatter over an asm.Result;
// writing the raw byte stream anywhere is the caller's business.
package listing

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/uvasm/asm"
	"github.com/ezrec/uvasm/translate"
)

var f = translate.From

// Hex renders the byte stream as space-separated hex pairs.
func Hex(res *asm.Result) string {
	var sb strings.Builder
	for _, b := range res.Bytes() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", b)
	}
	return sb.String()
}

// HexPrefixed renders the byte stream as space-separated 0x-prefixed
// hex values.
func HexPrefixed(res *asm.Result) string {
	var sb strings.Builder
	for _, b := range res.Bytes() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "0x%02x", b)
	}
	return sb.String()
}

// Decimal renders the byte stream as space-separated decimal values.
func Decimal(res *asm.Result) string {
	var sb strings.Builder
	for _, b := range res.Bytes() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", b)
	}
	return sb.String()
}

// HexRows renders the byte stream as hex pairs, sixteen bytes per row.
func HexRows(res *asm.Result) string {
	var sb strings.Builder
	for addr, b := range res.Stream() {
		switch {
		case addr == 0:
		case addr%16 == 0:
			sb.WriteByte('\n')
		default:
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", b)
	}
	return sb.String()
}

// Instructions renders the instruction table: address, mnemonic,
// opcode, operand bytes, and source line, one row per instruction.
func Instructions(res *asm.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-4v %-8v %-6v %-14v %v\n", f("addr"), f("mnemonic"), f("opcode"), f("operands"), f("line"))
	for _, ins := range res.Instructions {
		operands := make([]string, len(ins.Operands))
		for n, b := range ins.Operands {
			operands[n] = fmt.Sprintf("0x%02x", b)
		}
		fmt.Fprintf(&sb, "%-4d %-8v 0x%02x   %-14v %d\n",
			ins.Addr, ins.Mnemonic, ins.Opcode, strings.Join(operands, " "), ins.LineNo)
	}
	return sb.String()
}

// Labels renders the label table, sorted by name.
func Labels(res *asm.Result) string {
	var sb strings.Builder
	for _, label := range slices.Sorted(maps.Keys(res.Symbols.Label)) {
		fmt.Fprintf(&sb, "%-16v : %d\n", label, res.Symbols.Label[label])
	}
	return sb.String()
}

// Summary renders the assembly statistics block.
func Summary(res *asm.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v\n", f("instructions: %d", len(res.Instructions)))
	fmt.Fprintf(&sb, "%v\n", f("bytes: %d", res.Symbols.Size))
	fmt.Fprintf(&sb, "%v\n", f("labels: %d", len(res.Symbols.Label)))
	return sb.String()
}

// Report renders the full detailed output: summary, hex and decimal
// dumps, and the instruction and label tables.
func Report(res *asm.Result) string {
	var sb strings.Builder
	sb.WriteString(Summary(res))
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "%v\n%v\n\n", f("machine code (hex):"), HexRows(res))
	fmt.Fprintf(&sb, "%v\n%v\n\n", f("machine code (dec):"), Decimal(res))
	sb.WriteString(Instructions(res))
	if len(res.Symbols.Label) > 0 {
		sb.WriteByte('\n')
		sb.WriteString(Labels(res))
	}
	return sb.String()
}
