package listing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/uvasm/asm"
)

func assemble(t *testing.T, source string) *asm.Result {
	t.Helper()

	assembler := &asm.Assembler{}
	res, err := assembler.Assemble(strings.NewReader(source))
	if err != nil {
		t.Fatal(err)
	}
	if !res.OK() {
		t.Fatalf("assembly failed: %v", res.Diags)
	}
	return res
}

var scenario = strings.Join([]string{
	"START:",
	"LOAD A 5",
	"LOAD B 10",
	"ADD A B",
	"JZ END",
	"JMP START",
	"END:",
	"HALT",
}, "\n")

func TestHex(t *testing.T) {
	assert := assert.New(t)

	res := assemble(t, scenario)
	assert.Equal("01 00 05 01 01 0a 03 00 01 09 0d 08 00 10", Hex(res))
	assert.Equal("0x01 0x00 0x05 0x01 0x01 0x0a 0x03 0x00 0x01 0x09 0x0d 0x08 0x00 0x10", HexPrefixed(res))
	assert.Equal("1 0 5 1 1 10 3 0 1 9 13 8 0 16", Decimal(res))
}

func TestHexRows(t *testing.T) {
	assert := assert.New(t)

	// 18 bytes wrap onto a second row after the sixteenth.
	res := assemble(t, strings.Repeat("LOAD A 1\n", 6))

	rows := strings.Split(HexRows(res), "\n")
	assert.Equal(2, len(rows))
	assert.Equal("01 00 01 01 00 01 01 00 01 01 00 01 01 00 01 01", rows[0])
	assert.Equal("00 01", rows[1])
}

func TestInstructions(t *testing.T) {
	assert := assert.New(t)

	res := assemble(t, scenario)
	out := Instructions(res)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(1+6, len(lines))
	assert.Contains(lines[1], "LOAD")
	assert.Contains(lines[1], "0x01")
	assert.Contains(lines[4], "JZ")
	assert.Contains(lines[6], "HALT")
}

func TestLabels(t *testing.T) {
	assert := assert.New(t)

	res := assemble(t, scenario)
	out := Labels(res)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(2, len(lines))

	// Sorted by name.
	assert.Contains(lines[0], "END")
	assert.Contains(lines[0], "13")
	assert.Contains(lines[1], "START")
	assert.Contains(lines[1], "0")
}

func TestSummary(t *testing.T) {
	assert := assert.New(t)

	res := assemble(t, scenario)
	out := Summary(res)

	assert.Contains(out, "instructions: 6")
	assert.Contains(out, "bytes: 14")
	assert.Contains(out, "labels: 2")
}

func TestReport(t *testing.T) {
	assert := assert.New(t)

	res := assemble(t, scenario)
	out := Report(res)

	assert.Contains(out, "machine code (hex):")
	assert.Contains(out, "machine code (dec):")
	assert.Contains(out, "01 00 05")
	assert.Contains(out, "START")
}
