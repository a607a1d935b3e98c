package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzAssemble(f *testing.F) {
	f.Add("START:\nLOAD A 5\nJMP START\nHALT\n")
	f.Add("FOO A, 1\n")
	f.Add(".equ LIMIT 0x10\nADD A $(LIMIT + 2)\n")
	f.Add("STORE A 300 ; wide\n")
	f.Add("DUP:\nDUP:\n")
	f.Add(";\n:\n.equ\n$(\n")

	f.Fuzz(func(t *testing.T, source string) {
		assert := assert.New(t)

		asm := &Assembler{}
		res, err := asm.Assemble(strings.NewReader(source))
		if err != nil {
			// Only input-stream failures (e.g. over-long lines) may
			// surface as errors.
			return
		}

		// Every diagnostic is attributed to a real source line.
		for _, diag := range res.Diags {
			assert.Positive(diag.LineNo)
		}

		// The stream length always equals the sum of encoded widths.
		total := 0
		for _, ins := range res.Instructions {
			total += ins.Width()
		}
		assert.Equal(total, len(res.Bytes()))

		// Assembly is deterministic.
		again, err := asm.Assemble(strings.NewReader(source))
		assert.NoError(err)
		assert.Equal(res.Bytes(), again.Bytes())
		assert.Equal(res.Diags, again.Diags)
	})
}
