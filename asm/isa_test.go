package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsaTable(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(16, len(opMap))
	assert.Equal(4, len(regMap))

	// Opcode bytes are unique.
	seen := map[byte]string{}
	for mnemonic, spec := range opMap {
		prev, ok := seen[spec.Opcode]
		assert.False(ok, "%v and %v share opcode %#02x", prev, mnemonic, spec.Opcode)
		seen[spec.Opcode] = mnemonic
	}

	// Arity and width agree for every grammar in the table.
	for mnemonic, spec := range opMap {
		assert.Less(spec.Grammar.Arity(), spec.Grammar.Width(), mnemonic)
	}
}

func TestIsaLookup(t *testing.T) {
	assert := assert.New(t)

	spec, ok := LookupOp("load")
	assert.True(ok)
	assert.Equal(byte(0x01), spec.Opcode)
	assert.Equal(GRAMMAR_REG_IMM, spec.Grammar)

	_, ok = LookupOp("NOP")
	assert.False(ok)

	index, ok := LookupRegister("d")
	assert.True(ok)
	assert.Equal(byte(3), index)

	_, ok = LookupRegister("E")
	assert.False(ok)

	assert.True(IsMnemonic("halt"))
	assert.False(IsMnemonic("START"))
}

func TestGrammarStrings(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("none", GRAMMAR_NONE.String())
	assert.Equal("reg,addr16", GRAMMAR_REG_WIDE.String())
	assert.Equal("error", SEVERITY_ERROR.String())
	assert.Equal("label", STMT_LABEL.String())
}
