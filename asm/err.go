package asm

import (
	"errors"

	"github.com/ezrec/uvasm/translate"
)

var f = translate.From

var (
	// Directive errors
	ErrEquateSyntax = errors.New(f(".equ syntax"))
)

type ErrMnemonicUnknown string

func (err ErrMnemonicUnknown) Error() string {
	return f("unknown mnemonic '%v'", string(err))
}

type ErrRegisterUnknown string

func (err ErrRegisterUnknown) Error() string {
	return f("unknown register '%v'", string(err))
}

type ErrLabelName string

func (err ErrLabelName) Error() string {
	return f("invalid label name '%v'", string(err))
}

type ErrLabelDuplicate string

func (err ErrLabelDuplicate) Error() string {
	return f("label '%v' already defined", string(err))
}

type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("unknown label '%v'", string(err))
}

type ErrEquateName string

func (err ErrEquateName) Error() string {
	return f("invalid equate name '%v'", string(err))
}

type ErrEquateDuplicate string

func (err ErrEquateDuplicate) Error() string {
	return f("equate '%v' already defined", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrOperandCount reports an operand-count mismatch against a grammar.
type ErrOperandCount struct {
	Mnemonic string
	Want     int
	Got      int
}

func (err ErrOperandCount) Error() string {
	return f("%v expects %d operands, got %d", err.Mnemonic, err.Want, err.Got)
}

type ErrImmediateRange int64

func (err ErrImmediateRange) Error() string {
	return f("immediate %v out of range [0-255]", int64(err))
}

type ErrAddressRange int64

func (err ErrAddressRange) Error() string {
	return f("address %v out of range [0-255]", int64(err))
}

type ErrWideAddressRange int64

func (err ErrWideAddressRange) Error() string {
	return f("address %v out of range [0-65535]", int64(err))
}
