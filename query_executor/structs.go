package executor

import (
	"errors"
	"io"

	"RowDB/table"
)

var (
	// ErrExit is returned by the .exit meta command; the caller closes the table
	ErrExit             = errors.New("exit requested")
	ErrUnrecognizedMeta = errors.New("unrecognized meta command")
	ErrStackUnderflow   = errors.New("stack underflow")
)

type OpCode byte

const (
	// stack
	OP_PUSH_VAL OpCode = iota

	// commands
	OP_INSERT
	OP_SELECT
	OP_META

	OP_END
)

type Instruction struct {
	Op    OpCode
	Value string
}

// VM runs bytecode against a single table and writes results to out
type VM struct {
	table *table.Table
	out   io.Writer

	stack []string
}
