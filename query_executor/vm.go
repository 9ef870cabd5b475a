package executor

/*
VM - runs the bytecode emitted for one statement
    ↓
    └─→ Table - appends and scans rows, pages them through the Pager
*/

import (
	"fmt"
	"io"

	"RowDB/table"
)

func NewVM(tbl *table.Table, out io.Writer) *VM {
	return &VM{
		table: tbl,
		out:   out,
		stack: make([]string, 0, 3),
	}
}

func (vm *VM) Execute(instructions []Instruction) error {
	vm.stack = vm.stack[:0]

	for _, instr := range instructions {
		switch instr.Op {
		case OP_PUSH_VAL:
			vm.stack = append(vm.stack, instr.Value)

		case OP_INSERT:
			return vm.ExecuteInsert()

		case OP_SELECT:
			return vm.ExecuteSelect()

		case OP_META:
			return vm.ExecuteMeta(instr.Value)

		case OP_END:
			return nil

		default:
			return fmt.Errorf("unknown opcode: %d", instr.Op)
		}
	}
	return nil
}
