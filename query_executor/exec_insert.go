package executor

import (
	"fmt"
	"strconv"

	"RowDB/types"
)

/*
This file contains the insert command. The three values (id, username, email)
are taken from the top of the stack in push order and appended to the table.
table.ErrTableFull comes back unwrapped so the caller can report it.
*/

func (vm *VM) ExecuteInsert() error {
	if len(vm.stack) < 3 {
		return fmt.Errorf("%w: need 3 values, have %d", ErrStackUnderflow, len(vm.stack))
	}

	top := len(vm.stack) - 3
	idStr, username, email := vm.stack[top], vm.stack[top+1], vm.stack[top+2]
	vm.stack = vm.stack[:top]

	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", idStr, err)
	}

	row := types.Row{ID: uint32(id), Username: username, Email: email}
	return vm.table.Insert(row)
}
