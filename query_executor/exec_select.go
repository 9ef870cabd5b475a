package executor

/*
This file contains select, a full scan printing every row in insertion order.
SELECT is read only, it never changes the table.
*/

func (vm *VM) ExecuteSelect() error {
	for row, err := range vm.table.Scan() {
		if err != nil {
			return err
		}
		vm.PrintRow(row)
	}
	return nil
}
