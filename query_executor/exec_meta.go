package executor

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"

	"RowDB/types"
)

func (vm *VM) ExecuteMeta(command string) error {
	switch command {
	case ".exit":
		return ErrExit
	case ".info":
		vm.printInfo()
		return nil
	case ".constants":
		vm.printConstants()
		return nil
	}
	return fmt.Errorf("%w '%s'", ErrUnrecognizedMeta, command)
}

func (vm *VM) printInfo() {
	s := vm.table.Stats()
	vm.PrintLine([]string{"rows", "max rows", "cached pages", "data size", "file size at open"})
	vm.PrintSeparator(5)
	vm.PrintLine([]string{
		strconv.FormatUint(uint64(s.NumRows), 10),
		strconv.FormatUint(uint64(s.MaxRows), 10),
		strconv.Itoa(s.CachedPages),
		humanize.Bytes(uint64(s.DataLength)),
		humanize.Bytes(uint64(s.FileLength)),
	})
}

func (vm *VM) printConstants() {
	constants := []struct {
		name  string
		value int
	}{
		{"ROW_SIZE", types.RowSize},
		{"ID_SIZE", types.IDSize},
		{"USERNAME_SIZE", types.UsernameSize},
		{"EMAIL_SIZE", types.EmailSize},
		{"PAGE_SIZE", types.PageSize},
		{"ROWS_PER_PAGE", types.RowsPerPage},
		{"TABLE_MAX_PAGES", types.TableMaxPages},
		{"TABLE_MAX_ROWS", types.TableMaxRows},
	}
	vm.PrintLine([]string{"constant", "value"})
	vm.PrintSeparator(2)
	for _, c := range constants {
		vm.PrintLine([]string{c.name, strconv.Itoa(c.value)})
	}
}
