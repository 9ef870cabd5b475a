// Database file inspection for debugging.
// Use InspectFile(path) to print a human-readable dump of a table file.

package table

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"RowDB/internal/logging"
	"RowDB/pager"
	"RowDB/types"
)

// InspectFile opens a table file and prints its layout to stdout.
func InspectFile(path string) error {
	return InspectFileTo(os.Stdout, path)
}

// InspectFileTo writes the file layout followed by every row with its page
// and offset. The file is opened read only and must already exist.
func InspectFileTo(w io.Writer, path string) error {
	pg, err := pager.Open(path, pager.WithReadOnly(), pager.WithLogger(logging.Discard()))
	if err != nil {
		return err
	}
	defer pg.Close()

	length := pg.FileLength()
	numRows := rowsForLength(length)
	p := func(format string, args ...interface{}) { fmt.Fprintf(w, format, args...) }

	p("Table file: %s\n", path)
	p("  length: %d bytes (%s)\n", length, humanize.Bytes(uint64(length)))
	p("  rows: %d of %d, %d per page\n", numRows, types.TableMaxRows, types.RowsPerPage)
	if tail := (length % types.PageSize) % types.RowSize; tail != 0 {
		p("  trailing partial row: %d bytes ignored\n", tail)
	}
	if numRows == 0 {
		fmt.Fprintln(w, "  (empty table)")
		return nil
	}

	fmt.Fprintln(w, "\n  Rows:")
	fmt.Fprintln(w, "  ---")
	for r := uint32(0); r < numRows; r++ {
		ptr := Locate(r)
		page, err := pg.GetPage(ptr.PageNumber)
		if err != nil {
			return fmt.Errorf("read page %d: %w", ptr.PageNumber, err)
		}
		if ptr.Offset == 0 {
			p("  Page %d:\n", ptr.PageNumber)
		}
		row := DeserializeRow(page[ptr.Offset : ptr.Offset+types.RowSize])
		p("    [row %d @%d] (%d, %s, %s)\n", r, ptr.Offset, row.ID, row.Username, row.Email)
	}
	return nil
}
