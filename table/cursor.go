package table

import "RowDB/types"

// Start returns a cursor at the first row
func (t *Table) Start() *Cursor {
	return &Cursor{
		table:      t,
		rowNum:     0,
		endOfTable: t.numRows == 0,
	}
}

// End returns a cursor one past the last row, the append position
func (t *Table) End() *Cursor {
	return &Cursor{
		table:      t,
		rowNum:     t.numRows,
		endOfTable: true,
	}
}

func (c *Cursor) RowNum() uint32 {
	return c.rowNum
}

func (c *Cursor) EndOfTable() bool {
	return c.endOfTable
}

// Advance moves to the next row
func (c *Cursor) Advance() {
	c.rowNum++
	if c.rowNum >= c.table.numRows {
		c.endOfTable = true
	}
}

// Value returns the raw RowSize bytes of the slot under the cursor
func (c *Cursor) Value() ([]byte, error) {
	page, offset, err := c.table.RowAddress(c.rowNum)
	if err != nil {
		return nil, err
	}
	return page[offset : offset+types.RowSize], nil
}

// Row decodes the row under the cursor
func (c *Cursor) Row() (types.Row, error) {
	return c.table.Row(c.rowNum)
}
