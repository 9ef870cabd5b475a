package table

import "RowDB/types"

// locateRow maps a row number to its page and the byte offset inside it
func locateRow(rowNum, rowsPerPage, rowSize uint32) (pageNum, offset uint32) {
	return rowNum / rowsPerPage, (rowNum % rowsPerPage) * rowSize
}

// Locate returns where rowNum lives in the file. It does not touch the pager.
func Locate(rowNum uint32) types.RowPointer {
	pageNum, offset := locateRow(rowNum, types.RowsPerPage, types.RowSize)
	return types.RowPointer{PageNumber: pageNum, Offset: offset}
}

// RowAddress returns the cached page holding rowNum and the row's byte
// offset within it, faulting the page in if needed. The page buffer belongs
// to the pager and is only valid until Close.
func (t *Table) RowAddress(rowNum uint32) ([]byte, uint32, error) {
	if t.pager == nil {
		return nil, 0, ErrTableClosed
	}
	ptr := Locate(rowNum)
	page, err := t.pager.GetPage(ptr.PageNumber)
	if err != nil {
		return nil, 0, err
	}
	return page, ptr.Offset, nil
}
