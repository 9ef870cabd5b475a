package table

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"RowDB/pager"
	"RowDB/types"
)

// Connect opens the database file at path and rebuilds the row count from
// its length.
func Connect(path string, opts ...Option) (*Table, error) {
	cfg := config{
		logger:       slog.Default(),
		rowCacheSize: DefaultRowCacheSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	p, err := pager.Open(path, pager.WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}

	cache, err := newRowCache(cfg.rowCacheSize)
	if err != nil {
		p.Close()
		return nil, err
	}

	t := &Table{
		numRows:  rowsForLength(p.FileLength()),
		pager:    p,
		rowCache: cache,
		logger:   cfg.logger,
	}
	t.logger.Info("table connected", "path", path, "rows", t.numRows)
	return t, nil
}

// rowsForLength derives the row count from a file length. Full pages carry
// PageSlack unused bytes at their end; a trailing partial row is ignored.
func rowsForLength(fileLength int64) uint32 {
	fullPages := fileLength / types.PageSize
	tail := fileLength % types.PageSize
	rows := fullPages*types.RowsPerPage + tail/types.RowSize
	if rows > types.TableMaxRows {
		rows = types.TableMaxRows
	}
	return uint32(rows)
}

// lengthForRows is the file length that holds numRows rows once flushed:
// whole pages for every full page plus the rows of the last one.
func lengthForRows(numRows uint32) int64 {
	fullPages := int64(numRows / types.RowsPerPage)
	extraRows := int64(numRows % types.RowsPerPage)
	return fullPages*types.PageSize + extraRows*types.RowSize
}

// NumRows returns the number of valid rows
func (t *Table) NumRows() uint32 {
	return t.numRows
}

// Stats summarizes the table and its page cache
func (t *Table) Stats() Stats {
	s := Stats{NumRows: t.numRows, MaxRows: types.TableMaxRows, DataLength: lengthForRows(t.numRows)}
	if t.pager != nil {
		s.FileLength = t.pager.FileLength()
		s.CachedPages = t.pager.CachedPages()
	}
	return s
}

// Insert appends row at the logical end of the table
func (t *Table) Insert(row types.Row) error {
	if t.pager == nil {
		return ErrTableClosed
	}
	if t.numRows >= types.TableMaxRows {
		return ErrTableFull
	}
	if err := row.Validate(); err != nil {
		return fmt.Errorf("invalid row %d: %w", row.ID, err)
	}

	page, offset, err := t.RowAddress(t.numRows)
	if err != nil {
		return err
	}
	SerializeRow(&row, page[offset:offset+types.RowSize])
	t.rowCache.set(t.numRows, row)
	t.numRows++
	return nil
}

// Row decodes the row at rowNum
func (t *Table) Row(rowNum uint32) (types.Row, error) {
	if t.pager == nil {
		return types.Row{}, ErrTableClosed
	}
	if rowNum >= t.numRows {
		return types.Row{}, fmt.Errorf("%w: %d >= %d", ErrRowOutOfRange, rowNum, t.numRows)
	}
	if row, ok := t.rowCache.get(rowNum); ok {
		return row, nil
	}

	page, offset, err := t.RowAddress(rowNum)
	if err != nil {
		return types.Row{}, err
	}
	row := DeserializeRow(page[offset : offset+types.RowSize])
	t.rowCache.set(rowNum, row)
	return row, nil
}

// Scan yields every row in insertion order. Each call starts a fresh cursor.
func (t *Table) Scan() iter.Seq2[types.Row, error] {
	return func(yield func(types.Row, error) bool) {
		for c := t.Start(); !c.EndOfTable(); c.Advance() {
			row, err := c.Row()
			if !yield(row, err) || err != nil {
				return
			}
		}
	}
}

// Close flushes the pages holding rows and releases the pager. Full pages
// are written whole; the last partial page is written only up to its last
// row. Closing twice is a no-op.
func (t *Table) Close() error {
	if t.pager == nil {
		return nil
	}
	p := t.pager
	t.pager = nil
	defer t.rowCache.close()

	var errs []error
	numFullPages := t.numRows / types.RowsPerPage
	for i := uint32(0); i < numFullPages; i++ {
		if !p.IsCached(i) {
			continue
		}
		if err := p.Flush(i, types.PageSize); err != nil {
			errs = append(errs, err)
		}
		p.Release(i)
	}

	if extraRows := t.numRows % types.RowsPerPage; extraRows > 0 {
		pageNum := numFullPages
		if p.IsCached(pageNum) {
			if err := p.Flush(pageNum, extraRows*types.RowSize); err != nil {
				errs = append(errs, err)
			}
			p.Release(pageNum)
		}
	}

	// releases any page touched beyond the row count as well
	if err := p.Close(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		t.logger.Error("table close failed", "path", p.Path(), "error", err)
		return err
	}
	t.logger.Info("table closed", "path", p.Path(), "rows", t.numRows)
	return nil
}
