package table

import (
	"errors"
	"log/slog"

	"RowDB/pager"
)

var (
	ErrTableFull     = errors.New("table full")
	ErrRowOutOfRange = errors.New("row number out of range")
	ErrTableClosed   = errors.New("table is closed")
)

const DefaultRowCacheSize = 1024

// Table is a flat heap of fixed-width rows on top of a Pager. numRows is the
// single source of truth for how much of the file holds valid rows.
type Table struct {
	numRows  uint32
	pager    *pager.Pager
	rowCache *rowCache
	logger   *slog.Logger
}

// Cursor is a position over a table's rows. It does not own anything and
// must not be used across a Close.
type Cursor struct {
	table      *Table
	rowNum     uint32
	endOfTable bool
}

// Stats is a point in time summary of a table
type Stats struct {
	NumRows     uint32
	MaxRows     uint32
	FileLength  int64 // at open time
	DataLength  int64 // bytes Close will leave on disk for NumRows rows
	CachedPages int
}

type config struct {
	logger       *slog.Logger
	rowCacheSize int64
}

// Option configures Connect
type Option func(*config)

// WithLogger sets the logger for the table and its pager
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRowCacheSize bounds the number of decoded rows kept in memory.
// Zero disables the cache.
func WithRowCacheSize(rows int64) Option {
	return func(c *config) {
		if rows >= 0 {
			c.rowCacheSize = rows
		}
	}
}
