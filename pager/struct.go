package pager

import (
	"errors"
	"log/slog"
	"os"

	"RowDB/types"
)

var (
	ErrPageOutOfBounds = errors.New("page number out of bounds")
	ErrPageNotCached   = errors.New("tried to flush a page that is not cached")
	ErrFlushSize       = errors.New("flush size exceeds page size")
	ErrPagerClosed     = errors.New("pager file is closed")
	ErrReadOnly        = errors.New("pager is read only")
)

// Pager mediates between page numbers and the cached 4KB buffers backing
// them. Every slot is either nil (not touched this session) or a buffer of
// exactly PageSize bytes owned by the pager.
type Pager struct {
	file       *os.File
	filePath   string
	fileLength int64 // length of the file when it was opened
	pages      [types.TableMaxPages][]byte
	logger     *slog.Logger
	readOnly   bool
}

// Option configures a Pager
type Option func(*Pager)

// WithLogger sets the logger used for page faults and flushes
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pager) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithReadOnly opens an existing file without write access. Flush fails
// and Close does not sync.
func WithReadOnly() Option {
	return func(p *Pager) {
		p.readOnly = true
	}
}
