package pager

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"RowDB/types"
)

// Open opens (creating if absent) the database file and returns a pager
// with every page slot empty. A read only pager never creates the file.
func Open(path string, opts ...Option) (*Pager, error) {
	p := &Pager{
		filePath: path,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	flag := os.O_RDWR | os.O_CREATE
	if p.readOnly {
		flag = os.O_RDONLY
	}
	file, err := os.OpenFile(path, flag, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open db file %s: %w", path, err)
	}

	fileLength, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to seek db file: %w", err)
	}
	p.file = file
	p.fileLength = fileLength

	p.logger.Debug("pager opened", "path", path, "file_length", fileLength, "read_only", p.readOnly)
	return p, nil
}

// FileLength returns the file length observed at open time
func (p *Pager) FileLength() int64 {
	return p.fileLength
}

// Path returns the path of the backing file
func (p *Pager) Path() string {
	return p.filePath
}

// pagesOnDisk is the number of pages, full or partial, present in the file
// when it was opened.
func (p *Pager) pagesOnDisk() uint32 {
	numPages := p.fileLength / types.PageSize
	if p.fileLength%types.PageSize != 0 {
		numPages++
	}
	return uint32(numPages)
}

// GetPage returns the cached buffer for pageNum, materializing it on first
// touch. A page that existed on disk is read in; a short read at end of file
// leaves the rest of the buffer zeroed. Later calls return the same buffer.
func (p *Pager) GetPage(pageNum uint32) ([]byte, error) {
	if p.file == nil {
		return nil, ErrPagerClosed
	}
	if pageNum >= types.TableMaxPages {
		return nil, fmt.Errorf("%w: %d >= %d", ErrPageOutOfBounds, pageNum, types.TableMaxPages)
	}

	if page := p.pages[pageNum]; page != nil {
		return page, nil
	}

	page := make([]byte, types.PageSize)
	if pageNum < p.pagesOnDisk() {
		offset := int64(pageNum) * types.PageSize
		n, err := p.file.ReadAt(page, offset)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read page %d: %w", pageNum, err)
		}
		p.logger.Debug("page read from disk", "page", pageNum, "bytes", n)
	} else {
		p.logger.Debug("page allocated", "page", pageNum)
	}

	p.pages[pageNum] = page
	return page, nil
}

// IsCached reports whether pageNum has been materialized this session
func (p *Pager) IsCached(pageNum uint32) bool {
	return pageNum < types.TableMaxPages && p.pages[pageNum] != nil
}

// CachedPages returns the number of materialized pages
func (p *Pager) CachedPages() int {
	n := 0
	for _, page := range p.pages {
		if page != nil {
			n++
		}
	}
	return n
}

// Flush writes the first size bytes of the cached page to its place in the
// file.
func (p *Pager) Flush(pageNum uint32, size uint32) error {
	if p.file == nil {
		return ErrPagerClosed
	}
	if p.readOnly {
		return ErrReadOnly
	}
	if pageNum >= types.TableMaxPages {
		return fmt.Errorf("%w: %d >= %d", ErrPageOutOfBounds, pageNum, types.TableMaxPages)
	}
	page := p.pages[pageNum]
	if page == nil {
		return fmt.Errorf("%w: page %d", ErrPageNotCached, pageNum)
	}
	if size > types.PageSize {
		return fmt.Errorf("%w: %d > %d", ErrFlushSize, size, types.PageSize)
	}

	offset := int64(pageNum) * types.PageSize
	if _, err := p.file.WriteAt(page[:size], offset); err != nil {
		return fmt.Errorf("failed to write page %d: %w", pageNum, err)
	}

	p.logger.Debug("page flushed", "page", pageNum, "bytes", size)
	return nil
}

// Release drops the cached buffer for pageNum without writing it
func (p *Pager) Release(pageNum uint32) {
	if pageNum < types.TableMaxPages {
		p.pages[pageNum] = nil
	}
}

// Close closes the file and releases every cached page, flushed or not.
// Closing an already closed pager is a no-op.
func (p *Pager) Close() error {
	if p.file == nil {
		return nil
	}

	var syncErr error
	if !p.readOnly {
		syncErr = p.file.Sync()
	}
	err := p.file.Close()
	p.file = nil

	for i := range p.pages {
		p.pages[i] = nil
	}

	if syncErr != nil {
		return fmt.Errorf("failed to sync before close: %w", syncErr)
	}
	if err != nil {
		return fmt.Errorf("failed to close db file: %w", err)
	}
	p.logger.Debug("pager closed", "path", p.filePath)
	return nil
}
