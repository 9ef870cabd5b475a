package types

import "errors"

// Column capacities, in bytes of content
const (
	ColumnUsernameMaxLen = 32
	ColumnEmailMaxLen    = 255
)

// On-disk row layout. Each text slot keeps one spare byte for the NUL
// terminator so a maximum length value is still NUL padded.
const (
	IDSize       = 4
	UsernameSize = ColumnUsernameMaxLen + 1
	EmailSize    = ColumnEmailMaxLen + 1

	IDOffset       = 0
	UsernameOffset = IDOffset + IDSize
	EmailOffset    = UsernameOffset + UsernameSize

	RowSize = IDSize + UsernameSize + EmailSize
)

var (
	ErrStringTooLong = errors.New("string is too long")
	ErrInvalidString = errors.New("string contains a NUL byte")
)

// Row is a single fixed-width record
type Row struct {
	ID       uint32
	Username string
	Email    string
}

// Validate reports whether r fits the fixed layout and will decode back to
// the same value.
func (r *Row) Validate() error {
	if len(r.Username) > ColumnUsernameMaxLen || len(r.Email) > ColumnEmailMaxLen {
		return ErrStringTooLong
	}
	for i := 0; i < len(r.Username); i++ {
		if r.Username[i] == 0 {
			return ErrInvalidString
		}
	}
	for i := 0; i < len(r.Email); i++ {
		if r.Email[i] == 0 {
			return ErrInvalidString
		}
	}
	return nil
}

// RowPointer locates a row inside the table file
type RowPointer struct {
	PageNumber uint32 `json:"page_number"`
	Offset     uint32 `json:"offset"` // byte offset inside the page
}
