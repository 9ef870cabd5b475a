package table

import (
	"bytes"
	"encoding/binary"

	"RowDB/types"
)

// SerializeRow writes row into dst, which must be at least RowSize bytes.
// Text fields are NUL padded to their slot width and never written past it.
func SerializeRow(row *types.Row, dst []byte) {
	dst = dst[:types.RowSize]
	binary.LittleEndian.PutUint32(dst[types.IDOffset:types.IDOffset+types.IDSize], row.ID)
	putText(dst[types.UsernameOffset:types.UsernameOffset+types.UsernameSize], row.Username)
	putText(dst[types.EmailOffset:types.EmailOffset+types.EmailSize], row.Email)
}

// DeserializeRow decodes the row stored in the first RowSize bytes of src
func DeserializeRow(src []byte) types.Row {
	src = src[:types.RowSize]
	return types.Row{
		ID:       binary.LittleEndian.Uint32(src[types.IDOffset : types.IDOffset+types.IDSize]),
		Username: getText(src[types.UsernameOffset : types.UsernameOffset+types.UsernameSize]),
		Email:    getText(src[types.EmailOffset : types.EmailOffset+types.EmailSize]),
	}
}

func putText(slot []byte, s string) {
	n := copy(slot, s)
	clear(slot[n:])
}

func getText(slot []byte) string {
	if i := bytes.IndexByte(slot, 0); i >= 0 {
		slot = slot[:i]
	}
	return string(slot)
}
