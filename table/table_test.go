package table

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"RowDB/internal/logging"
	"RowDB/types"
)

func connectTestTable(t *testing.T, path string, opts ...Option) *Table {
	t.Helper()
	opts = append([]Option{WithLogger(logging.Discard())}, opts...)
	tbl, err := Connect(path, opts...)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	return tbl
}

func collect(t *testing.T, tbl *Table) []types.Row {
	t.Helper()
	var rows []types.Row
	for row, err := range tbl.Scan() {
		if err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		rows = append(rows, row)
	}
	return rows
}

func testRow(i int) types.Row {
	return types.Row{
		ID:       uint32(i),
		Username: fmt.Sprintf("user%d", i),
		Email:    fmt.Sprintf("user%d@example.com", i),
	}
}

func TestInsertSelectReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	want := []types.Row{
		{ID: 1, Username: "alice", Email: "a@x.com"},
		{ID: 2, Username: "bob", Email: "b@x.com"},
	}

	tbl := connectTestTable(t, path)
	for _, row := range want {
		if err := tbl.Insert(row); err != nil {
			t.Fatalf("Insert(%+v): %v", row, err)
		}
	}
	assertRows(t, collect(t, tbl), want)
	if err := tbl.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	tbl = connectTestTable(t, path)
	defer tbl.Close()
	if tbl.NumRows() != 2 {
		t.Fatalf("NumRows after reopen = %d, want 2", tbl.NumRows())
	}
	assertRows(t, collect(t, tbl), want)
}

func assertRows(t *testing.T, got, want []types.Row) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestScanOnEmptyTable(t *testing.T) {
	tbl := connectTestTable(t, filepath.Join(t.TempDir(), "test.db"))
	defer tbl.Close()

	if rows := collect(t, tbl); len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestScanIsRestartable(t *testing.T) {
	tbl := connectTestTable(t, filepath.Join(t.TempDir(), "test.db"))
	defer tbl.Close()

	for i := 0; i < 20; i++ {
		if err := tbl.Insert(testRow(i)); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	// stop early, then scan again from the start
	n := 0
	for range tbl.Scan() {
		n++
		if n == 5 {
			break
		}
	}
	rows := collect(t, tbl)
	if len(rows) != 20 || rows[0].ID != 0 || rows[19].ID != 19 {
		t.Errorf("second scan returned %d rows", len(rows))
	}
	if tbl.NumRows() != 20 {
		t.Errorf("scan changed NumRows to %d", tbl.NumRows())
	}
}

func TestTableFull(t *testing.T) {
	tbl := connectTestTable(t, filepath.Join(t.TempDir(), "test.db"))
	defer tbl.Close()

	for i := 0; i < types.TableMaxRows; i++ {
		if err := tbl.Insert(testRow(i)); err != nil {
			t.Fatalf("Insert %d: %v", i, err)
		}
	}
	err := tbl.Insert(testRow(types.TableMaxRows))
	if !errors.Is(err, ErrTableFull) {
		t.Fatalf("expected ErrTableFull, got %v", err)
	}
	if tbl.NumRows() != types.TableMaxRows {
		t.Errorf("NumRows = %d, want %d", tbl.NumRows(), types.TableMaxRows)
	}
}

func TestInsertRejectsInvalidRow(t *testing.T) {
	tbl := connectTestTable(t, filepath.Join(t.TempDir(), "test.db"))
	defer tbl.Close()

	long := types.Row{ID: 1, Username: string(make([]byte, types.ColumnUsernameMaxLen+1))}
	if err := tbl.Insert(long); !errors.Is(err, types.ErrStringTooLong) {
		t.Errorf("expected ErrStringTooLong, got %v", err)
	}
	if err := tbl.Insert(types.Row{ID: 2, Email: "a\x00b"}); !errors.Is(err, types.ErrInvalidString) {
		t.Errorf("expected ErrInvalidString, got %v", err)
	}
	if tbl.NumRows() != 0 {
		t.Errorf("rejected rows changed NumRows to %d", tbl.NumRows())
	}
}

func TestReopenAcrossPages(t *testing.T) {
	for _, n := range []int{1, types.RowsPerPage, types.RowsPerPage + 1, 2 * types.RowsPerPage, 5*types.RowsPerPage + 7, types.TableMaxRows} {
		t.Run(fmt.Sprintf("rows=%d", n), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "test.db")
			tbl := connectTestTable(t, path)
			for i := 0; i < n; i++ {
				if err := tbl.Insert(testRow(i)); err != nil {
					t.Fatalf("Insert %d: %v", i, err)
				}
			}
			if err := tbl.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}

			tbl = connectTestTable(t, path)
			defer tbl.Close()
			if tbl.NumRows() != uint32(n) {
				t.Fatalf("NumRows = %d, want %d", tbl.NumRows(), n)
			}
			rows := collect(t, tbl)
			for i, row := range rows {
				if row != testRow(i) {
					t.Fatalf("row %d = %+v, want %+v", i, row, testRow(i))
				}
			}
		})
	}
}

func TestPartialPageFlushLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	n := 2*types.RowsPerPage + 3

	tbl := connectTestTable(t, path)
	for i := 0; i < n; i++ {
		if err := tbl.Insert(testRow(i)); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if err := tbl.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	want := int64(2*types.PageSize + 3*types.RowSize)
	if info.Size() != want {
		t.Fatalf("file length = %d, want %d", info.Size(), want)
	}

	tbl = connectTestTable(t, path)
	defer tbl.Close()
	if tbl.NumRows() != uint32(n) {
		t.Errorf("NumRows = %d, want %d", tbl.NumRows(), n)
	}
}

func TestFirstPageFileLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	tbl := connectTestTable(t, path)
	for i := 0; i < 5; i++ {
		if err := tbl.Insert(testRow(i)); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if err := tbl.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() != 5*types.RowSize {
		t.Errorf("file length = %d, want %d", info.Size(), 5*types.RowSize)
	}
}

func TestAppendToExistingPartialPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for session := 0; session < 3; session++ {
		tbl := connectTestTable(t, path)
		for i := 0; i < 10; i++ {
			if err := tbl.Insert(testRow(session*10 + i)); err != nil {
				t.Fatalf("Insert: %v", err)
			}
		}
		if err := tbl.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}

	tbl := connectTestTable(t, path)
	defer tbl.Close()
	rows := collect(t, tbl)
	if len(rows) != 30 {
		t.Fatalf("got %d rows, want 30", len(rows))
	}
	for i, row := range rows {
		if row != testRow(i) {
			t.Fatalf("row %d = %+v, want %+v", i, row, testRow(i))
		}
	}
}

func TestTrailingPartialRowIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	tbl := connectTestTable(t, path)
	for i := 0; i < 3; i++ {
		if err := tbl.Insert(testRow(i)); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if err := tbl.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.Write(make([]byte, types.RowSize-1)); err != nil {
		t.Fatalf("append garbage: %v", err)
	}
	f.Close()

	tbl = connectTestTable(t, path)
	defer tbl.Close()
	if tbl.NumRows() != 3 {
		t.Errorf("NumRows = %d, want 3", tbl.NumRows())
	}
}

func TestRowsForLength(t *testing.T) {
	tests := []struct {
		length int64
		want   uint32
	}{
		{0, 0},
		{types.RowSize - 1, 0},
		{types.RowSize, 1},
		{3*types.RowSize + 10, 3},
		{types.PageSize, types.RowsPerPage},
		{types.PageSize + types.RowSize, types.RowsPerPage + 1},
		{4 * types.PageSize, 4 * types.RowsPerPage},
		{1 << 40, types.TableMaxRows},
	}
	for _, tt := range tests {
		if got := rowsForLength(tt.length); got != tt.want {
			t.Errorf("rowsForLength(%d) = %d, want %d", tt.length, got, tt.want)
		}
	}
}

func TestCloseOnlyFlushesTouchedPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	tbl := connectTestTable(t, path)
	for i := 0; i < 3*types.RowsPerPage; i++ {
		if err := tbl.Insert(testRow(i)); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if err := tbl.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// corrupt page 0 on disk, then touch only the last page
	f, err := os.OpenFile(path, os.O_WRONLY, 0600)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.WriteAt([]byte{0xFF, 0xFF, 0xFF, 0xFF}, 0); err != nil {
		t.Fatalf("write: %v", err)
	}
	f.Close()

	tbl = connectTestTable(t, path)
	if err := tbl.Insert(testRow(999)); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got := tbl.Stats().CachedPages; got != 1 {
		t.Errorf("CachedPages = %d, want 1", got)
	}
	if err := tbl.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	tbl = connectTestTable(t, path)
	defer tbl.Close()
	row, err := tbl.Row(0)
	if err != nil {
		t.Fatalf("Row(0): %v", err)
	}
	if row.ID != 0xFFFFFFFF {
		t.Errorf("untouched page 0 was rewritten: id = %d", row.ID)
	}
}

func TestUseAfterClose(t *testing.T) {
	tbl := connectTestTable(t, filepath.Join(t.TempDir(), "test.db"))
	if err := tbl.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := tbl.Close(); err != nil {
		t.Errorf("second Close = %v, want nil", err)
	}
	if err := tbl.Insert(testRow(1)); !errors.Is(err, ErrTableClosed) {
		t.Errorf("Insert after Close = %v, want ErrTableClosed", err)
	}
	if _, err := tbl.Row(0); !errors.Is(err, ErrTableClosed) {
		t.Errorf("Row after Close = %v, want ErrTableClosed", err)
	}
}

func TestRowOutOfRange(t *testing.T) {
	tbl := connectTestTable(t, filepath.Join(t.TempDir(), "test.db"))
	defer tbl.Close()

	if err := tbl.Insert(testRow(1)); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := tbl.Row(1); !errors.Is(err, ErrRowOutOfRange) {
		t.Errorf("expected ErrRowOutOfRange, got %v", err)
	}
}

func TestRowCacheDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	tbl := connectTestTable(t, path, WithRowCacheSize(0))
	defer tbl.Close()

	if tbl.rowCache != nil {
		t.Fatalf("expected row cache to be disabled")
	}
	if err := tbl.Insert(testRow(3)); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	row, err := tbl.Row(0)
	if err != nil || row != testRow(3) {
		t.Errorf("Row(0) = %+v, %v", row, err)
	}
}

func TestRowCacheServesDecodedRows(t *testing.T) {
	tbl := connectTestTable(t, filepath.Join(t.TempDir(), "test.db"))
	defer tbl.Close()

	if err := tbl.Insert(testRow(5)); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	tbl.rowCache.wait()

	// scribble over the page; a cache hit still returns the inserted row
	page, offset, err := tbl.RowAddress(0)
	if err != nil {
		t.Fatalf("RowAddress: %v", err)
	}
	cached, ok := tbl.rowCache.get(0)
	if !ok {
		t.Skip("ristretto dropped the admission; nothing to assert")
	}
	page[offset] ^= 0xFF
	row, err := tbl.Row(0)
	if err != nil {
		t.Fatalf("Row: %v", err)
	}
	if row != cached {
		t.Errorf("Row(0) = %+v, want cached %+v", row, cached)
	}
}

func TestConnectFailure(t *testing.T) {
	_, err := Connect(filepath.Join(t.TempDir(), "missing", "test.db"), WithLogger(logging.Discard()))
	if err == nil {
		t.Fatalf("expected error for missing directory")
	}
	var pathErr *os.PathError
	if !errors.As(err, &pathErr) {
		t.Errorf("expected wrapped *os.PathError, got %T", err)
	}
}

func TestLengthForRows(t *testing.T) {
	for _, n := range []uint32{0, 1, types.RowsPerPage - 1, types.RowsPerPage, 2*types.RowsPerPage + 3, types.TableMaxRows} {
		length := lengthForRows(n)
		if got := rowsForLength(length); got != n {
			t.Errorf("rowsForLength(lengthForRows(%d)) = %d", n, got)
		}
	}
	if got := lengthForRows(2*types.RowsPerPage + 3); got != 2*types.PageSize+3*types.RowSize {
		t.Errorf("lengthForRows = %d", got)
	}
}

func TestStatsDataLengthTracksInserts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	tbl := connectTestTable(t, path)
	for i := 0; i < types.RowsPerPage+2; i++ {
		if err := tbl.Insert(testRow(i)); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	s := tbl.Stats()
	if s.FileLength != 0 {
		t.Errorf("FileLength = %d, want length at open 0", s.FileLength)
	}
	if err := tbl.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if s.DataLength != info.Size() {
		t.Errorf("DataLength = %d, file is %d bytes after close", s.DataLength, info.Size())
	}
}
