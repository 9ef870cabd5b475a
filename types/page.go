package types

const (
	PageSize      = 4096 // 4KB page
	TableMaxPages = 100  // hard upper bound on the number of pages a table may use

	RowsPerPage  = PageSize / RowSize
	TableMaxRows = RowsPerPage * TableMaxPages

	// bytes at the end of every full page that never hold a row
	PageSlack = PageSize - RowsPerPage*RowSize
)

// DefaultDBPath is used when no database file is given on the command line
const DefaultDBPath = "mydb.cdb"
