// Inspect a database file: layout summary and every row with its page and offset.
// Usage: go run ./cmd/inspect_db <path-to-db>
// Example: go run ./cmd/inspect_db mydb.cdb
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"RowDB/table"
)

var CLI struct {
	Path string `arg:"" help:"Database file to inspect" type:"existingfile"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("inspect_db"),
		kong.Description("Print a human-readable dump of a database file."),
	)

	if err := table.InspectFile(CLI.Path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
