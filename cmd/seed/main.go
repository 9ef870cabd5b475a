// Seed program: appends generated rows to a database file.
// Run: go run ./cmd/seed --rows 40 mydb.cdb
// Then inspect: go run ./cmd/inspect_db mydb.cdb
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"RowDB/internal/logging"
	"RowDB/table"
	"RowDB/types"
)

var CLI struct {
	Path     string `arg:"" optional:"" default:"${db_path}" help:"Database file to append to" type:"path"`
	Rows     int    `short:"n" default:"20" help:"Number of rows to insert"`
	StartID  uint32 `name:"start-id" default:"1" help:"ID of the first generated row"`
	LogLevel string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("seed"),
		kong.Description("Append generated rows to a database file."),
		kong.Vars{"db_path": types.DefaultDBPath},
	)

	level, err := logging.ParseLevel(CLI.LogLevel)
	ctx.FatalIfErrorf(err)
	logger := logging.New(os.Stderr, level, logging.FormatText)

	tbl, err := table.Connect(CLI.Path, table.WithLogger(logger))
	ctx.FatalIfErrorf(err)

	inserted := 0
	for i := 0; i < CLI.Rows; i++ {
		id := CLI.StartID + uint32(i)
		row := types.Row{
			ID:       id,
			Username: fmt.Sprintf("user%d", id),
			Email:    fmt.Sprintf("user%d@example.com", id),
		}
		if err := tbl.Insert(row); err != nil {
			if errors.Is(err, table.ErrTableFull) {
				logger.Warn("table full, stopping early", "inserted", inserted)
				break
			}
			tbl.Close()
			ctx.FatalIfErrorf(err)
		}
		inserted++
	}

	if err := tbl.Close(); err != nil {
		ctx.FatalIfErrorf(err)
	}
	fmt.Printf("Inserted %d rows into %s\n", inserted, CLI.Path)
}
