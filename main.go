package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"RowDB/internal/logging"
	executor "RowDB/query_executor"
	codegen "RowDB/query_parser/code-generator"
	lex "RowDB/query_parser/lexer"
	"RowDB/query_parser/parser"
	"RowDB/table"
	"RowDB/types"
)

// CLI defines the command-line interface for the REPL.
var CLI struct {
	Path      string `arg:"" optional:"" default:"${db_path}" help:"Database file to read and write" type:"path"`
	LogLevel  string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format (text, json)"`
	RowCache  int64  `name:"row-cache" default:"1024" help:"Decoded rows kept in memory, 0 disables"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("rowdb"),
		kong.Description("A tiny persistent row store with an insert/select prompt."),
		kong.Vars{"db_path": types.DefaultDBPath},
	)

	level, err := logging.ParseLevel(CLI.LogLevel)
	ctx.FatalIfErrorf(err)
	format, err := logging.ParseFormat(CLI.LogFormat)
	ctx.FatalIfErrorf(err)
	logger := logging.New(os.Stderr, level, format)
	slog.SetDefault(logger)

	tbl, err := table.Connect(CLI.Path, table.WithLogger(logger), table.WithRowCacheSize(CLI.RowCache))
	if err != nil {
		logger.Error("failed to open db", "path", CLI.Path, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Welcome to %s \nWriting and Reading from db: %s\n", ctx.Model.Name, CLI.Path)
	runErr := repl(os.Stdin, os.Stdout, tbl)

	// the table is flushed on every way out of the prompt
	if err := tbl.Close(); err != nil {
		logger.Error("failed to close db", "path", CLI.Path, "error", err)
		os.Exit(1)
	}
	if runErr != nil {
		logger.Error("session aborted", "error", runErr)
		os.Exit(1)
	}
}

// repl reads one command per line until .exit or end of input
func repl(in io.Reader, out io.Writer, tbl *table.Table) error {
	vm := executor.NewVM(tbl, out)
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "db > ")

		if !scanner.Scan() { // Ctrl+D pressed
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		p := parser.New(lex.New(line))
		stmt, err := p.ParseStatement()
		if err != nil {
			fmt.Fprintln(out, prepareError(line, err))
			continue
		}

		instructions, err := codegen.EmitBytecode(stmt)
		if err != nil {
			fmt.Fprintf(out, "ERROR: %v\n", err)
			continue
		}

		_, isMeta := stmt.(*parser.MetaStmt)
		err = vm.Execute(instructions)
		switch {
		case errors.Is(err, executor.ErrExit):
			fmt.Fprintln(out, "GoodBye... ")
			return nil
		case errors.Is(err, executor.ErrUnrecognizedMeta):
			fmt.Fprintf(out, "ERROR: unrecognized command '%s'.\n", line)
		case errors.Is(err, table.ErrTableFull):
			fmt.Fprintln(out, "ERROR: table full. ")
		case errors.Is(err, types.ErrStringTooLong), errors.Is(err, types.ErrInvalidString):
			fmt.Fprintf(out, "ERROR: %v. \n", err)
		case err != nil:
			// storage failures leave the table unusable
			return fmt.Errorf("execute %q: %w", line, err)
		case !isMeta:
			fmt.Fprintln(out, "INFO: executed successfully. ")
		}
	}
}

func prepareError(line string, err error) string {
	switch {
	case errors.Is(err, parser.ErrNegativeID):
		return "ERROR: ID must be positive. "
	case errors.Is(err, parser.ErrStringTooLong):
		return "ERROR: string is too long. "
	case errors.Is(err, parser.ErrSyntax):
		return "ERROR: syntax error: couldnt parse statement. "
	case strings.HasPrefix(line, "."):
		return fmt.Sprintf("ERROR: unrecognized command '%s'.", line)
	default:
		return fmt.Sprintf("ERROR: unrecognized keyword at start of '%s'.", line)
	}
}
