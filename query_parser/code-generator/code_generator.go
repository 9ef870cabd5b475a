package codegen

import (
	"fmt"
	"strconv"

	executor "RowDB/query_executor"
	"RowDB/query_parser/parser"
)

func EmitBytecode(stmt parser.Statement) ([]executor.Instruction, error) {

	instructions := []executor.Instruction{}

	switch s := stmt.(type) {

	case *parser.InsertStmt:
		// values are pushed in column order
		for _, v := range []string{strconv.FormatUint(uint64(s.ID), 10), s.Username, s.Email} {
			instructions = append(instructions, executor.Instruction{
				Op:    executor.OP_PUSH_VAL,
				Value: v,
			})
		}
		instructions = append(instructions, executor.Instruction{
			Op: executor.OP_INSERT,
		})

	case *parser.SelectStmt:
		instructions = append(instructions, executor.Instruction{
			Op: executor.OP_SELECT,
		})

	case *parser.MetaStmt:
		instructions = append(instructions, executor.Instruction{
			Op:    executor.OP_META,
			Value: s.Command,
		})

	default:
		return nil, fmt.Errorf("unsupported statement type %T", stmt)
	}

	instructions = append(instructions, executor.Instruction{Op: executor.OP_END})
	return instructions, nil
}
