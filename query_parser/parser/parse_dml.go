package parser

import (
	"fmt"
	"strconv"
	"strings"

	lex "RowDB/query_parser/lexer"
	"RowDB/types"
)

func (p *Parser) parseInsert() (*InsertStmt, error) {
	p.nextToken() // consume insert, or any word starting with it

	if p.curToken.Kind != lex.INT {
		return nil, fmt.Errorf("%w: expected id, got %s (%s)", ErrSyntax, p.curToken.Kind, p.curToken.Value)
	}
	if strings.HasPrefix(p.curToken.Value, "-") {
		return nil, ErrNegativeID
	}
	id, err := strconv.ParseUint(p.curToken.Value, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: id %s out of range", ErrSyntax, p.curToken.Value)
	}
	p.nextToken()

	username, err := p.parseValue("username", types.ColumnUsernameMaxLen)
	if err != nil {
		return nil, err
	}
	email, err := p.parseValue("email", types.ColumnEmailMaxLen)
	if err != nil {
		return nil, err
	}
	// words after the email are ignored

	return &InsertStmt{ID: uint32(id), Username: username, Email: email}, nil
}

// parseValue takes the current word as a field value of at most maxLen bytes
func (p *Parser) parseValue(field string, maxLen int) (string, error) {
	switch p.curToken.Kind {
	case lex.END, lex.INVALID:
		return "", fmt.Errorf("%w: expected %s", ErrSyntax, field)
	}
	value := p.curToken.Value
	if len(value) > maxLen {
		return "", fmt.Errorf("%w: %s is %d bytes, max %d", ErrStringTooLong, field, len(value), maxLen)
	}
	p.nextToken()
	return value, nil
}
