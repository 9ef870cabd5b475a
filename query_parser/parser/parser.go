package parser

import (
	"errors"
	"fmt"

	lex "RowDB/query_parser/lexer"
)

var (
	ErrUnrecognizedStatement = errors.New("unrecognized keyword at start of statement")
	ErrSyntax                = errors.New("syntax error: could not parse statement")
	ErrNegativeID            = errors.New("ID must be positive")
	ErrStringTooLong         = errors.New("string is too long")
)

type Parser struct {
	l         *lex.Lexer
	curToken  lex.Token
	peekToken lex.Token
}

func New(l *lex.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// Entry point
func (p *Parser) ParseStatement() (Statement, error) {
	switch p.curToken.Kind {
	case lex.META:
		// meta commands are whole lines, ".exit now" is not .exit
		if p.peekToken.Kind != lex.END {
			return nil, fmt.Errorf("%w: %q", ErrUnrecognizedStatement, p.curToken.Value)
		}
		return &MetaStmt{Command: p.curToken.Value}, nil
	case lex.SELECT:
		if p.peekToken.Kind != lex.END {
			return nil, fmt.Errorf("%w: select takes no arguments", ErrUnrecognizedStatement)
		}
		return &SelectStmt{}, nil
	case lex.INSERT:
		stmt, err := p.parseInsert()
		if err != nil {
			return nil, err
		}
		return stmt, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnrecognizedStatement, p.curToken.Value)
}
