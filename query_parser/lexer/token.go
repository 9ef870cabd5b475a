package lex

type TokenKind int

const (
	// identifier
	IDENT TokenKind = iota

	// keywords
	INSERT
	SELECT

	INT
	META // meta command such as .exit
	END
	INVALID
)

type Token struct {
	Kind  TokenKind
	Value string
}

func (tk TokenKind) String() string {
	switch tk {
	case IDENT:
		return "IDENT"
	case INSERT:
		return "INSERT"
	case SELECT:
		return "SELECT"
	case INT:
		return "INT"
	case META:
		return "META"
	case END:
		return "END"
	case INVALID:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}
