package parser

// Statement is a generic interface for all statements
type Statement interface{}

// INSERT statement: insert <id> <username> <email>
type InsertStmt struct {
	ID       uint32
	Username string
	Email    string
}

// SELECT statement, always a full scan
type SelectStmt struct {
}

// MetaStmt is a dot command such as .exit
type MetaStmt struct {
	Command string
}
