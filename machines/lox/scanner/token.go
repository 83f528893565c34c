package scanner

import "fmt"

// Kind identifies a lexical token class.
type Kind int

const (
	Illegal Kind = iota
	EOF

	// Single-character tokens.
	LeftParen
	RightParen
	Minus
	Plus
	Slash
	Star

	// One or two character tokens.
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals.
	Identifier
	String
	Number

	// Keywords.
	And
	False
	Nil
	Or
	True
)

var kindNames = [...]string{
	Illegal:      "illegal",
	EOF:          "end",
	LeftParen:    "(",
	RightParen:   ")",
	Minus:        "-",
	Plus:         "+",
	Slash:        "/",
	Star:         "*",
	Bang:         "!",
	BangEqual:    "!=",
	Equal:        "=",
	EqualEqual:   "==",
	Greater:      ">",
	GreaterEqual: ">=",
	Less:         "<",
	LessEqual:    "<=",
	Identifier:   "identifier",
	String:       "string",
	Number:       "number",
	And:          "and",
	False:        "false",
	Nil:          "nil",
	Or:           "or",
	True:         "true",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var keywords = map[string]Kind{
	"and":   And,
	"false": False,
	"nil":   Nil,
	"or":    Or,
	"true":  True,
}

// Pos is a 1-based line and column in the source.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is one lexeme. Literal holds the decoded value for strings (string)
// and numbers (float64).
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal any
	Pos     Pos
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "end"
	}
	return t.Lexeme
}
