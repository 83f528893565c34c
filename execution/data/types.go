package data

// Types of a result value as a string.
type Types string

// The value types the machines can produce.
const (
	BOOL     Types = "bool"
	ERROR    Types = "error"
	FUNCTION Types = "function"
	INT      Types = "int"
	MAP      Types = "map"
	NUMBER   Types = "number"
	STRING   Types = "string"
	NONE     Types = "nil"
	FLOAT    Types = "float"
	LIST     Types = "list"
	TUPLE    Types = "tuple"
	SET      Types = "set"
)
