package lox

import "fmt"

// Token represents group a characters with additional information that was
// obtained during the scanning phase. Only string, number and the keyword
// literals carry a literal payload.
type Token struct {
	Typ    TokenType
	Lexeme string
	Line   int
	lit    Literal
}

// NewToken creates a token that carries no literal payload
func NewToken(typ TokenType, lexeme string, line int) *Token {
	return &Token{Typ: typ, Lexeme: lexeme, Line: line}
}

// NewLiteralToken creates a token that carries the given literal payload
func NewLiteralToken(typ TokenType, lexeme string, lit Literal, line int) *Token {
	return &Token{Typ: typ, Lexeme: lexeme, Line: line, lit: lit}
}

// Literal returns the token's literal payload, the second value is false if
// the token is not a literal token.
func (t *Token) Literal() (Literal, bool) {
	return t.lit, t.lit != nil
}

func (t *Token) String() string {
	if t.lit == nil {
		return fmt.Sprintf("%s %s", t.Typ, t.Lexeme)
	}
	return fmt.Sprintf("%s %s %s", t.Typ, t.Lexeme, t.lit)
}

// Literal is the payload of a literal token. The set of implementations is
// closed to this package.
type Literal interface {
	fmt.Stringer
	value() Value
}

type (
	StringLiteral string
	NumberLiteral float64
	BoolLiteral   bool
	NilLiteral    struct{}
)

func (lit StringLiteral) String() string { return string(lit) }
func (lit NumberLiteral) String() string { return formatNumber(float64(lit)) }
func (lit BoolLiteral) String() string   { return fmt.Sprint(bool(lit)) }
func (lit NilLiteral) String() string    { return "nil" }

// Keywords maps reserved words to their token types
var Keywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// TokenType is the kind of a token
type TokenType uint

const (
	// Single-character tokens
	LEFT_PAREN TokenType = iota
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	COMMA
	DOT
	MINUS
	PLUS
	SEMICOLON
	SLASH
	STAR

	// One or two chracter tokens
	BANG
	BANG_EQUAL
	EQUAL
	EQUAL_EQUAL
	GREATER
	GREATER_EQUAL
	LESS
	LESS_EQUAL

	// Literals
	IDENTIFIER
	STRING
	NUMBER

	// Keywords
	AND
	CLASS
	ELSE
	FALSE
	FUN
	FOR
	IF
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE

	EOF
)

var tokenTypeNames = [...]string{
	LEFT_PAREN:    "(",
	RIGHT_PAREN:   ")",
	LEFT_BRACE:    "{",
	RIGHT_BRACE:   "}",
	COMMA:         ",",
	DOT:           ".",
	MINUS:         "-",
	PLUS:          "+",
	SEMICOLON:     ";",
	SLASH:         "/",
	STAR:          "*",
	BANG:          "!",
	BANG_EQUAL:    "!=",
	EQUAL:         "=",
	EQUAL_EQUAL:   "==",
	GREATER:       ">",
	GREATER_EQUAL: ">=",
	LESS:          "<",
	LESS_EQUAL:    "<=",
	IDENTIFIER:    "IDENTIFIER",
	STRING:        "STRING",
	NUMBER:        "NUMBER",
	AND:           "AND",
	CLASS:         "CLASS",
	ELSE:          "ELSE",
	FALSE:         "FALSE",
	FUN:           "FUN",
	FOR:           "FOR",
	IF:            "IF",
	NIL:           "NIL",
	OR:            "OR",
	PRINT:         "PRINT",
	RETURN:        "RETURN",
	SUPER:         "SUPER",
	THIS:          "THIS",
	TRUE:          "TRUE",
	VAR:           "VAR",
	WHILE:         "WHILE",
	EOF:           "EOF",
}

func (tt TokenType) String() string {
	if int(tt) < len(tokenTypeNames) {
		return tokenTypeNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", uint(tt))
}
