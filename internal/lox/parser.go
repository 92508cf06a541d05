package lox

// Parser composes the syntax tree for the Lox language from the sequence of
// valid tokens that follow the following grammar rule.
//
// Grammar
//
//	expression --> equality ;
//	equality   --> comparison ( ( "!=" | "==" ) comparison )* ;
//	comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
//	term       --> factor ( ( "-" | "+" ) factor )* ;
//	factor     --> unary ( ( "/" | "*" ) unary )* ;
//	unary      --> ( "!" | "-" ) unary
//	             | primary ;
//	primary    --> NUMBER | STRING
//	             | "true" | "false" | "nil"
//	             | "(" expression ")" ;
//
// The parser stops at the first syntax error, there is no synchronization.
type Parser struct {
	current int
	tokens  []*Token
}

// NewParser creates a new parse for the Lox language
func NewParser(tokens []*Token) *Parser {
	return &Parser{0, tokens}
}

// Parse builds the syntax tree of a single expression from the given tokens.
func Parse(tokens []*Token) (Expr, error) {
	return NewParser(tokens).Parse()
}

// Parse returns the syntax tree of the whole token sequence, or the first
// syntax error that was found.
func (parser *Parser) Parse() (Expr, error) {
	if n := len(parser.tokens); n == 0 || parser.tokens[n-1].Typ != EOF {
		return nil, NewInternalError("", "Token sequence must end with EOF.")
	}
	parser.current = 0
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if !parser.isEOF() {
		return nil, NewParseError(parser.peek(), "Expect end of expression.")
	}
	return expr, nil
}

// expression --> equality ;
func (parser *Parser) expression() (Expr, error) {
	return parser.equality()
}

// Creates a left-associative nested tree of binary operator nodes. Match a
// higher precedence rule `comparison` if does not hits "!=" or "==".
//
// equality --> comparison ( ( "!=" | "==" ) comparison )* ;
func (parser *Parser) equality() (Expr, error) {
	return parser.leftAssoc(parser.comparison, BANG_EQUAL, EQUAL_EQUAL)
}

// comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
func (parser *Parser) comparison() (Expr, error) {
	return parser.leftAssoc(parser.term, GREATER, GREATER_EQUAL, LESS, LESS_EQUAL)
}

// term --> factor ( ( "-" | "+" ) factor )* ;
func (parser *Parser) term() (Expr, error) {
	return parser.leftAssoc(parser.factor, MINUS, PLUS)
}

// factor --> unary ( ( "/" | "*" ) unary )* ;
func (parser *Parser) factor() (Expr, error) {
	return parser.leftAssoc(parser.unary, SLASH, STAR)
}

// leftAssoc folds `operand ( op operand )*` into a left-deep tree of binary
// expressions, so "1 - 2 - 3" becomes "(1 - 2) - 3".
func (parser *Parser) leftAssoc(
	operand func() (Expr, error),
	ops ...TokenType,
) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for parser.match(ops...) {
		op := parser.prev()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// unary --> ( "!" | "-" ) unary | primary ;
func (parser *Parser) unary() (Expr, error) {
	if parser.match(BANG, MINUS) {
		op := parser.prev()
		expr, err := parser.unary()
		if err != nil {
			return nil, err
		}
		return NewUnaryExpr(op, expr), nil
	}
	return parser.primary()
}

// primary --> NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")" ;
func (parser *Parser) primary() (Expr, error) {
	if parser.match(FALSE, TRUE, NIL, NUMBER, STRING) {
		tok := parser.prev()
		lit, ok := tok.Literal()
		if !ok {
			return nil, NewInternalError(
				locationOf(tok),
				"Literal token carries no value.",
			)
		}
		return NewLiteralExpr(lit), nil
	}
	if parser.match(LEFT_PAREN) {
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if err := parser.consume(
			RIGHT_PAREN,
			"Expect ')' after expression.",
		); err != nil {
			return nil, err
		}
		return NewGroupingExpr(expr), nil
	}
	return nil, NewParseError(parser.peek(), "Expect expression.")
}

func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) consume(typ TokenType, message string) error {
	if parser.check(typ) {
		parser.advance()
		return nil
	}
	return NewParseError(parser.peek(), message)
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

func (parser *Parser) advance() *Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == EOF
}

func (parser *Parser) peek() *Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *Token {
	return parser.tokens[parser.current-1]
}
