package lox

import (
	"strconv"
	"unicode"
)

// Scanner parses the input source and collects all the tokens that can be found
type Scanner struct {
	line    int
	start   int
	current int
	source  []rune
	tokens  []*Token
	errs    ScanErrors
}

// NewScanner creates a new Lox token scanner
func NewScanner(source string) *Scanner {
	scanner := new(Scanner)
	scanner.line = 1
	scanner.source = []rune(source)
	scanner.tokens = make([]*Token, 0)
	return scanner
}

// Scan scans the whole source in one go. The returned tokens always end with
// a single EOF token, even when errors were found.
func Scan(source string) ([]*Token, error) {
	return NewScanner(source).Scan()
}

// Scan reads the source and collect all the tokens that were found from the
// source. Lexical errors do not stop the scan, all of them are returned
// together as ScanErrors.
func (scanner *Scanner) Scan() ([]*Token, error) {
	if len(scanner.tokens) != 0 {
		return scanner.tokens, scanner.err()
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		scanner.scanToken()
	}
	scanner.tokens = append(
		scanner.tokens,
		NewToken(EOF, "", scanner.line),
	)
	return scanner.tokens, scanner.err()
}

func (scanner *Scanner) scanToken() {
	switch r := scanner.advance(); r {
	// Whitespaces
	case ' ', '\r', '\t':
	case '\n':
		scanner.line++
	// Single character tokens
	case '(':
		scanner.addToken(LEFT_PAREN)
	case ')':
		scanner.addToken(RIGHT_PAREN)
	case '{':
		scanner.addToken(LEFT_BRACE)
	case '}':
		scanner.addToken(RIGHT_BRACE)
	case ',':
		scanner.addToken(COMMA)
	case '.':
		scanner.addToken(DOT)
	case '-':
		scanner.addToken(MINUS)
	case '+':
		scanner.addToken(PLUS)
	case ';':
		scanner.addToken(SEMICOLON)
	case '*':
		scanner.addToken(STAR)
	// Double character tokens
	case '!':
		scanner.addToken(scanner.either('=', BANG_EQUAL, BANG))
	case '=':
		scanner.addToken(scanner.either('=', EQUAL_EQUAL, EQUAL))
	case '<':
		scanner.addToken(scanner.either('=', LESS_EQUAL, LESS))
	case '>':
		scanner.addToken(scanner.either('=', GREATER_EQUAL, GREATER))
	// Long lexemes
	case '/':
		if scanner.match('/') {
			// consume the comment, but keep the \n at the end of line so line
			// counting can work correctly
			for scanner.peek() != '\n' && scanner.hasNext() {
				scanner.advance()
			}
		} else {
			scanner.addToken(SLASH)
		}
	// Literals
	case '"':
		scanner.scanString()
	default:
		if isDigit(r) {
			scanner.scanNumber()
		} else if isBeginIdent(r) {
			scanner.scanIdentifier()
		} else {
			scanner.report("Unexpected character.")
		}
	}
}

func (scanner *Scanner) scanString() {
	// read until EOF or found a maching '"' --> our string includes \n
	for scanner.peek() != '"' && scanner.hasNext() {
		if scanner.peek() == '\n' {
			scanner.line++
		}
		scanner.advance()
	}

	if !scanner.hasNext() {
		scanner.report("Unterminated string.")
		return
	}

	// consume '"'
	scanner.advance()
	// content between '"' pair
	literal := string(scanner.source[scanner.start+1 : scanner.current-1])
	scanner.addLiteralToken(STRING, StringLiteral(literal))
}

func (scanner *Scanner) scanNumber() {
	// go through continuous digits
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
	// check if there's a '.' with following digits
	if scanner.peek() == '.' && isDigit(scanner.peekNext()) {
		scanner.advance()
		for isDigit(scanner.peek()) {
			scanner.advance()
		}
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	// NOTE: we're ignoring the error, since we have already verified that the
	// lexeme contains a valid 64-bit floating point.
	literal, _ := strconv.ParseFloat(lexeme, 64)
	scanner.addLiteralToken(NUMBER, NumberLiteral(literal))
}

func (scanner *Scanner) scanIdentifier() {
	for isIdentPart(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tokenType, isKeyword := Keywords[lexeme]
	if !isKeyword {
		scanner.addToken(IDENTIFIER)
		return
	}
	switch tokenType {
	case TRUE:
		scanner.addLiteralToken(TRUE, BoolLiteral(true))
	case FALSE:
		scanner.addLiteralToken(FALSE, BoolLiteral(false))
	case NIL:
		scanner.addLiteralToken(NIL, NilLiteral{})
	default:
		scanner.addToken(tokenType)
	}
}

// addToken appends the lexeme from `start` to `current` as a token of the given
// type
func (scanner *Scanner) addToken(typ TokenType) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	scanner.tokens = append(scanner.tokens, NewToken(typ, lexeme, scanner.line))
}

// addLiteralToken is addToken for tokens that carry a literal
func (scanner *Scanner) addLiteralToken(typ TokenType, literal Literal) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := NewLiteralToken(typ, lexeme, literal, scanner.line)
	scanner.tokens = append(scanner.tokens, tok)
}

func (scanner *Scanner) report(message string) {
	scanner.errs = append(scanner.errs, &ScanError{scanner.line, message})
}

func (scanner *Scanner) err() error {
	if len(scanner.errs) == 0 {
		return nil
	}
	return scanner.errs
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current possible
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// match checks if the rune at the current possition is equal to the given rune,
// if they are equal, consumes the rune at the current position.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() {
		return false
	}
	if scanner.source[scanner.current] != expected {
		return false
	}
	scanner.current++
	return true
}

// either returns `matched` if the next rune is `expected`, `otherwise` if not
func (scanner *Scanner) either(expected rune, matched, otherwise TokenType) TokenType {
	if scanner.match(expected) {
		return matched
	}
	return otherwise
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// peekNext returns the rune at the next position, but does not consume it
func (scanner *Scanner) peekNext() rune {
	if scanner.current+1 >= len(scanner.source) {
		return '\x00'
	}
	return scanner.source[scanner.current+1]
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isBeginIdent(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return isBeginIdent(r) || unicode.IsDigit(r)
}
