/*
Package lox implements the front-to-back pipeline of a tree-walking interpreter
for the expression subset of Lox: Scan turns source text into tokens, Parse
builds one syntax tree out of them and Evaluate reduces the tree to a Value.

Grammar

	expression --> equality ;
	equality   --> comparison ( ( "!=" | "==" ) comparison )* ;
	comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
	term       --> factor ( ( "-" | "+" ) factor )* ;
	factor     --> unary ( ( "/" | "*" ) unary )* ;
	unary      --> ( "!" | "-" ) unary
	             | primary ;
	primary    --> NUMBER | STRING
	             | "true" | "false" | "nil"
	             | "(" expression ")" ;

Errors

The scanner keeps going after a lexical error and returns all of them as
ScanErrors. The parser stops at the first syntax error and returns a
*ParseError. The interpreter stops at the first type error and returns a
*RuntimeError. An *InternalError means the interpreter itself is broken and
carries no source line.

Values

Only nil and false are falsy. Equality never converts between types, so
`1 == "1"` is false. `+` adds two numbers or concatenates two strings, every
other arithmetic and comparison operator needs two numbers.
*/
package lox
