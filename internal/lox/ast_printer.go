package lox

import "strings"

//go:generate go run ../cmd/ast_codegen ../lox

// AstPrinter renders an expression in a fully parenthesized prefix form, e.g.
// `1 + 2 * 3` becomes `(+ 1 (* 2 3))`.
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	// the printer never fails
	s, _ := expr.Accept(printer)
	return s.(string)
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, expr.Left, expr.Right), nil
}

func (printer *AstPrinter) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	return printer.parenthesize("group", expr.Expression), nil
}

func (printer *AstPrinter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return expr.Val.String(), nil
}

func (printer *AstPrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, expr.Expression), nil
}

func (printer *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, expr := range exprs {
		b.WriteString(" ")
		b.WriteString(printer.Print(expr))
	}
	b.WriteString(")")
	return b.String()
}
