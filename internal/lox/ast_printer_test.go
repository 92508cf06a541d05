package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAstPrinter(t *testing.T) {
	testCases := []struct {
		expr Expr
		want string
	}{
		{lit(123.0), "123"},
		{lit(45.67), "45.67"},
		{lit("str"), "str"},
		{lit(true), "true"},
		{lit(nil), "nil"},
		{NewUnaryExpr(tokOp(MINUS), lit(5.0)), "(- 5)"},
		{
			NewBinaryExpr(
				tokOp(STAR),
				NewUnaryExpr(tokOp(MINUS), lit(123.0)),
				NewGroupingExpr(lit(45.67))),
			"(* (- 123) (group 45.67))",
		},
		{
			NewBinaryExpr(
				tokOp(PLUS),
				lit(1.0),
				NewBinaryExpr(tokOp(STAR), lit(2.0), lit(3.0))),
			"(+ 1 (* 2 3))",
		},
	}

	printer := &AstPrinter{}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, printer.Print(tc.expr))
	}
}
