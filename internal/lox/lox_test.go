package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokEOF(line int) *Token {
	return NewToken(EOF, "", line)
}

func tokOp(typ TokenType) *Token {
	return NewToken(typ, typ.String(), 1)
}

func tokNum(n float64) *Token {
	return NewLiteralToken(NUMBER, NumberLiteral(n).String(), NumberLiteral(n), 1)
}

func TestRun(t *testing.T) {
	testCases := []struct {
		src string
		val Value
	}{
		{"1 + 2 * 3", NumberValue(7)},
		{"(1 + 2) * 3", NumberValue(9)},
		{"1 - 2 - 3", NumberValue(-4)},
		{"1 == \"1\"", BoolValue(false)},
		{"nil == nil", BoolValue(true)},
		{"false == nil", BoolValue(false)},
		{"\"foo\" + \"bar\"", StringValue("foobar")},
		{"!nil", BoolValue(true)},
		{"!0", BoolValue(false)},
		{"!\"\"", BoolValue(false)},
		{"// nothing but\n1 // comments\n", NumberValue(1)},
		{"\"multi\nline\"", StringValue("multi\nline")},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		val, err := Run(tc.src)

		assert.NoError(err, tc.src)
		assert.Equal(tc.val, val, tc.src)
	}
}

func TestRunErrors(t *testing.T) {
	testCases := []struct {
		src    string
		static bool
		err    string
	}{
		{"@ + 1", true, "[line 1] Error: Unexpected character."},
		{"(1 + 2", true, "[line 1] Error at end: Expect ')' after expression."},
		{"\"foo\" + 1", false, "[line 1] Error at '+': Expected string or number operands."},
		{"-\"foo\"", false, "[line 1] Error at '-': Couldn't parse number."},
		{"1 <\n nil", false, "[line 1] Error at '<': Couldn't parse number."},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		val, err := Run(tc.src)

		assert.Nil(val, tc.src)
		assert.EqualError(err, tc.err, tc.src)
		assert.Equal(tc.static, IsStaticError(err), tc.src)
	}
}

func TestRunIsIndependent(t *testing.T) {
	_, err := Run("1 +")
	assert.Error(t, err)

	val, err := Run("1 + 1")
	assert.NoError(t, err)
	assert.Equal(t, NumberValue(2), val)
}
