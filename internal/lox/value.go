package lox

import (
	"math"
	"strconv"
)

// Value is a runtime value produced by the interpreter. Every variant decides
// its own truthiness and equality.
type Value interface {
	String() string
	Truthy() bool
	Equal(other Value) bool
}

type (
	StringValue string
	NumberValue float64
	BoolValue   bool
	NilValue    struct{}
)

func (v StringValue) String() string { return string(v) }
func (v NumberValue) String() string { return formatNumber(float64(v)) }
func (v BoolValue) String() string   { return strconv.FormatBool(bool(v)) }
func (v NilValue) String() string    { return "nil" }

// Only nil and false are falsy, everything else, including 0 and "", is truthy.
func (v StringValue) Truthy() bool { return true }
func (v NumberValue) Truthy() bool { return true }
func (v BoolValue) Truthy() bool   { return bool(v) }
func (v NilValue) Truthy() bool    { return false }

func (v StringValue) Equal(other Value) bool {
	o, ok := other.(StringValue)
	return ok && v == o
}

func (v NumberValue) Equal(other Value) bool {
	o, ok := other.(NumberValue)
	return ok && v == o
}

func (v BoolValue) Equal(other Value) bool {
	o, ok := other.(BoolValue)
	return ok && v == o
}

func (v NilValue) Equal(other Value) bool {
	_, ok := other.(NilValue)
	return ok
}

func (lit StringLiteral) value() Value { return StringValue(lit) }
func (lit NumberLiteral) value() Value { return NumberValue(lit) }
func (lit BoolLiteral) value() Value   { return BoolValue(lit) }
func (lit NilLiteral) value() Value    { return NilValue{} }

func formatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	case math.IsNaN(n):
		return "NaN"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
