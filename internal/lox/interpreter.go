package lox

// Interpreter exposes methods for evaluating then given Lox syntax tree. This
// struct implements ExprVisitor. It holds no state, evaluating the same tree
// twice gives the same result.
type Interpreter struct{}

func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Evaluate reduces the syntax tree to a single value.
func Evaluate(expr Expr) (Value, error) {
	return NewInterpreter().Evaluate(expr)
}

// Evaluate walks the tree in post-order and returns the resulting value, or
// the first error that happened.
func (in *Interpreter) Evaluate(expr Expr) (Value, error) {
	val, err := expr.Accept(in)
	if err != nil {
		return nil, err
	}
	return val.(Value), nil
}

func (in *Interpreter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	lhs, err := in.Evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	rhs, err := in.Evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG_EQUAL:
		return BoolValue(!lhs.Equal(rhs)), nil
	case EQUAL_EQUAL:
		return BoolValue(lhs.Equal(rhs)), nil

	case GREATER, GREATER_EQUAL, LESS, LESS_EQUAL, MINUS, SLASH, STAR:
		leftNum, rightNum, err := numberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return arithmetic(expr.Op, leftNum, rightNum)

	case PLUS:
		if leftNum, okLeft := lhs.(NumberValue); okLeft {
			if rightNum, okRight := rhs.(NumberValue); okRight {
				return leftNum + rightNum, nil
			}
		}
		if leftStr, okLeft := lhs.(StringValue); okLeft {
			if rightStr, okRight := rhs.(StringValue); okRight {
				return leftStr + rightStr, nil
			}
		}
		return nil, NewRuntimeError(expr.Op, "Expected string or number operands.")
	}
	return nil, NewInternalError(locationOf(expr.Op), "Unsupported binary operator.")
}

func (in *Interpreter) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	return in.Evaluate(expr.Expression)
}

func (in *Interpreter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return expr.Val.value(), nil
}

func (in *Interpreter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	val, err := in.Evaluate(expr.Expression)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG:
		return BoolValue(!val.Truthy()), nil
	case MINUS:
		num, ok := val.(NumberValue)
		if !ok {
			return nil, NewRuntimeError(expr.Op, "Couldn't parse number.")
		}
		return -num, nil
	}
	return nil, NewInternalError(locationOf(expr.Op), "Unsupported unary operator.")
}

func numberOperands(op *Token, lhs, rhs Value) (NumberValue, NumberValue, error) {
	leftNum, okLeft := lhs.(NumberValue)
	rightNum, okRight := rhs.(NumberValue)
	if !okLeft || !okRight {
		return 0, 0, NewRuntimeError(op, "Couldn't parse number.")
	}
	return leftNum, rightNum, nil
}

// arithmetic applies a numeric operator, division by zero follows IEEE 754
// and gives an infinity or NaN.
func arithmetic(op *Token, lhs, rhs NumberValue) (Value, error) {
	switch op.Typ {
	case GREATER:
		return BoolValue(lhs > rhs), nil
	case GREATER_EQUAL:
		return BoolValue(lhs >= rhs), nil
	case LESS:
		return BoolValue(lhs < rhs), nil
	case LESS_EQUAL:
		return BoolValue(lhs <= rhs), nil
	case MINUS:
		return lhs - rhs, nil
	case SLASH:
		return lhs / rhs, nil
	case STAR:
		return lhs * rhs, nil
	}
	return nil, NewInternalError(locationOf(op), "Unsupported numeric operator.")
}
