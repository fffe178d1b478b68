package internal

import "errors"

type operator string

const (
	opAdd operator = "add"
	opSub operator = "sub"
	opDiv operator = "div"
	opMul operator = "mul"
	opNeg operator = "neg"
	opLt  operator = "lt"
	opLte operator = "lte"
	opGt  operator = "gt"
	opGte operator = "gte"
)

var errUndefinedOp = errors.New("undefined operation")

type operatorApply func(arguments ...interface{}) (interface{}, error)

// operable is implemented by values that support arithmetic or ordering
type operable interface {
	getOperator(op operator) (operatorApply, error)
}

var binaryOperators = map[TokenType]operator{
	tkPlus:         opAdd,
	tkMinus:        opSub,
	tkSlash:        opDiv,
	tkStar:         opMul,
	tkLess:         opLt,
	tkLessEqual:    opLte,
	tkGreater:      opGt,
	tkGreaterEqual: opGte,
}

// binaryOperator binds a two-operand operation to its left operand
func binaryOperator(left interface{}, op func(x, y interface{}) (interface{}, error)) operatorApply {
	return func(arguments ...interface{}) (interface{}, error) {
		if len(arguments) != 1 {
			return nil, errUndefinedOp
		}
		return op(left, arguments[0])
	}
}
