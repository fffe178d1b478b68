package internal

import (
	"math"
	"strconv"
	"strings"
)

type henryInt int64

type henryFloat float64

var numberBinaryOperations = map[operator]func(x, y interface{}) (interface{}, error){
	opAdd: arithmetic(
		func(x, y int64) (int64, bool) {
			sum := x + y
			return sum, (x >= 0) == (y >= 0) && (sum >= 0) != (x >= 0)
		},
		func(x, y float64) float64 { return x + y },
	),
	opSub: arithmetic(
		func(x, y int64) (int64, bool) {
			diff := x - y
			return diff, (x >= 0) != (y >= 0) && (diff >= 0) != (x >= 0)
		},
		func(x, y float64) float64 { return x - y },
	),
	opMul: arithmetic(
		func(x, y int64) (int64, bool) {
			if x == 0 || y == 0 {
				return 0, false
			}
			product := x * y
			return product, product/y != x || (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64)
		},
		func(x, y float64) float64 { return x * y },
	),
	opDiv: func(x, y interface{}) (interface{}, error) {
		n1, ok1 := toFloat(x)
		n2, ok2 := toFloat(y)
		if !ok1 || !ok2 {
			return nil, ErrTypeError
		}
		if n2 == 0 {
			return nil, ErrDivisionByZero
		}
		return henryFloat(n1 / n2), nil
	},
	opLt: ordering(
		func(x, y int64) bool { return x < y },
		func(x, y float64) bool { return x < y },
	),
	opLte: ordering(
		func(x, y int64) bool { return x <= y },
		func(x, y float64) bool { return x <= y },
	),
	opGt: ordering(
		func(x, y int64) bool { return x > y },
		func(x, y float64) bool { return x > y },
	),
	opGte: ordering(
		func(x, y int64) bool { return x >= y },
		func(x, y float64) bool { return x >= y },
	),
}

// arithmetic keeps integers exact and promotes to float when either side is
// one. ints reports whether the exact result does not fit in an int64.
func arithmetic(ints func(x, y int64) (int64, bool), floats func(x, y float64) float64) func(x, y interface{}) (interface{}, error) {
	return func(x, y interface{}) (interface{}, error) {
		i1, ok1 := x.(henryInt)
		i2, ok2 := y.(henryInt)
		if ok1 && ok2 {
			result, overflow := ints(int64(i1), int64(i2))
			if overflow {
				return nil, ErrIntegerOverflow
			}
			return henryInt(result), nil
		}
		n1, ok1 := toFloat(x)
		n2, ok2 := toFloat(y)
		if !ok1 || !ok2 {
			return nil, ErrTypeError
		}
		return henryFloat(floats(n1, n2)), nil
	}
}

func ordering(ints func(x, y int64) bool, floats func(x, y float64) bool) func(x, y interface{}) (interface{}, error) {
	return func(x, y interface{}) (interface{}, error) {
		i1, ok1 := x.(henryInt)
		i2, ok2 := y.(henryInt)
		if ok1 && ok2 {
			return henryBool(ints(int64(i1), int64(i2))), nil
		}
		n1, ok1 := toFloat(x)
		n2, ok2 := toFloat(y)
		if !ok1 || !ok2 {
			return nil, ErrTypeError
		}
		return henryBool(floats(n1, n2)), nil
	}
}

func toFloat(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case henryInt:
		return float64(n), true
	case henryFloat:
		return float64(n), true
	}
	return 0, false
}

func numberOperator(n interface{}, op operator) (operatorApply, error) {
	if op == opNeg {
		return func(arguments ...interface{}) (interface{}, error) {
			if i, ok := n.(henryInt); ok {
				if i == math.MinInt64 {
					return nil, ErrIntegerOverflow
				}
				return -i, nil
			}
			return -n.(henryFloat), nil
		}, nil
	}
	if apply, ok := numberBinaryOperations[op]; ok {
		return binaryOperator(n, apply), nil
	}
	return nil, errUndefinedOp
}

func (n henryInt) getOperator(op operator) (operatorApply, error) {
	return numberOperator(n, op)
}

func (n henryFloat) getOperator(op operator) (operatorApply, error) {
	return numberOperator(n, op)
}

func (n henryInt) String() string {
	return strconv.FormatInt(int64(n), 10)
}

// String always keeps a fractional part so the text scans back as a float
func (n henryFloat) String() string {
	out := strconv.FormatFloat(float64(n), 'f', -1, 64)
	if strings.ContainsAny(out, ".IN") {
		return out
	}
	return out + ".0"
}
