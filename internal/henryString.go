package internal

type henryString string

// representable values print differently when nested inside a list
type representable interface {
	Repr() string
}

var stringBinaryOperations = map[operator]func(x, y string) interface{}{
	opAdd: func(x, y string) interface{} {
		return henryString(x + y)
	},
	opGt: func(x, y string) interface{} {
		return henryBool(x > y)
	},
	opGte: func(x, y string) interface{} {
		return henryBool(x >= y)
	},
	opLt: func(x, y string) interface{} {
		return henryBool(x < y)
	},
	opLte: func(x, y string) interface{} {
		return henryBool(x <= y)
	},
}

func (s henryString) getOperator(op operator) (operatorApply, error) {
	apply, ok := stringBinaryOperations[op]
	if !ok {
		return nil, errUndefinedOp
	}
	return binaryOperator(s, func(x, y interface{}) (interface{}, error) {
		other, ok := y.(henryString)
		if !ok {
			return nil, ErrTypeError
		}
		return apply(string(x.(henryString)), string(other)), nil
	}), nil
}

// iterate yields every character as a one-character string
func (s henryString) iterate(yield func(item interface{})) {
	for _, r := range string(s) {
		yield(henryString(r))
	}
}

func (s henryString) String() string {
	return string(s)
}

func (s henryString) Repr() string {
	return "\"" + string(s) + "\""
}
