package internal

import "strconv"

type henryBool bool

func (b henryBool) String() string {
	return strconv.FormatBool(bool(b))
}

type henryNull struct{}

var null = henryNull{}

func (henryNull) String() string {
	return "null"
}

func truthy(value interface{}) bool {
	switch v := value.(type) {
	case nil, henryNull:
		return false
	case henryBool:
		return bool(v)
	case henryInt:
		return v != 0
	case henryFloat:
		return v != 0
	case henryString:
		return v != ""
	case henryList:
		return len(v) != 0
	case henryRange:
		return v.end > v.start
	}
	return true
}

// equals compares values structurally, numbers compare across int and float
func equals(a, b interface{}) bool {
	switch x := a.(type) {
	case henryInt:
		if y, ok := b.(henryInt); ok {
			return x == y
		}
		y, ok := b.(henryFloat)
		return ok && float64(x) == float64(y)
	case henryFloat:
		y, ok := toFloat(b)
		return ok && float64(x) == y
	case henryList:
		y, ok := b.(henryList)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !equals(x[i], y[i]) {
				return false
			}
		}
		return true
	case *function:
		y, ok := b.(*function)
		return ok && x == y
	case *nativeFn:
		y, ok := b.(*nativeFn)
		return ok && x == y
	case henryString, henryBool, henryNull, henryRange:
		return a == b
	}
	return false
}

func typeName(value interface{}) string {
	switch value.(type) {
	case henryInt:
		return "int"
	case henryFloat:
		return "float"
	case henryString:
		return "string"
	case henryBool:
		return "bool"
	case henryList:
		return "list"
	case henryRange:
		return "range"
	case *function, *nativeFn:
		return "function"
	}
	return "null"
}
