package internal

import "strings"

// iterable values can drive a for loop and the collection builtins
type iterable interface {
	iterate(yield func(item interface{}))
}

type henryList []interface{}

var listBinaryOperations = map[operator]func(x, y henryList) interface{}{
	opAdd: func(x, y henryList) interface{} {
		out := make(henryList, 0, len(x)+len(y))
		out = append(out, x...)
		return append(out, y...)
	},
}

func (l henryList) getOperator(op operator) (operatorApply, error) {
	apply, ok := listBinaryOperations[op]
	if !ok {
		return nil, errUndefinedOp
	}
	return binaryOperator(l, func(x, y interface{}) (interface{}, error) {
		other, ok := y.(henryList)
		if !ok {
			return nil, ErrTypeError
		}
		return apply(x.(henryList), other), nil
	}), nil
}

func (l henryList) iterate(yield func(item interface{})) {
	for _, item := range l {
		yield(item)
	}
}

func (l henryList) String() string {
	items := make([]string, len(l))
	for i, item := range l {
		if r, ok := item.(representable); ok {
			items[i] = r.Repr()
			continue
		}
		items[i] = FormatValue(item)
	}
	return "[" + strings.Join(items, ", ") + "]"
}

// henryRange is the half-open integer interval produced by `to`.
// It is never materialized.
type henryRange struct {
	start int64
	end   int64
}

func newRange(start, end interface{}) (henryRange, bool) {
	from, ok1 := start.(henryInt)
	to, ok2 := end.(henryInt)
	if !ok1 || !ok2 {
		return henryRange{}, false
	}
	return henryRange{start: int64(from), end: int64(to)}, true
}

func (r henryRange) iterate(yield func(item interface{})) {
	for i := r.start; i < r.end; i++ {
		yield(henryInt(i))
	}
}

func (r henryRange) String() string {
	return henryInt(r.start).String() + " to " + henryInt(r.end).String()
}
