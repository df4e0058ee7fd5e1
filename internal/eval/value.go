package eval

import (
	"strings"

	"github.com/agbru/bignum/bigfloat"
	"github.com/agbru/bignum/bigint"
)

// Kind is the type of a Value.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "tuple"
	}
}

// Value is the result of an expression: an exact integer, a rounded float
// carrying the accuracy of its last rounding, or a tuple of values
// (returned by xgcd).
type Value struct {
	kind  Kind
	i     bigint.Int
	f     bigfloat.Float
	acc   bigfloat.Accuracy
	items []Value
}

func IntValue(x bigint.Int) Value { return Value{kind: KindInt, i: x} }

func FloatValue(f bigfloat.Float, acc bigfloat.Accuracy) Value {
	return Value{kind: KindFloat, f: f, acc: acc}
}

func TupleValue(items ...Value) Value { return Value{kind: KindTuple, items: items} }

func (v Value) Kind() Kind { return v.kind }

// Int returns the integer held by v.
func (v Value) Int() (bigint.Int, bool) { return v.i, v.kind == KindInt }

// Float returns the float held by v.
func (v Value) Float() (bigfloat.Float, bool) { return v.f, v.kind == KindFloat }

// Items returns the elements of a tuple.
func (v Value) Items() []Value { return v.items }

// Accuracy is the rounding direction of the last float operation producing
// v; integers and tuples are Exact.
func (v Value) Accuracy() bigfloat.Accuracy { return v.acc }

// BitLen returns the bit length of an integer value and -1 otherwise.
func (v Value) BitLen() int {
	if v.kind != KindInt {
		return -1
	}
	return v.i.BitLen()
}

// Text renders v: integers in the given radix, floats in their own base.
func (v Value) Text(radix int, upper bool) string {
	switch v.kind {
	case KindInt:
		if upper {
			return v.i.TextUpper(radix)
		}
		return v.i.Text(radix)
	case KindFloat:
		return v.f.String()
	}
	parts := make([]string, len(v.items))
	for i, it := range v.items {
		parts[i] = it.Text(radix, upper)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (v Value) String() string { return v.Text(10, false) }

// Equal reports whether v and w have the same kind and value.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i.Equal(w.i)
	case KindFloat:
		return v.f.Equal(w.f) && v.acc == w.acc
	}
	if len(v.items) != len(w.items) {
		return false
	}
	for i := range v.items {
		if !v.items[i].Equal(w.items[i]) {
			return false
		}
	}
	return true
}
