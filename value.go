package probetable

import "strconv"

// Kind is the payload type held by a Value.
type Kind uint8

const (
	KindBool Kind = iota
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a closed variant over the payloads a Table[Value] stores:
// a boolean, a 64-bit float or a string.
//
// The zero Value is the boolean false.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
}

func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func NumberValue(n float64) Value {
	return Value{kind: KindNumber, n: n}
}

func StringValue(s string) Value {
	return Value{kind: KindString, s: s}
}

func (v Value) Kind() Kind {
	return v.kind
}

// AsBool returns the boolean payload, ok is false if v holds another kind.
func (v Value) AsBool() (b bool, ok bool) {
	return v.b, v.kind == KindBool
}

func (v Value) AsNumber() (n float64, ok bool) {
	return v.n, v.kind == KindNumber
}

func (v Value) AsString() (s string, ok bool) {
	return v.s, v.kind == KindString
}

// Equal compares kind and payload. Numbers compare with ==, so NaN is never
// equal to itself.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.n == other.n
	default:
		return v.s == other.s
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.n, 'g', -1, 64)
	default:
		return strconv.Quote(v.s)
	}
}
