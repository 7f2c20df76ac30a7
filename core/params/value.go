package params

import (
	"fmt"
	"strconv"
)

// Value is a union type for parameter values.
// Only the field matching Kind is meaningful.
type Value struct {
	Kind  ValueKind
	Int   int64   // For KindInt
	Float float64 // For KindFloat
	Str   string  // For KindString
}

// ValueKind identifies which field in Value is valid
type ValueKind uint8

const (
	KindInt    ValueKind = iota + 1 // Int field valid
	KindFloat                       // Float field valid
	KindString                      // Str field valid
)

// String returns the kind name for debug output.
func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("ValueKind(%d)", uint8(k))
	}
}

// Int returns an integer value.
func Int(v int64) Value { return Value{Kind: KindInt, Int: v} }

// Float returns a floating-point value.
func Float(v float64) Value { return Value{Kind: KindFloat, Float: v} }

// String returns a string value.
func String(v string) Value { return Value{Kind: KindString, Str: v} }

// String formats the value the way pvcmd prints it: integers in base 10,
// floats as the shortest decimal that round-trips, strings verbatim.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindString:
		return v.Str
	default:
		panic(fmt.Sprintf("params: value has invalid kind %d", uint8(v.Kind)))
	}
}
