package register

import (
	"strconv"
)

// Kind defines how a raw register word is interpreted. Encoding is always
// big-endian.
type Kind string

// Constants of Kind
const (
	Bool           Kind = "bool"
	UnsignedWord   Kind = "uint16"
	SignedWord     Kind = "int16"
	DoubleWordHigh Kind = "uint32h"
	DoubleWordLow  Kind = "uint32l"
	Ascii          Kind = "ascii"
)

// Scaling is the multiplicative factor applied after integer decoding. It is
// ignored for the Bool and Ascii kinds.
type Scaling float64

// Constants of Scaling
const (
	Unit  Scaling = 1
	Deci  Scaling = 0.1
	Centi Scaling = 0.01
)

// String names the factor for dump output.
func (s Scaling) String() string {
	switch s {
	case Deci:
		return "x0.1"
	case Centi:
		return "x0.01"
	default:
		return "x1"
	}
}

// Value is the rendered form of a raw register word. Whole-number results
// keep Unit scaling exact in Int; Float always carries the scaled result.
type Value struct {
	Kind  Kind
	Bool  bool
	Int   int64
	Float float64
	Text  string
}

// Render interprets a raw word according to kind and scaling. It is total
// over all uint16 inputs; no value is rejected.
func Render(kind Kind, scale Scaling, raw uint16) Value {
	switch kind {
	case Bool:
		// only the least-significant bit carries the flag
		return Value{Kind: kind, Bool: raw&0x0001 != 0}
	case UnsignedWord:
		return scaled(kind, scale, int64(raw))
	case SignedWord:
		return scaled(kind, scale, int64(int16(raw)))
	case DoubleWordHigh:
		// the caller sums this with the paired low-word render
		return scaled(kind, scale, int64(raw)<<16)
	case DoubleWordLow:
		return scaled(kind, scale, int64(raw))
	case Ascii:
		return Value{Kind: kind, Text: string([]byte{byte(raw >> 8), byte(raw)})}
	}
	return Value{Kind: kind}
}

func scaled(kind Kind, scale Scaling, n int64) Value {
	if scale == Unit {
		return Value{Kind: kind, Int: n, Float: float64(n)}
	}
	return Value{Kind: kind, Float: float64(n) * float64(scale)}
}

// String formats whichever representation the kind produced.
func (v Value) String() string {
	switch v.Kind {
	case Bool:
		return strconv.FormatBool(v.Bool)
	case Ascii:
		return v.Text
	default:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	}
}
