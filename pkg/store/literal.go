package store

import (
	"fmt"
	"strconv"
)

// Kind tags the type of a Literal.
type Kind int

const (
	KindInt Kind = iota + 1
	KindFloat
	KindBool
	KindString
	KindURI
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindURI:
		return "uri"
	default:
		return "unknown"
	}
}

// Literal is a typed RDF object value. The zero value is not a valid literal;
// use the constructors.
type Literal struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
}

func Int(v int64) Literal { return Literal{kind: KindInt, i: v} }
func Float(v float64) Literal { return Literal{kind: KindFloat, f: v} }
func Bool(v bool) Literal { return Literal{kind: KindBool, b: v} }
func String(v string) Literal { return Literal{kind: KindString, s: v} }
func URI(v string) Literal { return Literal{kind: KindURI, s: v} }

func (l Literal) Kind() Kind { return l.kind }
func (l Literal) IsInt() bool { return l.kind == KindInt }
func (l Literal) IsFloat() bool { return l.kind == KindFloat }
func (l Literal) IsBool() bool { return l.kind == KindBool }
func (l Literal) IsString() bool { return l.kind == KindString }
func (l Literal) IsURI() bool { return l.kind == KindURI }

// AsInt returns the integer value, truncating floats and mapping booleans to
// 0/1. Strings and URIs yield 0.
func (l Literal) AsInt() int64 {
	switch l.kind {
	case KindInt:
		return l.i
	case KindFloat:
		return int64(l.f)
	case KindBool:
		if l.b {
			return 1
		}
	}
	return 0
}

// AsFloat returns the numeric value as float64. Strings and URIs yield 0.
func (l Literal) AsFloat() float64 {
	switch l.kind {
	case KindInt:
		return float64(l.i)
	case KindFloat:
		return l.f
	case KindBool:
		if l.b {
			return 1
		}
	}
	return 0
}

// AsBool reports the boolean value; numbers are true when non-zero.
func (l Literal) AsBool() bool {
	switch l.kind {
	case KindBool:
		return l.b
	case KindInt:
		return l.i != 0
	case KindFloat:
		return l.f != 0
	}
	return false
}

// AsString returns the lexical form of the literal.
func (l Literal) AsString() string {
	switch l.kind {
	case KindString, KindURI:
		return l.s
	case KindInt:
		return strconv.FormatInt(l.i, 10)
	case KindFloat:
		return strconv.FormatFloat(l.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(l.b)
	}
	return ""
}

// AsURI returns the IRI of a URI literal, or "" for any other kind.
func (l Literal) AsURI() string {
	if l.kind == KindURI {
		return l.s
	}
	return ""
}

func (l Literal) String() string {
	if l.kind == KindURI {
		return "<" + l.s + ">"
	}
	if l.kind == KindString {
		return strconv.Quote(l.s)
	}
	return fmt.Sprintf("%s^^%s", l.AsString(), l.kind)
}
