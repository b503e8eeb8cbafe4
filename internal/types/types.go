package types

import "strings"

// Type represents a type in the Flavor type system.
type Type interface {
	String() string
	// IsType is a marker method to ensure type safety.
	IsType()
}

// PrimitiveKind represents the kind of a primitive type.
type PrimitiveKind string

const (
	Int    PrimitiveKind = "int"
	Float  PrimitiveKind = "float"
	Bool   PrimitiveKind = "bool"
	String PrimitiveKind = "string"
	Unit   PrimitiveKind = "nothing"
)

// Primitive represents a primitive type.
type Primitive struct {
	Kind PrimitiveKind
}

func (p *Primitive) String() string { return string(p.Kind) }
func (p *Primitive) IsType()        {}

// Common primitive instances
var (
	TypeInt    = &Primitive{Kind: Int}
	TypeFloat  = &Primitive{Kind: Float}
	TypeBool   = &Primitive{Kind: Bool}
	TypeString = &Primitive{Kind: String}
	TypeUnit   = &Primitive{Kind: Unit}
)

// Custom is a named type with no definition. Two Custom types are equal
// when their names are; at runtime a Custom annotation accepts any value.
type Custom struct {
	Name string
}

func (c *Custom) String() string { return c.Name }
func (c *Custom) IsType()        {}

// Array is a homogeneous sequence of Elem.
type Array struct {
	Elem Type
}

func (a *Array) String() string { return "[" + a.Elem.String() + "]" }
func (a *Array) IsType()        {}

// Function represents a function type.
type Function struct {
	Params []Type
	Return Type
}

func (f *Function) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	return "(" + strings.Join(params, ", ") + ") -> " + f.Return.String()
}
func (f *Function) IsType() {}

// Equal reports structural equality.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Primitive:
		b, ok := b.(*Primitive)
		return ok && a.Kind == b.Kind
	case *Custom:
		b, ok := b.(*Custom)
		return ok && a.Name == b.Name
	case *Array:
		b, ok := b.(*Array)
		return ok && Equal(a.Elem, b.Elem)
	case *Function:
		b, ok := b.(*Function)
		if !ok || len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if !Equal(a.Params[i], b.Params[i]) {
				return false
			}
		}
		return Equal(a.Return, b.Return)
	}
	return a == nil && b == nil
}

// IsUnit reports whether t is the unit type.
func IsUnit(t Type) bool {
	return Equal(t, TypeUnit)
}
