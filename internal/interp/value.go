package interp

import (
	"strconv"
	"strings"

	"github.com/flavor-lang/flavor/internal/ast"
	"github.com/flavor-lang/flavor/internal/types"
)

// Value is a runtime value. The set of implementations is closed to
// this package.
type Value interface {
	// TypeName is the runtime type name used in error messages.
	TypeName() string
	// String is the display form written by print.
	String() string
	value()
}

type (
	Int    int64
	Bool   bool
	String string
	Unit   struct{}
)

// Array is a mutable sequence. Reading a variable yields a deep copy,
// so two variables never share one Array.
type Array struct {
	Elems []Value
}

// Function is a closure. Captured is shared by every alias of the
// value: calls made through any of them see the same captured state.
type Function struct {
	Params   []string
	Body     *ast.Body
	Captured *Environment
}

func (Int) value()       {}
func (Bool) value()      {}
func (String) value()    {}
func (Unit) value()      {}
func (*Array) value()    {}
func (*Function) value() {}

func (Int) TypeName() string       { return "int" }
func (Bool) TypeName() string      { return "bool" }
func (String) TypeName() string    { return "string" }
func (Unit) TypeName() string      { return "unit" }
func (*Array) TypeName() string    { return "array" }
func (*Function) TypeName() string { return "function" }

func (i Int) String() string     { return strconv.FormatInt(int64(i), 10) }
func (b Bool) String() string    { return strconv.FormatBool(bool(b)) }
func (s String) String() string  { return string(s) }
func (Unit) String() string      { return "<unit>" }
func (*Function) String() string { return "<function>" }

func (a *Array) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, elem := range a.Elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(elem.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Copy returns v with arrays deep-copied. Other values are immutable
// or, for functions, intentionally shared.
func Copy(v Value) Value {
	arr, ok := v.(*Array)
	if !ok {
		return v
	}
	elems := make([]Value, len(arr.Elems))
	for i, elem := range arr.Elems {
		elems[i] = Copy(elem)
	}
	return &Array{Elems: elems}
}

// Equal compares two values structurally. Functions are equal only to
// themselves.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case *Array:
		other, ok := b.(*Array)
		if !ok || len(a.Elems) != len(other.Elems) {
			return false
		}
		for i := range a.Elems {
			if !Equal(a.Elems[i], other.Elems[i]) {
				return false
			}
		}
		return true
	case *Function:
		other, ok := b.(*Function)
		return ok && a == other
	default:
		return a == b
	}
}

// matchesType reports whether v conforms to t at runtime. Custom types
// match any value and function values match any function type.
func matchesType(v Value, t types.Type) bool {
	if _, ok := t.(*types.Custom); ok {
		return true
	}

	switch v := v.(type) {
	case Int:
		return types.Equal(t, types.TypeInt)
	case Bool:
		return types.Equal(t, types.TypeBool)
	case String:
		return types.Equal(t, types.TypeString)
	case Unit:
		return types.IsUnit(t)
	case *Array:
		arr, ok := t.(*types.Array)
		if !ok {
			return false
		}
		for _, elem := range v.Elems {
			if !matchesType(elem, arr.Elem) {
				return false
			}
		}
		return true
	case *Function:
		_, ok := t.(*types.Function)
		return ok
	}
	return false
}
