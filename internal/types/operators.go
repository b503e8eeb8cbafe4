package types

import mapset "github.com/deckarep/golang-set"

// Operator classes. Each binary operator belongs to exactly one.
var (
	arithmeticOps = mapset.NewSet("+", "-", "*", "/", "%")
	relationalOps = mapset.NewSet(">", "<", ">=", "<=")
	logicalOps    = mapset.NewSet("&&", "||")
	equalityOps   = mapset.NewSet("==", "!=")

	// unary operators over Int; `++` and `--` also need an assignable operand
	intUnaryOps = mapset.NewSet("-", "++", "--")
	stepOps     = mapset.NewSet("++", "--")
)

// IsArithmetic reports whether op maps (int, int) to int.
func IsArithmetic(op string) bool { return arithmeticOps.Contains(op) }

// IsRelational reports whether op maps (int, int) to bool.
func IsRelational(op string) bool { return relationalOps.Contains(op) }

// IsLogical reports whether op maps (bool, bool) to bool.
func IsLogical(op string) bool { return logicalOps.Contains(op) }

// IsEquality reports whether op compares two values of one type.
func IsEquality(op string) bool { return equalityOps.Contains(op) }

// IsStep reports whether op is an increment or decrement.
func IsStep(op string) bool { return stepOps.Contains(op) }
