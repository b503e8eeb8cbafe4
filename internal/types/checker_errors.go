package types

import (
	"github.com/flavor-lang/flavor/internal/ast"
	"github.com/flavor-lang/flavor/internal/diag"
)

func errorf(span diag.Span, format string, args ...interface{}) error {
	return diag.Errorf(diag.PhaseTypeChecking, span, format, args...)
}

// isAssignable reports whether n names a storage location: an
// identifier, or an index chain rooted at one.
func isAssignable(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.Identifier:
		return true
	case *ast.ArrayAccess:
		return isAssignable(n.Array)
	}
	return false
}
