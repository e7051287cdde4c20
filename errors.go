// File: errors.go
// Role: error taxonomy for the root package.
package dhgp

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// ErrCannotCoarsenFurther is returned by Coarsener.Coarsen when no two
// live nodes remain to contract before reaching limit.
var ErrCannotCoarsenFurther = errors.New("dhgp: no contractible pair remains above the coarsening limit")

// ErrEmptyUncoarsenStack is returned by Coarsener.Uncoarsen when called
// with no recorded contractions left to reverse.
var ErrEmptyUncoarsenStack = errors.New("dhgp: no contraction left to reverse")

// violatePrecondition panics with a stack-carrying error for a caller
// contract violation; PartitionState.Assign uses it for an out-of-range
// block id or an unknown node. These are programming errors, not
// refusals — refusal is a plain bool return value, never this.
func violatePrecondition(format string, args ...interface{}) {
	panic(pkgerrors.Errorf(format, args...))
}
