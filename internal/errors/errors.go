// Package errors re-exports the pkg/errors helpers the delivery layer needs and
// adds a generic As.
package errors

import (
	pkgerrors "github.com/pkg/errors"
)

var (
	Is        = pkgerrors.Is
	WithStack = pkgerrors.WithStack
)

// AsType returns the first error in err's chain of type T.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := pkgerrors.As(err, &target)

	return target, ok
}
