package expr

import (
	"github.com/cockroachdb/errors"
)

// ErrUnboundVariable is returned when evaluation reaches a variable that has
// no value in the binding. Match it with errors.Is.
var ErrUnboundVariable = errors.New("unbound variable")

func unboundVariable(name string) error {
	return errors.Wrapf(ErrUnboundVariable, "variable %q", name)
}
