package lower

import "fmt"

// LoweringError is raised when the lowerer encounters a tree it cannot
// translate, such as a nil node or a sequence with no value.
type LoweringError struct {
	Message string
}

func (le *LoweringError) Error() string {
	return "lowering error: " + le.Message
}

// raise aborts lowering with a lowering error.  It is recovered by catchErrors
// at the Lower boundary.
func raise(msg string, args ...interface{}) {
	panic(&LoweringError{Message: fmt.Sprintf(msg, args...)})
}

// catchErrors converts a raised lowering error into a returned error.  Any
// other panic is not ours and keeps unwinding.
// NB: This function must ALWAYS be deferred.
// raiseMissing raises the error for a nil node.
func raiseMissing() {
	raise("cannot lower a missing expression")
}

func catchErrors(err *error) {
	if x := recover(); x != nil {
		if lerr, ok := x.(*LoweringError); ok {
			*err = lerr
			return
		}

		panic(x)
	}
}
