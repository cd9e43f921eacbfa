package grammar

type SemanticError struct {
	message string
}

func newSemanticError(message string) *SemanticError {
	return &SemanticError{
		message: message,
	}
}

func (e *SemanticError) Error() string {
	return e.message
}

var (
	semErrUndefinedSym     = newSemanticError("undefined symbol")
	semErrUnreferencedSym  = newSemanticError("unreferenced symbol")
	semErrAliasingConflict = newSemanticError("alias and terminal both declare precedence or associativity")
	semErrShiftReduce      = newSemanticError("shift/reduce conflict")
	semErrReduceReduce     = newSemanticError("reduce/reduce conflict")
)
