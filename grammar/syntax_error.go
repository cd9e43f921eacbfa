package grammar

type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return e.message
}

var (
	synErrUnmatchedName     = newSyntaxError("unmatched id to name the grammar")
	synErrEmptyGrammar      = newSyntaxError("empty grammar")
	synErrUnfinishedGrammar = newSyntaxError("unfinished grammar body")
	synErrTrailingGarbage   = newSyntaxError("trailing input after the grammar body")
	synErrUnterminatedAssoc = newSyntaxError("unterminated associativity statement")
	synErrUnterminatedWS    = newSyntaxError("unterminated whitespace statement")
	synErrUnterminatedProd  = newSyntaxError("unterminated production statement")
	synErrMissingPrecSym    = newSyntaxError("expected a symbol to read the precedence from")
	synErrMissingActionID   = newSyntaxError("expected an identifier to be used as action")
	synErrMissingActionEnd  = newSyntaxError("expected ']' closing the action")
)
