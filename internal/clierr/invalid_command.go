package clierr

// InvalidCommand is returned when no command in the active menu matches
// the typed name. Suggestions holds near matches, closest first.
func InvalidCommand(name string, suggestions ...string) *Error {
	return &Error{
		Kind:        KindInvalidCommand,
		Message:     name,
		Suggestions: suggestions,
	}
}

// EmptyInput is returned when a line holds no tokens.
func EmptyInput() *Error {
	return &Error{Kind: KindEmptyInput}
}

func InvalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}
