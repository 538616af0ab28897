package clierr

// TooManyArguments is returned when a command receives more arguments than
// it accepts.
func TooManyArguments(expected, found int) *Error {
	return &Error{Kind: KindTooManyArguments, Expected: expected, Found: found}
}

// TooFewArguments is returned when a command receives fewer arguments than
// it requires.
func TooFewArguments(expected, found int) *Error {
	return &Error{Kind: KindTooFewArguments, Expected: expected, Found: found}
}
