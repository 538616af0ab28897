package dispatchers

// ResultKind is the navigation outcome of a successful command.
type ResultKind int

const (
	// ResultSuccess completed; Message is shown when non-empty.
	ResultSuccess ResultKind = iota
	// ResultContinue enters the command when it is a menu. Leaf actions
	// return it too, in which case nothing moves.
	ResultContinue
	// ResultGoUp leaves the current menu.
	ResultGoUp
	// ResultQuit ends the session.
	ResultQuit
)

func (k ResultKind) String() string {
	switch k {
	case ResultSuccess:
		return "success"
	case ResultContinue:
		return "continue"
	case ResultGoUp:
		return "go-up"
	case ResultQuit:
		return "quit"
	default:
		return "unknown"
	}
}

type Result struct {
	Kind    ResultKind
	Message string
}

func Success(msg string) Result {
	return Result{Kind: ResultSuccess, Message: msg}
}

func Continue() Result {
	return Result{Kind: ResultContinue}
}

func GoUp() Result {
	return Result{Kind: ResultGoUp}
}

func Quit() Result {
	return Result{Kind: ResultQuit}
}
