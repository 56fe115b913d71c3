package hmm

import "fmt"

// LoadError reports an unreadable or malformed count source.
type LoadError struct {
	File string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	file := e.File
	if len(file) == 0 {
		file = "<counts>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("load %s:%d: %v", file, e.Line, e.Err)
	}
	return fmt.Sprintf("load %s: %v", file, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// NoViableTagError is returned when the model gives zero probability to
// every candidate tagging. Position is -1 when no single word is to blame.
// Sentence is the corpus index when tagged as part of a corpus, -1
// otherwise; it is left out of the message, which the corpus error prefixes.
type NoViableTagError struct {
	Sentence int
	Position int
	Word     string
}

func (e *NoViableTagError) Error() string {
	if e.Position < 0 {
		return "no viable tag sequence"
	}
	return fmt.Sprintf("no viable tag for word %q at position %d", e.Word, e.Position)
}
