package answerer

import "fmt"

// PanicError wraps a panic raised inside a SpanExtractor.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("answerer: extractor panicked: %v", e.Value)
}
