package index

import "fmt"

// Occurrence locates one appearance of a word. Both fields are 1-based;
// Column counts characters, not bytes.
type Occurrence struct {
	Line   int
	Column int
}

func (o Occurrence) String() string {
	return fmt.Sprintf("(%d, %d)", o.Line, o.Column)
}

// Entry pairs a word with its occurrences in document order.
type Entry struct {
	Word        string
	Occurrences []Occurrence
}

func (e Entry) Count() int {
	return len(e.Occurrences)
}
