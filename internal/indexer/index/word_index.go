package index

import (
	"slices"
	"sort"
)

// View is the read-only side of a WordIndex handed to ranking and rendering.
type View interface {
	Len() int
	Entries() []Entry
}

// WordIndex maps a lowercase word to its occurrences in the order they were
// added. It is not safe for concurrent use; it has a single writer while it
// is built and is only read afterwards.
type WordIndex struct {
	index map[string][]Occurrence
	total int
}

var _ View = (*WordIndex)(nil)

func New() *WordIndex {
	return &WordIndex{
		index: make(map[string][]Occurrence),
	}
}

// Add appends occ to word's occurrence list, creating the entry if needed.
// Callers add occurrences in document order.
func (w *WordIndex) Add(word string, occ Occurrence) {
	if word == "" {
		return
	}
	w.index[word] = append(w.index[word], occ)
	w.total++
}

// Lookup returns a copy of word's occurrences.
func (w *WordIndex) Lookup(word string) ([]Occurrence, bool) {
	occs, ok := w.index[word]
	if !ok {
		return nil, false
	}
	return slices.Clone(occs), true
}

// Len returns the number of distinct words.
func (w *WordIndex) Len() int {
	return len(w.index)
}

func (w *WordIndex) TotalOccurrences() int {
	return w.total
}

// Words returns every indexed word in ascending order.
func (w *WordIndex) Words() []string {
	words := make([]string, 0, len(w.index))
	for word := range w.index {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// Entries returns a copy of the index, sorted by word.
func (w *WordIndex) Entries() []Entry {
	entries := make([]Entry, 0, len(w.index))
	for word, occs := range w.index {
		entries = append(entries, Entry{
			Word:        word,
			Occurrences: slices.Clone(occs),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Word < entries[j].Word
	})
	return entries
}
