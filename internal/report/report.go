// Package report renders a ranked word list as plain text.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/indexer/index"
	apperrors "github.com/Adithya-Monish-Kumar-K/wordindex/pkg/errors"
)

type Mode int

const (
	// ModeDetailed prints each word followed by all of its occurrences.
	ModeDetailed Mode = iota
	// ModeShort prints each word and its occurrence count.
	ModeShort
)

func (m Mode) String() string {
	switch m {
	case ModeShort:
		return "short"
	default:
		return "detailed"
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "detailed", "":
		return ModeDetailed, nil
	case "short":
		return ModeShort, nil
	default:
		return ModeDetailed, apperrors.InvalidArgument("unknown report mode %q", s)
	}
}

type Renderer struct {
	w io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Render writes one line per entry and flushes before returning.
func (r *Renderer) Render(entries []index.Entry, mode Mode) error {
	bw := bufio.NewWriter(r.w)
	for _, e := range entries {
		var err error
		switch mode {
		case ModeShort:
			err = writeShort(bw, e)
		default:
			err = writeDetailed(bw, e)
		}
		if err != nil {
			return fmt.Errorf("rendering %q: %w", e.Word, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing report: %w", err)
	}
	return nil
}

func writeShort(w *bufio.Writer, e index.Entry) error {
	_, err := fmt.Fprintf(w, "%s %d\n", e.Word, e.Count())
	return err
}

func writeDetailed(w *bufio.Writer, e index.Entry) error {
	if _, err := w.WriteString(e.Word); err != nil {
		return err
	}
	for _, occ := range e.Occurrences {
		if _, err := fmt.Fprintf(w, " (%d, %d)", occ.Line, occ.Column); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}
