// Package stopwords loads newline-delimited stop-word lists into a lookup set.
package stopwords

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/textio"
	apperrors "github.com/Adithya-Monish-Kumar-K/wordindex/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/wordindex/pkg/logger"
)

// Stop-word lines have no length limit; the scanner grows its buffer as
// needed.
const maxLineBytes = math.MaxInt

// Set is an immutable set of lowercase stop words. The nil Set is empty.
type Set map[string]struct{}

func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Words returns the members in ascending order.
func (s Set) Words() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Union merges sets into a new one.
func Union(sets ...Set) Set {
	n := 0
	for _, s := range sets {
		n += len(s)
	}
	out := make(Set, n)
	for _, s := range sets {
		for w := range s {
			out[w] = struct{}{}
		}
	}
	return out
}

// Parse reads one word per line. Lines end at "\n", "\r\n" or a lone "\r",
// a leading byte-order mark is dropped, whitespace around each word is
// trimmed, blank lines are skipped and every word is lowercased.
func Parse(r io.Reader) (Set, error) {
	set := make(Set)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxLineBytes)
	scanner.Split(textio.ScanLines)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return nil, apperrors.Newf(apperrors.ErrInvalidEncoding, apperrors.ExitInput,
				"line %d is not valid UTF-8", lineNumber)
		}
		line = textio.TrimByteOrderMark(line, lineNumber)
		w := strings.ToLower(strings.TrimSpace(line))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning stop words: %w", err)
	}
	return set, nil
}

// Load reads the stop-word file at path. An empty path yields the empty set.
func Load(path string) (Set, error) {
	if path == "" {
		return Set{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.InputNotFound(path, err)
	}
	defer f.Close()

	set, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("loading stop words from %s: %w", path, err)
	}
	return set, nil
}

// LoadAll reads every file in paths, at most maxParallel at a time, and
// returns their union. The first failure cancels the remaining reads.
func LoadAll(ctx context.Context, paths []string, maxParallel int) (Set, error) {
	if len(paths) == 0 {
		return Set{}, nil
	}
	if maxParallel <= 0 {
		maxParallel = 1
	}
	log := logger.WithComponent("stopwords")

	sets := make([]Set, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			set, err := Load(path)
			if err != nil {
				return err
			}
			log.Debug("stop-word file loaded", "path", path, "words", set.Len())
			sets[i] = set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return Union(sets...), nil
}
