// Package indexer builds a WordIndex from a line-oriented text source,
// dropping stop words along the way.
package indexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/indexer/index"
	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/indexer/tokenizer"
	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/stopwords"
	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/textio"
	"github.com/Adithya-Monish-Kumar-K/wordindex/pkg/config"
	apperrors "github.com/Adithya-Monish-Kumar-K/wordindex/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/wordindex/pkg/logger"
	"github.com/Adithya-Monish-Kumar-K/wordindex/pkg/metrics"
)

// Stats summarises the most recent build.
type Stats struct {
	Lines   int
	Tokens  int
	Stopped int
	Indexed int
}

// Builder turns a text source into a WordIndex. A Builder is not safe for
// concurrent use; Stats reflects the last build only.
type Builder struct {
	cfg     config.IndexerConfig
	stop    stopwords.Set
	metrics *metrics.Metrics
	logger  *slog.Logger
	stats   Stats
}

// Option configures a Builder.
type Option func(*Builder)

// WithMetrics records line and token counters on m after each build.
func WithMetrics(m *metrics.Metrics) Option {
	return func(b *Builder) { b.metrics = m }
}

// WithLogger replaces the default component logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// NewBuilder returns a Builder that drops every token found in stop. A
// non-positive cfg.MaxLineBytes falls back to the default limit.
func NewBuilder(cfg config.IndexerConfig, stop stopwords.Set, opts ...Option) *Builder {
	if cfg.MaxLineBytes <= 0 {
		cfg.MaxLineBytes = config.Default().Indexer.MaxLineBytes
	}
	b := &Builder{
		cfg:    cfg,
		stop:   stop,
		logger: logger.WithComponent("indexer"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Stats returns the counters of the last Build or BuildFile call.
func (b *Builder) Stats() Stats {
	return b.stats
}

// BuildFile indexes the text file at path.
func (b *Builder) BuildFile(path string) (*index.WordIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.InputNotFound(path, err)
	}
	defer f.Close()

	idx, err := b.Build(f)
	if err != nil {
		return nil, fmt.Errorf("indexing %s: %w", path, err)
	}
	return idx, nil
}

// Build reads r line by line and returns the finished index. Nothing is
// returned on error.
func (b *Builder) Build(r io.Reader) (*index.WordIndex, error) {
	b.stats = Stats{}
	idx := index.New()

	scanner := bufio.NewScanner(r)
	initial := min(64*1024, b.cfg.MaxLineBytes)
	scanner.Buffer(make([]byte, 0, initial), b.cfg.MaxLineBytes)
	scanner.Split(textio.ScanLines)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		raw := scanner.Bytes()
		if !utf8.Valid(raw) {
			return nil, apperrors.Newf(apperrors.ErrInvalidEncoding, apperrors.ExitInput,
				"line %d is not valid UTF-8", lineNumber)
		}
		line := textio.TrimByteOrderMark(string(raw), lineNumber)
		b.indexLine(idx, lineNumber, line)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, apperrors.Newf(apperrors.ErrLineTooLong, apperrors.ExitInput,
				"line %d exceeds %d bytes", lineNumber+1, b.cfg.MaxLineBytes)
		}
		return nil, fmt.Errorf("reading line %d: %w", lineNumber+1, err)
	}

	b.stats.Lines = lineNumber
	b.record(idx)
	b.logger.Debug("index built",
		"lines", b.stats.Lines,
		"tokens", b.stats.Tokens,
		"stopped", b.stats.Stopped,
		"distinct_words", idx.Len(),
	)
	return idx, nil
}

func (b *Builder) indexLine(idx *index.WordIndex, lineNumber int, line string) {
	for _, token := range tokenizer.Tokenize(line) {
		b.stats.Tokens++
		if b.stop.Contains(token.Term) {
			b.stats.Stopped++
			continue
		}
		b.stats.Indexed++
		idx.Add(token.Term, index.Occurrence{
			Line:   lineNumber,
			Column: token.Column,
		})
	}
}

func (b *Builder) record(idx *index.WordIndex) {
	if b.metrics == nil {
		return
	}
	b.metrics.LinesScannedTotal.Add(float64(b.stats.Lines))
	b.metrics.TokensTotal.WithLabelValues(metrics.OutcomeIndexed).Add(float64(b.stats.Indexed))
	b.metrics.TokensTotal.WithLabelValues(metrics.OutcomeStopped).Add(float64(b.stats.Stopped))
	b.metrics.DistinctWords.Set(float64(idx.Len()))
}
