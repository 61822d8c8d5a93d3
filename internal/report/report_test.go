package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/indexer/index"
	apperrors "github.com/Adithya-Monish-Kumar-K/wordindex/pkg/errors"
)

var ranked = []index.Entry{
	{Word: "cat", Occurrences: []index.Occurrence{{Line: 1, Column: 5}, {Line: 1, Column: 29}}},
	{Word: "mat", Occurrences: []index.Occurrence{{Line: 1, Column: 20}}},
}

func TestRenderDetailed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf).Render(ranked, ModeDetailed))
	assert.Equal(t, "cat (1, 5) (1, 29)\nmat (1, 20)\n", buf.String())
}

func TestRenderShort(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf).Render(ranked, ModeShort))
	assert.Equal(t, "cat 2\nmat 1\n", buf.String())
}

func TestRenderEmpty(t *testing.T) {
	for _, mode := range []Mode{ModeDetailed, ModeShort} {
		var buf bytes.Buffer
		require.NoError(t, NewRenderer(&buf).Render(nil, mode))
		assert.Empty(t, buf.String(), mode.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderWriteError(t *testing.T) {
	err := NewRenderer(failingWriter{}).Render(ranked, ModeShort)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("short")
	require.NoError(t, err)
	assert.Equal(t, ModeShort, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeDetailed, m)

	_, err = ParseMode("json")
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}
