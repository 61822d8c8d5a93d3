package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersIndependently(t *testing.T) {
	a := New()
	b := New()
	a.LinesScannedTotal.Add(3)

	assert.Equal(t, 3.0, testutil.ToFloat64(a.LinesScannedTotal))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.LinesScannedTotal))
}

func TestObserveStage(t *testing.T) {
	m := New()
	m.ObserveStage("build_index", time.Now().Add(-time.Millisecond))

	assert.Equal(t, 1, testutil.CollectAndCount(m.StageDuration, "wordindex_stage_duration_seconds"))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.ObserveStage("rank", time.Now()) })
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.TokensTotal.WithLabelValues(OutcomeIndexed).Add(5)
	m.TokensTotal.WithLabelValues(OutcomeStopped).Add(2)
	m.DistinctWords.Set(4)

	path := filepath.Join(t.TempDir(), "wordindex.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `wordindex_tokens_total{outcome="indexed"} 5`)
	assert.Contains(t, out, `wordindex_tokens_total{outcome="stopped"} 2`)
	assert.Contains(t, out, "wordindex_distinct_words 4")
}

func TestWriteTextfileBadDirectory(t *testing.T) {
	m := New()
	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "wordindex.prom"))
	require.Error(t, err)
}
