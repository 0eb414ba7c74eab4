package prom

import (
	"bytes"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trickstertwo/flog"
)

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("sink closed") }

func TestCollectorCountsLines(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector("flogtest", reg)

	var out, errOut bytes.Buffer
	l := flog.New(flog.Config{
		Stdout:   &out,
		Stderr:   &errOut,
		MinLevel: flog.LevelDebug,
		Metrics:  c,
	})

	l.Info("one")
	l.Info("two")
	l.Error("boom")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.lines.WithLabelValues("INFO")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.lines.WithLabelValues("ERROR")))
	assert.Equal(t, float64(out.Len()), testutil.ToFloat64(c.bytes.WithLabelValues("INFO")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.errors.WithLabelValues("INFO")))
}

func TestCollectorCountsWriteErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector("flogtest", reg)

	l := flog.New(flog.Config{
		Stdout:   failWriter{},
		Stderr:   failWriter{},
		MinLevel: flog.LevelDebug,
		Metrics:  c,
	})

	l.Warn("careful")

	require.Equal(t, 1.0, testutil.ToFloat64(c.errors.WithLabelValues("WARN")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.lines.WithLabelValues("WARN")))
}
