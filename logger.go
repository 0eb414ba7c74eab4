package flog

import (
	"io"
	"os"
	"time"

	"github.com/trickstertwo/xclock"
)

// Config is an explicit, code-first configuration. No envs, no init-time
// magic.
type Config struct {
	// Stdout receives DEBUG and INFO lines. Defaults to os.Stdout.
	Stdout io.Writer
	// Stderr receives WARN and ERROR lines. Defaults to os.Stderr.
	Stderr io.Writer

	// MinLevel gates every call before any rendering work happens.
	MinLevel Level

	// Clock overrides the process default clock (xclock.Now).
	Clock xclock.Clock

	// Defaults seeds the default attribute tier.
	Defaults []Attr

	// MaxDepth bounds container nesting during serialization. Zero (the
	// default) disables the guard and preserves fatal recursion on
	// cyclic values; see the package documentation.
	MaxDepth int

	// Metrics observes every flushed line. Defaults to NoopMetricsCollector.
	Metrics MetricsCollector
}

// Logger renders one record at a time into a single fixed buffer and
// hands the finished line to one of two writers. All mutable state —
// buffer, stamp cache, default attributes, minimum level — belongs to
// exactly one Logger; see the package documentation for the
// single-caller contract.
type Logger struct {
	out    io.Writer // DEBUG, INFO
	errOut io.Writer // WARN, ERROR

	clock    xclock.Clock // nil means xclock.Now()
	minLevel Level
	defaults []Attr
	maxDepth int

	buf   lineBuffer
	stamp stampCache

	metrics   MetricsCollector
	observers []Observer
	st        stats
}

// New constructs a Logger. Both writers are used fire-and-forget: their
// return values are recorded in stats and metrics but never surfaced.
func New(cfg Config) *Logger {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &NoopMetricsCollector{}
	}
	l := &Logger{
		out:      cfg.Stdout,
		errOut:   cfg.Stderr,
		clock:    cfg.Clock,
		minLevel: cfg.MinLevel,
		maxDepth: cfg.MaxDepth,
		metrics:  cfg.Metrics,
	}
	if len(cfg.Defaults) > 0 {
		l.defaults = append([]Attr(nil), cfg.Defaults...)
	}
	return l
}

// SetMinLevel mutates the filter; effective for subsequent calls only.
func (l *Logger) SetMinLevel(level Level) { l.minLevel = level }

// MinLevel returns the configured filter level.
func (l *Logger) MinLevel() Level { return l.minLevel }

// Enabled reports whether a call at 'level' would be emitted.
func (l *Logger) Enabled(level Level) bool { return level >= l.minLevel }

// SetDefaultAttrs replaces the entire default tier.
func (l *Logger) SetDefaultAttrs(attrs ...Attr) {
	l.defaults = append(l.defaults[:0:0], attrs...)
}

// AddDefaultAttrs merges into the default tier: existing keys are
// overwritten in place, new keys are appended in argument order.
func (l *Logger) AddDefaultAttrs(attrs ...Attr) {
	for _, a := range attrs {
		replaced := false
		for i := range l.defaults {
			if l.defaults[i].K == a.K {
				l.defaults[i].V = a.V
				replaced = true
				break
			}
		}
		if !replaced {
			l.defaults = append(l.defaults, a)
		}
	}
}

// SetMetricsCollector installs a collector; nil restores the noop one.
func (l *Logger) SetMetricsCollector(c MetricsCollector) {
	if c == nil {
		c = &NoopMetricsCollector{}
	}
	l.metrics = c
}

// AddObserver registers a synchronous per-line tap.
func (l *Logger) AddObserver(o Observer) {
	l.observers = append(l.observers, o)
}

// Stats returns a snapshot of internal counters.
func (l *Logger) Stats() StatsSnapshot { return l.st.snapshot() }

// ResetStats resets internal counters.
func (l *Logger) ResetStats() { l.st.reset() }

// Convenience forms.

func (l *Logger) Debug(msg string, attrs ...Attr) { l.Log(LevelDebug, msg, attrs...) }
func (l *Logger) Info(msg string, attrs ...Attr)  { l.Log(LevelInfo, msg, attrs...) }
func (l *Logger) Warn(msg string, attrs ...Attr)  { l.Log(LevelWarn, msg, attrs...) }
func (l *Logger) Error(msg string, attrs ...Attr) { l.Log(LevelError, msg, attrs...) }

// Log renders and flushes one line. Below the minimum level it returns
// before touching the buffer, the stamp cache, or the clock.
func (l *Logger) Log(level Level, msg string, attrs ...Attr) {
	if level < l.minLevel {
		return
	}
	now := l.now()

	l.buf.reset()
	l.buf.writeBytes(l.stamp.bytes(now))
	l.buf.writeBytes(level.token())
	appendText(&l.buf, msg)
	l.appendAttrs(attrs)
	line := l.buf.terminate()

	w := l.out
	if level >= LevelWarn {
		w = l.errOut
	}
	n, err := w.Write(line)

	l.st.lines.Add(1)
	l.st.bytes.Add(uint64(n))
	if l.buf.clipped {
		l.st.truncated.Add(1)
	}
	if err != nil {
		l.st.writeErrors.Add(1)
	}
	l.metrics.LoggedLine(level, n, err)

	l.notify(now, level, msg, attrs)
}

// appendAttrs writes the merged attribute block: default tier first in
// insertion order, minus keys shadowed by the call tier, then the call
// tier in argument order. Each entry carries its own leading space, so
// an empty merge writes nothing at all.
func (l *Logger) appendAttrs(attrs []Attr) {
	for i := range l.defaults {
		if shadowed(l.defaults[i].K, attrs) {
			continue
		}
		l.appendAttr(l.defaults[i])
	}
	for i := range attrs {
		l.appendAttr(attrs[i])
	}
}

func (l *Logger) appendAttr(a Attr) {
	l.buf.writeByte(' ')
	appendText(&l.buf, a.K)
	l.buf.writeByte('=')
	appendValue(&l.buf, a.V, 0, l.maxDepth)
}

func shadowed(key string, attrs []Attr) bool {
	for i := range attrs {
		if attrs[i].K == key {
			return true
		}
	}
	return false
}

func (l *Logger) now() time.Time {
	if l.clock != nil {
		return l.clock.Now()
	}
	return xclock.Now()
}

func (l *Logger) notify(at time.Time, level Level, msg string, attrs []Attr) {
	if len(l.observers) == 0 {
		return
	}
	merged := make([]Attr, 0, len(l.defaults)+len(attrs))
	for i := range l.defaults {
		if shadowed(l.defaults[i].K, attrs) {
			continue
		}
		merged = append(merged, l.defaults[i])
	}
	merged = append(merged, attrs...)

	entry := Entry{At: at, Level: level, Message: msg, Attrs: merged}
	for _, o := range l.observers {
		o.OnLog(entry)
	}
}
