package flog

import "sync/atomic"

// Facade helpers over a global Singleton logger.
// Usage: flog.Info("listening", flog.Int("port", 8080))

var global atomic.Pointer[Logger]

// SetGlobal sets the global Logger.
func SetGlobal(l *Logger) { global.Store(l) }

// L returns the global Logger; panic if unset to surface misconfig early.
func L() *Logger {
	l := global.Load()
	if l == nil {
		panic("flog: global logger not set. Build one with flog.New and call flog.SetGlobal(...)")
	}
	return l
}

// Default builds a Logger with stock configuration (os.Stdout/os.Stderr,
// INFO minimum), sets it as global, and returns it.
func Default() *Logger {
	l := New(Config{MinLevel: LevelInfo})
	SetGlobal(l)
	return l
}

func Debug(msg string, attrs ...Attr) { L().Debug(msg, attrs...) }
func Info(msg string, attrs ...Attr)  { L().Info(msg, attrs...) }
func Warn(msg string, attrs ...Attr)  { L().Warn(msg, attrs...) }
func Error(msg string, attrs ...Attr) { L().Error(msg, attrs...) }

// SetMinLevel adjusts the global logger's filter.
func SetMinLevel(level Level) { L().SetMinLevel(level) }

// SetDefaultAttrs replaces the global logger's default attribute tier.
func SetDefaultAttrs(attrs ...Attr) { L().SetDefaultAttrs(attrs...) }

// AddDefaultAttrs merges into the global logger's default attribute tier.
func AddDefaultAttrs(attrs ...Attr) { L().AddDefaultAttrs(attrs...) }
