package flog

import "time"

// Entry is the snapshot handed to Observers after a line is flushed.
// Attrs holds the merged default + call attributes in emission order and
// is safe to hold.
type Entry struct {
	At      time.Time
	Level   Level
	Message string
	Attrs   []Attr
}

// Observer is notified synchronously for each emitted line, inside the
// log call. An Observer must not log through the same Logger; the shared
// buffer is not reentrant.
type Observer interface {
	OnLog(entry Entry)
}

// ObserverFunc adapter.
type ObserverFunc func(Entry)

func (f ObserverFunc) OnLog(e Entry) { f(e) }
