// Package flog renders structured log records into a single fixed 8 KiB
// byte buffer and writes them line-by-line to one of two sinks: DEBUG
// and INFO go to the standard writer, WARN and ERROR to the error
// writer. There is no per-call heap allocation on the happy path: the
// buffer, the timestamp rendering, and integer formatting are all
// reused or decomposed in place.
//
// Line format:
//
//	YYYY/MM/DD HH:MM:SS LEVEL message[ key=value ...]\n
//
// The timestamp is cached and re-rendered at most once per second, so a
// line's stamp may lag wall clock by just under a second under bursty
// traffic. Content beyond the buffer capacity is silently dropped; every
// line is still newline-terminated and never exceeds 8192 bytes.
//
// Values are rendered in a compact text form that is deliberately not
// JSON: map keys are quoted but string values are not, sequences are
// comma-joined in brackets, and the literals null, undefined, NaN,
// Infinity and -Infinity appear bare.
//
// # Usage constraints
//
// A Logger is single-caller by contract. The buffer, stamp cache and
// default attributes are mutated without locks; one call must fully
// render and flush before the next begins. Callers in concurrent
// environments must serialize calls externally or give each goroutine
// its own Logger.
//
// Serialization recurses through sequences and maps with no cycle
// detection. A self-referential value exhausts the stack and aborts the
// process. Config.MaxDepth exists as an opt-in bound for callers that
// cannot rule such values out; it is off by default on purpose.
package flog
