package flog

import (
	"math/big"
	"time"
)

// Attr is one key/value pair attached to a line, either as a long-lived
// default on the Logger or per call.
type Attr struct {
	K string
	V Value
}

// Helpers for ergonomics.

func Str(k, v string) Attr                 { return Attr{K: k, V: StringValue(v)} }
func Int(k string, v int) Attr             { return Attr{K: k, V: IntValue(int64(v))} }
func Int64(k string, v int64) Attr         { return Attr{K: k, V: IntValue(v)} }
func Float64(k string, v float64) Attr     { return Attr{K: k, V: FloatValue(v)} }
func Bool(k string, v bool) Attr           { return Attr{K: k, V: BoolValue(v)} }
func BigInt(k string, v *big.Int) Attr     { return Attr{K: k, V: BigIntValue(v)} }
func Time(k string, v time.Time) Attr      { return Attr{K: k, V: TimeValue(v)} }
func Err(k string, err error) Attr         { return Attr{K: k, V: ErrValue(err)} }
func Seq(k string, elems ...Value) Attr    { return Attr{K: k, V: SeqValue(elems...)} }
func Obj(k string, members ...Member) Attr { return Attr{K: k, V: MapValue(members...)} }
func Any(k string, v any) Attr             { return Attr{K: k, V: ValueOf(v)} }
