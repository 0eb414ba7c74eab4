package flog

import (
	"math/big"
	"sort"
	"time"
)

// Kind identifies the concrete shape stored in a Value.
type Kind uint8

const (
	KindNull Kind = iota + 1
	KindMissing
	KindString
	KindBool
	KindInt64
	KindFloat64
	KindBigInt
	KindToken
	KindFunc
	KindSeq
	KindMap
	KindDescribe
	KindOther
)

// Describable lets a value supply its own textual rendering, overriding
// the generic structural {"k":v} form. Concrete types opt in explicitly;
// there is no reflective detection.
type Describable interface {
	DescribeText() string
}

// Value is a compact, reflection-free union decided once at construction.
// The serializer dispatches on Kind only.
type Value struct {
	Kind    Kind
	Str     string
	Int64   int64
	Float64 float64
	Bool    bool
	Big     *big.Int
	Seq     []Value
	Map     []Member
	Desc    Describable
	Any     any
}

// Member is one ordered key/value pair of a Map value.
type Member struct {
	K string
	V Value
}

// Constructors. Each fixes the Kind up front so serialization never
// inspects the runtime type again.

func Null() Value                  { return Value{Kind: KindNull} }
func Missing() Value               { return Value{Kind: KindMissing} }
func StringValue(s string) Value   { return Value{Kind: KindString, Str: s} }
func BoolValue(v bool) Value       { return Value{Kind: KindBool, Bool: v} }
func IntValue(v int64) Value       { return Value{Kind: KindInt64, Int64: v} }
func FloatValue(v float64) Value   { return Value{Kind: KindFloat64, Float64: v} }
func BigIntValue(v *big.Int) Value { return Value{Kind: KindBigInt, Big: v} }

// TokenValue carries an opaque identifier, rendered as its descriptive text.
func TokenValue(desc string) Value { return Value{Kind: KindToken, Str: desc} }

// FuncValue carries the textual form of a callable, supplied at construction.
func FuncValue(repr string) Value { return Value{Kind: KindFunc, Str: repr} }

func SeqValue(elems ...Value) Value { return Value{Kind: KindSeq, Seq: elems} }

func MapValue(members ...Member) Value { return Value{Kind: KindMap, Map: members} }

// M builds one Map member; MapValue(M("a", IntValue(1)), ...) preserves
// argument order in the output.
func M(k string, v Value) Member { return Member{K: k, V: v} }

func DescribeValue(d Describable) Value {
	if d == nil {
		return Null()
	}
	return Value{Kind: KindDescribe, Desc: d}
}

// errText adapts an error into the Describable capability.
type errText struct{ err error }

func (e errText) DescribeText() string { return e.err.Error() }

func ErrValue(err error) Value {
	if err == nil {
		return Null()
	}
	return Value{Kind: KindDescribe, Desc: errText{err}}
}

// timeText adapts a time.Time into the Describable capability (RFC3339).
type timeText struct{ t time.Time }

func (t timeText) DescribeText() string { return t.t.Format(time.RFC3339) }

func TimeValue(t time.Time) Value { return Value{Kind: KindDescribe, Desc: timeText{t}} }

// ValueOf converts an arbitrary runtime value through a single type
// switch. Unordered Go maps are emitted in sorted key order for
// determinism; use MapValue to control ordering. Unrecognized types land
// in KindOther and are coerced best-effort at serialization time.
func ValueOf(v any) Value {
	switch vv := v.(type) {
	case nil:
		return Null()
	case Value:
		return vv
	case string:
		return StringValue(vv)
	case bool:
		return BoolValue(vv)
	case int:
		return IntValue(int64(vv))
	case int8:
		return IntValue(int64(vv))
	case int16:
		return IntValue(int64(vv))
	case int32:
		return IntValue(int64(vv))
	case int64:
		return IntValue(vv)
	case uint:
		return uintValue(uint64(vv))
	case uint8:
		return IntValue(int64(vv))
	case uint16:
		return IntValue(int64(vv))
	case uint32:
		return IntValue(int64(vv))
	case uint64:
		return uintValue(vv)
	case float32:
		return FloatValue(float64(vv))
	case float64:
		return FloatValue(vv)
	case *big.Int:
		return BigIntValue(vv)
	case time.Time:
		return TimeValue(vv)
	case time.Duration:
		return StringValue(vv.String())
	case error:
		return ErrValue(vv)
	case Describable:
		return DescribeValue(vv)
	case []Value:
		return Value{Kind: KindSeq, Seq: vv}
	case []any:
		elems := make([]Value, len(vv))
		for i, e := range vv {
			elems[i] = ValueOf(e)
		}
		return Value{Kind: KindSeq, Seq: elems}
	case map[string]any:
		keys := make([]string, 0, len(vv))
		for k := range vv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, len(keys))
		for i, k := range keys {
			members[i] = Member{K: k, V: ValueOf(vv[k])}
		}
		return Value{Kind: KindMap, Map: members}
	default:
		return Value{Kind: KindOther, Any: v}
	}
}

func uintValue(v uint64) Value {
	if v <= 1<<63-1 {
		return IntValue(int64(v))
	}
	return BigIntValue(new(big.Int).SetUint64(v))
}
