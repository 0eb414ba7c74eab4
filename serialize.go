package flog

import "fmt"

// ellipsis replaces values nested beyond the opt-in depth guard.
var ellipsis = []byte("...")

// appendValue is the serialization dispatch. It recurses through Seq and
// Map with no cycle detection: a self-referential Value is fatal by
// contract unless the owning Logger set MaxDepth. maxDepth <= 0 means
// unguarded; depth counts container nesting from zero.
func appendValue(buf *lineBuffer, v Value, depth, maxDepth int) {
	switch v.Kind {
	case KindNull:
		buf.writeBytes(litNull)
	case KindMissing:
		buf.writeBytes(litUndefined)
	case KindString:
		appendText(buf, v.Str)
	case KindBool:
		if v.Bool {
			buf.writeBytes(litTrue)
		} else {
			buf.writeBytes(litFalse)
		}
	case KindInt64:
		appendInt64(buf, v.Int64)
	case KindFloat64:
		appendFloat64(buf, v.Float64)
	case KindBigInt:
		appendBigInt(buf, v.Big)
	case KindToken, KindFunc:
		appendText(buf, v.Str)
	case KindSeq:
		if maxDepth > 0 && depth >= maxDepth {
			buf.writeBytes(ellipsis)
			return
		}
		buf.writeByte('[')
		for i, e := range v.Seq {
			if i > 0 {
				buf.writeByte(',')
			}
			appendValue(buf, e, depth+1, maxDepth)
		}
		buf.writeByte(']')
	case KindDescribe:
		appendText(buf, v.Desc.DescribeText())
	case KindMap:
		if maxDepth > 0 && depth >= maxDepth {
			buf.writeBytes(ellipsis)
			return
		}
		// Keys are quoted, values are not, even when textual. This is the
		// line format's contract, not JSON.
		buf.writeByte('{')
		for i, m := range v.Map {
			if i > 0 {
				buf.writeByte(',')
			}
			appendQuotedKey(buf, m.K)
			buf.writeByte(':')
			appendValue(buf, m.V, depth+1, maxDepth)
		}
		buf.writeByte('}')
	case KindOther:
		appendText(buf, fmt.Sprint(v.Any))
	default:
		buf.writeBytes(litNull)
	}
}
