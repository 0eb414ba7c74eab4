package flog

import (
	"math"
	"math/big"
	"strconv"
)

const minInt64Str = "-9223372036854775808"

// maxSafeInt is the largest float64 magnitude rendered by the integer
// fast path; beyond it consecutive integers are no longer exact.
const maxSafeInt = 1 << 53

var (
	litTrue      = []byte("true")
	litFalse     = []byte("false")
	litNull      = []byte("null")
	litUndefined = []byte("undefined")
	litNaN       = []byte("NaN")
	litInf       = []byte("Infinity")
	litNegInf    = []byte("-Infinity")
)

func appendInt64(buf *lineBuffer, v int64) {
	if v == 0 {
		buf.writeByte('0')
		return
	}
	if v < 0 {
		if v == -1<<63 {
			buf.writeString(minInt64Str)
			return
		}
		buf.writeByte('-')
		v = -v
	}
	appendUint64(buf, uint64(v))
}

func appendUint64(buf *lineBuffer, v uint64) {
	if v == 0 {
		buf.writeByte('0')
		return
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	buf.writeBytes(tmp[i:])
}

// appendFloat64 renders NaN/Infinity literals, pulls the sign off up front,
// and uses digit decomposition for exact integers below 2^53. Everything
// else falls back to strconv's shortest form.
func appendFloat64(buf *lineBuffer, f float64) {
	if math.IsNaN(f) {
		buf.writeBytes(litNaN)
		return
	}
	if math.IsInf(f, 1) {
		buf.writeBytes(litInf)
		return
	}
	if math.IsInf(f, -1) {
		buf.writeBytes(litNegInf)
		return
	}
	if math.Signbit(f) && f != 0 {
		buf.writeByte('-')
		f = -f
	}
	if f == 0 {
		buf.writeByte('0')
		return
	}
	if f == math.Trunc(f) && f < maxSafeInt {
		appendUint64(buf, uint64(f))
		return
	}
	var tmp [32]byte
	b := strconv.AppendFloat(tmp[:0], f, 'g', -1, 64)
	buf.writeBytes(b)
}

func appendBigInt(buf *lineBuffer, v *big.Int) {
	if v == nil {
		buf.writeBytes(litNull)
		return
	}
	var tmp [64]byte
	buf.writeBytes(v.Append(tmp[:0], 10))
}
