package flog

// BufferCap is the fixed capacity of the shared line buffer and therefore
// the upper bound on the length of any emitted line, newline included.
const BufferCap = 8192

// lineBuffer is the shared fixed-capacity byte sink. Appends saturate at
// capacity: whatever does not fit is dropped, never reported. The buffer
// is owned by exactly one Logger and reused for every line.
type lineBuffer struct {
	b       [BufferCap]byte
	n       int
	clipped bool
}

func (buf *lineBuffer) reset() {
	buf.n = 0
	buf.clipped = false
}

func (buf *lineBuffer) writeByte(c byte) {
	if buf.n >= BufferCap {
		buf.clipped = true
		return
	}
	buf.b[buf.n] = c
	buf.n++
}

func (buf *lineBuffer) writeString(s string) {
	m := copy(buf.b[buf.n:], s)
	buf.n += m
	if m < len(s) {
		buf.clipped = true
	}
}

func (buf *lineBuffer) writeBytes(p []byte) {
	m := copy(buf.b[buf.n:], p)
	buf.n += m
	if m < len(p) {
		buf.clipped = true
	}
}

// terminate closes the line and returns the flushable range. A full buffer
// loses its final content byte to the newline so that every line is
// newline-terminated and never longer than BufferCap; losing that byte
// counts as truncation even when every append fit.
func (buf *lineBuffer) terminate() []byte {
	if buf.n < BufferCap {
		buf.b[buf.n] = '\n'
		buf.n++
	} else {
		buf.b[BufferCap-1] = '\n'
		buf.clipped = true
	}
	return buf.b[:buf.n]
}
