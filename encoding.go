package flog

import "unicode/utf8"

// appendText writes s verbatim. Pure-ASCII text takes a single byte copy;
// anything else goes through the rune-wise encoder, which also repairs
// invalid UTF-8 with the replacement rune.
func appendText(buf *lineBuffer, s string) {
	if isASCII(s) {
		buf.writeString(s)
		return
	}
	appendMultibyte(buf, s)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func appendMultibyte(buf *lineBuffer, s string) {
	var tmp [utf8.UTFMax]byte
	for i := 0; i < len(s); {
		c := s[i]
		if c < 0x80 {
			buf.writeByte(c)
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		buf.writeBytes(utf8.AppendRune(tmp[:0], r))
		i += size
	}
}

// appendQuotedKey wraps a map key in double quotes. Keys are written as-is
// between the quotes; escaping is deliberately not part of the format.
func appendQuotedKey(buf *lineBuffer, k string) {
	buf.writeByte('"')
	appendText(buf, k)
	buf.writeByte('"')
}
