package flog

import "time"

// stampRefresh is the minimum wall-clock gap between two renders of the
// timestamp. Under bursty traffic a line may carry a stamp up to just
// under this interval old; that drift is the price of formatting the
// date at most once per second instead of once per line.
const stampRefresh = time.Second

const stampLen = 19 // YYYY/MM/DD HH:MM:SS

// stampCache holds the rendered timestamp and the instant it was
// rendered at. Mutated only from the owning Logger's render path.
type stampCache struct {
	b    [stampLen]byte
	last time.Time
}

// bytes returns the cached rendering, recomputing it in full when at
// least stampRefresh has elapsed since the previous render. A negative
// delta means the clock stepped backward past the cached instant; render
// again rather than serve a stale stamp until wall clock catches up.
func (c *stampCache) bytes(now time.Time) []byte {
	if d := now.Sub(c.last); c.last.IsZero() || d >= stampRefresh || d < 0 {
		c.render(now)
		c.last = now
	}
	return c.b[:]
}

// render decomposes the instant arithmetically; no time.Format.
func (c *stampCache) render(now time.Time) {
	year, month, day := now.Date()
	hour, minute, sec := now.Clock()

	c.put4(0, year)
	c.b[4] = '/'
	c.put2(5, int(month))
	c.b[7] = '/'
	c.put2(8, day)
	c.b[10] = ' '
	c.put2(11, hour)
	c.b[13] = ':'
	c.put2(14, minute)
	c.b[16] = ':'
	c.put2(17, sec)
}

func (c *stampCache) put4(i, v int) {
	c.b[i] = byte('0' + v/1000%10)
	c.b[i+1] = byte('0' + v/100%10)
	c.b[i+2] = byte('0' + v/10%10)
	c.b[i+3] = byte('0' + v%10)
}

func (c *stampCache) put2(i, v int) {
	c.b[i] = byte('0' + v/10%10)
	c.b[i+1] = byte('0' + v%10)
}
