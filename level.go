package flog

// Level mirrors slog numeric semantics: DEBUG=-4, INFO=0, WARN=4, ERROR=8.
// Ordering drives both the minimum-level filter and channel routing.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// Pre-rendered tokens with the surrounding spaces already in place, so a
// line is stamp + token + message with no per-call concatenation.
var (
	tokenDebug = []byte(" DEBUG ")
	tokenInfo  = []byte(" INFO ")
	tokenWarn  = []byte(" WARN ")
	tokenError = []byte(" ERROR ")
)

// token maps arbitrary numeric levels onto the nearest named band,
// the same banding routing uses for in-between values.
func (l Level) token() []byte {
	switch {
	case l >= LevelError:
		return tokenError
	case l >= LevelWarn:
		return tokenWarn
	case l >= LevelInfo:
		return tokenInfo
	default:
		return tokenDebug
	}
}

func (l Level) String() string {
	switch {
	case l >= LevelError:
		return "ERROR"
	case l >= LevelWarn:
		return "WARN"
	case l >= LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
