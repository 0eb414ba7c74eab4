package flog

import "testing"

func TestLevelConstants(t *testing.T) {
	t.Parallel()

	if LevelDebug != -4 || LevelInfo != 0 || LevelWarn != 4 || LevelError != 8 {
		t.Fatalf("level constants drifted: %d %d %d %d",
			LevelDebug, LevelInfo, LevelWarn, LevelError)
	}
	if !(LevelDebug < LevelInfo && LevelInfo < LevelWarn && LevelWarn < LevelError) {
		t.Fatal("levels not totally ordered")
	}
}

func TestLevelToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		l    Level
		want string
	}{
		{LevelDebug, " DEBUG "},
		{LevelInfo, " INFO "},
		{LevelWarn, " WARN "},
		{LevelError, " ERROR "},
		{-8, " DEBUG "},   // below the named bands
		{2, " INFO "},     // in-between values map to the band below
		{6, " WARN "},
		{100, " ERROR "},
	}
	for _, c := range cases {
		if got := string(c.l.token()); got != c.want {
			t.Errorf("token(%d) = %q, want %q", c.l, got, c.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	t.Parallel()

	for l, want := range map[Level]string{
		LevelDebug: "DEBUG",
		LevelInfo:  "INFO",
		LevelWarn:  "WARN",
		LevelError: "ERROR",
	} {
		if got := l.String(); got != want {
			t.Errorf("String(%d) = %q, want %q", l, got, want)
		}
	}
}
