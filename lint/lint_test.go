package lint

import "testing"

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"allow", LevelAllow, true},
		{"warn", LevelWarn, true},
		{"deny", LevelDeny, true},
		{"forbid", LevelForbid, true},
		{"error", LevelAllow, false},
		{"", LevelAllow, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLevel_String(t *testing.T) {
	for _, l := range []Level{LevelAllow, LevelWarn, LevelDeny, LevelForbid} {
		if got, ok := ParseLevel(l.String()); !ok || got != l {
			t.Errorf("level %d does not round trip through String", l)
		}
	}
}
