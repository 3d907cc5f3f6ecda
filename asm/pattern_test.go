package asm

import "testing"

func TestMatchesLiteral(t *testing.T) {
	cases := []struct {
		pattern, text string
		want          bool
	}{
		{"", "", true},
		{"", "A", false},
		{"A", "A", true},
		{"A", "X", false},
	}
	for _, c := range cases {
		if got := Matches(c.pattern, c.text); got != c.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", c.pattern, c.text, got, c.want)
		}
	}
}

func TestMatchesByteToken(t *testing.T) {
	cases := []struct {
		pattern, text string
		want          bool
	}{
		{"#@byte", "#12", true},
		{"#@byte", "#1", true},
		{"#@byte", "#1G", false},
		{"$@byte", "$05", true},
		{"$@byte,X", "$05,X", true},
		{"$@byte,X", "$05,Y", false},
		{"$@byte@byte", "$1234", true},
		{"($@byte@byte)", "($1234)", true},
		{"($@byte,X)", "($FA,X)", true},
		{"($@byte),Y", "($32),Y", true},
	}
	for _, c := range cases {
		if got := Matches(c.pattern, c.text); got != c.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", c.pattern, c.text, got, c.want)
		}
	}
}

func TestExtractNumber(t *testing.T) {
	cases := []struct {
		text string
		want uint16
	}{
		{"#12", 0x12},
		{"$05", 0x05},
		{"$05,X", 0x05},
		{"$1234", 0x1234},
		{"($1234)", 0x1234},
		{"($FA,X)", 0xFA},
		{"($32),Y", 0x32},
		{"02", 0x02},
	}
	for _, c := range cases {
		if got := ExtractNumber(c.text); got != c.want {
			t.Errorf("ExtractNumber(%q) = 0x%X, want 0x%X", c.text, got, c.want)
		}
	}
}
