package util

import "testing"

func TestNormalizeAnswer(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "papa", "papa"},
		{"uppercase", "Papa", "papa"},
		{"surrounding whitespace", "  Papa \t", "papa"},
		{"zero width space", "Papa\u200b", "papa"},
		{"zero width joiner inside", "Pa\u200dpa", "papa"},
		{"bom prefix", "\ufeffpapa", "papa"},
		{"only whitespace", "   ", ""},
		{"only zero width", "\u200b\u200c", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeAnswer(tc.in); got != tc.want {
				t.Errorf("NormalizeAnswer(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestAnswersEqual(t *testing.T) {
	if !AnswersEqual(" Papa ", "papa\u200b") {
		t.Error("expected answers to match after normalization")
	}
	if AnswersEqual("papa", "maame") {
		t.Error("different words must not match")
	}
	if AnswersEqual("", "papa") {
		t.Error("empty answer must not match a non-empty one")
	}
}
