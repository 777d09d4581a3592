package utils

import "testing"

func TestNormalizeDisplayName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  anna   karlsson ", "Anna Karlsson"},
		{"BEN OKAFOR", "Ben Okafor"},
		{"maría lópez", "María López"},
		{"", ""},
		{"   ", ""},
		{"x", "X"},
	}
	for _, tc := range cases {
		if got := NormalizeDisplayName(tc.in); got != tc.want {
			t.Errorf("NormalizeDisplayName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
