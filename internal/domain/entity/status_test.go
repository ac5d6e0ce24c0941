package entity

import "testing"

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		raw      string
		want     Status
		acquirer string
	}{
		{"current", StatusActive, ""},
		{"Active", StatusActive, ""},
		{"  Current Investment ", StatusActive, ""},
		{"former", StatusExit, ""},
		{"past", StatusExit, ""},
		{"Exit", StatusExit, ""},
		{"past | acquired by Thoma Bravo", StatusExit, "thoma bravo"},
		{"Acquisition", StatusExit, "acquired"},
		{"", StatusUnknown, ""},
		{"   ", StatusUnknown, ""},
		{"something else", StatusUnknown, ""},
	}

	for _, tc := range cases {
		got, acquirer := NormalizeStatus(tc.raw)
		if got != tc.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", tc.raw, got, tc.want)
		}
		if acquirer != tc.acquirer {
			t.Errorf("NormalizeStatus(%q) acquirer = %q, want %q", tc.raw, acquirer, tc.acquirer)
		}
	}
}
