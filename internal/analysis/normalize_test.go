package analysis

import "testing"

func TestNormalizeDisplay(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Revenue grew\t10%.\n\nCosts  declined. ", "Revenue grew 10%. Costs declined."},
		{"already clean", "already clean"},
		{"", ""},
		{"   \n\t ", ""},
		{"Keeps, Case AND punct!?", "Keeps, Case AND punct!?"},
	}
	for _, c := range cases {
		if got := NormalizeDisplay(c.in); got != c.want {
			t.Errorf("NormalizeDisplay(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestNormalizeTokens(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Revenue grew 10%.", "revenue grew 10"},
		{"EV/semiconductor — growth!", "ev semiconductor growth"},
		{"Grüße 2024", "gr e 2024"},
		{"", ""},
		{"...!!!", ""},
	}
	for _, c := range cases {
		if got := NormalizeTokens(c.in); got != c.want {
			t.Errorf("NormalizeTokens(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}
