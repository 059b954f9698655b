package ui

import "testing"

func TestPercent(t *testing.T) {
	cases := []struct {
		n, total int
		want     string
	}{
		{0, 10, "0%"},
		{1, 3, "33%"},
		{2, 3, "67%"},
		{5, 5, "100%"},
		{3, 0, "0%"},
	}
	for _, c := range cases {
		if got := percent(c.n, c.total); got != c.want {
			t.Fatalf("percent(%d,%d) = %q, want %q", c.n, c.total, got, c.want)
		}
	}
}
