package utils

import "testing"

func TestFormatAmountDisplay(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1500, "1 500"},
		{1234567.5, "1 234 567.50"},
		{99.95, "99.95"},
		{-2500.25, "-2 500.25"},
	}
	for _, c := range cases {
		if got := FormatAmountDisplay(c.in); got != c.want {
			t.Fatalf("FormatAmountDisplay(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatAmountDisplayCarriesRoundedFraction(t *testing.T) {
	// A fraction that rounds to 1.00 must carry into the whole part instead
	// of being concatenated after it.
	if got := FormatAmountDisplay(99.999); got != "100" {
		t.Fatalf("FormatAmountDisplay(99.999) = %q, want %q", got, "100")
	}
	if got := FormatAmountDisplay(999.996); got != "1 000" {
		t.Fatalf("FormatAmountDisplay(999.996) = %q, want %q", got, "1 000")
	}
	if got := FormatAmountDisplay(-99.999); got != "-100" {
		t.Fatalf("FormatAmountDisplay(-99.999) = %q, want %q", got, "-100")
	}
}

func TestFormatAmountPlainDecimal(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{150.5, "150.5"},
		{15000.50, "15000.5"},
		{0, "0"},
		{12.34, "12.34"},
	}
	for _, c := range cases {
		if got := FormatAmount(c.in); got != c.want {
			t.Fatalf("FormatAmount(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
