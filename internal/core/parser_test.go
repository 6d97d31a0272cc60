package core

import (
	"errors"
	"testing"
)

func TestParseEntry(t *testing.T) {
	cases := []struct {
		in       string
		cents    int64
		category string
	}{
		{"100 кава", 10000, "кава"},
		{"150 таксі", 15000, "таксі"},
		{"12.50 обід в місті", 1250, "обід в місті"},
		{"12,50 Продукти", 1250, "продукти"},
		{"  40   Кава  ", 4000, "кава"},
		{"99 Coffee", 9900, "coffee"},
	}
	for _, tc := range cases {
		got, err := ParseEntry(tc.in)
		if err != nil {
			t.Fatalf("%q unexpected error: %v", tc.in, err)
		}
		if got.Amount.Cents != tc.cents {
			t.Fatalf("%q expected %d cents, got %d", tc.in, tc.cents, got.Amount.Cents)
		}
		if got.Category != tc.category {
			t.Fatalf("%q expected category %q, got %q", tc.in, tc.category, got.Category)
		}
	}
}

func TestParseEntryInvalidAmount(t *testing.T) {
	for _, in := range []string{"", "   ", "abc кава", "-5 кава", "0 кава", "1.2.3 кава"} {
		_, err := ParseEntry(in)
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("%q expected ErrInvalidAmount, got %v", in, err)
		}
	}
}

func TestParseEntryMissingCategory(t *testing.T) {
	for _, in := range []string{"100", "100   ", "12.50"} {
		_, err := ParseEntry(in)
		if !errors.Is(err, ErrMissingCategory) {
			t.Fatalf("%q expected ErrMissingCategory, got %v", in, err)
		}
	}
}
