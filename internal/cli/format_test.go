package cli

import (
	"testing"
	"time"
)

func TestFormatAmount(t *testing.T) {
	tests := map[float64]string{
		30:    "$30",
		12.5:  "$12.5",
		0:     "$0",
		-4:    "-$4",
		0.1:   "$0.1",
		1e6:   "$1000000",
		99.99: "$99.99",
	}
	for in, want := range tests {
		if got := FormatAmount(in); got != want {
			t.Errorf("FormatAmount(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(1234567); got != "1,234,567" {
		t.Fatalf("FormatNumber = %q", got)
	}
	if got := FormatNumber(-1000); got != "-1,000" {
		t.Fatalf("FormatNumber(-1000) = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.25); got != "25%" {
		t.Fatalf("FormatPercent = %q", got)
	}
}

func TestPluralize(t *testing.T) {
	if got := Pluralize(1, "expense", "expenses"); got != "1 expense" {
		t.Fatalf("got %q", got)
	}
	if got := Pluralize(1200, "expense", "expenses"); got != "1,200 expenses" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatAgo(t *testing.T) {
	if got := FormatAgo(time.Time{}); got != "-" {
		t.Fatalf("zero time = %q", got)
	}
	if got := FormatAgo(time.Now().Add(-3 * time.Hour)); got != "3 hours ago" {
		t.Fatalf("FormatAgo = %q", got)
	}
}
