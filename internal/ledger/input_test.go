package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBudget(t *testing.T) {
	valid := map[string]float64{
		"100":    100,
		" 42.5 ": 42.5,
		"1e3":    1000,
	}
	for in, want := range valid {
		got, err := ParseBudget(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	for _, in := range []string{"", "   ", "abc", "0", "-5", "NaN", "Inf", "12abc"} {
		_, err := ParseBudget(in)
		assert.ErrorIs(t, err, ErrInvalidBudget, "input %q", in)
	}
}

func TestValidateExpenseOrder(t *testing.T) {
	tests := []struct {
		name, amount string
		remaining    float64
		want         error
	}{
		{"", "10", 100, ErrMissingField},
		{"Coffee", "", 100, ErrMissingField},
		{"  ", "abc", 100, ErrMissingField},
		{"Coffee", "abc", 100, ErrInvalidAmount},
		{"Coffee", "0", 100, ErrInvalidAmount},
		{"Coffee", "-3", 100, ErrInvalidAmount},
		{"Coffee", "101", 100, ErrExceedsRemaining},
		{"Coffee", "-3", 0, ErrInvalidAmount},
	}
	for _, tt := range tests {
		_, _, err := ValidateExpense(tt.name, tt.amount, tt.remaining)
		assert.ErrorIs(t, err, tt.want, "name=%q amount=%q", tt.name, tt.amount)
	}
}

func TestValidateExpenseAccepts(t *testing.T) {
	name, amount, err := ValidateExpense("  Book ", "100", 100)
	require.NoError(t, err)
	assert.Equal(t, "Book", name)
	assert.Equal(t, 100.0, amount)
}
