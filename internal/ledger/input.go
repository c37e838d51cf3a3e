package ledger

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Validation failures for a submitted expense, checked in this order.
var (
	ErrMissingField     = errors.New("both fields are required")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrExceedsRemaining = errors.New("amount exceeds the budget")
)

// ParseBudget converts user input into a budget total.
func ParseBudget(input string) (float64, error) {
	v, ok := parsePositive(input)
	if !ok {
		return 0, ErrInvalidBudget
	}
	return v, nil
}

// ValidateExpense applies the form checks for a new expense against the current
// remaining balance and returns the cleaned name and parsed amount.
func ValidateExpense(name, amountInput string, remaining float64) (string, float64, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(amountInput) == "" {
		return "", 0, ErrMissingField
	}

	amount, ok := parsePositive(amountInput)
	if !ok {
		return "", 0, ErrInvalidAmount
	}
	if amount > remaining {
		return "", 0, ErrExceedsRemaining
	}
	return name, amount, nil
}

func parsePositive(input string) (float64, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}
