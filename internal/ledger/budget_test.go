package ledger

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/cspend/internal/model"
)

func expense(id string, amount float64) model.Expense {
	return model.Expense{ID: id, Name: "item-" + id, Amount: amount}
}

func sumAmounts(es []model.Expense) float64 {
	var s float64
	for _, e := range es {
		s += e.Amount
	}
	return s
}

func TestNewRejectsNonPositive(t *testing.T) {
	for _, total := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := New(total)
		assert.ErrorIs(t, err, ErrInvalidBudget, "total=%v", total)
	}

	b, err := New(250)
	require.NoError(t, err)
	assert.Equal(t, 250.0, b.Total())
	assert.Equal(t, 250.0, b.Remaining())
	assert.Zero(t, b.Len())
}

func TestCoffeeAndBookScenario(t *testing.T) {
	b, err := New(100)
	require.NoError(t, err)

	b.AddExpense(expense("1", 30))
	assert.Equal(t, 70.0, b.Remaining())

	b.AddExpense(expense("2", 50))
	assert.Equal(t, 20.0, b.Remaining())
	assert.Equal(t, model.TierDanger, model.ClassifyTier(b.Totals()))
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	b, _ := New(100)
	b.AddExpense(expense("c", 1))
	b.AddExpense(expense("a", 2))
	b.AddExpense(expense("b", 3))

	var ids []string
	for _, e := range b.Expenses() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestAddHasNoUpperBound(t *testing.T) {
	b, _ := New(10)
	b.AddExpense(expense("1", 25))
	assert.Equal(t, -15.0, b.Remaining())
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	b, _ := New(100)
	b.AddExpense(expense("1", 40))
	before := b.Expenses()

	assert.False(t, b.RemoveExpense("nope"))
	assert.Equal(t, before, b.Expenses())
	assert.Equal(t, 60.0, b.Remaining())
}

func TestRemoveDropsEveryMatch(t *testing.T) {
	b, _ := New(100)
	b.AddExpense(expense("dup", 10))
	b.AddExpense(expense("keep", 5))
	b.AddExpense(expense("dup", 20))

	assert.True(t, b.RemoveExpense("dup"))
	require.Equal(t, 1, b.Len())
	assert.Equal(t, "keep", b.Expenses()[0].ID)
	assert.Equal(t, 95.0, b.Remaining())
}

func TestExpensesReturnsCopy(t *testing.T) {
	b, _ := New(100)
	b.AddExpense(expense("1", 10))

	es := b.Expenses()
	es[0].Amount = 99
	assert.Equal(t, 10.0, b.Expenses()[0].Amount)
	assert.Equal(t, 90.0, b.Remaining())
}

func TestRemainingInvariantUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b, _ := New(1000)
	next := 0

	for i := 0; i < 500; i++ {
		if b.Len() > 0 && rng.Intn(3) == 0 {
			es := b.Expenses()
			b.RemoveExpense(es[rng.Intn(len(es))].ID)
		} else if rng.Intn(10) == 0 {
			b.RemoveExpense("missing")
		} else {
			next++
			b.AddExpense(expense(strconv.Itoa(next), float64(rng.Intn(50)+1)))
		}

		// Amounts are whole numbers so the float sums are exact.
		require.Equal(t, b.Total()-sumAmounts(b.Expenses()), b.Remaining(), "step %d", i)
	}
}
