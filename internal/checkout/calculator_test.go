package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestCalculator() Calculator {
	return NewCalculator(dec("500"), dec("0.13"))
}

func TestCompute_Scenario(t *testing.T) {
	t.Parallel()

	b, err := newTestCalculator().Compute(dec("1000"), 2)
	require.NoError(t, err)

	assert.True(t, b.Subtotal.Equal(dec("2000")), b.Subtotal.String())
	assert.True(t, b.Shipping.Equal(dec("500")), b.Shipping.String())
	assert.True(t, b.Tax.Equal(dec("260")), b.Tax.String())
	assert.True(t, b.Total.Equal(dec("2760")), b.Total.String())
}

func TestCompute_NoRounding(t *testing.T) {
	t.Parallel()

	b, err := NewCalculator(dec("50"), dec("0.08")).Compute(dec("49.99"), 1)
	require.NoError(t, err)

	assert.True(t, b.Tax.Equal(dec("3.9992")), b.Tax.String())
	assert.True(t, b.Total.Equal(dec("103.9892")), b.Total.String())
}

func TestCompute_TotalIsSumOfParts(t *testing.T) {
	t.Parallel()

	calc := newTestCalculator()
	prices := []string{"0", "0.01", "16200", "121500", "999999.99"}
	for _, p := range prices {
		for q := 1; q <= 5; q++ {
			b, err := calc.Compute(dec(p), q)
			require.NoError(t, err)
			assert.True(t, b.Total.Equal(b.Subtotal.Add(b.Shipping).Add(b.Tax)), "price=%s qty=%d", p, q)
		}
	}
}

func TestCompute_Monotonic(t *testing.T) {
	t.Parallel()

	calc := newTestCalculator()

	prev, err := calc.Compute(dec("100"), 1)
	require.NoError(t, err)
	for q := 2; q <= 10; q++ {
		next, err := calc.Compute(dec("100"), q)
		require.NoError(t, err)
		assert.True(t, next.Total.GreaterThan(prev.Total), "qty %d", q)
		prev = next
	}

	prev, err = calc.Compute(dec("0"), 3)
	require.NoError(t, err)
	for _, p := range []string{"0.01", "1", "10.5", "1000", "1000.01"} {
		next, err := calc.Compute(dec(p), 3)
		require.NoError(t, err)
		assert.True(t, next.Total.GreaterThan(prev.Total), "price %s", p)
		prev = next
	}
}

func TestCompute_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		price string
		qty   int
	}{
		{name: "zero quantity", price: "10", qty: 0},
		{name: "negative quantity", price: "10", qty: -2},
		{name: "negative price", price: "-0.01", qty: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := newTestCalculator().Compute(dec(tt.price), tt.qty)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidLine)
		})
	}
}
