package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals(t *testing.T) {
	items := []LineItemInput{
		{Description: "A", Quantity: float64(2), Rate: float64(5)},
		{Description: "B", Quantity: float64(1), Rate: float64(10)},
	}

	valued, total := ComputeTotals(items)

	require.Len(t, valued, 2)
	assert.Equal(t, 10.0, valued[0].Amount)
	assert.Equal(t, 10.0, valued[1].Amount)
	assert.Equal(t, 20.0, total)
}

func TestComputeTotalsCoercion(t *testing.T) {
	tests := []struct {
		name     string
		quantity any
		rate     any
		amount   float64
	}{
		{"plain numbers", float64(3), float64(4), 12},
		{"numeric strings", "2", "7.5", 15},
		{"missing quantity", nil, float64(9), 0},
		{"missing rate", float64(9), nil, 0},
		{"garbage string", "abc", float64(5), 0},
		{"boolean", true, float64(5), 0},
		{"object", map[string]any{"x": 1}, float64(5), 0},
		{"fractional", float64(0.5), float64(3), 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valued, total := ComputeTotals([]LineItemInput{
				{Description: "item", Quantity: tt.quantity, Rate: tt.rate},
			})
			require.Len(t, valued, 1)
			assert.Equal(t, tt.amount, valued[0].Amount)
			assert.Equal(t, tt.amount, total)
		})
	}
}

func TestComputeTotalsNoRounding(t *testing.T) {
	valued, total := ComputeTotals([]LineItemInput{
		{Description: "thirds", Quantity: float64(3), Rate: float64(1) / 3},
	})
	require.Len(t, valued, 1)
	assert.InDelta(t, 1.0, total, 1e-12)
	assert.Equal(t, valued[0].Amount, total)
}

func TestComputeTotalsIdempotent(t *testing.T) {
	items := []LineItemInput{
		{Description: "A", Quantity: "2", Rate: float64(5)},
		{Description: "B", Quantity: nil, Rate: "oops"},
	}

	first, firstTotal := ComputeTotals(items)
	second, secondTotal := ComputeTotals(items)

	assert.Equal(t, first, second)
	assert.Equal(t, firstTotal, secondTotal)
}

func TestComputeTotalsEmpty(t *testing.T) {
	valued, total := ComputeTotals(nil)
	assert.Empty(t, valued)
	assert.Zero(t, total)
}
