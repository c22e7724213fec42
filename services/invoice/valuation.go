package invoice

import (
	"encoding/json"
	"strconv"

	"invoicely/models"
)

// toNumber coerces a loosely typed JSON value to a float64. Anything
// that is not a number or a parseable numeric string becomes 0; that
// silent defaulting is the documented policy, not an accident.
func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// ComputeTotals values a sequence of line items: each item's amount is
// quantity * rate after coercion, and the returned total is the sum of
// all amounts. No rounding is applied; presentation concerns live
// elsewhere. The function is pure and safe to call repeatedly on the
// same input.
func ComputeTotals(items []LineItemInput) ([]models.LineItem, float64) {
	valued := make([]models.LineItem, 0, len(items))
	var total float64
	for _, it := range items {
		quantity := toNumber(it.Quantity)
		rate := toNumber(it.Rate)
		amount := quantity * rate
		valued = append(valued, models.LineItem{
			Description: it.Description,
			Quantity:    quantity,
			Rate:        rate,
			Amount:      amount,
		})
		total += amount
	}
	return valued, total
}
