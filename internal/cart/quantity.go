package cart

// DefaultMaxQuantity caps the detail-page selector when no limit is configured.
const DefaultMaxQuantity = 10

// QuantityInput is the detail-page quantity selector, bounded by Min and Max.
type QuantityInput struct {
	Value int `json:"value"`
	Min   int `json:"min"`
	Max   int `json:"max"`
}

// NewQuantityInput starts at min. A max below min collapses to min.
func NewQuantityInput(min, max int) QuantityInput {
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}
	return QuantityInput{Value: min, Min: min, Max: max}
}

func (q *QuantityInput) Increase() {
	if q.Value < q.Max {
		q.Value++
	}
}

func (q *QuantityInput) Decrease() {
	if q.Value > q.Min {
		q.Value--
	}
}

// Set stores v clamped to [Min, Max].
func (q *QuantityInput) Set(v int) {
	switch {
	case v < q.Min:
		q.Value = q.Min
	case v > q.Max:
		q.Value = q.Max
	default:
		q.Value = v
	}
}
