package cost

// Totals aggregates a route under all four models at once.
type Totals struct {
	Segments      int
	Miles         float64
	Hours         float64
	DeliveryHours float64
}

// Add appends e to the route. Delivery uses the running DeliveryHours as the
// prior cost, exactly as the search charged it.
func (t *Totals) Add(e Edge) {
	t.Segments++
	t.Miles += e.Length
	t.Hours += e.TravelTime()
	t.DeliveryHours += DeliveryStep(e, t.DeliveryHours)
}

// Of returns the total measured by m.
func (t Totals) Of(m Model) float64 {
	switch m {
	case Segments:
		return float64(t.Segments)
	case Distance:
		return t.Miles
	case Time:
		return t.Hours
	case Delivery:
		return t.DeliveryHours
	default:
		return 0
	}
}

// Tally replays edges in order and returns their totals.
func Tally(edges []Edge) Totals {
	var t Totals
	for _, e := range edges {
		t.Add(e)
	}

	return t
}
