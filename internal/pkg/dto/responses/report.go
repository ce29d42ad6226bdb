package responses

type Revenue struct {
	Type    string  `json:"type"`
	Revenue float64 `json:"revenue"`
	// BillableValue sums service totals in a billable-or-further state.
	// Kept separate from Revenue, which counts cash actually collected.
	BillableValue float64 `json:"billable_value"`
}

type TopItem struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type StaffPerformance struct {
	ActorID      string  `json:"actor_id"`
	HandledCount int     `json:"handled_count"`
	TotalValue   float64 `json:"total_value"`
}
