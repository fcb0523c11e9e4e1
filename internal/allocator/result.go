package allocator

// Allocation is one cell of the allocation matrix: the solved quantity of
// one asset posted to one account. The field keeps the source system's
// allocation_fraction name even though it carries a unit count.
type Allocation struct {
	AssetID            string  `json:"asset_id"`
	AccountID          string  `json:"account_id"`
	AllocationFraction float64 `json:"allocation_fraction"`
}

// Output is the result document body. TotalCollateralCost is nil and Status
// is set when no optimal solution exists; Status is omitted on success.
type Output struct {
	AllocationMatrix    []Allocation `json:"allocation_matrix"`
	TotalCollateralCost *float64     `json:"total_collateral_cost"`
	Status              string       `json:"status,omitempty"`
}

// Result is the structured outcome of one allocation run.
type Result struct {
	Output Output `json:"output"`
	RunID  string `json:"-"`
}

// Optimal reports whether the run produced an optimal allocation.
func (r *Result) Optimal() bool {
	return r.Output.TotalCollateralCost != nil
}
