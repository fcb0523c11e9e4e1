package allocator

import (
	"github.com/quantfield/collateral-allocator/internal/input"
	"github.com/quantfield/collateral-allocator/internal/model"
	"github.com/quantfield/collateral-allocator/pkg/constants"
	"github.com/quantfield/collateral-allocator/pkg/lp"
	"github.com/quantfield/collateral-allocator/pkg/mathutil"
)

// extract turns a solver outcome into the result document. The solver's
// status is trusted as-is; infeasibility and unboundedness are reportable
// outcomes, never errors. On an optimal solve the allocation matrix covers
// the full asset-account cross product, assets outer and accounts inner in
// payload order, and the reported objective passes through unrounded.
func extract(portfolio *input.Portfolio, m *model.Model, solution *lp.Solution) *Result {
	switch solution.Status {
	case lp.StatusOptimal:
		// proceed
	case lp.StatusUnbounded:
		return &Result{Output: Output{
			AllocationMatrix: []Allocation{},
			Status:           constants.StatusUnbounded,
		}}
	default:
		return &Result{Output: Output{
			AllocationMatrix: []Allocation{},
			Status:           constants.StatusNoSolution,
		}}
	}

	matrix := make([]Allocation, 0, len(portfolio.Assets)*len(portfolio.Accounts))
	for _, asset := range portfolio.Assets {
		for _, account := range portfolio.Accounts {
			var quantity float64
			if idx, ok := m.VarIndex(asset.AssetID, account.AccountID); ok {
				// Tiny negatives are simplex round-off; a negative
				// allocation has no meaning.
				quantity = mathutil.ClampToZero(solution.Values[idx], constants.ZeroClampTolerance)
			}
			matrix = append(matrix, Allocation{
				AssetID:            asset.AssetID,
				AccountID:          account.AccountID,
				AllocationFraction: quantity,
			})
		}
	}

	cost := solution.Objective
	return &Result{Output: Output{
		AllocationMatrix:    matrix,
		TotalCollateralCost: &cost,
	}}
}
