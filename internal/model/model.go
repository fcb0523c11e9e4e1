// Package model translates an input portfolio into the canonical linear
// program for collateral allocation: one quantity variable per
// (asset, account) pair, a cost-minimizing objective, and three named
// constraint families. No solving happens here; Build is a pure function of
// its input.
package model

import (
	"fmt"

	"github.com/quantfield/collateral-allocator/internal/input"
	"github.com/quantfield/collateral-allocator/pkg/lp"
)

// Model is the built linear program plus the pair-to-variable index needed
// to read a solution back out in payload order.
type Model struct {
	Problem  *lp.Problem
	varIndex map[input.Pair]int
}

// VarIndex returns the variable index for an (asset, account) pair.
func (m *Model) VarIndex(assetID, accountID string) (int, bool) {
	idx, ok := m.varIndex[input.Pair{AssetID: assetID, AccountID: accountID}]
	return idx, ok
}

// Build constructs the allocation LP for a validated portfolio.
//
// Variables Q[i,j] span the full asset-account cross product, enumerated
// assets-outer accounts-inner in payload order, each continuous with lower
// bound 0 and no upper bound in the declaration: every upper bound lives in
// a named constraint so it stays traceable in solver diagnostics.
//
// Objective (minimize): sum of tier_rating[i] * market_value[i] *
// haircut(i,j) * Q[i,j], with haircut defaulting per the sparse table.
//
// Constraint families:
//   - collateral_requirement_account_<j>: post-haircut value reaching each
//     account meets its requirement;
//   - asset_quantity_limit_asset_<i>: units of each asset across all
//     accounts stay within available inventory;
//   - allocation_limit_asset_<i>_account_<j>: market value of a pair stays
//     within its explicit cap. Emitted only for pairs present in the limit
//     matrix; an absent pair is unconstrained and no infinity bound is ever
//     handed to the solver.
//
// The pairwise cap bounds value (units * market_value) while the inventory
// limit bounds raw units. The asymmetry is inherited from the source model
// and kept as-is.
//
// With zero assets or zero accounts the cross product is empty and Build
// returns a trivially feasible empty program.
func Build(p *input.Portfolio) *Model {
	prob := lp.NewProblem("collateral_optimization", lp.Minimize)
	m := &Model{Problem: prob, varIndex: make(map[input.Pair]int, len(p.Assets)*len(p.Accounts))}

	if len(p.Assets) == 0 || len(p.Accounts) == 0 {
		return m
	}

	haircuts := p.HaircutTable()
	limits := p.LimitTable()

	for _, asset := range p.Assets {
		for _, account := range p.Accounts {
			cost := asset.TierRating * asset.MarketValue * haircuts.At(asset.AssetID, account.AccountID)
			idx := prob.AddVariable(fmt.Sprintf("Q_%s_%s", asset.AssetID, account.AccountID), cost)
			m.varIndex[input.Pair{AssetID: asset.AssetID, AccountID: account.AccountID}] = idx
		}
	}

	// Collateral sufficiency, one row per account.
	for _, account := range p.Accounts {
		terms := make([]lp.Term, 0, len(p.Assets))
		for _, asset := range p.Assets {
			idx, _ := m.VarIndex(asset.AssetID, account.AccountID)
			terms = append(terms, lp.Term{
				Var:   idx,
				Coeff: asset.MarketValue * haircuts.At(asset.AssetID, account.AccountID),
			})
		}
		prob.AddConstraint(
			fmt.Sprintf("collateral_requirement_account_%s", account.AccountID),
			terms, lp.GreaterEq, account.CollateralRequirement,
		)
	}

	// Inventory limit, one row per asset, in units.
	for _, asset := range p.Assets {
		terms := make([]lp.Term, 0, len(p.Accounts))
		for _, account := range p.Accounts {
			idx, _ := m.VarIndex(asset.AssetID, account.AccountID)
			terms = append(terms, lp.Term{Var: idx, Coeff: 1})
		}
		prob.AddConstraint(
			fmt.Sprintf("asset_quantity_limit_asset_%s", asset.AssetID),
			terms, lp.LessEq, asset.AvailableQuantity,
		)
	}

	// Pairwise allocation caps, in market value, only where explicit.
	for _, asset := range p.Assets {
		for _, account := range p.Accounts {
			limit, ok := limits.At(asset.AssetID, account.AccountID)
			if !ok {
				continue
			}
			idx, _ := m.VarIndex(asset.AssetID, account.AccountID)
			prob.AddConstraint(
				fmt.Sprintf("allocation_limit_asset_%s_account_%s", asset.AssetID, account.AccountID),
				[]lp.Term{{Var: idx, Coeff: asset.MarketValue}}, lp.LessEq, limit,
			)
		}
	}

	return m
}
