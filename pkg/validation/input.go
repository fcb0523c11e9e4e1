// Package validation provides input payload validation utilities.
package validation

import (
	"fmt"

	"github.com/quantfield/collateral-allocator/internal/input"
	"github.com/quantfield/collateral-allocator/pkg/mathutil"
)

// ValidatePortfolio checks the invariants a payload must satisfy before any
// model is built: unique ids, finite non-negative numerics, and haircut or
// limit entries that only reference known assets and accounts. The first
// violation found is returned; nothing is silently defaulted. Pairs that are
// simply absent from the haircut/limit matrices are not violations.
func ValidatePortfolio(p *input.Portfolio) error {
	if p == nil {
		return fmt.Errorf("input payload is nil")
	}

	assetIDs := make(map[string]struct{}, len(p.Assets))
	for i, asset := range p.Assets {
		if asset.AssetID == "" {
			return fmt.Errorf("asset at index %d is missing asset_id", i)
		}
		if _, dup := assetIDs[asset.AssetID]; dup {
			return fmt.Errorf("duplicate asset_id %q", asset.AssetID)
		}
		assetIDs[asset.AssetID] = struct{}{}

		if err := checkAmount("asset", asset.AssetID, "available_quantity", asset.AvailableQuantity); err != nil {
			return err
		}
		if err := checkAmount("asset", asset.AssetID, "market_value", asset.MarketValue); err != nil {
			return err
		}
		if err := checkAmount("asset", asset.AssetID, "tier_rating", asset.TierRating); err != nil {
			return err
		}
	}

	accountIDs := make(map[string]struct{}, len(p.Accounts))
	for i, account := range p.Accounts {
		if account.AccountID == "" {
			return fmt.Errorf("account at index %d is missing account_id", i)
		}
		if _, dup := accountIDs[account.AccountID]; dup {
			return fmt.Errorf("duplicate account_id %q", account.AccountID)
		}
		accountIDs[account.AccountID] = struct{}{}

		if err := checkAmount("account", account.AccountID, "collateral_requirement", account.CollateralRequirement); err != nil {
			return err
		}
	}

	for _, entry := range p.HaircutMatrix {
		if err := checkPair("haircut", entry.AssetID, entry.AccountID, assetIDs, accountIDs); err != nil {
			return err
		}
		if err := checkAmount("haircut entry", entry.AssetID+"/"+entry.AccountID, "haircut", entry.Haircut); err != nil {
			return err
		}
	}

	for _, entry := range p.LimitMatrix {
		if err := checkPair("limit", entry.AssetID, entry.AccountID, assetIDs, accountIDs); err != nil {
			return err
		}
		if err := checkAmount("limit entry", entry.AssetID+"/"+entry.AccountID, "max_allocation", entry.MaxAllocation); err != nil {
			return err
		}
	}

	return nil
}

func checkAmount(entity, id, field string, val float64) error {
	if !mathutil.IsFinite(val) {
		return fmt.Errorf("%s %q has non-finite %s (%v)", entity, id, field, val)
	}
	if val < 0 {
		return fmt.Errorf("%s %q has negative %s (%v)", entity, id, field, val)
	}
	return nil
}

func checkPair(table, assetID, accountID string, assets, accounts map[string]struct{}) error {
	if _, ok := assets[assetID]; !ok {
		return fmt.Errorf("%s entry references unknown asset_id %q", table, assetID)
	}
	if _, ok := accounts[accountID]; !ok {
		return fmt.Errorf("%s entry references unknown account_id %q", table, accountID)
	}
	return nil
}
