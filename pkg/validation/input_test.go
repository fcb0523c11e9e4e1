package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/quantfield/collateral-allocator/internal/input"
)

func validPortfolio() *input.Portfolio {
	return &input.Portfolio{
		Assets: []input.Asset{
			{AssetID: "A1", AvailableQuantity: 100, MarketValue: 1, TierRating: 1},
			{AssetID: "A2", AvailableQuantity: 50, MarketValue: 2, TierRating: 0.5},
		},
		Accounts: []input.Account{
			{AccountID: "Acc1", CollateralRequirement: 40},
		},
		HaircutMatrix: []input.HaircutEntry{
			{AssetID: "A1", AccountID: "Acc1", Haircut: 0.9},
		},
		LimitMatrix: []input.LimitEntry{
			{AssetID: "A2", AccountID: "Acc1", MaxAllocation: 30},
		},
	}
}

func TestValidatePortfolioAcceptsValidInput(t *testing.T) {
	if err := ValidatePortfolio(validPortfolio()); err != nil {
		t.Errorf("ValidatePortfolio() error = %v, expected nil", err)
	}
}

func TestValidatePortfolioRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*input.Portfolio)
		wantSub string
	}{
		{
			name:    "missing asset id",
			mutate:  func(p *input.Portfolio) { p.Assets[0].AssetID = "" },
			wantSub: "missing asset_id",
		},
		{
			name:    "duplicate asset id",
			mutate:  func(p *input.Portfolio) { p.Assets[1].AssetID = "A1" },
			wantSub: "duplicate asset_id",
		},
		{
			name:    "negative available quantity",
			mutate:  func(p *input.Portfolio) { p.Assets[0].AvailableQuantity = -1 },
			wantSub: "negative available_quantity",
		},
		{
			name:    "negative market value",
			mutate:  func(p *input.Portfolio) { p.Assets[1].MarketValue = -0.5 },
			wantSub: "negative market_value",
		},
		{
			name:    "non-finite tier rating",
			mutate:  func(p *input.Portfolio) { p.Assets[0].TierRating = math.NaN() },
			wantSub: "non-finite tier_rating",
		},
		{
			name:    "missing account id",
			mutate:  func(p *input.Portfolio) { p.Accounts[0].AccountID = "" },
			wantSub: "missing account_id",
		},
		{
			name: "duplicate account id",
			mutate: func(p *input.Portfolio) {
				p.Accounts = append(p.Accounts, input.Account{AccountID: "Acc1", CollateralRequirement: 5})
			},
			wantSub: "duplicate account_id",
		},
		{
			name:    "negative collateral requirement",
			mutate:  func(p *input.Portfolio) { p.Accounts[0].CollateralRequirement = -10 },
			wantSub: "negative collateral_requirement",
		},
		{
			name:    "haircut references unknown asset",
			mutate:  func(p *input.Portfolio) { p.HaircutMatrix[0].AssetID = "A9" },
			wantSub: "unknown asset_id",
		},
		{
			name:    "haircut references unknown account",
			mutate:  func(p *input.Portfolio) { p.HaircutMatrix[0].AccountID = "Acc9" },
			wantSub: "unknown account_id",
		},
		{
			name:    "negative haircut",
			mutate:  func(p *input.Portfolio) { p.HaircutMatrix[0].Haircut = -0.1 },
			wantSub: "negative haircut",
		},
		{
			name:    "limit references unknown asset",
			mutate:  func(p *input.Portfolio) { p.LimitMatrix[0].AssetID = "A9" },
			wantSub: "unknown asset_id",
		},
		{
			name:    "negative max allocation",
			mutate:  func(p *input.Portfolio) { p.LimitMatrix[0].MaxAllocation = -5 },
			wantSub: "negative max_allocation",
		},
		{
			name:    "infinite max allocation",
			mutate:  func(p *input.Portfolio) { p.LimitMatrix[0].MaxAllocation = math.Inf(1) },
			wantSub: "non-finite max_allocation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPortfolio()
			tt.mutate(p)
			err := ValidatePortfolio(p)
			if err == nil {
				t.Fatal("ValidatePortfolio() = nil, expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("ValidatePortfolio() error = %q, expected to contain %q", err, tt.wantSub)
			}
		})
	}
}

func TestValidatePortfolioNil(t *testing.T) {
	if err := ValidatePortfolio(nil); err == nil {
		t.Error("expected error for nil payload")
	}
}

func TestValidatePortfolioEmptyIsValid(t *testing.T) {
	if err := ValidatePortfolio(&input.Portfolio{}); err != nil {
		t.Errorf("ValidatePortfolio(empty) error = %v, expected nil", err)
	}
}
