// Package input defines the allocation input payload and includes functions
// for loading and querying it.
package input

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/quantfield/collateral-allocator/pkg/constants"
)

// Asset is one unit of inventory available for posting. Immutable for the
// duration of one optimization run.
type Asset struct {
	AssetID           string  `json:"asset_id" mapstructure:"asset_id"`
	AvailableQuantity float64 `json:"available_quantity" mapstructure:"available_quantity"`
	MarketValue       float64 `json:"market_value" mapstructure:"market_value"`
	TierRating        float64 `json:"tier_rating" mapstructure:"tier_rating"`
}

// Account is a destination with a minimum post-haircut collateral value to
// satisfy.
type Account struct {
	AccountID             string  `json:"account_id" mapstructure:"account_id"`
	CollateralRequirement float64 `json:"collateral_requirement" mapstructure:"collateral_requirement"`
}

// HaircutEntry is the haircut for one (asset, account) pairing. Pairs absent
// from the haircut matrix use constants.DefaultHaircut.
type HaircutEntry struct {
	AssetID   string  `json:"asset_id" mapstructure:"asset_id"`
	AccountID string  `json:"account_id" mapstructure:"account_id"`
	Haircut   float64 `json:"haircut" mapstructure:"haircut"`
}

// LimitEntry caps the market value of one asset postable to one account.
// Pairs absent from the limit matrix are unconstrained.
type LimitEntry struct {
	AssetID       string  `json:"asset_id" mapstructure:"asset_id"`
	AccountID     string  `json:"account_id" mapstructure:"account_id"`
	MaxAllocation float64 `json:"max_allocation" mapstructure:"max_allocation"`
}

// Portfolio is the full input payload for one optimization run.
type Portfolio struct {
	Assets        []Asset        `json:"assets" mapstructure:"assets"`
	Accounts      []Account      `json:"accounts" mapstructure:"accounts"`
	HaircutMatrix []HaircutEntry `json:"haircut_matrix" mapstructure:"haircut_matrix"`
	LimitMatrix   []LimitEntry   `json:"limit_matrix" mapstructure:"limit_matrix"`
}

// Pair keys the sparse haircut and limit tables.
type Pair struct {
	AssetID   string
	AccountID string
}

// HaircutTable is a sparse pair-to-haircut mapping.
type HaircutTable map[Pair]float64

// At returns the haircut for a pair, defaulting to constants.DefaultHaircut
// when the pair was never specified.
func (t HaircutTable) At(assetID, accountID string) float64 {
	if h, ok := t[Pair{assetID, accountID}]; ok {
		return h
	}
	return constants.DefaultHaircut
}

// LimitTable is a sparse pair-to-cap mapping.
type LimitTable map[Pair]float64

// At returns the explicit cap for a pair. Absent pairs are unconstrained and
// report ok=false; no infinity sentinel is ever materialized.
func (t LimitTable) At(assetID, accountID string) (limit float64, ok bool) {
	limit, ok = t[Pair{assetID, accountID}]
	return limit, ok
}

// HaircutTable builds the sparse haircut lookup for this portfolio. Memory
// stays proportional to specified pairs, not to the asset-account cross
// product.
func (p *Portfolio) HaircutTable() HaircutTable {
	table := make(HaircutTable, len(p.HaircutMatrix))
	for _, entry := range p.HaircutMatrix {
		table[Pair{entry.AssetID, entry.AccountID}] = entry.Haircut
	}
	return table
}

// LimitTable builds the sparse allocation-cap lookup for this portfolio.
func (p *Portfolio) LimitTable() LimitTable {
	table := make(LimitTable, len(p.LimitMatrix))
	for _, entry := range p.LimitMatrix {
		table[Pair{entry.AssetID, entry.AccountID}] = entry.MaxAllocation
	}
	return table
}

// Load reads a JSON-formatted input payload from the given path. Each call
// uses its own viper instance so concurrent loads stay independent.
func Load(path string) (*Portfolio, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading input payload, %s", err)
	}

	var portfolio Portfolio
	if err := v.Unmarshal(&portfolio); err != nil {
		return nil, fmt.Errorf("unable to decode input payload into struct, %s", err)
	}

	return &portfolio, nil
}
