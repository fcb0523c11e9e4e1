// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/quantfield/collateral-allocator/internal/allocator"
)

// FindAllocation finds the allocation matrix entry for an (asset, account)
// pair. Returns a pointer to the entry if found, nil otherwise.
func FindAllocation(matrix []allocator.Allocation, assetID, accountID string) *allocator.Allocation {
	for i := range matrix {
		if matrix[i].AssetID == assetID && matrix[i].AccountID == accountID {
			return &matrix[i]
		}
	}
	return nil
}
