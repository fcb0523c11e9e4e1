package testutil

import (
	"testing"

	"github.com/quantfield/collateral-allocator/internal/allocator"
)

func TestFindAllocation(t *testing.T) {
	matrix := []allocator.Allocation{
		{AssetID: "A1", AccountID: "Acc1", AllocationFraction: 10},
		{AssetID: "A1", AccountID: "Acc2", AllocationFraction: 0},
	}

	if entry := FindAllocation(matrix, "A1", "Acc2"); entry == nil || entry.AllocationFraction != 0 {
		t.Errorf("FindAllocation(A1, Acc2) = %+v, expected zero entry", entry)
	}
	if entry := FindAllocation(matrix, "A2", "Acc1"); entry != nil {
		t.Errorf("FindAllocation(A2, Acc1) = %+v, expected nil", entry)
	}
}
