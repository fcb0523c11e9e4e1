// Package output provides utilities for formatting and displaying
// allocation results.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/quantfield/collateral-allocator/internal/allocator"
)

// PrettyFormat writes a human-readable rather than machine-readable table.
// Zero rows are skipped so large sparse allocations stay legible.
func PrettyFormat(w io.Writer, result *allocator.Result) {
	if !result.Optimal() {
		fmt.Fprintf(w, "--- No allocation ---\n")
		fmt.Fprintf(w, "Status: %s\n", result.Output.Status)
		return
	}

	p := message.NewPrinter(language.English)
	fmt.Fprintf(w, "--- Allocation result ---\n")
	fmt.Fprintf(w, "Asset    | Account    | Quantity\n")
	fmt.Fprintf(w, "_____    | _______    | ________\n")
	for _, entry := range result.Output.AllocationMatrix {
		if entry.AllocationFraction == 0 {
			continue
		}
		_, _ = p.Fprintf(w, "%s | %s | %.4f\n", entry.AssetID, entry.AccountID, entry.AllocationFraction)
	}
	_, _ = p.Fprintf(w, "Total collateral cost: %.2f\n", *result.Output.TotalCollateralCost)
}

// CsvFormat writes in comma-separated value format, one row per cell of the
// full allocation matrix.
func CsvFormat(w io.Writer, result *allocator.Result) {
	fmt.Fprintf(w, "\"asset_id\",\"account_id\",\"allocation_fraction\"\n")
	for _, entry := range result.Output.AllocationMatrix {
		fmt.Fprintf(w, "\"%s\",\"%s\",\"%.6f\"\n", entry.AssetID, entry.AccountID, entry.AllocationFraction)
	}
	if result.Optimal() {
		fmt.Fprintf(w, "\"total_collateral_cost\",\"\",\"%.6f\"\n", *result.Output.TotalCollateralCost)
	} else {
		fmt.Fprintf(w, "\"status\",\"%s\",\"\"\n", result.Output.Status)
	}
}

// JSONFormat writes the machine-readable output document.
func JSONFormat(w io.Writer, result *allocator.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result, %s", err)
	}
	return nil
}
