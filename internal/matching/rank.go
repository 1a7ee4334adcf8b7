package matching

import (
	"sort"

	"github.com/carematch/carematch-api/internal/types"
)

// ReconcileRanks stable-sorts results by score descending and reassigns
// contiguous 1-based ranks, discarding whatever ranks the generator proposed.
// Stability keeps tied scores in their original relative order.
func ReconcileRanks(results []types.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	for i := range results {
		results[i].Rank = i + 1
	}
}
