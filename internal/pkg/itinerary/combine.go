package itinerary

import (
	"sort"

	"github.com/amopromo/roundtrip-flight-service/internal/app/dto"
)

// Combine builds the full cartesian product of outbound and return
// legs and ranks it ascending by combined total. The sort is stable, so
// equal totals keep the enumeration order (outbound-major,
// return-minor). No cap and no deduplication: the result always has
// len(outbound) * len(ret) entries.
func Combine(outbound, ret []dto.Leg) []dto.Combination {
	combinations := make([]dto.Combination, 0, len(outbound)*len(ret))

	for _, out := range outbound {
		for _, back := range ret {
			combinations = append(combinations, dto.Combination{
				Outbound: out,
				Return:   back,
				CombinedPrice: dto.Price{
					Fare:  out.Price.Fare + back.Price.Fare,
					Fee:   out.Price.Fee + back.Price.Fee,
					Total: out.Price.Total + back.Price.Total,
				},
			})
		}
	}

	sort.SliceStable(combinations, func(i, j int) bool {
		return combinations[i].CombinedPrice.Total < combinations[j].CombinedPrice.Total
	})

	return combinations
}
