package models

import "fmt"

// LakhsPerUnit converts base currency units into lakhs.
const LakhsPerUnit = 100000

// SalaryBand is a half-open range [previous upper, Upper). The last band has no upper
// bound. Rank is the display order.
type SalaryBand struct {
	Rank  int
	Label string
	Upper float64
	Open  bool
}

// SalaryBands partitions the whole salary domain. Anything below the first upper bound,
// negative values included, lands in the first band.
var SalaryBands = []SalaryBand{
	{Rank: 1, Label: "0-5 LPA", Upper: 500000},
	{Rank: 2, Label: "5-10 LPA", Upper: 1000000},
	{Rank: 3, Label: "10-15 LPA", Upper: 1500000},
	{Rank: 4, Label: "15-20 LPA", Upper: 2000000},
	{Rank: 5, Label: "20-25 LPA", Upper: 2500000},
	{Rank: 6, Label: "25+ LPA", Open: true},
}

func BandByRank(rank int) (SalaryBand, error) {
	for _, band := range SalaryBands {
		if band.Rank == rank {
			return band, nil
		}
	}
	return SalaryBand{}, fmt.Errorf("unknown salary band rank %d", rank)
}
