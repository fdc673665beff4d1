package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bandsContaining lists every band whose half-open range holds salary.
func bandsContaining(salary float64) []SalaryBand {
	var bands []SalaryBand
	lower := math.Inf(-1)
	for _, band := range SalaryBands {
		if salary >= lower && (band.Open || salary < band.Upper) {
			bands = append(bands, band)
		}
		lower = band.Upper
	}
	return bands
}

func TestSalaryBandsPartitionSalaryDomain(t *testing.T) {
	salaries := []float64{
		math.Inf(-1), -250000, 0, 1, 499999.99, 500000, 999999, 1000000,
		1499999, 1500000, 1999999, 2000000, 2499999.5, 2500000, 9000000, math.Inf(1),
	}
	for _, s := range salaries {
		assert.Len(t, bandsContaining(s), 1, "salary %v must fall into exactly one band", s)
	}

	last := SalaryBands[len(SalaryBands)-1]
	assert.True(t, last.Open)
	for i, band := range SalaryBands[:len(SalaryBands)-1] {
		assert.False(t, band.Open)
		if i > 0 {
			assert.Greater(t, band.Upper, SalaryBands[i-1].Upper)
		}
	}
}

func TestSalaryBandsScenario(t *testing.T) {
	assert.Equal(t, "0-5 LPA", bandsContaining(100000)[0].Label)
	assert.Equal(t, "5-10 LPA", bandsContaining(600000)[0].Label)
	assert.Equal(t, "25+ LPA", bandsContaining(2600000)[0].Label)
}

func TestBandRanksAreOrdered(t *testing.T) {
	for i, band := range SalaryBands {
		assert.Equal(t, i+1, band.Rank)
		got, err := BandByRank(band.Rank)
		require.NoError(t, err)
		assert.Equal(t, band.Label, got.Label)
	}
	_, err := BandByRank(7)
	assert.Error(t, err)
}

func TestBranchName(t *testing.T) {
	cases := map[string]string{
		"1":   "Computer Science",
		"2":   "Information Technology",
		"3":   "Electronics & Communication",
		"4":   "Mechanical Engineering",
		"5":   "Civil Engineering",
		"6":   "Electrical Engineering",
		" 3 ": "Electronics & Communication",
		"7":   "Branch 7",
		"0":   "Branch 0",
		"-2":  "Branch -2",
		"CSE": "Branch CSE",
	}
	for code, want := range cases {
		assert.Equal(t, want, BranchName(code), code)
	}
}

func TestEntityCreatedRoutingKey(t *testing.T) {
	assert.Equal(t, "job.created", EntityCreatedEvent{Entity: EntityJob}.RoutingKey())
}
