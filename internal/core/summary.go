package core

import (
	"math"
	"sort"
)

// CategoryShare is one category's slice of the total spend.
type CategoryShare struct {
	Name    string
	Amount  Money
	Percent float64 // share of total, rounded to one decimal place
	Blocks  int     // coarse 0-10 bar length, round(Percent / 10)
}

// Summary is the derived total and per-category breakdown of a ledger.
type Summary struct {
	Total      Money
	Categories []CategoryShare
}

// Summarize computes the total and the per-category breakdown over a
// ledger snapshot, sorted by category sum descending. Ties keep the
// order in which categories first appear in the snapshot. Returns
// ErrEmptyLedger for an empty snapshot.
func Summarize(expenses []Expense) (Summary, error) {
	if len(expenses) == 0 {
		return Summary{}, ErrEmptyLedger
	}

	var total int64
	index := make(map[string]int)
	shares := make([]CategoryShare, 0)

	for _, e := range expenses {
		total += e.Amount.Cents
		i, ok := index[e.Category]
		if !ok {
			i = len(shares)
			index[e.Category] = i
			shares = append(shares, CategoryShare{Name: e.Category})
		}
		shares[i].Amount.Cents += e.Amount.Cents
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Amount.Cents > shares[j].Amount.Cents
	})

	for i := range shares {
		percent := float64(shares[i].Amount.Cents) / float64(total) * 100
		shares[i].Percent = math.Round(percent*10) / 10
		shares[i].Blocks = int(math.Round(shares[i].Percent / 10))
	}

	return Summary{
		Total:      Money{Cents: total},
		Categories: shares,
	}, nil
}
