package report

import (
	"sort"

	"salespulse/pkg/contracts/domain"
)

// sellThroughListSize caps the top and bottom sell-through lists.
const sellThroughListSize = 5

// buildSellThrough joins received and sold quantities by package id and ranks
// the resulting ratios. The receiving dataset is the driving set: every
// package it names gets exactly one entry, and packages that were sold but
// never received are not reported. Rows with an empty package id on either
// side are ignored.
func buildSellThrough(receiving []domain.RawRecord, sales []domain.SalesRow) []domain.SellThroughEntry {
	var (
		order    []string
		received = make(map[string]float64)
	)
	for _, rec := range receiving {
		row := NormalizeReceiving(rec)
		if row.PackageID == "" {
			continue
		}
		if _, ok := received[row.PackageID]; !ok {
			order = append(order, row.PackageID)
		}
		received[row.PackageID] += row.QuantityReceived
	}

	sold := make(map[string]float64)
	for _, row := range sales {
		if row.PackageID == "" {
			continue
		}
		sold[row.PackageID] += row.UnitsSold
	}

	entries := make([]domain.SellThroughEntry, 0, len(order))
	for _, pkg := range order {
		e := domain.SellThroughEntry{
			PackageID:        pkg,
			QuantityReceived: received[pkg],
			QuantitySold:     sold[pkg],
		}
		if e.QuantityReceived > 0 {
			e.Ratio = e.QuantitySold / e.QuantityReceived
		}
		entries = append(entries, e)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Ratio > entries[j].Ratio
	})
	return entries
}

// topSellThrough returns the first entries of the ratio-descending list.
func topSellThrough(entries []domain.SellThroughEntry) []domain.SellThroughEntry {
	n := min(sellThroughListSize, len(entries))
	top := make([]domain.SellThroughEntry, n)
	copy(top, entries[:n])
	return top
}

// bottomSellThrough returns the last entries of the ratio-descending list,
// reversed so the lowest ratio comes first. With fewer entries than the list
// size the top and bottom lists may overlap entirely.
func bottomSellThrough(entries []domain.SellThroughEntry) []domain.SellThroughEntry {
	n := min(sellThroughListSize, len(entries))
	bottom := make([]domain.SellThroughEntry, 0, n)
	for i := len(entries) - 1; i >= len(entries)-n; i-- {
		bottom = append(bottom, entries[i])
	}
	return bottom
}
