package service

import (
	"sort"

	"swaad-sutra/internal/domain"
)

// FilterOrders is pure: it reads a snapshot and returns the matching subset
// in snapshot order. Settled orders (delivered and paid) are hidden unless
// the filter explicitly asks for them; hiding is a view preference, not a rule.
func FilterOrders(orders []domain.Order, filter domain.OrderFilter) []domain.Order {
	matched := make([]domain.Order, 0, len(orders))
	for i := range orders {
		order := &orders[i]
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		if filter.Payment != "" && order.PaymentStatus != filter.Payment {
			continue
		}
		if filter.Date != "" && order.CreatedAt.Format("2006-01-02") != filter.Date {
			continue
		}
		if !order.MatchesSearch(filter.Search) {
			continue
		}
		if !filter.IncludeSettled && order.Settled() {
			continue
		}
		matched = append(matched, *order)
	}
	return matched
}

// SortOrders returns a sorted copy. The sort is stable, so ties keep their
// relative order from the snapshot.
func SortOrders(orders []domain.Order, mode domain.SortMode) []domain.Order {
	sorted := make([]domain.Order, len(orders))
	copy(sorted, orders)

	switch mode {
	case domain.SortOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})
	case domain.SortAmountDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].TotalAmount > sorted[j].TotalAmount
		})
	case domain.SortAmountAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].TotalAmount < sorted[j].TotalAmount
		})
	case domain.SortCollect:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CollectAt().Before(sorted[j].CollectAt())
		})
	default: // newest first
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	}
	return sorted
}
