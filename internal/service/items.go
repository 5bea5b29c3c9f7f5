package service

import (
	"strings"

	"swaad-sutra/internal/domain"
)

// normalizeItems resolves incoming line items against the menu catalog and
// drops anything with qty <= 0 (qty 0 is how removal is expressed). Catalog
// items always take the catalog's price and unit. Custom items keep the
// caller-supplied price: the kitchen is a trusted single-operator setup, so
// ad-hoc pricing is accepted as-is, but a negative price or a nameless item
// is still rejected.
func normalizeItems(items []domain.LineItem) ([]domain.LineItem, error) {
	normalized := make([]domain.LineItem, 0, len(items))
	for _, item := range items {
		if item.Qty <= 0 {
			continue
		}
		if strings.TrimSpace(item.Name) == "" && item.ID == 0 {
			return nil, ErrMissingRequiredField
		}

		if !item.IsCustom {
			if menuItem, ok := domain.FindMenuItem(item.ID, item.Name); ok {
				item.ID = menuItem.ID
				item.Name = menuItem.Name
				item.UnitPrice = menuItem.Price
				item.Unit = menuItem.Unit
			}
		}
		if item.UnitPrice < 0 {
			return nil, ErrMissingRequiredField
		}
		normalized = append(normalized, item)
	}
	return normalized, nil
}

// applyMutation builds the final item list for a mutation without touching
// the existing slice. Append concatenates (duplicate names stay distinct
// lines) and replace discards the old list entirely. If the result is
// empty the mutation is rejected; cancelling is the only way to empty an
// order.
func applyMutation(existing, incoming []domain.LineItem, mode domain.MutationMode) ([]domain.LineItem, error) {
	normalized, err := normalizeItems(incoming)
	if err != nil {
		return nil, err
	}

	var final []domain.LineItem
	switch mode {
	case domain.MutationAppend:
		final = make([]domain.LineItem, 0, len(existing)+len(normalized))
		final = append(final, existing...)
		final = append(final, normalized...)
	case domain.MutationReplace:
		final = normalized
	default:
		return nil, ErrInvalidEnum
	}

	if len(final) == 0 {
		return nil, ErrEmptyOrder
	}
	return final, nil
}
