package ordering

import (
	"fmt"
	"math"
)

const (
	promoDiscountPercent = 5
	roundingStepRSD      = 50
)

// PriceItems enriches the selections with names and prices from the menu and
// returns the priced lines plus the subtotal. Prices always come from the
// menu, never from the client. It fails if any selected item is missing from
// the lookup.
func PriceItems(selections []ItemSelection, menu map[int64]MenuItem) ([]OrderItem, int64, error) {
	var subtotal int64

	items := make([]OrderItem, 0, len(selections))

	for _, sel := range selections {
		menuItem, ok := menu[sel.ItemID]
		if !ok {
			return nil, 0, fmt.Errorf("menu item %d: %w", sel.ItemID, ErrNotFound)
		}

		items = append(items, OrderItem{
			ItemID:   sel.ItemID,
			Name:     menuItem.Name,
			Quantity: sel.Quantity,
			Price:    menuItem.Price,
		})

		subtotal += menuItem.Price * sel.Quantity
	}

	return items, subtotal, nil
}

// ApplyPromoDiscount applies the flat promo discount to a subtotal and rounds
// the result to the nearest 50 RSD. It returns the final total and the
// effective discount (subtotal minus the rounded total).
func ApplyPromoDiscount(subtotal int64) (total, discount int64) {
	afterDiscount := subtotal - subtotal*promoDiscountPercent/100
	total = int64(math.Round(float64(afterDiscount)/roundingStepRSD)) * roundingStepRSD
	discount = subtotal - total

	return total, discount
}

// MenuLookup indexes menu items by ID.
func MenuLookup(items []MenuItem) map[int64]MenuItem {
	lookup := make(map[int64]MenuItem, len(items))
	for _, item := range items {
		lookup[item.ID] = item
	}

	return lookup
}
