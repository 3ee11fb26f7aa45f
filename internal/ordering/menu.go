package ordering

// Categories is the fixed set of menu categories, in display order.
var Categories = []string{
	"Брускетты",
	"Горячее",
	"Закуски",
	"Канапе",
	"Салат",
	"Тарталетки",
}

// ValidCategory reports whether the category is one of the known ones.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}

	return false
}

// GroupByCategory buckets menu items by category. Every known category is
// present in the result, empty when it has no items; items with an unknown
// category are dropped.
func GroupByCategory(items []MenuItem) map[string][]MenuItem {
	grouped := make(map[string][]MenuItem, len(Categories))
	for _, c := range Categories {
		grouped[c] = []MenuItem{}
	}

	for _, item := range items {
		if _, ok := grouped[item.Category]; ok {
			grouped[item.Category] = append(grouped[item.Category], item)
		}
	}

	return grouped
}
