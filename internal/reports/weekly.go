// Package reports aggregates order data for the weekly kitchen workbook.
package reports

import (
	"context"
	"fmt"
	"slices"

	"github.com/foodikal/ordering-go/internal/ordering"
)

// DateRange is an inclusive delivery date interval in YYYY-MM-DD form.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Aggregated maps customer -> delivery date -> menu item ID -> total quantity.
type Aggregated map[string]map[string]map[int64]int64

// WeeklyReport is the material the workbook is built from: the raw orders for
// the week plus quantities rolled up per customer, day and menu item.
type WeeklyReport struct {
	DateRange  DateRange           `json:"date_range"`
	Customers  []string            `json:"customers"`
	MenuItems  []ordering.MenuItem `json:"menu_items"`
	Orders     []ordering.Order    `json:"orders"`
	Aggregated Aggregated          `json:"aggregated_data"`
}

// Service builds reports from the order and menu repositories.
type Service struct {
	orders ordering.OrderRepository
	menu   ordering.MenuRepository
}

// NewService creates a new report service.
func NewService(orders ordering.OrderRepository, menu ordering.MenuRepository) *Service {
	return &Service{orders: orders, menu: menu}
}

// Weekly builds the report for deliveries between start and end inclusive.
func (s *Service) Weekly(ctx context.Context, start, end string) (*WeeklyReport, error) {
	orders, err := s.orders.ListByDeliveryDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	menu, err := s.menu.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	return &WeeklyReport{
		DateRange:  DateRange{Start: start, End: end},
		Customers:  uniqueCustomers(orders),
		MenuItems:  menu,
		Orders:     orders,
		Aggregated: aggregate(orders),
	}, nil
}

// uniqueCustomers returns the distinct customer names, sorted.
func uniqueCustomers(orders []ordering.Order) []string {
	seen := make(map[string]struct{})

	var customers []string

	for _, order := range orders {
		if _, ok := seen[order.CustomerName]; ok {
			continue
		}

		seen[order.CustomerName] = struct{}{}
		customers = append(customers, order.CustomerName)
	}

	slices.Sort(customers)

	return customers
}

// aggregate sums line quantities per customer, delivery date and menu item.
// A customer ordering the same item twice on one day gets a single combined row.
func aggregate(orders []ordering.Order) Aggregated {
	result := make(Aggregated)

	for _, order := range orders {
		byDate, ok := result[order.CustomerName]
		if !ok {
			byDate = make(map[string]map[int64]int64)
			result[order.CustomerName] = byDate
		}

		byItem, ok := byDate[order.DeliveryDate]
		if !ok {
			byItem = make(map[int64]int64)
			byDate[order.DeliveryDate] = byItem
		}

		for _, item := range order.Items {
			byItem[item.ItemID] += item.Quantity
		}
	}

	return result
}
