package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/foodikal/ordering-go/internal/auth"
	"github.com/foodikal/ordering-go/internal/ratelimit"
)

// publicMeta tags an operation with a rate limit policy.
func publicMeta(policy ratelimit.Policy) map[string]any {
	return map[string]any{
		ratelimit.MetadataKey: policy.Name,
	}
}

// adminMeta tags an operation as admin-only, throttled by the admin policy.
func adminMeta() map[string]any {
	return map[string]any{
		ratelimit.MetadataKey: ratelimit.PolicyAdmin.Name,
		auth.MetadataKey:      true,
	}
}

// RegisterRoutes registers all public and admin routes with their rate limit
// policies and auth requirements.
func RegisterRoutes(
	api huma.API,
	menu *MenuHandler,
	orders *OrderHandler,
	promos *PromoHandler,
	banners *BannerHandler,
	reports *ReportsHandler,
) {
	// Public storefront
	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/api/menu",
		Summary:     "Get menu",
		Description: "Returns all menu items grouped by category.",
		Tags:        []string{"Menu"},
		Metadata:    publicMeta(ratelimit.PolicyPublicRead),
	}, menu.GetMenu)

	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/api/menu/category/{category}",
		Summary:     "Get menu category",
		Description: "Returns menu items for a single category.",
		Tags:        []string{"Menu"},
		Metadata:    publicMeta(ratelimit.PolicyPublicRead),
	}, menu.GetMenuByCategory)

	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/api/banners",
		Summary:     "Get banners",
		Description: "Returns storefront banners in display order.",
		Tags:        []string{"Banners"},
		Metadata:    publicMeta(ratelimit.PolicyPublicRead),
	}, banners.ListBanners)

	huma.Register(api, huma.Operation{
		Method:        http.MethodPost,
		Path:          "/api/create_order",
		Summary:       "Create order",
		Description:   "Creates a customer order priced from the stored menu.",
		Tags:          []string{"Orders"},
		DefaultStatus: http.StatusCreated,
		Metadata:      publicMeta(ratelimit.PolicyOrderCreation),
	}, orders.CreateOrder)

	huma.Register(api, huma.Operation{
		Method:      http.MethodPost,
		Path:        "/api/validate_promo",
		Summary:     "Validate promo code",
		Description: "Checks a promo code against a cart and returns pricing.",
		Tags:        []string{"Promo"},
		Metadata:    publicMeta(ratelimit.PolicyPromoValidation),
	}, promos.ValidatePromo)

	// Admin: orders
	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/api/admin/order_list",
		Summary:     "List orders",
		Description: "Lists all orders, newest first.",
		Tags:        []string{"Admin"},
		Metadata:    adminMeta(),
	}, orders.ListOrders)

	huma.Register(api, huma.Operation{
		Method:      http.MethodPatch,
		Path:        "/api/admin/orders/{id}",
		Summary:     "Update order confirmations",
		Tags:        []string{"Admin"},
		Metadata:    adminMeta(),
	}, orders.UpdateOrder)

	huma.Register(api, huma.Operation{
		Method:      http.MethodDelete,
		Path:        "/api/admin/orders/{id}",
		Summary:     "Delete order",
		Tags:        []string{"Admin"},
		Metadata:    adminMeta(),
	}, orders.DeleteOrder)

	// Admin: menu
	huma.Register(api, huma.Operation{
		Method:        http.MethodPost,
		Path:          "/api/admin/menu_add",
		Summary:       "Add menu item",
		Tags:          []string{"Admin"},
		DefaultStatus: http.StatusCreated,
		Metadata:      adminMeta(),
	}, menu.AddMenuItem)

	huma.Register(api, huma.Operation{
		Method:      http.MethodPut,
		Path:        "/api/admin/menu_update/{id}",
		Summary:     "Update menu item",
		Tags:        []string{"Admin"},
		Metadata:    adminMeta(),
	}, menu.UpdateMenuItem)

	huma.Register(api, huma.Operation{
		Method:      http.MethodDelete,
		Path:        "/api/admin/menu_delete/{id}",
		Summary:     "Delete menu item",
		Tags:        []string{"Admin"},
		Metadata:    adminMeta(),
	}, menu.DeleteMenuItem)

	// Admin: promo codes
	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/api/admin/promo_codes",
		Summary:     "List promo codes",
		Tags:        []string{"Admin"},
		Metadata:    adminMeta(),
	}, promos.ListPromoCodes)

	huma.Register(api, huma.Operation{
		Method:        http.MethodPost,
		Path:          "/api/admin/promo_codes",
		Summary:       "Create promo code",
		Tags:          []string{"Admin"},
		DefaultStatus: http.StatusCreated,
		Metadata:      adminMeta(),
	}, promos.CreatePromoCode)

	huma.Register(api, huma.Operation{
		Method:      http.MethodDelete,
		Path:        "/api/admin/promo_codes/{code}",
		Summary:     "Delete promo code",
		Tags:        []string{"Admin"},
		Metadata:    adminMeta(),
	}, promos.DeletePromoCode)

	// Admin: banners
	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/api/admin/banners",
		Summary:     "List banners",
		Tags:        []string{"Admin"},
		Metadata:    adminMeta(),
	}, banners.ListBanners)

	huma.Register(api, huma.Operation{
		Method:        http.MethodPost,
		Path:          "/api/admin/banners",
		Summary:       "Create banner",
		Tags:          []string{"Admin"},
		DefaultStatus: http.StatusCreated,
		Metadata:      adminMeta(),
	}, banners.CreateBanner)

	huma.Register(api, huma.Operation{
		Method:      http.MethodPut,
		Path:        "/api/admin/banners/{id}",
		Summary:     "Update banner",
		Tags:        []string{"Admin"},
		Metadata:    adminMeta(),
	}, banners.UpdateBanner)

	huma.Register(api, huma.Operation{
		Method:      http.MethodDelete,
		Path:        "/api/admin/banners/{id}",
		Summary:     "Delete banner",
		Tags:        []string{"Admin"},
		Metadata:    adminMeta(),
	}, banners.DeleteBanner)

	// Admin: reports
	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/api/admin/weekly_workbook_data",
		Summary:     "Weekly workbook data",
		Description: "Aggregated order data for the weekly kitchen workbook.",
		Tags:        []string{"Admin"},
		Metadata:    adminMeta(),
	}, reports.WeeklyWorkbook)
}
