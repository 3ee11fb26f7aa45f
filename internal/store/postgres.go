package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/foodikal/ordering-go/internal/ordering"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

// MenuPostgresStore is a PostgreSQL implementation of ordering.MenuRepository.
type MenuPostgresStore struct {
	pool *pgxpool.Pool
}

// NewMenuPostgresStore creates a new PostgreSQL-backed menu store.
func NewMenuPostgresStore(pool *pgxpool.Pool) *MenuPostgresStore {
	return &MenuPostgresStore{pool: pool}
}

const menuColumns = `id, name, category, description, price, image`

func (s *MenuPostgresStore) List(ctx context.Context) ([]ordering.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items ORDER BY category, name`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMenuItems(rows)
}

func (s *MenuPostgresStore) ListByCategory(ctx context.Context, category string) ([]ordering.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE category = $1 ORDER BY name`

	rows, err := s.pool.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMenuItems(rows)
}

func (s *MenuPostgresStore) ListByIDs(ctx context.Context, ids []int64) ([]ordering.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE id = ANY($1)`

	rows, err := s.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMenuItems(rows)
}

func (s *MenuPostgresStore) GetByID(ctx context.Context, id int64) (*ordering.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE id = $1`

	var item ordering.MenuItem

	err := s.pool.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Category, &item.Description, &item.Price, &item.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ordering.ErrNotFound
		}

		return nil, err
	}

	return &item, nil
}

func (s *MenuPostgresStore) Create(ctx context.Context, item *ordering.MenuItem) (int64, error) {
	query := `
		INSERT INTO menu_items (name, category, description, price, image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64

	err := s.pool.QueryRow(ctx, query,
		item.Name, item.Category, item.Description, item.Price, item.Image,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *MenuPostgresStore) Update(ctx context.Context, id int64, update ordering.MenuItemUpdate) error {
	set, args := updateClause(map[string]any{
		"name":        update.Name,
		"category":    update.Category,
		"description": update.Description,
		"price":       update.Price,
		"image":       update.Image,
	})
	if set == "" {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE menu_items SET %s WHERE id = $%d`, set, len(args))

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ordering.ErrNotFound
	}

	return nil
}

func (s *MenuPostgresStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ordering.ErrNotFound
	}

	return nil
}

func scanMenuItems(rows pgx.Rows) ([]ordering.MenuItem, error) {
	var items []ordering.MenuItem

	for rows.Next() {
		var item ordering.MenuItem

		err := rows.Scan(
			&item.ID, &item.Name, &item.Category, &item.Description, &item.Price, &item.Image,
		)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

// OrderPostgresStore is a PostgreSQL implementation of ordering.OrderRepository.
// Order lines are stored as a JSONB column.
type OrderPostgresStore struct {
	pool *pgxpool.Pool
}

// NewOrderPostgresStore creates a new PostgreSQL-backed order store.
func NewOrderPostgresStore(pool *pgxpool.Pool) *OrderPostgresStore {
	return &OrderPostgresStore{pool: pool}
}

const orderColumns = `
	id, customer_name, customer_contact, delivery_address, delivery_date,
	comments, items, items_subtotal, delivery_fee, total_price,
	promo_code, original_price, discount_amount,
	confirmed_after_creation, confirmed_before_delivery,
	created_at, updated_at
`

func (s *OrderPostgresStore) Create(ctx context.Context, order *ordering.Order) (int64, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return 0, fmt.Errorf("failed to encode order items: %w", err)
	}

	query := `
		INSERT INTO orders (
			customer_name, customer_contact, delivery_address, delivery_date,
			comments, items, items_subtotal, delivery_fee, total_price,
			promo_code, original_price, discount_amount,
			confirmed_after_creation, confirmed_before_delivery,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id
	`

	var id int64

	err = s.pool.QueryRow(ctx, query,
		order.CustomerName, order.CustomerContact, order.DeliveryAddress, order.DeliveryDate,
		order.Comments, items, order.ItemsSubtotal, order.DeliveryFee, order.TotalPrice,
		order.PromoCode, order.OriginalPrice, order.DiscountAmount,
		order.ConfirmedAfterCreation, order.ConfirmedBeforeDelivery,
		order.CreatedAt, order.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *OrderPostgresStore) List(ctx context.Context) ([]ordering.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (s *OrderPostgresStore) GetByID(ctx context.Context, id int64) (*ordering.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ordering.ErrNotFound
		}

		return nil, err
	}

	return order, nil
}

func (s *OrderPostgresStore) UpdateConfirmations(ctx context.Context, id int64, update ordering.ConfirmationUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	set, args := updateClause(map[string]any{
		"confirmed_after_creation":  update.AfterCreation,
		"confirmed_before_delivery": update.BeforeDelivery,
	})

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE orders SET %s, updated_at = now() WHERE id = $%d`, set, len(args))

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ordering.ErrNotFound
	}

	return nil
}

func (s *OrderPostgresStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ordering.ErrNotFound
	}

	return nil
}

func (s *OrderPostgresStore) ListByDeliveryDateRange(ctx context.Context, start, end string) ([]ordering.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE delivery_date >= $1 AND delivery_date <= $2
		ORDER BY delivery_date, customer_name
	`

	rows, err := s.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func scanOrder(row pgx.Row) (*ordering.Order, error) {
	var order ordering.Order

	var items []byte

	err := row.Scan(
		&order.ID, &order.CustomerName, &order.CustomerContact,
		&order.DeliveryAddress, &order.DeliveryDate,
		&order.Comments, &items, &order.ItemsSubtotal, &order.DeliveryFee, &order.TotalPrice,
		&order.PromoCode, &order.OriginalPrice, &order.DiscountAmount,
		&order.ConfirmedAfterCreation, &order.ConfirmedBeforeDelivery,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(items) > 0 {
		if err := json.Unmarshal(items, &order.Items); err != nil {
			return nil, fmt.Errorf("failed to decode order items: %w", err)
		}
	}

	return &order, nil
}

func scanOrders(rows pgx.Rows) ([]ordering.Order, error) {
	var orders []ordering.Order

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}

		orders = append(orders, *order)
	}

	return orders, rows.Err()
}

// PromoPostgresStore is a PostgreSQL implementation of ordering.PromoRepository.
type PromoPostgresStore struct {
	pool *pgxpool.Pool
}

// NewPromoPostgresStore creates a new PostgreSQL-backed promo code store.
func NewPromoPostgresStore(pool *pgxpool.Pool) *PromoPostgresStore {
	return &PromoPostgresStore{pool: pool}
}

func (s *PromoPostgresStore) List(ctx context.Context) ([]ordering.PromoCode, error) {
	query := `SELECT code, created_at FROM promo_codes ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []ordering.PromoCode

	for rows.Next() {
		var code ordering.PromoCode

		if err := rows.Scan(&code.Code, &code.CreatedAt); err != nil {
			return nil, err
		}

		codes = append(codes, code)
	}

	return codes, rows.Err()
}

func (s *PromoPostgresStore) GetByCode(ctx context.Context, code string) (*ordering.PromoCode, error) {
	query := `SELECT code, created_at FROM promo_codes WHERE code = $1`

	var promo ordering.PromoCode

	err := s.pool.QueryRow(ctx, query, code).Scan(&promo.Code, &promo.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ordering.ErrNotFound
		}

		return nil, err
	}

	return &promo, nil
}

func (s *PromoPostgresStore) Create(ctx context.Context, code string) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO promo_codes (code) VALUES ($1)`, code)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ordering.ErrAlreadyExists
		}

		return err
	}

	return nil
}

func (s *PromoPostgresStore) Delete(ctx context.Context, code string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM promo_codes WHERE code = $1`, code)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ordering.ErrNotFound
	}

	return nil
}

// BannerPostgresStore is a PostgreSQL implementation of ordering.BannerRepository.
type BannerPostgresStore struct {
	pool *pgxpool.Pool
}

// NewBannerPostgresStore creates a new PostgreSQL-backed banner store.
func NewBannerPostgresStore(pool *pgxpool.Pool) *BannerPostgresStore {
	return &BannerPostgresStore{pool: pool}
}

const bannerColumns = `id, name, item_link, image_url, display_order, created_at`

func (s *BannerPostgresStore) List(ctx context.Context) ([]ordering.Banner, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners ORDER BY display_order, id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var banners []ordering.Banner

	for rows.Next() {
		var banner ordering.Banner

		err := rows.Scan(
			&banner.ID, &banner.Name, &banner.ItemLink,
			&banner.ImageURL, &banner.DisplayOrder, &banner.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		banners = append(banners, banner)
	}

	return banners, rows.Err()
}

func (s *BannerPostgresStore) GetByID(ctx context.Context, id int64) (*ordering.Banner, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners WHERE id = $1`

	var banner ordering.Banner

	err := s.pool.QueryRow(ctx, query, id).Scan(
		&banner.ID, &banner.Name, &banner.ItemLink,
		&banner.ImageURL, &banner.DisplayOrder, &banner.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ordering.ErrNotFound
		}

		return nil, err
	}

	return &banner, nil
}

func (s *BannerPostgresStore) Create(ctx context.Context, banner *ordering.Banner) (int64, error) {
	query := `
		INSERT INTO banners (name, item_link, image_url, display_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64

	err := s.pool.QueryRow(ctx, query,
		banner.Name, banner.ItemLink, banner.ImageURL, banner.DisplayOrder,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *BannerPostgresStore) Update(ctx context.Context, id int64, update ordering.BannerUpdate) error {
	set, args := updateClause(map[string]any{
		"name":          update.Name,
		"item_link":     update.ItemLink,
		"image_url":     update.ImageURL,
		"display_order": update.DisplayOrder,
	})
	if set == "" {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE banners SET %s WHERE id = $%d`, set, len(args))

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ordering.ErrNotFound
	}

	return nil
}

func (s *BannerPostgresStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ordering.ErrNotFound
	}

	return nil
}

// updateClause builds a SET clause from the non-nil values of a partial
// update. Columns are sorted so generated statements are deterministic.
func updateClause(fields map[string]any) (string, []any) {
	columns := make([]string, 0, len(fields))

	for column, value := range fields {
		if !isNilPointer(value) {
			columns = append(columns, column)
		}
	}

	if len(columns) == 0 {
		return "", nil
	}

	slices.Sort(columns)

	parts := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))

	for i, column := range columns {
		parts = append(parts, fmt.Sprintf("%s = $%d", column, i+1))
		args = append(args, fields[column])
	}

	return strings.Join(parts, ", "), args
}

func isNilPointer(v any) bool {
	switch p := v.(type) {
	case *string:
		return p == nil
	case *int64:
		return p == nil
	case *bool:
		return p == nil
	default:
		return v == nil
	}
}

// Compile-time checks.
var (
	_ ordering.MenuRepository   = (*MenuPostgresStore)(nil)
	_ ordering.OrderRepository  = (*OrderPostgresStore)(nil)
	_ ordering.PromoRepository  = (*PromoPostgresStore)(nil)
	_ ordering.BannerRepository = (*BannerPostgresStore)(nil)
)
