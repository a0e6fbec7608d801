package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkovacevic/minishop/internal/shop/domain"
	"github.com/dkovacevic/minishop/internal/shop/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// History persists completed orders. An order and its lines are written in
// one transaction so the history never holds a partial order.
type History struct {
	pool *pgxpool.Pool
}

func NewHistory(pool *pgxpool.Pool) *History {
	return &History{pool: pool}
}

func (h *History) Append(ctx context.Context, order domain.Order) error {
	tx, err := h.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderQuery := `
		INSERT INTO orders (id, subtotal_cents, discount_cents, total_cents, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err = tx.Exec(ctx, orderQuery,
		order.ID,
		order.SubtotalCents,
		order.DiscountCents,
		order.TotalCents,
		order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	lineQuery := `
		INSERT INTO order_lines (order_id, position, product_id, name, unit_price_cents, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for i, line := range order.Lines {
		_, err = tx.Exec(ctx, lineQuery,
			order.ID,
			i,
			line.ProductID,
			line.Name,
			line.UnitPriceCents,
			line.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit order: %w", err)
	}

	return nil
}

func (h *History) List(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT o.id, o.subtotal_cents, o.discount_cents, o.total_cents, o.created_at,
		       l.product_id, l.name, l.unit_price_cents, l.quantity
		FROM orders o
		JOIN order_lines l ON l.order_id = o.id
		ORDER BY o.created_at, o.id, l.position
	`

	rows, err := h.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		var line domain.CartLine
		if err := rows.Scan(
			&order.ID,
			&order.SubtotalCents,
			&order.DiscountCents,
			&order.TotalCents,
			&order.CreatedAt,
			&line.ProductID,
			&line.Name,
			&line.UnitPriceCents,
			&line.Quantity,
		); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}

		if len(orders) > 0 && orders[len(orders)-1].ID == order.ID {
			last := &orders[len(orders)-1]
			last.Lines = append(last.Lines, line)
			continue
		}
		order.Lines = []domain.CartLine{line}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	return orders, nil
}

func (h *History) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	orderQuery := `
		SELECT id, subtotal_cents, discount_cents, total_cents, created_at
		FROM orders
		WHERE id = $1
	`

	var order domain.Order
	err := h.pool.QueryRow(ctx, orderQuery, id).Scan(
		&order.ID,
		&order.SubtotalCents,
		&order.DiscountCents,
		&order.TotalCents,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrOrderNotFound
		}
		return nil, fmt.Errorf("select order: %w", err)
	}

	lineQuery := `
		SELECT product_id, name, unit_price_cents, quantity
		FROM order_lines
		WHERE order_id = $1
		ORDER BY position
	`

	rows, err := h.pool.Query(ctx, lineQuery, id)
	if err != nil {
		return nil, fmt.Errorf("query order lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(&line.ProductID, &line.Name, &line.UnitPriceCents, &line.Quantity); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		order.Lines = append(order.Lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order lines: %w", err)
	}

	return &order, nil
}
