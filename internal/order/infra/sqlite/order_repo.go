package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/HamsavardhanS/Zyno-Sample/internal/order/app"
	"github.com/HamsavardhanS/Zyno-Sample/internal/order/domain"
)

type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) execTX(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %w; rollback err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

func (r *OrderRepo) CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error) {
	err := r.execTX(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO orders (id, transaction_id, shopper_id, status, currency,
				customer_name, customer_email, customer_phone, customer_address,
				payment_method, payee_id, subtotal_amount, shipping_amount, tax_amount, total_amount, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			order.ID, order.TransactionID, order.ShopperID, order.Status, order.Currency,
			order.Customer.Name, order.Customer.Email, order.Customer.Phone, order.Customer.Address,
			order.PaymentMethod, order.PayeeID, order.SubTotalAmount, order.ShippingAmount, order.TaxAmount, order.TotalAmount,
			order.CreatedAt.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			if strings.Contains(err.Error(), "UNIQUE constraint failed") {
				return fmt.Errorf("%s: %w", order.ID, app.ErrAlreadyRecorded)
			}
			return fmt.Errorf("failed to create order: %w", err)
		}

		for i, item := range order.OrderItems {
			expected := item.UnitAmount * int64(item.Quantity)
			if item.LineTotalAmount != expected {
				return fmt.Errorf("item %d: line total mismatch", i)
			}

			_, err := tx.ExecContext(ctx, `
				INSERT INTO order_items (order_id, position, product_id, name, size, color, unit_amount, quantity, line_total_amount)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				order.ID, i, item.ProductID, item.Name, item.Size, item.Color, item.UnitAmount, item.Quantity, item.LineTotalAmount,
			)
			if err != nil {
				return fmt.Errorf("failed to insert item %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (r *OrderRepo) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	var (
		o         domain.Order
		createdAt string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, transaction_id, shopper_id, status, currency,
			customer_name, customer_email, customer_phone, customer_address,
			payment_method, payee_id, subtotal_amount, shipping_amount, tax_amount, total_amount, created_at
		FROM orders WHERE id = ?`, id).Scan(
		&o.ID, &o.TransactionID, &o.ShopperID, &o.Status, &o.Currency,
		&o.Customer.Name, &o.Customer.Email, &o.Customer.Phone, &o.Customer.Address,
		&o.PaymentMethod, &o.PayeeID, &o.SubTotalAmount, &o.ShippingAmount, &o.TaxAmount, &o.TotalAmount, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order %s: %w", id, err)
	}
	if o.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return domain.Order{}, fmt.Errorf("order %s: bad created_at: %w", id, err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id, name, size, color, unit_amount, quantity, line_total_amount
		FROM order_items WHERE order_id = ? ORDER BY position`, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order items %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Size, &it.Color, &it.UnitAmount, &it.Quantity, &it.LineTotalAmount); err != nil {
			return domain.Order{}, err
		}
		o.OrderItems = append(o.OrderItems, it)
	}
	return o, rows.Err()
}
