package app

import (
	"context"

	"github.com/HamsavardhanS/Zyno-Sample/internal/order/domain"
)

// OrderRepo is an append-only ledger. CreateOrderTx returns ErrAlreadyRecorded
// for a repeated order id; GetOrder returns ErrNotFound.
type OrderRepo interface {
	CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error)
	GetOrder(ctx context.Context, id string) (domain.Order, error)
}
