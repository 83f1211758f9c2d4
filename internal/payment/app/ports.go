package app

import (
	"context"

	checkoutdomain "github.com/HamsavardhanS/Zyno-Sample/internal/checkout/domain"
	"github.com/HamsavardhanS/Zyno-Sample/internal/payment/domain"
)

// PendingOrders is the checkout hand-off slot. Get returns
// checkoutdomain.ErrNoPendingOrder when it is empty.
type PendingOrders interface {
	Get(ctx context.Context, shopperID string) (checkoutdomain.PendingOrder, error)
	Save(ctx context.Context, shopperID string, order checkoutdomain.PendingOrder) error
	Delete(ctx context.Context, shopperID string) error
}

// SessionRepo returns ErrNoSession from Get when nothing is stored.
type SessionRepo interface {
	Get(ctx context.Context, shopperID string) (domain.Session, error)
	Save(ctx context.Context, s domain.Session) error
	Delete(ctx context.Context, shopperID string) error
}

// Ledger is the append-only record of settled orders.
type Ledger interface {
	Record(ctx context.Context, shopperID string, order checkoutdomain.PendingOrder, payeeID string) error
}

type Notifier interface {
	OrderConfirmed(ctx context.Context, order checkoutdomain.PendingOrder) (emailSent, smsSent bool)
}

type CartClearer interface {
	ClearCart(ctx context.Context, shopperID string) error
}

// QRRenderer turns a payment URI into an image reference the browser can
// show: a URL or a data URI.
type QRRenderer interface {
	Render(ctx context.Context, content string) (string, error)
}

// Random is satisfied by *rand.Rand from math/rand/v2.
type Random interface {
	IntN(n int) int
	Float64() float64
}
