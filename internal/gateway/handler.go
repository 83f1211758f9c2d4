package gateway

import (
	"log/slog"

	cartapp "github.com/HamsavardhanS/Zyno-Sample/internal/cart/app"
	catalogapp "github.com/HamsavardhanS/Zyno-Sample/internal/catalog/app"
	checkoutapp "github.com/HamsavardhanS/Zyno-Sample/internal/checkout/app"
	orderapp "github.com/HamsavardhanS/Zyno-Sample/internal/order/app"
	paymentapp "github.com/HamsavardhanS/Zyno-Sample/internal/payment/app"
	wishlistapp "github.com/HamsavardhanS/Zyno-Sample/internal/wishlist/app"
)

type Services struct {
	Catalog  *catalogapp.Service
	Cart     *cartapp.Service
	Wishlist *wishlistapp.Service
	Checkout *checkoutapp.Service
	Payment  *paymentapp.Service
	Orders   *orderapp.Service
}

type Handler struct {
	svc Services
	log *slog.Logger
}

func NewHandler(svc Services, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}
