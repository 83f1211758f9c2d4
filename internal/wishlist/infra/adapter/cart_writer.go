package adapter

import (
	"context"

	cartapp "github.com/HamsavardhanS/Zyno-Sample/internal/cart/app"
)

type CartServiceWriter struct {
	svc *cartapp.Service
}

func NewCartServiceWriter(svc *cartapp.Service) *CartServiceWriter {
	return &CartServiceWriter{svc: svc}
}

func (w *CartServiceWriter) AddProduct(ctx context.Context, shopperID, productID string) error {
	_, err := w.svc.AddProduct(ctx, shopperID, productID, 1, "", "")
	return err
}
