package app

import (
	"context"

	"github.com/HamsavardhanS/Zyno-Sample/internal/catalog/domain"
)

type ProductRepo interface {
	Get(ctx context.Context, id string) (domain.Product, error)
	// List returns every product in catalog order.
	List(ctx context.Context) ([]domain.Product, error)
}
