package adapter

import (
	"context"

	cartapp "github.com/HamsavardhanS/Zyno-Sample/internal/cart/app"
	"github.com/HamsavardhanS/Zyno-Sample/internal/checkout/domain"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) GetCart(ctx context.Context, shopperID string) ([]domain.LineItem, error) {
	cart, err := r.svc.GetCart(ctx, shopperID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.LineItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, domain.LineItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
			Size:      it.Size,
			Color:     it.Color,
		})
	}
	return items, nil
}
