package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/HamsavardhanS/Zyno-Sample/internal/checkout/domain"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrUnavailable  = errors.New("product is no longer available")
)

// ValidationError carries the per-field messages of a rejected customer form.
type ValidationError struct {
	Fields domain.FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "invalid customer info: " + strings.Join(names, ", ")
}

type Service struct {
	Cart    CartReader
	Catalog CatalogReader
	Orders  PendingOrderRepo

	pricing       domain.PricingPolicy
	maxConcurrent int
	now           func() time.Time
}

func NewService(cart CartReader, catalog CatalogReader, orders PendingOrderRepo, pricing domain.PricingPolicy, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		Cart:          cart,
		Catalog:       catalog,
		Orders:        orders,
		pricing:       pricing,
		maxConcurrent: maxConcurrent,
		now:           time.Now,
	}
}

func (s *Service) Pricing() domain.PricingPolicy {
	return s.pricing
}

func (s *Service) Validate(info domain.CustomerInfo) domain.FieldErrors {
	return domain.Validate(info)
}

// Quote prices the shopper's cart at the snapshot prices and checks that
// every product is still sold.
func (s *Service) Quote(ctx context.Context, shopperID string) (domain.Quote, error) {
	if strings.TrimSpace(shopperID) == "" {
		return domain.Quote{}, ErrInvalidInput
	}

	items, err := s.Cart.GetCart(ctx, shopperID)
	if err != nil {
		return domain.Quote{}, err
	}

	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		g.Go(func() error {
			it := items[idx]
			if it.Quantity <= 0 {
				return fmt.Errorf("quantity must be greater than zero: %d", it.Quantity)
			}

			product, err := s.Catalog.GetProduct(ctx, it.ProductID)
			if err != nil {
				return fmt.Errorf("failed to get product %s: %w", it.ProductID, err)
			}
			if !product.InStock {
				return fmt.Errorf("%s: %w", product.Name, ErrUnavailable)
			}

			lines[idx] = domain.QuoteLine{
				LineItem:  it,
				LineTotal: it.LineTotal(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	var subtotal int64
	for _, line := range lines {
		subtotal += line.LineTotal
	}

	return domain.Quote{
		Lines:    lines,
		Currency: domain.Currency,
		Totals:   s.pricing.Apply(subtotal),
	}, nil
}

// PlaceOrder validates the form, prices the cart and writes the pending order
// that the payment step consumes. Nothing is written when it fails.
func (s *Service) PlaceOrder(ctx context.Context, shopperID string, info domain.CustomerInfo) (domain.PendingOrder, error) {
	if strings.TrimSpace(shopperID) == "" {
		return domain.PendingOrder{}, ErrInvalidInput
	}

	items, err := s.Cart.GetCart(ctx, shopperID)
	if err != nil {
		return domain.PendingOrder{}, err
	}
	if len(items) == 0 {
		return domain.PendingOrder{}, ErrEmptyCart
	}

	if fe := domain.Validate(info); !fe.Valid() {
		return domain.PendingOrder{}, &ValidationError{Fields: fe}
	}

	quote, err := s.Quote(ctx, shopperID)
	if err != nil {
		return domain.PendingOrder{}, err
	}

	order := domain.PendingOrder{
		Date:          s.now().UTC(),
		Customer:      info.Trimmed(),
		Items:         make([]domain.LineItem, 0, len(quote.Lines)),
		Subtotal:      quote.Subtotal,
		Shipping:      quote.Shipping,
		Tax:           quote.Tax,
		Total:         quote.Total,
		PaymentMethod: domain.PaymentMethod,
	}
	for _, l := range quote.Lines {
		order.Items = append(order.Items, l.LineItem)
	}

	if err := s.Orders.Save(ctx, shopperID, order); err != nil {
		return domain.PendingOrder{}, fmt.Errorf("save pending order: %w", err)
	}
	return order, nil
}

func (s *Service) PendingOrder(ctx context.Context, shopperID string) (domain.PendingOrder, error) {
	if strings.TrimSpace(shopperID) == "" {
		return domain.PendingOrder{}, ErrInvalidInput
	}
	return s.Orders.Get(ctx, shopperID)
}
