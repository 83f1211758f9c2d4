package app

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/HamsavardhanS/Zyno-Sample/internal/cart/domain"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrCartNotFound = errors.New("cart not found")
	ErrOutOfStock   = errors.New("product is out of stock")
	ErrBadVariant   = errors.New("size or color not offered for product")
)

// Service is the single shared cart store. Every mutation is a
// load-mutate-save under one lock, so readers always see the latest state.
type Service struct {
	repo    CartRepo
	catalog CatalogReader
	now     func() time.Time

	mu sync.Mutex
}

func NewService(repo CartRepo, catalog CatalogReader) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		now:     time.Now,
	}
}

// GetCart returns the shopper's cart, or an empty one if none was saved yet.
func (s *Service) GetCart(ctx context.Context, shopperID string) (domain.Cart, error) {
	if strings.TrimSpace(shopperID) == "" {
		return domain.Cart{}, ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreate(ctx, shopperID)
}

func (s *Service) AddItem(ctx context.Context, shopperID string, item domain.CartItem, quantity int) (domain.Cart, error) {
	if strings.TrimSpace(item.ProductID) == "" {
		return domain.Cart{}, ErrInvalidInput
	}
	return s.mutate(ctx, shopperID, func(c *domain.Cart) error {
		return c.Add(item, quantity)
	})
}

// AddProduct snapshots the catalog product and adds it to the cart.
func (s *Service) AddProduct(ctx context.Context, shopperID, productID string, quantity int, size, color string) (domain.Cart, error) {
	if quantity < 1 {
		return domain.Cart{}, domain.ErrInvalidQuantity
	}

	p, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return domain.Cart{}, err
	}
	if !p.InStock {
		return domain.Cart{}, ErrOutOfStock
	}
	if (size != "" && !slices.Contains(p.Sizes, size)) || (color != "" && !slices.Contains(p.Colors, color)) {
		return domain.Cart{}, ErrBadVariant
	}

	return s.AddItem(ctx, shopperID, domain.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Size:      size,
		Color:     color,
	}, quantity)
}

func (s *Service) SetItemQuantity(ctx context.Context, shopperID string, key domain.LineKey, quantity int) (domain.Cart, error) {
	return s.mutate(ctx, shopperID, func(c *domain.Cart) error {
		_, err := c.SetQuantity(key, quantity)
		return err
	})
}

func (s *Service) RemoveItem(ctx context.Context, shopperID string, key domain.LineKey) (domain.Cart, error) {
	return s.mutate(ctx, shopperID, func(c *domain.Cart) error {
		c.Remove(key)
		return nil
	})
}

func (s *Service) ClearCart(ctx context.Context, shopperID string) error {
	_, err := s.mutate(ctx, shopperID, func(c *domain.Cart) error {
		c.Clear()
		return nil
	})
	return err
}

func (s *Service) mutate(ctx context.Context, shopperID string, fn func(*domain.Cart) error) (domain.Cart, error) {
	if strings.TrimSpace(shopperID) == "" {
		return domain.Cart{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.getOrCreate(ctx, shopperID)
	if err != nil {
		return domain.Cart{}, err
	}
	if err := fn(&cart); err != nil {
		return domain.Cart{}, err
	}
	if cart.ID == "" {
		cart.ID = uuid.NewString()
	}
	cart.UpdatedAt = s.now()

	if err := s.repo.Save(ctx, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (s *Service) getOrCreate(ctx context.Context, shopperID string) (domain.Cart, error) {
	cart, err := s.repo.Get(ctx, shopperID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, ErrCartNotFound) {
		return domain.Cart{}, err
	}
	return domain.Cart{
		ShopperID: shopperID,
		UpdatedAt: s.now(),
	}, nil
}
