package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/HamsavardhanS/Zyno-Sample/internal/wishlist/domain"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrWishlistNotFound = errors.New("wishlist not found")
	ErrNotInWishlist    = errors.New("product not in wishlist")
)

type Service struct {
	repo    WishlistRepo
	catalog CatalogReader
	cart    CartWriter
	now     func() time.Time

	mu sync.Mutex
}

func NewService(repo WishlistRepo, catalog CatalogReader, cart CartWriter) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		cart:    cart,
		now:     time.Now,
	}
}

func (s *Service) List(ctx context.Context, shopperID string) (domain.Wishlist, error) {
	if strings.TrimSpace(shopperID) == "" {
		return domain.Wishlist{}, ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, shopperID)
}

func (s *Service) Has(ctx context.Context, shopperID, productID string) (bool, error) {
	w, err := s.List(ctx, shopperID)
	if err != nil {
		return false, err
	}
	return w.Has(productID), nil
}

// Add saves entry; saving a product already present keeps the old snapshot.
func (s *Service) Add(ctx context.Context, shopperID string, entry domain.Entry) (domain.Wishlist, error) {
	if strings.TrimSpace(entry.ID) == "" {
		return domain.Wishlist{}, ErrInvalidInput
	}
	return s.mutate(ctx, shopperID, func(w *domain.Wishlist) error {
		w.Add(entry)
		return nil
	})
}

func (s *Service) AddProduct(ctx context.Context, shopperID, productID string) (domain.Wishlist, error) {
	entry, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return domain.Wishlist{}, err
	}
	return s.Add(ctx, shopperID, entry)
}

func (s *Service) Remove(ctx context.Context, shopperID, productID string) (domain.Wishlist, error) {
	return s.mutate(ctx, shopperID, func(w *domain.Wishlist) error {
		w.Remove(productID)
		return nil
	})
}

func (s *Service) Clear(ctx context.Context, shopperID string) error {
	_, err := s.mutate(ctx, shopperID, func(w *domain.Wishlist) error {
		w.Clear()
		return nil
	})
	return err
}

// MoveToCart adds one unit of a saved product to the cart, then drops it from
// the wishlist. The wishlist is left untouched when the cart rejects it.
func (s *Service) MoveToCart(ctx context.Context, shopperID, productID string) (domain.Wishlist, error) {
	return s.mutate(ctx, shopperID, func(w *domain.Wishlist) error {
		if !w.Has(productID) {
			return ErrNotInWishlist
		}
		if err := s.cart.AddProduct(ctx, shopperID, productID); err != nil {
			return fmt.Errorf("move %s to cart: %w", productID, err)
		}
		w.Remove(productID)
		return nil
	})
}

func (s *Service) mutate(ctx context.Context, shopperID string, fn func(*domain.Wishlist) error) (domain.Wishlist, error) {
	if strings.TrimSpace(shopperID) == "" {
		return domain.Wishlist{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.load(ctx, shopperID)
	if err != nil {
		return domain.Wishlist{}, err
	}
	if err := fn(&w); err != nil {
		return domain.Wishlist{}, err
	}
	w.UpdatedAt = s.now()

	if err := s.repo.Save(ctx, w); err != nil {
		return domain.Wishlist{}, err
	}
	return w, nil
}

func (s *Service) load(ctx context.Context, shopperID string) (domain.Wishlist, error) {
	w, err := s.repo.Get(ctx, shopperID)
	if errors.Is(err, ErrWishlistNotFound) {
		return domain.Wishlist{ShopperID: shopperID}, nil
	}
	return w, err
}
