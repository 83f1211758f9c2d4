package app

import (
	"context"
	"reflect"
	"testing"

	"github.com/HamsavardhanS/Zyno-Sample/internal/catalog/domain"
)

type fakeRepo struct {
	products []domain.Product
}

func (f fakeRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}

func (f fakeRepo) List(ctx context.Context) ([]domain.Product, error) {
	return append([]domain.Product(nil), f.products...), nil
}

func testCatalog() fakeRepo {
	return fakeRepo{products: []domain.Product{
		{ID: "1", Name: "Velociraptor Hunt Poster", Category: domain.CategoryPosters, Description: "pack of velociraptors", IsNew: true},
		{ID: "2", Name: "T-Rex Roar T-Shirt", Category: domain.CategoryTShirts, Description: "cotton t-shirt", IsBestseller: true},
		{ID: "3", Name: "Raptor Pack Polaroid Set", Category: domain.CategoryPolaroids, Description: "raptor species"},
		{ID: "4", Name: "Jurassic Landscape Poster", Category: domain.CategoryPosters, Description: "landscape"},
		{ID: "5", Name: "Raptor Claw T-Shirt", Category: domain.CategoryTShirts, Description: "raptor claw artwork"},
		{ID: "6", Name: "Prehistoric Moments Polaroids", Category: domain.CategoryPolaroids, Description: "moments"},
		{ID: "7", Name: "Alpha Raptor Poster", Category: domain.CategoryPosters, Description: "alpha raptor"},
		{ID: "8", Name: "Dino Poster Deluxe", Category: domain.CategoryPosters, Description: "deluxe"},
		{ID: "9", Name: "Dino Poster Mini", Category: domain.CategoryPosters, Description: "mini"},
	}}
}

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestGetProductValidation(t *testing.T) {
	svc := NewService(testCatalog())

	t.Run("blank id -> invalid", func(t *testing.T) {
		_, err := svc.GetProduct(context.Background(), "   ")
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown id -> not found", func(t *testing.T) {
		_, err := svc.GetProduct(context.Background(), "42")
		if err != ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestListByCategoryKeepsCatalogOrder(t *testing.T) {
	svc := NewService(testCatalog())

	got, err := svc.ListByCategory(context.Background(), domain.CategoryPosters)
	if err != nil {
		t.Fatalf("ListByCategory: %v", err)
	}
	if want := []string{"1", "4", "7", "8", "9"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("got %v, want %v", ids(got), want)
	}

	if _, err := svc.ListByCategory(context.Background(), "mugs"); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for unknown category, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	svc := NewService(testCatalog())
	ctx := context.Background()

	t.Run("case-insensitive name match", func(t *testing.T) {
		got, _ := svc.Search(ctx, "RAPTOR")
		if want := []string{"1", "3", "5", "7"}; !reflect.DeepEqual(ids(got), want) {
			t.Fatalf("got %v, want %v", ids(got), want)
		}
	})

	t.Run("matches category", func(t *testing.T) {
		got, _ := svc.Search(ctx, "polaroids")
		if want := []string{"6", "3"}; len(got) != len(want) {
			t.Fatalf("got %v", ids(got))
		}
	})

	t.Run("matches description", func(t *testing.T) {
		got, _ := svc.Search(ctx, "cotton")
		if want := []string{"2"}; !reflect.DeepEqual(ids(got), want) {
			t.Fatalf("got %v, want %v", ids(got), want)
		}
	})

	t.Run("empty query matches all", func(t *testing.T) {
		got, _ := svc.Search(ctx, "")
		if len(got) != 9 {
			t.Fatalf("expected 9, got %d", len(got))
		}
	})
}

func TestRelatedProducts(t *testing.T) {
	svc := NewService(testCatalog())

	got, err := svc.RelatedProducts(context.Background(), "1", domain.CategoryPosters)
	if err != nil {
		t.Fatalf("RelatedProducts: %v", err)
	}
	if want := []string{"4", "7", "8", "9"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("got %v, want %v", ids(got), want)
	}

	got, _ = svc.RelatedProducts(context.Background(), "4", domain.CategoryPosters)
	if want := []string{"1", "7", "8", "9"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("got %v, want %v", ids(got), want)
	}
}

func TestSearchSuggestions(t *testing.T) {
	svc := NewService(testCatalog())
	ctx := context.Background()

	t.Run("blank query -> empty", func(t *testing.T) {
		got, _ := svc.SearchSuggestions(ctx, "  ")
		if len(got) != 0 {
			t.Fatalf("expected none, got %v", got)
		}
	})

	t.Run("names first then categories", func(t *testing.T) {
		got, _ := svc.SearchSuggestions(ctx, "raptor")
		want := []string{"Velociraptor Hunt Poster", "Raptor Pack Polaroid Set", "Raptor Claw T-Shirt", "posters", "polaroids"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("deduplicated", func(t *testing.T) {
		repo := fakeRepo{products: []domain.Product{
			{ID: "1", Name: "posters", Category: domain.CategoryPosters},
		}}
		got, _ := NewService(repo).SearchSuggestions(ctx, "poster")
		if want := []string{"posters"}; !reflect.DeepEqual(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})
}

func TestFeaturedProducts(t *testing.T) {
	svc := NewService(testCatalog())
	got, _ := svc.FeaturedProducts(context.Background())
	if want := []string{"1", "2"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("got %v, want %v", ids(got), want)
	}
}
