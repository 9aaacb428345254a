package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/veerabala/linkbio/internal/linkbio/domain"
	"github.com/veerabala/linkbio/internal/linkbio/store"
	"github.com/veerabala/linkbio/pkg/slogx"
)

// ErrDuplicateProduct reports a create with an id that is already taken.
var ErrDuplicateProduct = errors.New("duplicate_product")

// ProductService is the legacy catalog carried alongside the profile
// features. Ids are client-assigned and the catalog is global, not
// per-user.
type ProductService struct {
	Store store.Store
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.Store.Products().ListProducts(ctx)
}

func (s *ProductService) Get(ctx context.Context, id int64) (domain.Product, error) {
	p, err := s.Store.Products().GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Product{}, ErrNotFound
		}
		return domain.Product{}, err
	}
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	if err := s.Store.Products().CreateProduct(ctx, p); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Product{}, ErrDuplicateProduct
		}
		return domain.Product{}, err
	}
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	if err := s.Store.Products().UpdateProduct(ctx, p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Product{}, ErrNotFound
		}
		return domain.Product{}, err
	}
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.Store.Products().DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Seed inserts the starter catalog into an empty products table. A
// non-empty table is left alone so restarts never clobber edits.
func (s *ProductService) Seed(ctx context.Context) error {
	count, err := s.Store.Products().CountProducts(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []domain.Product{
		{ID: 1, Name: "Laptop", Price: 999.99, Quantity: 10},
		{ID: 2, Name: "Smartphone", Price: 499.99, Quantity: 20},
		{ID: 3, Name: "Tablet", Price: 299.99, Quantity: 15},
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, p := range seed {
			if err := tx.Products().CreateProduct(ctx, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// A concurrent replica may have seeded between the count and the
		// insert; that leaves the table in the desired state.
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil
		}
		return err
	}

	slogx.FromContext(ctx).Info("seeded product catalog", slog.Int("products", len(seed)))
	return nil
}
