package sqlite

import (
	"context"

	"github.com/veerabala/linkbio/internal/linkbio/domain"
)

type productsRepo struct {
	db dbtx
}

func (r *productsRepo) CreateProduct(ctx context.Context, p domain.Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, name, price, quantity) VALUES (?, ?, ?, ?)`,
		p.ID, p.Name, p.Price, p.Quantity,
	)
	return mapConflict(err)
}

func (r *productsRepo) GetProductByID(ctx context.Context, id int64) (domain.Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, price, quantity FROM products WHERE id = ?`, id)

	var p domain.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity); err != nil {
		return domain.Product{}, mapNotFound(err)
	}
	return p, nil
}

func (r *productsRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, price, quantity FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productsRepo) UpdateProduct(ctx context.Context, p domain.Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products SET name = ?, price = ?, quantity = ? WHERE id = ?`,
		p.Name, p.Price, p.Quantity, p.ID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *productsRepo) DeleteProduct(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *productsRepo) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}
