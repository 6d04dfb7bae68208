package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ubuntucrafts/catalog/pkg/env/db"
	"github.com/ubuntucrafts/catalog/pkg/models"
)

type ProductStore struct {
	DB     *sql.DB
	Driver db.DriverType
}

func NewProductStore(sqldb *sql.DB, driver db.DriverType) *ProductStore {
	return &ProductStore{DB: sqldb, Driver: driver}
}

func (s *ProductStore) List(ctx context.Context) ([]models.Product, error) {
	query := rebind(s.Driver, `SELECT product_id, name, price, stock FROM products`)

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unable to list products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Price, &p.Stock); err != nil {
			return nil, fmt.Errorf("unable to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unable to list products: %w", err)
	}

	return products, nil
}

func (s *ProductStore) Get(ctx context.Context, id string) (*models.Product, error) {
	query := rebind(s.Driver, `SELECT product_id, name, price, stock FROM products WHERE product_id = ?`)

	var p models.Product
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&p.ProductID, &p.Name, &p.Price, &p.Stock)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("unable to get product: %w", err)
	}

	return &p, nil
}

func (s *ProductStore) Create(ctx context.Context, p *models.Product) error {
	query := rebind(s.Driver, `INSERT INTO products (product_id, name, price, stock) VALUES (?, ?, ?, ?)`)

	if _, err := s.DB.ExecContext(ctx, query, p.ProductID, p.Name, p.Price, p.Stock); err != nil {
		return fmt.Errorf("unable to create product: %w", err)
	}

	return nil
}

func (s *ProductStore) Update(ctx context.Context, p *models.Product) error {
	query := rebind(s.Driver, `UPDATE products SET name = ?, price = ?, stock = ? WHERE product_id = ?`)

	if _, err := s.DB.ExecContext(ctx, query, p.Name, p.Price, p.Stock, p.ProductID); err != nil {
		return fmt.Errorf("unable to update product: %w", err)
	}

	return nil
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	query := rebind(s.Driver, `DELETE FROM products WHERE product_id = ?`)

	if _, err := s.DB.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("unable to delete product: %w", err)
	}

	return nil
}
