package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ubuntucrafts/catalog/pkg/env/db"
	"github.com/ubuntucrafts/catalog/pkg/models"
)

type OrderStore struct {
	DB     *sql.DB
	Driver db.DriverType
}

func NewOrderStore(sqldb *sql.DB, driver db.DriverType) *OrderStore {
	return &OrderStore{DB: sqldb, Driver: driver}
}

// Checkout records the order and its items in a single transaction and
// returns the new order identifier.
func (s *OrderStore) Checkout(ctx context.Context, userID string, items []models.CheckoutItem) (int64, error) {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("unable to begin checkout transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	orderID, err := s.insertOrder(ctx, tx, userID, total)
	if err != nil {
		return 0, err
	}

	itemQuery := rebind(s.Driver, `INSERT INTO order_items (order_id, product_id, quantity, price) VALUES (?, ?, ?, ?)`)
	for _, item := range items {
		if _, err := tx.ExecContext(ctx, itemQuery, orderID, item.ProductID, item.Quantity, item.Price); err != nil {
			return 0, fmt.Errorf("unable to insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("unable to commit checkout transaction: %w", err)
	}

	return orderID, nil
}

// insertOrder papers over the drivers disagreeing on how generated keys
// come back: MySQL via LastInsertId, PostgreSQL via RETURNING.
func (s *OrderStore) insertOrder(ctx context.Context, tx *sql.Tx, userID string, total float64) (int64, error) {
	if s.Driver.Name() == "pgx" {
		query := rebind(s.Driver, `INSERT INTO orders (user_id, total_amount) VALUES (?, ?) RETURNING id`)

		var orderID int64
		if err := tx.QueryRowContext(ctx, query, userID, total).Scan(&orderID); err != nil {
			return 0, fmt.Errorf("unable to insert order: %w", err)
		}
		return orderID, nil
	}

	result, err := tx.ExecContext(ctx, `INSERT INTO orders (user_id, total_amount) VALUES (?, ?)`, userID, total)
	if err != nil {
		return 0, fmt.Errorf("unable to insert order: %w", err)
	}

	orderID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("unable to read order identifier: %w", err)
	}

	return orderID, nil
}
