package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/forkful/forkful-go/internal/model"
)

var ErrItemNotFound = errors.New("item not found")

// Inventory and shopping-list rows are the same shape in different tables;
// one repository parameterized by table serves both.
const (
	TableInventory    = "inventory_items"
	TableShoppingList = "shopping_list_items"
)

// ItemRepository handles one per-user item table.
type ItemRepository struct {
	db    *sql.DB
	table string
}

// NewItemRepository creates an ItemRepository over the given table.
func NewItemRepository(db *sql.DB, table string) *ItemRepository {
	return &ItemRepository{db: db, table: table}
}

// ListByUser returns every item the user owns, newest first.
func (r *ItemRepository) ListByUser(ctx context.Context, userID int64) ([]model.Item, error) {
	query := fmt.Sprintf(`SELECT id, user_id, item_name, quantity, unit, created_at, updated_at
		FROM %s WHERE user_id = ? ORDER BY created_at DESC`, r.table)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.UserID, &it.ItemName, &it.Quantity, &it.Unit, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetByID retrieves one item owned by userID.
func (r *ItemRepository) GetByID(ctx context.Context, id, userID int64) (model.Item, error) {
	query := fmt.Sprintf(`SELECT id, user_id, item_name, quantity, unit, created_at, updated_at
		FROM %s WHERE id = ? AND user_id = ?`, r.table)

	var it model.Item
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&it.ID, &it.UserID, &it.ItemName, &it.Quantity, &it.Unit, &it.CreatedAt, &it.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, ErrItemNotFound
	}
	return it, err
}

// Create inserts an item and sets its generated ID.
func (r *ItemRepository) Create(ctx context.Context, it *model.Item) error {
	query := fmt.Sprintf(`INSERT INTO %s (user_id, item_name, quantity, unit) VALUES (?, ?, ?, ?)`, r.table)

	result, err := r.db.ExecContext(ctx, query, it.UserID, it.ItemName, it.Quantity, it.Unit)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	it.ID = id
	return nil
}

// Update replaces an item owned by userID.
func (r *ItemRepository) Update(ctx context.Context, it *model.Item) error {
	query := fmt.Sprintf(`UPDATE %s SET item_name = ?, quantity = ?, unit = ? WHERE id = ? AND user_id = ?`, r.table)

	result, err := r.db.ExecContext(ctx, query, it.ItemName, it.Quantity, it.Unit, it.ID, it.UserID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		if _, err := r.GetByID(ctx, it.ID, it.UserID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes an item owned by userID.
func (r *ItemRepository) Delete(ctx context.Context, id, userID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ? AND user_id = ?`, r.table)

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}
