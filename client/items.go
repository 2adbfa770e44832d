package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ErrBadQuantity is returned when a quantity is not numeric.
var ErrBadQuantity = fmt.Errorf("quantity must be a number")

// normalizeQuantity turns free-form quantity input into its canonical numeric
// string form ("2.50" -> "2.5"). Forms hand over whatever the user typed; the
// service boundary is where it becomes a number.
func normalizeQuantity(q string) (string, error) {
	q = strings.TrimSpace(q)
	n, err := strconv.ParseFloat(q, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrBadQuantity, q)
	}
	return strconv.FormatFloat(n, 'f', -1, 64), nil
}

// InventoryService is the current user's pantry inventory.
type InventoryService struct {
	c *Client
}

// Mine returns every inventory item of the current user.
func (s *InventoryService) Mine(ctx context.Context) ([]Item, error) {
	return do[[]Item](ctx, s.c, request{
		method: http.MethodGet,
		path:   "/inventory/getAllMyInventory",
	})
}

// Get returns one inventory item.
func (s *InventoryService) Get(ctx context.Context, id int64) (Item, error) {
	return do[Item](ctx, s.c, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/inventory/%d", id),
	})
}

// Add creates an inventory item. Quantity is normalized numeric first.
func (s *InventoryService) Add(ctx context.Context, item Item) (Item, error) {
	q, err := normalizeQuantity(item.Quantity)
	if err != nil {
		return Item{}, err
	}
	item.Quantity = q
	return do[Item](ctx, s.c, request{
		method: http.MethodPost,
		path:   "/inventory/add",
		body:   item,
	})
}

// Update replaces an inventory item. Quantity is normalized numeric first.
func (s *InventoryService) Update(ctx context.Context, item Item) (Item, error) {
	q, err := normalizeQuantity(item.Quantity)
	if err != nil {
		return Item{}, err
	}
	item.Quantity = q
	return do[Item](ctx, s.c, request{
		method: http.MethodPut,
		path:   "/inventory/edit",
		body:   item,
	})
}

// Delete removes an inventory item.
func (s *InventoryService) Delete(ctx context.Context, id int64) error {
	return doNoData(ctx, s.c, request{
		method: http.MethodDelete,
		path:   "/inventory/delete",
		query:  query("inventoryId", strconv.FormatInt(id, 10)),
	})
}

// ShoppingListService is the current user's shopping list. It shares the Item
// shape with the inventory but is its own resource; the two lists are never
// synchronized automatically.
type ShoppingListService struct {
	c *Client
}

// Mine returns the whole shopping list.
func (s *ShoppingListService) Mine(ctx context.Context) ([]Item, error) {
	return do[[]Item](ctx, s.c, request{
		method: http.MethodGet,
		path:   "/list/getAllMyShoppingList",
	})
}

// Get returns one shopping-list item.
func (s *ShoppingListService) Get(ctx context.Context, id int64) (Item, error) {
	return do[Item](ctx, s.c, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/list/edit/%d", id),
	})
}

// Add puts an item on the list.
func (s *ShoppingListService) Add(ctx context.Context, item Item) (Item, error) {
	q, err := normalizeQuantity(item.Quantity)
	if err != nil {
		return Item{}, err
	}
	item.Quantity = q
	return do[Item](ctx, s.c, request{
		method: http.MethodPost,
		path:   "/list/add",
		body:   item,
	})
}

// Update replaces a shopping-list item.
func (s *ShoppingListService) Update(ctx context.Context, item Item) (Item, error) {
	q, err := normalizeQuantity(item.Quantity)
	if err != nil {
		return Item{}, err
	}
	item.Quantity = q
	return do[Item](ctx, s.c, request{
		method: http.MethodPut,
		path:   "/list/edit",
		body:   item,
	})
}

// Delete removes a shopping-list item.
func (s *ShoppingListService) Delete(ctx context.Context, id int64) error {
	return doNoData(ctx, s.c, request{
		method: http.MethodDelete,
		path:   "/list/delete",
		query:  query("shoppingListId", strconv.FormatInt(id, 10)),
	})
}
