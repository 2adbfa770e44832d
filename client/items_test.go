package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestAddInventoryNormalizesQuantity(t *testing.T) {
	var got Item
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		writeEnvelope(w, 1, "", got)
	})

	_, err := c.Inventory.Add(context.Background(), Item{
		ItemName: "flour",
		Quantity: " 2.50 ",
		Unit:     "kg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Quantity != "2.5" {
		t.Errorf("expected quantity normalized to 2.5, got %q", got.Quantity)
	}
}

func TestAddInventoryRejectsNonNumericQuantity(t *testing.T) {
	called := false
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := c.Inventory.Add(context.Background(), Item{ItemName: "flour", Quantity: "a lot"})
	if !errors.Is(err, ErrBadQuantity) {
		t.Fatalf("expected ErrBadQuantity, got %v", err)
	}
	if called {
		t.Error("bad quantity must be rejected before any request is made")
	}
}

func TestShoppingListDeleteParam(t *testing.T) {
	var got string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("shoppingListId")
		writeEnvelope(w, 1, "", nil)
	})

	if err := c.ShoppingList.Delete(context.Background(), 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "4" {
		t.Errorf("expected shoppingListId=4, got %q", got)
	}
}

func TestInventoryDeleteParam(t *testing.T) {
	var got string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("inventoryId")
		writeEnvelope(w, 1, "", nil)
	})

	if err := c.Inventory.Delete(context.Background(), 6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "6" {
		t.Errorf("expected inventoryId=6, got %q", got)
	}
}
