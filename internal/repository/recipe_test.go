package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"

	"github.com/forkful/forkful-go/internal/model"
)

func TestUpdateNonOwnerReportsNotFound(t *testing.T) {
	// The owner-filtered UPDATE touches nothing and the fallback read, also
	// owner-filtered, finds no row.
	conn := &stubConn{affected: 0, cols: []string{"1"}}
	repo := NewRecipeRepository(newStubDB(conn))

	err := repo.Update(context.Background(), &model.Recipe{
		ID:          7,
		UserID:      1,
		Title:       "Someone else's stew",
		Ingredients: []string{"beef"},
		Directions:  []string{"simmer"},
	})
	if !errors.Is(err, ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound for a non-owner update, got %v", err)
	}
}

func TestUpdateFallbackKeepsOwnerFilter(t *testing.T) {
	conn := &stubConn{affected: 0, cols: []string{"1"}}
	repo := NewRecipeRepository(newStubDB(conn))

	repo.Update(context.Background(), &model.Recipe{
		ID:          7,
		UserID:      1,
		Title:       "Stew",
		Ingredients: []string{"beef"},
		Directions:  []string{"simmer"},
	})

	fallback := conn.queries[len(conn.queries)-1]
	if !strings.Contains(fallback, "user_id") {
		t.Fatalf("fallback existence check must filter by owner, got %q", fallback)
	}
}

func TestUpdateNoOpOnOwnRecipeSucceeds(t *testing.T) {
	// Zero rows affected but the owner-filtered read finds the recipe: the
	// update was a no-op on identical data, not a refusal.
	conn := &stubConn{
		affected: 0,
		cols:     []string{"1"},
		rows:     [][]driver.Value{{int64(1)}},
	}
	repo := NewRecipeRepository(newStubDB(conn))

	err := repo.Update(context.Background(), &model.Recipe{
		ID:          7,
		UserID:      2,
		Title:       "Stew",
		Ingredients: []string{"beef"},
		Directions:  []string{"simmer"},
	})
	if err != nil {
		t.Fatalf("expected no-op update on own recipe to succeed, got %v", err)
	}
}
