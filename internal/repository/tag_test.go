package repository

import (
	"context"
	"strings"
	"testing"
)

func TestSetForRecipeReplacesRelation(t *testing.T) {
	conn := &stubConn{affected: 1}
	repo := NewTagRepository(newStubDB(conn))

	if err := repo.SetForRecipe(context.Background(), 7, []int64{2, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(conn.queries) != 3 {
		t.Fatalf("expected clear plus two attaches, got %d statements: %v", len(conn.queries), conn.queries)
	}
	if !strings.Contains(conn.queries[0], "DELETE FROM recipe_tags") {
		t.Errorf("first statement should clear the relation, got %q", conn.queries[0])
	}
	for _, q := range conn.queries[1:] {
		if !strings.Contains(q, "INSERT IGNORE INTO recipe_tags") {
			t.Errorf("expected idempotent attach, got %q", q)
		}
	}
}

func TestSetForRecipeEmptyClears(t *testing.T) {
	conn := &stubConn{affected: 1}
	repo := NewTagRepository(newStubDB(conn))

	if err := repo.SetForRecipe(context.Background(), 7, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conn.queries) != 1 {
		t.Fatalf("expected only the clearing delete, got %v", conn.queries)
	}
}
