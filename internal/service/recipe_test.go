package service

import (
	"context"
	"testing"

	"github.com/forkful/forkful-go/internal/model"
	"github.com/forkful/forkful-go/internal/repository"
)

func newTestRecipeService() *RecipeService {
	return NewRecipeService(
		repository.NewRecipeRepository(nil),
		repository.NewCommentRepository(nil),
		repository.NewTagRepository(nil),
	)
}

func TestPublish_EmptyTitle(t *testing.T) {
	svc := newTestRecipeService()

	_, err := svc.Publish(context.Background(), 1, model.RecipeDraft{
		Title:       "  ",
		Ingredients: []string{"bread"},
		Directions:  []string{"toast"},
	})

	if err != ErrTitleRequired {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}
}

func TestPublish_NoIngredients(t *testing.T) {
	svc := newTestRecipeService()

	_, err := svc.Publish(context.Background(), 1, model.RecipeDraft{
		Title:      "Toast",
		Directions: []string{"toast"},
	})

	if err != ErrIngredientsRequired {
		t.Errorf("expected ErrIngredientsRequired, got %v", err)
	}
}

func TestPublish_NoDirections(t *testing.T) {
	svc := newTestRecipeService()

	_, err := svc.Publish(context.Background(), 1, model.RecipeDraft{
		Title:       "Toast",
		Ingredients: []string{"bread"},
	})

	if err != ErrDirectionsRequired {
		t.Errorf("expected ErrDirectionsRequired, got %v", err)
	}
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		page, pageSize     int
		wantOff, wantLimit int
	}{
		{1, 10, 0, 10},
		{2, 10, 10, 10},
		{0, 10, 0, 10},
		{3, 0, 2 * DefaultPageSize, DefaultPageSize},
		{1, 500, 0, MaxPageSize},
	}
	for _, tc := range cases {
		off, limit := clampPage(tc.page, tc.pageSize)
		if off != tc.wantOff || limit != tc.wantLimit {
			t.Errorf("clampPage(%d, %d) = (%d, %d), want (%d, %d)",
				tc.page, tc.pageSize, off, limit, tc.wantOff, tc.wantLimit)
		}
	}
}
