package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// RecipeService is the recipes resource.
//
// Popular, All, Search and PopularByTag return the {total, records} page
// shape; Mine returns a bare array. That split is per endpoint and fixed.
type RecipeService struct {
	c *Client
}

// Popular returns the first page of recipes ranked by like count.
func (s *RecipeService) Popular(ctx context.Context) (Page[Recipe], error) {
	return do[Page[Recipe]](ctx, s.c, request{
		method: http.MethodGet,
		path:   "/recipes/popular",
	})
}

// All returns one page of all recipes, newest first.
func (s *RecipeService) All(ctx context.Context, page, pageSize int) (Page[Recipe], error) {
	return do[Page[Recipe]](ctx, s.c, request{
		method: http.MethodGet,
		path:   "/recipes/all",
		query:  query("page", strconv.Itoa(page), "pageSize", strconv.Itoa(pageSize)),
	})
}

// Search returns recipes whose title matches keyword.
func (s *RecipeService) Search(ctx context.Context, keyword string) (Page[Recipe], error) {
	return do[Page[Recipe]](ctx, s.c, request{
		method: http.MethodGet,
		path:   "/recipes/search",
		query:  query("keyword", keyword),
	})
}

// PopularByTag returns one page of recipes carrying tag, ranked by like count.
func (s *RecipeService) PopularByTag(ctx context.Context, tag string, page, pageSize int) (Page[Recipe], error) {
	return do[Page[Recipe]](ctx, s.c, request{
		method: http.MethodGet,
		path:   "/recipes/tag/popular",
		query:  query("tag", tag, "page", strconv.Itoa(page), "pageSize", strconv.Itoa(pageSize)),
	})
}

// Get returns one recipe with its comments and tags.
func (s *RecipeService) Get(ctx context.Context, id int64) (Recipe, error) {
	return do[Recipe](ctx, s.c, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/recipes/%d", id),
	})
}

// Mine returns every recipe owned by the current user.
func (s *RecipeService) Mine(ctx context.Context) ([]Recipe, error) {
	return do[[]Recipe](ctx, s.c, request{
		method: http.MethodGet,
		path:   "/recipes/getAllMyRecipes",
	})
}

// Publish creates a recipe from a draft and returns the stored record with
// its server-assigned id, owner and timestamps.
func (s *RecipeService) Publish(ctx context.Context, draft RecipeDraft) (Recipe, error) {
	return do[Recipe](ctx, s.c, request{
		method: http.MethodPost,
		path:   "/recipes/publish",
		body:   draft,
	})
}

// Edit replaces a recipe the current user owns.
func (s *RecipeService) Edit(ctx context.Context, recipe Recipe) (Recipe, error) {
	return do[Recipe](ctx, s.c, request{
		method: http.MethodPost,
		path:   "/recipes/edit",
		body:   recipe,
	})
}

// Delete removes a recipe the current user owns.
func (s *RecipeService) Delete(ctx context.Context, id int64) error {
	return doNoData(ctx, s.c, request{
		method: http.MethodDelete,
		path:   "/recipes/delete",
		query:  query("recipeId", strconv.FormatInt(id, 10)),
	})
}
