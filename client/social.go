package client

import (
	"context"
	"net/http"
	"strconv"
)

// FavoriteService is the favorites resource: a set of recipes the current
// user has bookmarked.
type FavoriteService struct {
	c *Client
}

// Add puts a recipe in the current user's favorites.
func (s *FavoriteService) Add(ctx context.Context, recipeID int64) error {
	return doNoData(ctx, s.c, request{
		method: http.MethodPost,
		path:   "/favorites/add",
		body:   map[string]int64{"recipeId": recipeID},
	})
}

// Remove takes a recipe out of the favorites. Removing one that is not there
// is a no-op success, so callers may fire it without checking first.
func (s *FavoriteService) Remove(ctx context.Context, recipeID int64) error {
	return doNoData(ctx, s.c, request{
		method: http.MethodDelete,
		path:   "/favorites/remove",
		query:  query("recipeId", strconv.FormatInt(recipeID, 10)),
	})
}

// Mine returns the favorited recipes themselves, not the relation records.
func (s *FavoriteService) Mine(ctx context.Context) ([]Recipe, error) {
	return do[[]Recipe](ctx, s.c, request{
		method: http.MethodGet,
		path:   "/favorites/getAllMyFavorites",
	})
}

// LikeService is the likes resource. Counts come from the server; after a
// Like or Unlike, re-fetch Count rather than adjusting a local number.
type LikeService struct {
	c *Client
}

// Count returns the authoritative like count for a recipe.
func (s *LikeService) Count(ctx context.Context, recipeID int64) (int64, error) {
	return do[int64](ctx, s.c, request{
		method: http.MethodGet,
		path:   "/likes/count",
		query:  query("recipeId", strconv.FormatInt(recipeID, 10)),
	})
}

// Like records a like for the given user/recipe pair.
func (s *LikeService) Like(ctx context.Context, like Like) error {
	return doNoData(ctx, s.c, request{
		method: http.MethodPost,
		path:   "/likes/likeRecipes",
		body:   like,
	})
}

// Unlike removes a like. The pair travels in the request body.
func (s *LikeService) Unlike(ctx context.Context, like Like) error {
	return doNoData(ctx, s.c, request{
		method: http.MethodDelete,
		path:   "/likes/UnlikeRecipe",
		body:   like,
	})
}

// Mine returns the recipes the current user has liked.
func (s *LikeService) Mine(ctx context.Context) ([]Recipe, error) {
	return do[[]Recipe](ctx, s.c, request{
		method: http.MethodGet,
		path:   "/likes/getAllMyLikes",
	})
}
