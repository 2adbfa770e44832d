package client

import (
	"context"
	"net/http"
	"strconv"
)

// CommentService is the recipe comments resource.
type CommentService struct {
	c *Client
}

// Post adds a comment to a recipe.
func (s *CommentService) Post(ctx context.Context, comment Comment) (Comment, error) {
	return do[Comment](ctx, s.c, request{
		method: http.MethodPost,
		path:   "/comments/postRecipeComment",
		body:   comment,
	})
}

// ForRecipe returns all comments on a recipe, oldest first.
func (s *CommentService) ForRecipe(ctx context.Context, recipeID int64) ([]Comment, error) {
	return do[[]Comment](ctx, s.c, request{
		method: http.MethodGet,
		path:   "/comments/getRecipeComments",
		query:  query("recipeId", strconv.FormatInt(recipeID, 10)),
	})
}

// Delete removes a comment. The server rejects deletes by anyone but the
// comment's author; use CanDelete to gate the action in the UI first.
func (s *CommentService) Delete(ctx context.Context, commentID, userID int64) error {
	return doNoData(ctx, s.c, request{
		method: http.MethodDelete,
		path:   "/comments/deleteComment",
		query: query(
			"commentId", strconv.FormatInt(commentID, 10),
			"userId", strconv.FormatInt(userID, 10),
		),
	})
}

// CanDelete reports whether userID owns the comment. This is a UI courtesy;
// the server performs the authoritative check on Delete regardless.
func CanDelete(c Comment, userID int64) bool {
	return userID != 0 && c.UserID == userID
}
