package repository

import (
	"context"
	"database/sql"

	"github.com/forkful/forkful-go/internal/model"
)

// SocialRepository handles the favorites and likes pair tables. Both are
// plain (user_id, recipe_id) relations whose row existence is the state, so
// inserts are idempotent and deletes of absent rows succeed silently.
type SocialRepository struct {
	db      *sql.DB
	recipes *RecipeRepository
}

// NewSocialRepository creates a new SocialRepository.
func NewSocialRepository(db *sql.DB, recipes *RecipeRepository) *SocialRepository {
	return &SocialRepository{db: db, recipes: recipes}
}

// AddFavorite records a favorite; re-adding is a no-op.
func (r *SocialRepository) AddFavorite(ctx context.Context, userID, recipeID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT IGNORE INTO favorites (user_id, recipe_id) VALUES (?, ?)`, userID, recipeID)
	return err
}

// RemoveFavorite removes a favorite; removing an absent one is a no-op.
func (r *SocialRepository) RemoveFavorite(ctx context.Context, userID, recipeID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND recipe_id = ?`, userID, recipeID)
	return err
}

// ListFavoriteRecipes returns the recipes a user favorited, newest first.
func (r *SocialRepository) ListFavoriteRecipes(ctx context.Context, userID int64) ([]model.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes r
		JOIN favorites f ON f.recipe_id = r.id
		WHERE f.user_id = ? ORDER BY f.created_at DESC`
	return r.recipes.queryRecipes(ctx, query, userID)
}

// AddLike records a like; re-liking is a no-op.
func (r *SocialRepository) AddLike(ctx context.Context, userID, recipeID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT IGNORE INTO likes (user_id, recipe_id) VALUES (?, ?)`, userID, recipeID)
	return err
}

// RemoveLike removes a like; removing an absent one is a no-op.
func (r *SocialRepository) RemoveLike(ctx context.Context, userID, recipeID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM likes WHERE user_id = ? AND recipe_id = ?`, userID, recipeID)
	return err
}

// CountLikes returns the like count for a recipe.
func (r *SocialRepository) CountLikes(ctx context.Context, recipeID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM likes WHERE recipe_id = ?`, recipeID).Scan(&count)
	return count, err
}

// ListLikedRecipes returns the recipes a user liked, newest first.
func (r *SocialRepository) ListLikedRecipes(ctx context.Context, userID int64) ([]model.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes r
		JOIN likes l ON l.recipe_id = r.id
		WHERE l.user_id = ? ORDER BY l.created_at DESC`
	return r.recipes.queryRecipes(ctx, query, userID)
}
