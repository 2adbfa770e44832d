package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/forkful/forkful-go/internal/model"
)

var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository handles recipe comment persistence.
type CommentRepository struct {
	db *sql.DB
}

// NewCommentRepository creates a new CommentRepository.
func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a comment and sets its generated ID.
func (r *CommentRepository) Create(ctx context.Context, c *model.Comment) error {
	query := `INSERT INTO comments (recipe_id, user_id, content, rating) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, c.RecipeID, c.UserID, c.Content, c.Rating)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// GetByID retrieves one comment.
func (r *CommentRepository) GetByID(ctx context.Context, id int64) (model.Comment, error) {
	query := `SELECT id, recipe_id, user_id, content, rating, created_at FROM comments WHERE id = ?`

	var c model.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.RecipeID, &c.UserID, &c.Content, &c.Rating, &c.CreateTime,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Comment{}, ErrCommentNotFound
	}
	return c, err
}

// ListByRecipe returns all comments on a recipe, oldest first.
func (r *CommentRepository) ListByRecipe(ctx context.Context, recipeID int64) ([]model.Comment, error) {
	query := `SELECT id, recipe_id, user_id, content, rating, created_at
		FROM comments WHERE recipe_id = ? ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]model.Comment, 0)
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.RecipeID, &c.UserID, &c.Content, &c.Rating, &c.CreateTime); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Delete removes a comment owned by userID.
func (r *CommentRepository) Delete(ctx context.Context, id, userID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCommentNotFound
	}
	return nil
}
