package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/forkful/forkful-go/internal/model"
)

var (
	ErrTagNotFound  = errors.New("tag not found")
	ErrDuplicateTag = errors.New("tag already exists")
)

// TagRepository handles the global tag table and the recipe_tags relation.
type TagRepository struct {
	db *sql.DB
}

// NewTagRepository creates a new TagRepository.
func NewTagRepository(db *sql.DB) *TagRepository {
	return &TagRepository{db: db}
}

// ListAll returns every tag, alphabetically.
func (r *TagRepository) ListAll(ctx context.Context) ([]model.Tag, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM tags ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]model.Tag, 0)
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// Create inserts a tag and sets its generated ID.
func (r *TagRepository) Create(ctx context.Context, t *model.Tag) error {
	result, err := r.db.ExecContext(ctx, `INSERT INTO tags (name) VALUES (?)`, t.Name)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateTag
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = id
	return nil
}

// Delete removes a tag; recipe_tags rows go with it via the FK cascade.
func (r *TagRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTagNotFound
	}
	return nil
}

// ListByRecipe returns the tags attached to a recipe.
func (r *TagRepository) ListByRecipe(ctx context.Context, recipeID int64) ([]model.Tag, error) {
	query := `SELECT t.id, t.name FROM tags t
		JOIN recipe_tags rt ON rt.tag_id = t.id
		WHERE rt.recipe_id = ? ORDER BY t.name`

	rows, err := r.db.QueryContext(ctx, query, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]model.Tag, 0)
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// Attach links a tag to a recipe; attaching twice is a no-op.
func (r *TagRepository) Attach(ctx context.Context, recipeID, tagID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT IGNORE INTO recipe_tags (recipe_id, tag_id) VALUES (?, ?)`, recipeID, tagID)
	return err
}

// SetForRecipe replaces the set of tags attached to a recipe.
func (r *TagRepository) SetForRecipe(ctx context.Context, recipeID int64, tagIDs []int64) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM recipe_tags WHERE recipe_id = ?`, recipeID); err != nil {
		return err
	}
	for _, tagID := range tagIDs {
		if err := r.Attach(ctx, recipeID, tagID); err != nil {
			return err
		}
	}
	return nil
}
