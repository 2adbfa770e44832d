package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/forkful/forkful-go/internal/model"
)

var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository handles recipe persistence. Ingredients, directions and
// nutrition live in JSON columns; likes and tags are separate tables joined
// in for ranking and detail reads.
type RecipeRepository struct {
	db *sql.DB
}

// NewRecipeRepository creates a new RecipeRepository.
func NewRecipeRepository(db *sql.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

const recipeColumns = `r.id, r.title, r.ingredients, r.directions, r.link, r.minutes, r.user_id, r.nutrition, r.created_at, r.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (model.Recipe, error) {
	var (
		rec         model.Recipe
		ingredients []byte
		directions  []byte
		nutrition   []byte
		link        sql.NullString
	)
	err := row.Scan(
		&rec.ID, &rec.Title, &ingredients, &directions, &link,
		&rec.Minutes, &rec.UserID, &nutrition, &rec.CreateTime, &rec.UpdateTime,
	)
	if err != nil {
		return model.Recipe{}, err
	}
	rec.Link = link.String
	if err := json.Unmarshal(ingredients, &rec.Ingredients); err != nil {
		return model.Recipe{}, fmt.Errorf("decoding ingredients for recipe %d: %w", rec.ID, err)
	}
	if err := json.Unmarshal(directions, &rec.Directions); err != nil {
		return model.Recipe{}, fmt.Errorf("decoding directions for recipe %d: %w", rec.ID, err)
	}
	if len(nutrition) > 0 {
		n := &model.Nutrition{}
		if err := json.Unmarshal(nutrition, n); err != nil {
			return model.Recipe{}, fmt.Errorf("decoding nutrition for recipe %d: %w", rec.ID, err)
		}
		rec.Nutrition = n
	}
	return rec, nil
}

func (r *RecipeRepository) queryRecipes(ctx context.Context, query string, args ...any) ([]model.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes := make([]model.Recipe, 0)
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	return recipes, rows.Err()
}

func encodeRecipeJSON(rec *model.Recipe) (ingredients, directions []byte, nutrition any, err error) {
	ingredients, err = json.Marshal(rec.Ingredients)
	if err != nil {
		return nil, nil, nil, err
	}
	directions, err = json.Marshal(rec.Directions)
	if err != nil {
		return nil, nil, nil, err
	}
	if rec.Nutrition != nil {
		buf, err := json.Marshal(rec.Nutrition)
		if err != nil {
			return nil, nil, nil, err
		}
		nutrition = buf
	}
	return ingredients, directions, nutrition, nil
}

// Create inserts a recipe and sets its generated ID and timestamps.
func (r *RecipeRepository) Create(ctx context.Context, rec *model.Recipe) error {
	ingredients, directions, nutrition, err := encodeRecipeJSON(rec)
	if err != nil {
		return err
	}

	query := `INSERT INTO recipes (title, ingredients, directions, link, minutes, user_id, nutrition)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query,
		rec.Title, ingredients, directions, nullable(rec.Link), rec.Minutes, rec.UserID, nutrition)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	rec.ID = id
	return nil
}

// Update replaces a recipe's editable fields. The owner filter makes a
// non-owner update indistinguishable from a missing recipe.
func (r *RecipeRepository) Update(ctx context.Context, rec *model.Recipe) error {
	ingredients, directions, nutrition, err := encodeRecipeJSON(rec)
	if err != nil {
		return err
	}

	query := `UPDATE recipes SET title = ?, ingredients = ?, directions = ?, link = ?, minutes = ?, nutrition = ?
		WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query,
		rec.Title, ingredients, directions, nullable(rec.Link), rec.Minutes, nutrition, rec.ID, rec.UserID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// The update may be a no-op on identical data; distinguish that from
		// absence while keeping the owner filter, so a non-owner update stays
		// indistinguishable from a missing recipe.
		var one int
		err := r.db.QueryRowContext(ctx,
			`SELECT 1 FROM recipes WHERE id = ? AND user_id = ?`, rec.ID, rec.UserID).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRecipeNotFound
		}
		return err
	}
	return nil
}

// Delete removes a recipe owned by userID.
func (r *RecipeRepository) Delete(ctx context.Context, id, userID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

// GetByID retrieves one recipe without its joins.
func (r *RecipeRepository) GetByID(ctx context.Context, id int64) (model.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes r WHERE r.id = ?`
	rec, err := scanRecipe(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Recipe{}, ErrRecipeNotFound
	}
	return rec, err
}

// ListByUser returns every recipe owned by userID, newest first.
func (r *RecipeRepository) ListByUser(ctx context.Context, userID int64) ([]model.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes r WHERE r.user_id = ? ORDER BY r.created_at DESC`
	return r.queryRecipes(ctx, query, userID)
}

// ListPage returns one page of all recipes, newest first, with the total.
func (r *RecipeRepository) ListPage(ctx context.Context, offset, limit int) (model.Page[model.Recipe], error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&total); err != nil {
		return model.Page[model.Recipe]{}, err
	}

	query := `SELECT ` + recipeColumns + ` FROM recipes r ORDER BY r.created_at DESC LIMIT ? OFFSET ?`
	records, err := r.queryRecipes(ctx, query, limit, offset)
	if err != nil {
		return model.Page[model.Recipe]{}, err
	}
	return model.Page[model.Recipe]{Total: total, Records: records}, nil
}

// SearchByTitle returns recipes whose title contains the keyword.
func (r *RecipeRepository) SearchByTitle(ctx context.Context, keyword string) (model.Page[model.Recipe], error) {
	pattern := "%" + keyword + "%"

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes WHERE title LIKE ?`, pattern).Scan(&total); err != nil {
		return model.Page[model.Recipe]{}, err
	}

	query := `SELECT ` + recipeColumns + ` FROM recipes r WHERE r.title LIKE ? ORDER BY r.created_at DESC LIMIT 100`
	records, err := r.queryRecipes(ctx, query, pattern)
	if err != nil {
		return model.Page[model.Recipe]{}, err
	}
	return model.Page[model.Recipe]{Total: total, Records: records}, nil
}

// ListPopular returns one page of recipes ranked by like count.
func (r *RecipeRepository) ListPopular(ctx context.Context, offset, limit int) (model.Page[model.Recipe], error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&total); err != nil {
		return model.Page[model.Recipe]{}, err
	}

	query := `SELECT ` + recipeColumns + `
		FROM recipes r
		LEFT JOIN likes l ON l.recipe_id = r.id
		GROUP BY r.id
		ORDER BY COUNT(l.user_id) DESC, r.created_at DESC
		LIMIT ? OFFSET ?`
	records, err := r.queryRecipes(ctx, query, limit, offset)
	if err != nil {
		return model.Page[model.Recipe]{}, err
	}
	return model.Page[model.Recipe]{Total: total, Records: records}, nil
}

// ListPopularByTag returns one page of recipes carrying the named tag,
// ranked by like count.
func (r *RecipeRepository) ListPopularByTag(ctx context.Context, tag string, offset, limit int) (model.Page[model.Recipe], error) {
	countQuery := `SELECT COUNT(DISTINCT r.id)
		FROM recipes r
		JOIN recipe_tags rt ON rt.recipe_id = r.id
		JOIN tags t ON t.id = rt.tag_id
		WHERE t.name = ?`
	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, tag).Scan(&total); err != nil {
		return model.Page[model.Recipe]{}, err
	}

	query := `SELECT ` + recipeColumns + `
		FROM recipes r
		JOIN recipe_tags rt ON rt.recipe_id = r.id
		JOIN tags t ON t.id = rt.tag_id
		LEFT JOIN likes l ON l.recipe_id = r.id
		WHERE t.name = ?
		GROUP BY r.id
		ORDER BY COUNT(DISTINCT l.user_id) DESC, r.created_at DESC
		LIMIT ? OFFSET ?`
	records, err := r.queryRecipes(ctx, query, tag, limit, offset)
	if err != nil {
		return model.Page[model.Recipe]{}, err
	}
	return model.Page[model.Recipe]{Total: total, Records: records}, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
