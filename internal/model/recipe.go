package model

import "time"

// Nutrition is the fixed-order nutrition vector: calories, total fat, sugar,
// sodium, protein, saturated fat, carbohydrates (all but calories in %DV).
type Nutrition [7]float64

// Recipe is a published recipe. Ingredients, directions and nutrition are
// stored as JSON columns; comments and tags are joined in on detail reads.
type Recipe struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Ingredients []string   `json:"ingredients"`
	Directions  []string   `json:"directions"`
	Link        string     `json:"link,omitempty"`
	Minutes     int        `json:"minutes"`
	UserID      int64      `json:"userId"`
	Nutrition   *Nutrition `json:"nutrition,omitempty"`
	CreateTime  time.Time  `json:"createTime"`
	UpdateTime  time.Time  `json:"updateTime"`
	Comments    []Comment  `json:"comments,omitempty"`
	Tags        []Tag      `json:"tags,omitempty"`

	// TagIDs is write-only: an edit body carrying it replaces the recipe's
	// tag set (nil leaves the set unchanged). Reads populate Tags instead.
	TagIDs []int64 `json:"tagIds,omitempty"`
}

// RecipeDraft is the client-supplied part of a recipe; id, owner and
// timestamps are server-assigned.
type RecipeDraft struct {
	Title       string     `json:"title"`
	Ingredients []string   `json:"ingredients"`
	Directions  []string   `json:"directions"`
	Link        string     `json:"link,omitempty"`
	Minutes     int        `json:"minutes"`
	Nutrition   *Nutrition `json:"nutrition,omitempty"`
	TagIDs      []int64    `json:"tagIds,omitempty"`
}

// Page is the {total, records} shape paged list endpoints return.
type Page[T any] struct {
	Total   int64 `json:"total"`
	Records []T   `json:"records"`
}

// Comment is a user comment on a recipe with an optional 0-5 rating.
type Comment struct {
	ID         int64     `json:"id"`
	RecipeID   int64     `json:"recipeId"`
	UserID     int64     `json:"userId"`
	Content    string    `json:"content"`
	Rating     int       `json:"rating,omitempty"`
	CreateTime time.Time `json:"createTime"`
}

// Tag is a global recipe tag, attachable to recipes through recipe_tags.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Like is one user/recipe like pair; existence of the row is the state.
// Favorites use the same pair shape in favorites rows.
type Like struct {
	UserID   int64 `json:"userId"`
	RecipeID int64 `json:"recipeId"`
}
