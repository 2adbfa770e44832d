package client

import (
	"math"
	"time"
)

// Page is the {total, records} shape paged list endpoints return. Flat list
// endpoints return bare arrays instead; which shape an endpoint uses is part
// of its contract, never sniffed at runtime.
type Page[T any] struct {
	Total   int64 `json:"total"`
	Records []T   `json:"records"`
}

// Pages is the number of pages needed to show Total records pageSize at a time.
func (p Page[T]) Pages(pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(p.Total) / float64(pageSize)))
}

// Nutrition is the per-recipe nutrition vector, in the backend's fixed order:
// calories, then total fat, sugar, sodium, protein, saturated fat and
// carbohydrates as percent of daily value.
type Nutrition [7]float64

func (n Nutrition) Calories() float64 { return n[0] }
func (n Nutrition) Protein() float64  { return n[4] }

// Recipe is a published recipe as the backend returns it.
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

	// TagIDs is write-only: set it on Edit to replace the recipe's tag set
	// (nil leaves the set unchanged). Reads populate Tags instead.
	TagIDs []int64 `json:"tagIds,omitempty"`
}

// RecipeDraft is the client-supplied part of a recipe. ID, owner and
// timestamps are assigned by the server on publish. TagIDs attaches existing
// tags to the new recipe; the stored record comes back with Tags resolved.
type RecipeDraft struct {
	Title       string     `json:"title"`
	Ingredients []string   `json:"ingredients"`
	Directions  []string   `json:"directions"`
	Link        string     `json:"link,omitempty"`
	Minutes     int        `json:"minutes"`
	Nutrition   *Nutrition `json:"nutrition,omitempty"`
	TagIDs      []int64    `json:"tagIds,omitempty"`
}

// Comment is a user comment on a recipe, with an optional 0-5 rating.
type Comment struct {
	ID         int64     `json:"id,omitempty"`
	RecipeID   int64     `json:"recipeId"`
	UserID     int64     `json:"userId"`
	Content    string    `json:"content"`
	Rating     int       `json:"rating,omitempty"`
	CreateTime time.Time `json:"createTime,omitzero"`
}

// Tag is a global recipe tag.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Like is the user/recipe pair recording one like. Its existence is the state.
type Like struct {
	UserID   int64 `json:"userId"`
	RecipeID int64 `json:"recipeId"`
}

// Item is one inventory or shopping-list entry. The two resources share a
// shape but are distinct lists with their own endpoints; nothing keeps them
// in sync. Quantity travels as free text and is normalized numeric by the
// service methods that accept it.
type Item struct {
	ID        int64     `json:"id,omitempty"`
	ItemName  string    `json:"itemName"`
	Quantity  string    `json:"quantity"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// UserProfile is the full user record; updates replace it wholesale.
type UserProfile struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Password   string    `json:"password,omitempty"`
	Email      string    `json:"email"`
	Avatar     string    `json:"avatar,omitempty"`
	CreateTime time.Time `json:"createTime,omitzero"`
}

// Credentials is what a successful login returns.
type Credentials struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
}
