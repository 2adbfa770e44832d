package service

import (
	"context"
	"errors"
	"strings"

	"github.com/forkful/forkful-go/internal/model"
	"github.com/forkful/forkful-go/internal/repository"
)

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrIngredientsRequired = errors.New("at least one ingredient is required")
	ErrDirectionsRequired  = errors.New("at least one direction step is required")
	ErrRecipeNotFound      = errors.New("recipe not found")
)

// Defaults applied when a paged endpoint is called without parameters.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// RecipeService handles recipe business logic.
type RecipeService struct {
	recipes  *repository.RecipeRepository
	comments *repository.CommentRepository
	tags     *repository.TagRepository
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(recipes *repository.RecipeRepository, comments *repository.CommentRepository, tags *repository.TagRepository) *RecipeService {
	return &RecipeService{recipes: recipes, comments: comments, tags: tags}
}

func validateDraft(d model.RecipeDraft) error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrTitleRequired
	}
	if len(d.Ingredients) == 0 {
		return ErrIngredientsRequired
	}
	if len(d.Directions) == 0 {
		return ErrDirectionsRequired
	}
	return nil
}

// clampPage turns 1-based page parameters into a sane offset/limit pair.
func clampPage(page, pageSize int) (offset, limit int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize, pageSize
}

// Publish creates a recipe owned by userID from a draft.
func (s *RecipeService) Publish(ctx context.Context, userID int64, draft model.RecipeDraft) (model.Recipe, error) {
	if err := validateDraft(draft); err != nil {
		return model.Recipe{}, err
	}

	rec := model.Recipe{
		Title:       strings.TrimSpace(draft.Title),
		Ingredients: draft.Ingredients,
		Directions:  draft.Directions,
		Link:        draft.Link,
		Minutes:     draft.Minutes,
		UserID:      userID,
		Nutrition:   draft.Nutrition,
	}
	if err := s.recipes.Create(ctx, &rec); err != nil {
		return model.Recipe{}, err
	}
	if len(draft.TagIDs) > 0 {
		if err := s.tags.SetForRecipe(ctx, rec.ID, draft.TagIDs); err != nil {
			return model.Recipe{}, err
		}
	}
	return s.Get(ctx, rec.ID)
}

// Edit replaces a recipe the user owns.
func (s *RecipeService) Edit(ctx context.Context, userID int64, rec model.Recipe) (model.Recipe, error) {
	if err := validateDraft(model.RecipeDraft{
		Title:       rec.Title,
		Ingredients: rec.Ingredients,
		Directions:  rec.Directions,
	}); err != nil {
		return model.Recipe{}, err
	}

	rec.UserID = userID
	if err := s.recipes.Update(ctx, &rec); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return model.Recipe{}, ErrRecipeNotFound
		}
		return model.Recipe{}, err
	}
	// A nil TagIDs leaves the tag set alone; anything else replaces it.
	if rec.TagIDs != nil {
		if err := s.tags.SetForRecipe(ctx, rec.ID, rec.TagIDs); err != nil {
			return model.Recipe{}, err
		}
	}
	return s.Get(ctx, rec.ID)
}

// Delete removes a recipe the user owns. A recipe owned by someone else is
// reported as not found.
func (s *RecipeService) Delete(ctx context.Context, userID, recipeID int64) error {
	if err := s.recipes.Delete(ctx, recipeID, userID); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}
	return nil
}

// Get returns one recipe with its comments and tags joined in.
func (s *RecipeService) Get(ctx context.Context, id int64) (model.Recipe, error) {
	rec, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return model.Recipe{}, ErrRecipeNotFound
		}
		return model.Recipe{}, err
	}

	if rec.Comments, err = s.comments.ListByRecipe(ctx, id); err != nil {
		return model.Recipe{}, err
	}
	if rec.Tags, err = s.tags.ListByRecipe(ctx, id); err != nil {
		return model.Recipe{}, err
	}
	return rec, nil
}

// Mine returns every recipe the user owns.
func (s *RecipeService) Mine(ctx context.Context, userID int64) ([]model.Recipe, error) {
	return s.recipes.ListByUser(ctx, userID)
}

// All returns one page of all recipes, newest first.
func (s *RecipeService) All(ctx context.Context, page, pageSize int) (model.Page[model.Recipe], error) {
	offset, limit := clampPage(page, pageSize)
	return s.recipes.ListPage(ctx, offset, limit)
}

// Search returns recipes whose title matches the keyword.
func (s *RecipeService) Search(ctx context.Context, keyword string) (model.Page[model.Recipe], error) {
	return s.recipes.SearchByTitle(ctx, strings.TrimSpace(keyword))
}

// Popular returns the first page of recipes ranked by like count.
func (s *RecipeService) Popular(ctx context.Context) (model.Page[model.Recipe], error) {
	return s.recipes.ListPopular(ctx, 0, DefaultPageSize)
}

// PopularByTag returns one page of recipes carrying the tag, ranked by likes.
func (s *RecipeService) PopularByTag(ctx context.Context, tag string, page, pageSize int) (model.Page[model.Recipe], error) {
	offset, limit := clampPage(page, pageSize)
	return s.recipes.ListPopularByTag(ctx, tag, offset, limit)
}
