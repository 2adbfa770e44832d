package service

import (
	"context"

	"github.com/forkful/forkful-go/internal/model"
	"github.com/forkful/forkful-go/internal/repository"
)

// SocialService handles favorites and likes. Both are idempotent pair
// relations: adding twice or removing what is absent succeeds quietly, which
// is what lets clients fire toggles without reconciling first.
type SocialService struct {
	repo *repository.SocialRepository
}

// NewSocialService creates a new SocialService.
func NewSocialService(repo *repository.SocialRepository) *SocialService {
	return &SocialService{repo: repo}
}

// AddFavorite bookmarks a recipe for the user.
func (s *SocialService) AddFavorite(ctx context.Context, userID, recipeID int64) error {
	if recipeID == 0 {
		return ErrRecipeIDRequired
	}
	return s.repo.AddFavorite(ctx, userID, recipeID)
}

// RemoveFavorite removes a bookmark; absent bookmarks are a silent success.
func (s *SocialService) RemoveFavorite(ctx context.Context, userID, recipeID int64) error {
	return s.repo.RemoveFavorite(ctx, userID, recipeID)
}

// Favorites returns the user's favorited recipes.
func (s *SocialService) Favorites(ctx context.Context, userID int64) ([]model.Recipe, error) {
	return s.repo.ListFavoriteRecipes(ctx, userID)
}

// Like records a like for the user on a recipe.
func (s *SocialService) Like(ctx context.Context, userID, recipeID int64) error {
	if recipeID == 0 {
		return ErrRecipeIDRequired
	}
	return s.repo.AddLike(ctx, userID, recipeID)
}

// Unlike removes a like; absent likes are a silent success.
func (s *SocialService) Unlike(ctx context.Context, userID, recipeID int64) error {
	return s.repo.RemoveLike(ctx, userID, recipeID)
}

// LikeCount returns the authoritative like count for a recipe.
func (s *SocialService) LikeCount(ctx context.Context, recipeID int64) (int64, error) {
	return s.repo.CountLikes(ctx, recipeID)
}

// Liked returns the recipes the user has liked.
func (s *SocialService) Liked(ctx context.Context, userID int64) ([]model.Recipe, error) {
	return s.repo.ListLikedRecipes(ctx, userID)
}
