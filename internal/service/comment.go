package service

import (
	"context"
	"errors"
	"strings"

	"github.com/forkful/forkful-go/internal/model"
	"github.com/forkful/forkful-go/internal/repository"
)

var (
	ErrContentRequired  = errors.New("comment content is required")
	ErrRecipeIDRequired = errors.New("recipeId is required")
	ErrRatingOutOfRange = errors.New("rating must be between 0 and 5")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotCommentOwner  = errors.New("only the comment's author can delete it")
)

// CommentService handles recipe comment business logic.
type CommentService struct {
	repo *repository.CommentRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(repo *repository.CommentRepository) *CommentService {
	return &CommentService{repo: repo}
}

// Post adds a comment to a recipe on behalf of userID.
func (s *CommentService) Post(ctx context.Context, userID int64, c model.Comment) (model.Comment, error) {
	if c.RecipeID == 0 {
		return model.Comment{}, ErrRecipeIDRequired
	}
	if strings.TrimSpace(c.Content) == "" {
		return model.Comment{}, ErrContentRequired
	}
	if c.Rating < 0 || c.Rating > 5 {
		return model.Comment{}, ErrRatingOutOfRange
	}

	c.UserID = userID
	c.Content = strings.TrimSpace(c.Content)
	if err := s.repo.Create(ctx, &c); err != nil {
		return model.Comment{}, err
	}
	return s.repo.GetByID(ctx, c.ID)
}

// ForRecipe returns all comments on a recipe, oldest first.
func (s *CommentService) ForRecipe(ctx context.Context, recipeID int64) ([]model.Comment, error) {
	return s.repo.ListByRecipe(ctx, recipeID)
}

// Delete removes a comment. Only the comment's author may delete it; the
// check here is authoritative regardless of what the client gates in its UI.
func (s *CommentService) Delete(ctx context.Context, userID, commentID int64) error {
	existing, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if existing.UserID != userID {
		return ErrNotCommentOwner
	}
	return s.repo.Delete(ctx, commentID, userID)
}
