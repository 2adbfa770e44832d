package service

import (
	"context"
	"testing"

	"github.com/forkful/forkful-go/internal/model"
	"github.com/forkful/forkful-go/internal/repository"
)

func newTestCommentService() *CommentService {
	return NewCommentService(repository.NewCommentRepository(nil))
}

func TestPostComment_MissingRecipeID(t *testing.T) {
	svc := newTestCommentService()

	_, err := svc.Post(context.Background(), 1, model.Comment{Content: "tasty"})

	if err != ErrRecipeIDRequired {
		t.Errorf("expected ErrRecipeIDRequired, got %v", err)
	}
}

func TestPostComment_EmptyContent(t *testing.T) {
	svc := newTestCommentService()

	_, err := svc.Post(context.Background(), 1, model.Comment{RecipeID: 2, Content: "   "})

	if err != ErrContentRequired {
		t.Errorf("expected ErrContentRequired, got %v", err)
	}
}

func TestPostComment_RatingOutOfRange(t *testing.T) {
	svc := newTestCommentService()

	for _, rating := range []int{-1, 6} {
		_, err := svc.Post(context.Background(), 1, model.Comment{
			RecipeID: 2,
			Content:  "tasty",
			Rating:   rating,
		})
		if err != ErrRatingOutOfRange {
			t.Errorf("rating %d: expected ErrRatingOutOfRange, got %v", rating, err)
		}
	}
}
