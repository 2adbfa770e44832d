package service

import (
	"context"
	"errors"
	"strings"

	"github.com/forkful/forkful-go/internal/model"
	"github.com/forkful/forkful-go/internal/repository"
)

var (
	ErrTagNameRequired = errors.New("tag name is required")
	ErrTagTaken        = errors.New("tag already exists")
	ErrTagNotFound     = errors.New("tag not found")
)

// TagService handles the global tag list.
type TagService struct {
	repo *repository.TagRepository
}

// NewTagService creates a new TagService.
func NewTagService(repo *repository.TagRepository) *TagService {
	return &TagService{repo: repo}
}

// All returns every tag.
func (s *TagService) All(ctx context.Context) ([]model.Tag, error) {
	return s.repo.ListAll(ctx)
}

// Add creates a tag and returns it with its assigned id.
func (s *TagService) Add(ctx context.Context, name string) (model.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Tag{}, ErrTagNameRequired
	}

	tag := model.Tag{Name: name}
	if err := s.repo.Create(ctx, &tag); err != nil {
		if errors.Is(err, repository.ErrDuplicateTag) {
			return model.Tag{}, ErrTagTaken
		}
		return model.Tag{}, err
	}
	return tag, nil
}

// Delete removes a tag by id.
func (s *TagService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTagNotFound) {
			return ErrTagNotFound
		}
		return err
	}
	return nil
}
