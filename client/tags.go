package client

import (
	"context"
	"fmt"
	"net/http"
)

// TagService is the global tags resource.
type TagService struct {
	c *Client
}

// All returns every tag.
func (s *TagService) All(ctx context.Context) ([]Tag, error) {
	return do[[]Tag](ctx, s.c, request{
		method: http.MethodGet,
		path:   "/tags/getAllMyTags",
	})
}

// Add creates a tag and returns it with its server-assigned id.
func (s *TagService) Add(ctx context.Context, name string) (Tag, error) {
	return do[Tag](ctx, s.c, request{
		method: http.MethodPost,
		path:   "/tags/addNewTag",
		body:   map[string]string{"name": name},
	})
}

// Delete removes a tag by id.
func (s *TagService) Delete(ctx context.Context, id int64) error {
	return doNoData(ctx, s.c, request{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/tags/%d", id),
	})
}
