package client

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

// The tag flow mirrors the profile page: list, add without refetching, delete
// exactly one entry.
func TestTagFlow(t *testing.T) {
	var deleted []string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/tags/getAllMyTags":
			writeEnvelope(w, 1, "", []Tag{{ID: 1, Name: "Breakfast"}, {ID: 2, Name: "Easy"}})
		case r.Method == http.MethodPost && r.URL.Path == "/tags/addNewTag":
			writeEnvelope(w, 1, "", Tag{ID: 3, Name: "Lunch"})
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/tags/"):
			deleted = append(deleted, strings.TrimPrefix(r.URL.Path, "/tags/"))
			writeEnvelope(w, 1, "", nil)
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	tags, err := c.Tags.All(ctx)
	if err != nil {
		t.Fatalf("listing tags: %v", err)
	}
	if len(tags) != 2 || tags[0].Name != "Breakfast" || tags[1].Name != "Easy" {
		t.Fatalf("expected [Breakfast Easy], got %+v", tags)
	}

	// The view appends the returned tag instead of reloading the list.
	added, err := c.Tags.Add(ctx, "Lunch")
	if err != nil {
		t.Fatalf("adding tag: %v", err)
	}
	tags = append(tags, added)
	if len(tags) != 3 || tags[2].Name != "Lunch" || tags[2].ID != 3 {
		t.Errorf("expected Lunch with id 3 appended, got %+v", tags)
	}

	if err := c.Tags.Delete(ctx, 1); err != nil {
		t.Fatalf("deleting tag: %v", err)
	}
	if len(deleted) != 1 || deleted[0] != "1" {
		t.Errorf("expected exactly one delete for id 1, got %v", deleted)
	}

	remaining := tags[:0]
	for _, tag := range tags {
		if tag.ID != 1 {
			remaining = append(remaining, tag)
		}
	}
	if len(remaining) != 2 || remaining[0].Name != "Easy" || remaining[1].Name != "Lunch" {
		t.Errorf("expected [Easy Lunch] after delete, got %+v", remaining)
	}
}
