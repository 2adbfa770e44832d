package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestAllPassesExactPaginationParams(t *testing.T) {
	var page, pageSize string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		page = r.URL.Query().Get("page")
		pageSize = r.URL.Query().Get("pageSize")
		writeEnvelope(w, 1, "", Page[Recipe]{Total: 23, Records: []Recipe{}})
	})

	result, err := c.Recipes.All(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != "2" || pageSize != "10" {
		t.Errorf("expected page=2 pageSize=10, got page=%s pageSize=%s", page, pageSize)
	}
	if got := result.Pages(10); got != 3 {
		t.Errorf("expected ceil(23/10)=3 pages, got %d", got)
	}
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 10, 0},
		{10, 10, 1},
		{11, 10, 2},
		{23, 10, 3},
		{5, 0, 0},
	}
	for _, tc := range cases {
		p := Page[Recipe]{Total: tc.total}
		if got := p.Pages(tc.pageSize); got != tc.want {
			t.Errorf("Pages(%d) with total %d: expected %d, got %d", tc.pageSize, tc.total, tc.want, got)
		}
	}
}

func TestPublishSendsDraftWithoutServerFields(t *testing.T) {
	var body map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		writeEnvelope(w, 1, "", Recipe{ID: 9, Title: "Toast", UserID: 3})
	})

	recipe, err := c.Recipes.Publish(context.Background(), RecipeDraft{
		Title:       "Toast",
		Ingredients: []string{"bread"},
		Directions:  []string{"toast it"},
		Minutes:     5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, field := range []string{"id", "userId", "createTime", "updateTime"} {
		if _, ok := body[field]; ok {
			t.Errorf("draft must not carry server-assigned field %q", field)
		}
	}
	if recipe.ID != 9 || recipe.UserID != 3 {
		t.Errorf("expected server-assigned id and owner back, got %+v", recipe)
	}
}

func TestPublishSendsTagIDs(t *testing.T) {
	var body map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		writeEnvelope(w, 1, "", Recipe{ID: 9, Title: "Toast", Tags: []Tag{{ID: 2, Name: "Breakfast"}}})
	})

	recipe, err := c.Recipes.Publish(context.Background(), RecipeDraft{
		Title:       "Toast",
		Ingredients: []string{"bread"},
		Directions:  []string{"toast it"},
		TagIDs:      []int64{2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ids, ok := body["tagIds"].([]any)
	if !ok || len(ids) != 1 || ids[0] != float64(2) {
		t.Errorf("expected tagIds=[2] in publish body, got %v", body["tagIds"])
	}
	if len(recipe.Tags) != 1 || recipe.Tags[0].Name != "Breakfast" {
		t.Errorf("expected resolved tags on the stored record, got %+v", recipe.Tags)
	}
}

func TestDeletePassesRecipeID(t *testing.T) {
	var got string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("recipeId")
		writeEnvelope(w, 1, "", nil)
	})

	if err := c.Recipes.Delete(context.Background(), 14); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "14" {
		t.Errorf("expected recipeId=14, got %q", got)
	}
}

func TestSearchPassesKeyword(t *testing.T) {
	var keyword, path string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		keyword = r.URL.Query().Get("keyword")
		writeEnvelope(w, 1, "", Page[Recipe]{Total: 1, Records: []Recipe{{ID: 1, Title: "Pho"}}})
	})

	result, err := c.Recipes.Search(context.Background(), "pho")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/recipes/search" || keyword != "pho" {
		t.Errorf("expected /recipes/search?keyword=pho, got %s?keyword=%s", path, keyword)
	}
	if len(result.Records) != 1 || result.Records[0].Title != "Pho" {
		t.Errorf("expected one Pho record, got %+v", result.Records)
	}
}
