package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient points a Client with a fresh in-memory session at a test
// server running the given handler.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *MemorySession) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	sess := &MemorySession{}
	return New(srv.URL, WithSession(sess)), sess
}

func writeEnvelope(w http.ResponseWriter, code int, msg string, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"code": code, "msg": msg, "data": data})
}

func TestTokenAttachedWhenLoggedIn(t *testing.T) {
	var got string
	c, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(TokenHeader)
		writeEnvelope(w, 1, "", []Tag{})
	})
	sess.Login("tok-123")

	if _, err := c.Tags.All(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "tok-123" {
		t.Errorf("expected User-Token header %q, got %q", "tok-123", got)
	}
}

func TestNoTokenWhenLoggedOut(t *testing.T) {
	var present bool
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header[http.CanonicalHeaderKey(TokenHeader)]
		writeEnvelope(w, 1, "", []Tag{})
	})

	if _, err := c.Tags.All(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if present {
		t.Error("expected no User-Token header on unauthenticated request")
	}
}

func TestEnvelopeUnwrapped(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 1, "", Tag{ID: 7, Name: "Dinner"})
	})

	tag, err := c.Tags.Add(context.Background(), "Dinner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag.ID != 7 || tag.Name != "Dinner" {
		t.Errorf("expected stripped data {7 Dinner}, got %+v", tag)
	}
}

func TestBusinessFailureIsError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 0, "username already taken", nil)
	})

	err := c.Auth.Register(context.Background(), "sam", "sam@example.com", "pw")
	if err == nil {
		t.Fatal("expected error for code != 1")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *client.Error, got %T: %v", err, err)
	}
	if apiErr.Msg != "username already taken" {
		t.Errorf("expected server message, got %q", apiErr.Msg)
	}
}

func TestMessageFieldAccepted(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"code": 0, "message": "bad credentials"})
	})

	_, err := c.Auth.Login(context.Background(), "sam", "wrong", "user")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *client.Error, got %v", err)
	}
	if apiErr.Msg != "bad credentials" {
		t.Errorf("expected message field to be read, got %q", apiErr.Msg)
	}
}

func TestTransportFailurePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := New(srv.URL, WithSession(&MemorySession{}))
	srv.Close() // every request now fails to connect

	_, err := c.Tags.All(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		t.Errorf("transport failure must not be a business *Error, got %v", apiErr)
	}
}

func TestNonEnvelopeStatusIsError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := c.Recipes.Popular(context.Background())
	if err == nil {
		t.Fatal("expected error for non-envelope 502")
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		t.Errorf("expected transport error, got business error %v", apiErr)
	}
}

func TestEnvelopedStatusKeepsServerMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"code": 0, "msg": "invalid or expired token"})
	})

	_, err := c.Users.Profile(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *client.Error for enveloped 401, got %v", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("expected status 401 recorded, got %d", apiErr.Status)
	}
}
