package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDoJSON_SendsTokenAndParsesBody(t *testing.T) {
	// test server проверяет заголовки и JSON
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("Authorization header: %q", got)
		}
		if r.Method != http.MethodPost || r.URL.Path != "/notes" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var m map[string]any
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			t.Errorf("bad json: %v", err)
		}
		if m["title"] != "T" {
			t.Errorf("unexpected payload: %#v", m)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL+"/", func() (string, error) { return "tok123", nil })
	var out struct {
		ID int64 `json:"id"`
	}
	if err := c.DoJSON(context.Background(), http.MethodPost, "/notes", map[string]string{"title": "T"}, &out); err != nil {
		t.Fatalf("DoJSON err: %v", err)
	}
	if out.ID != 7 {
		t.Fatalf("id: %d", out.ID)
	}
}

func TestDoJSON_StatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("no token expected")
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
	}))
	defer ts.Close()

	err := NewClient(ts.URL, nil).DoJSON(context.Background(), http.MethodGet, "/notes/1", nil, nil)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.StatusCode != http.StatusNotFound || se.Message != "not found" {
		t.Fatalf("unexpected status error: %+v", se)
	}
}

func TestDoJSON_JSONMarshalError(t *testing.T) {
	// chan в payload вызовет ошибку json.Marshal
	err := NewClient("http://example.invalid", nil).DoJSON(context.Background(), http.MethodPost, "/", map[string]any{"c": make(chan int)}, nil)
	if err == nil {
		t.Fatalf("expected marshal error")
	}
}

func TestDoJSON_TokenError(t *testing.T) {
	c := NewClient("http://example.invalid", func() (string, error) { return "", errors.New("boom") })
	if err := c.DoJSON(context.Background(), http.MethodGet, "/notes", nil, nil); err == nil {
		t.Fatalf("expected token error")
	}
}
