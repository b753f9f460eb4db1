package service

import (
	"NoteKeeper/internal/cli/api"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, h http.HandlerFunc) NoteService {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return NewNoteServiceHTTP(api.NewClient(ts.URL, nil))
}

func TestNoteServiceHTTP_ListAndGet(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/notes":
			_, _ = w.Write([]byte(`[{"id":2,"title":"b","created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-02T00:00:00Z"}]`))
		case "/notes/2":
			_, _ = w.Write([]byte(`{"id":2,"title":"b","content":"secret","created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-02T00:00:00Z"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	list, err := svc.List(ctx)
	require.NoError(t, err)
	if assert.Len(t, list, 1) {
		assert.Equal(t, int64(2), list[0].ID)
		assert.Equal(t, 2, list[0].UpdatedAt.Day())
	}

	n, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "secret", n.Body)

	_, err = svc.Get(ctx, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNoteServiceHTTP_UpdateSendsOnlyGivenFields(t *testing.T) {
	var got map[string]any
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	title := "new"
	require.NoError(t, svc.Update(context.Background(), 1, &title, nil))
	assert.Equal(t, map[string]any{"title": "new"}, got)
}

func TestNoteServiceHTTP_CreateAndErrors(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var req map[string]string
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req["title"] == "" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"title is required"}`))
				return
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":11}`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
	ctx := context.Background()

	id, err := svc.Create(ctx, "T", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)

	_, err = svc.Create(ctx, "", "B")
	assert.ErrorContains(t, err, "title is required")

	assert.ErrorIs(t, svc.Delete(ctx, 1), ErrUnauthorized)

	_, err = svc.List(ctx)
	var se *api.StatusError
	assert.True(t, errors.As(err, &se))
}

func TestNoteServiceHTTP_Health(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/healthz" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	st, err := svc.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", st)
}
