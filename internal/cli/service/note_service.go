package service

import (
	"NoteKeeper/internal/cli/api"
	"NoteKeeper/internal/cli/model"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

var (
	// ErrNotFound — заметки нет на сервере.
	ErrNotFound = errors.New("note not found")
	// ErrUnauthorized — сервер требует токен (проверьте AUTH_SECRET).
	ErrUnauthorized = errors.New("unauthorized: check AUTH_SECRET")
)

// NoteService описывает юзкейс-уровень работы с заметками для CLI.
type NoteService interface {
	List(ctx context.Context) ([]model.NoteSummary, error)
	Get(ctx context.Context, id int64) (*model.Note, error)
	Create(ctx context.Context, title, body string) (int64, error)
	Update(ctx context.Context, id int64, title, body *string) error
	Delete(ctx context.Context, id int64) error
	Health(ctx context.Context) (string, error)
}

// NoteServiceHTTP — реализация NoteService поверх HTTP API.
type NoteServiceHTTP struct {
	client *api.Client
}

// NewNoteServiceHTTP конструктор сервиса заметок
func NewNoteServiceHTTP(c *api.Client) NoteService {
	return &NoteServiceHTTP{client: c}
}

func (s *NoteServiceHTTP) List(ctx context.Context) ([]model.NoteSummary, error) {
	var list []model.NoteSummary
	if err := s.client.DoJSON(ctx, http.MethodGet, "/notes", nil, &list); err != nil {
		return nil, mapErr(err)
	}
	return list, nil
}

func (s *NoteServiceHTTP) Get(ctx context.Context, id int64) (*model.Note, error) {
	var n model.Note
	if err := s.client.DoJSON(ctx, http.MethodGet, notePath(id), nil, &n); err != nil {
		return nil, mapErr(err)
	}
	return &n, nil
}

func (s *NoteServiceHTTP) Create(ctx context.Context, title, body string) (int64, error) {
	var res struct {
		ID int64 `json:"id"`
	}
	payload := map[string]string{"title": title, "content": body}
	if err := s.client.DoJSON(ctx, http.MethodPost, "/notes", payload, &res); err != nil {
		return 0, mapErr(err)
	}
	return res.ID, nil
}

func (s *NoteServiceHTTP) Update(ctx context.Context, id int64, title, body *string) error {
	payload := map[string]*string{}
	if title != nil {
		payload["title"] = title
	}
	if body != nil {
		payload["content"] = body
	}
	return mapErr(s.client.DoJSON(ctx, http.MethodPut, notePath(id), payload, nil))
}

func (s *NoteServiceHTTP) Delete(ctx context.Context, id int64) error {
	return mapErr(s.client.DoJSON(ctx, http.MethodDelete, notePath(id), nil, nil))
}

func notePath(id int64) string { return "/notes/" + strconv.FormatInt(id, 10) }

// mapErr переводит HTTP-статусы в ошибки сервиса.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var se *api.StatusError
	if !errors.As(err, &se) {
		return err
	}
	switch se.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusBadRequest:
		return fmt.Errorf("bad request: %s", se.Message)
	default:
		return err
	}
}

// Health запрашивает /healthz и возвращает статус сервера.
func (s *NoteServiceHTTP) Health(ctx context.Context) (string, error) {
	var res struct {
		Status string `json:"status"`
	}
	if err := s.client.DoJSON(ctx, http.MethodGet, "/healthz", nil, &res); err != nil {
		return "", err
	}
	return res.Status, nil
}
