package service

import (
	"NoteKeeper/internal/model"
	"NoteKeeper/internal/repo"
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// TimeLayout — формат, в котором наружу отдаются временные метки.
const TimeLayout = time.RFC3339

// NoteService инкапсулирует бизнес-логику работы с заметками поверх NoteRepository.
type NoteService struct {
	repo   repo.NoteRepository
	logger *zap.SugaredLogger
}

func NewNoteService(r repo.NoteRepository, logger *zap.SugaredLogger) *NoteService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &NoteService{repo: r, logger: logger}
}

// NoteListItem — элемент списка для транспортного слоя.
type NoteListItem struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NoteView — полная заметка для транспортного слоя. Текст отдаётся под именем content.
type NoteView struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Create создаёт заметку и возвращает её id.
func (s *NoteService) Create(ctx context.Context, title, body string) (int64, error) {
	id, err := s.repo.Create(ctx, title, body)
	if err != nil {
		s.logFailure("Create", err)
		return 0, err
	}
	s.logger.Infow("note created", "id", id)
	return id, nil
}

// List возвращает метаданные заметок по убыванию id.
func (s *NoteService) List(ctx context.Context) ([]NoteListItem, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		s.logFailure("List", err)
		return nil, err
	}
	res := make([]NoteListItem, 0, len(notes))
	for _, n := range notes {
		res = append(res, NoteListItem{
			ID:        n.ID,
			Title:     n.Title,
			CreatedAt: formatTime(n.CreatedAt),
			UpdatedAt: formatTime(n.UpdatedAt),
		})
	}
	return res, nil
}

// Get возвращает заметку с расшифрованным текстом.
func (s *NoteService) Get(ctx context.Context, id int64) (*NoteView, error) {
	n, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logFailure("Get", err, "id", id)
		return nil, err
	}
	return toView(n), nil
}

// Update частично обновляет заметку.
func (s *NoteService) Update(ctx context.Context, id int64, title, body *string) error {
	if err := s.repo.Update(ctx, id, title, body); err != nil {
		s.logFailure("Update", err, "id", id)
		return err
	}
	return nil
}

// Delete удаляет заметку.
func (s *NoteService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logFailure("Delete", err, "id", id)
		return err
	}
	s.logger.Infow("note deleted", "id", id)
	return nil
}

// logFailure: ошибки валидации и «не найдено» — штатные, на уровень error не попадают.
func (s *NoteService) logFailure(op string, err error, kv ...any) {
	kv = append(kv, "op", op, "error", err)
	if errors.Is(err, repo.ErrValidation) || errors.Is(err, repo.ErrNotFound) {
		s.logger.Debugw("note request rejected", kv...)
		return
	}
	s.logger.Errorw("note operation failed", kv...)
}

func toView(n *model.NoteDetail) *NoteView {
	return &NoteView{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Body,
		CreatedAt: formatTime(n.CreatedAt),
		UpdatedAt: formatTime(n.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
