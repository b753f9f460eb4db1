package repo

import (
	"NoteKeeper/internal/model"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// BodyCipher затемняет и восстанавливает текст заметки. Реализуется crypto.Cipher.
type BodyCipher interface {
	Encrypt(plaintext string) ([]byte, error)
	Decrypt(cipher []byte) (string, error)
}

// NoteRepository — контракт хранения заметок. Текст шифруется на каждой записи
// и расшифровывается на каждом чтении.
type NoteRepository interface {
	// Create сохраняет новую заметку и возвращает присвоенный id.
	Create(ctx context.Context, title, body string) (int64, error)
	// List возвращает метаданные всех заметок по убыванию id, без текста.
	List(ctx context.Context) ([]model.NoteSummary, error)
	// Get возвращает заметку с расшифрованным текстом.
	Get(ctx context.Context, id int64) (*model.NoteDetail, error)
	// Update частично обновляет заметку: nil или пустая строка означают «не менять».
	Update(ctx context.Context, id int64, title, body *string) error
	// Delete безвозвратно удаляет заметку.
	Delete(ctx context.Context, id int64) error
}

type noteRepo struct {
	db     *gorm.DB
	cipher BodyCipher
	now    func() time.Time
}

// NewNoteRepository создаёт репозиторий заметок поверх GORM.
func NewNoteRepository(db *gorm.DB, cipher BodyCipher) NoteRepository {
	return &noteRepo{db: db, cipher: cipher, now: func() time.Time { return time.Now().UTC() }}
}

func (r *noteRepo) Create(ctx context.Context, title, body string) (int64, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, fmt.Errorf("%w: title is required", ErrValidation)
	}
	bodyCipher, err := r.cipher.Encrypt(body)
	if err != nil {
		return 0, err
	}
	now := r.now()
	n := &model.Note{
		Title:      title,
		BodyCipher: bodyCipher,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return 0, storageErr("create note", err)
	}
	return n.ID, nil
}

func (r *noteRepo) List(ctx context.Context) ([]model.NoteSummary, error) {
	var res []model.NoteSummary
	err := r.db.WithContext(ctx).
		Model(&model.Note{}).
		Select("id", "title", "created_at", "updated_at").
		Order("id DESC").
		Scan(&res).Error
	if err != nil {
		return nil, storageErr("list notes", err)
	}
	if res == nil {
		res = []model.NoteSummary{}
	}
	return res, nil
}

func (r *noteRepo) Get(ctx context.Context, id int64) (*model.NoteDetail, error) {
	n, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}
	body, err := r.cipher.Decrypt(n.BodyCipher)
	if err != nil {
		return nil, err
	}
	return &model.NoteDetail{
		ID:        n.ID,
		Title:     n.Title,
		Body:      body,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}, nil
}

func (r *noteRepo) Update(ctx context.Context, id int64, title, body *string) error {
	// Проверка существования и запись — два отдельных запроса без блокировок:
	// при гонке побеждает последний писатель.
	n, err := r.find(ctx, id)
	if err != nil {
		return err
	}

	updates := map[string]any{}
	if title != nil && *title != "" && *title != n.Title {
		updates["title"] = *title
	}
	if body != nil && *body != "" {
		bodyCipher, err := r.cipher.Encrypt(*body)
		if err != nil {
			return err
		}
		if !bytes.Equal(bodyCipher, n.BodyCipher) {
			updates["body_cipher"] = bodyCipher
		}
	}
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = r.now()

	tx := r.db.WithContext(ctx).Model(&model.Note{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return storageErr("update note", tx.Error)
	}
	if tx.RowsAffected == 0 {
		// заметку удалили между проверкой и записью
		return ErrNotFound
	}
	return nil
}

func (r *noteRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&model.Note{}, id)
	if tx.Error != nil {
		return storageErr("delete note", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *noteRepo) find(ctx context.Context, id int64) (*model.Note, error) {
	var n model.Note
	err := r.db.WithContext(ctx).First(&n, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr("get note", err)
	}
	return &n, nil
}
