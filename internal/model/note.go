package model

import "time"

// Note — серверная модель заметки. Текст хранится только в затемнённом виде (BodyCipher).
type Note struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Title string `gorm:"type:text;not null"`

	BodyCipher []byte `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName фиксирует имя таблицы независимо от настроек именования GORM.
func (Note) TableName() string { return "notes" }

// NoteSummary — элемент списка заметок, без текста.
type NoteSummary struct {
	ID        int64
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteDetail — заметка с расшифрованным текстом.
type NoteDetail struct {
	ID        int64
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
