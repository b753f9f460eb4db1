package repo

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation — не заполнено обязательное поле.
	ErrValidation = errors.New("validation error")
	// ErrNotFound — заметки с таким id нет.
	ErrNotFound = errors.New("note not found")
	// ErrStorage — общий признак ошибок слоя хранения, см. StorageError.
	ErrStorage = errors.New("storage error")
)

// StorageError оборачивает любую ошибку БД (соединение, ограничения, I/O).
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is позволяет проверять errors.Is(err, ErrStorage).
func (e *StorageError) Is(target error) bool { return target == ErrStorage }

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
