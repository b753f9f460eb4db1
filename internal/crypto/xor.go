// Package crypto — обратимое «затемнение» текста заметок потоковым XOR с повторяющимся ключом.
//
// Это НЕ криптографическая защита: шифр тривиально вскрывается по известному открытому тексту
// или частотным анализом. Пакет ничего не знает о заметках и хранилище.
package crypto

import (
	"errors"

	"golang.org/x/text/encoding/unicode"
)

var (
	// ErrInvalidKey — ключ нулевой длины.
	ErrInvalidKey = errors.New("invalid key: key must not be empty")
	// ErrWeakKey — ключ из одних нулевых байт не меняет данные.
	ErrWeakKey = errors.New("invalid key: key must not consist of zero bytes only")
)

// Transform накладывает ключ на data побайтно: out[i] = data[i] ^ key[i%len(key)].
// Длина результата равна длине data. Повторное применение с тем же ключом возвращает исходные байты.
func Transform(data, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrInvalidKey
	}
	out := make([]byte, len(data))
	klen := len(key)
	for i, b := range data {
		out[i] = b ^ key[i%klen]
	}
	return out, nil
}

// Encrypt кодирует plaintext в UTF-8 и применяет Transform.
func Encrypt(plaintext string, key []byte) ([]byte, error) {
	return Transform([]byte(plaintext), key)
}

// Decrypt применяет Transform и декодирует результат как UTF-8.
// Некорректные последовательности заменяются на U+FFFD, поэтому расшифровка чужим ключом
// молча возвращает мусор, а не ошибку.
func Decrypt(cipher, key []byte) (string, error) {
	plain, err := Transform(cipher, key)
	if err != nil {
		return "", err
	}
	// декодер x/text не возвращает ошибок на битых байтах, только подставляет замену
	decoded, err := unicode.UTF8.NewDecoder().Bytes(plain)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// Cipher хранит ключ, проверенный при создании. Безопасен для конкурентного использования:
// состояние после конструктора не меняется.
type Cipher struct {
	key []byte
}

// NewCipher проверяет ключ и возвращает Cipher с собственной копией ключа.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) == 0 {
		return nil, ErrInvalidKey
	}
	if allZero(key) {
		return nil, errors.Join(ErrInvalidKey, ErrWeakKey)
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &Cipher{key: k}, nil
}

// Encrypt шифрует строку ключом Cipher.
func (c *Cipher) Encrypt(plaintext string) ([]byte, error) {
	return Encrypt(plaintext, c.key)
}

// Decrypt расшифровывает байты ключом Cipher.
func (c *Cipher) Decrypt(cipher []byte) (string, error) {
	return Decrypt(cipher, c.key)
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
