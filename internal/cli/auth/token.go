package auth

import (
	jwtauth "NoteKeeper/internal/auth"
	"time"
)

// Subject — subject токенов, выпускаемых CLI.
const Subject = "nkcli"

// tokenTTL — срок жизни токена одного вызова CLI.
const tokenTTL = 5 * time.Minute

// TokenSource возвращает функцию, выпускающую короткоживущий токен общим секретом.
// Пустой секрет — сервер работает без авторизации, токен не нужен.
func TokenSource(secret string) func() (string, error) {
	return func() (string, error) {
		if secret == "" {
			return "", nil
		}
		return jwtauth.IssueToken(secret, Subject, tokenTTL)
	}
}
