package commands

import (
	"NoteKeeper/internal/cli/api"
	"NoteKeeper/internal/cli/auth"
	"NoteKeeper/internal/cli/service"
	"NoteKeeper/internal/config"
	"strconv"
)

// newNoteService собирает клиента API из конфигурации CLI.
// Подменяется в тестах.
var newNoteService = func(cfg *config.Config) service.NoteService {
	return service.NewNoteServiceHTTP(api.NewClient(cfg.ServerURL, auth.TokenSource(cfg.AuthSecret)))
}

// parseID разбирает положительный идентификатор заметки.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrUsage
	}
	return id, nil
}
