package commands

import (
	"NoteKeeper/internal/config"
	"context"
	"fmt"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Проверить доступность сервера и БД" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	st, err := newNoteService(cfg).Health(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Server: %s\nStatus: %s\n", cfg.ServerURL, st)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
