package commands

import (
	"NoteKeeper/internal/config"
	"context"
	"fmt"

	"github.com/fatih/color"
)

type noteDeleteCmd struct{}

func (noteDeleteCmd) Name() string        { return "note-delete" }
func (noteDeleteCmd) Description() string { return "Удалить заметку безвозвратно" }
func (noteDeleteCmd) Usage() string       { return "note-delete <id>" }

func (noteDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := newNoteService(cfg).Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(Out, color.YellowString("✓ Заметка #%d удалена", id))
	return nil
}

func init() { RegisterCmd(noteDeleteCmd{}) }
