package commands

import (
	"NoteKeeper/internal/config"
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

type notesCmd struct{}

func (notesCmd) Name() string { return "notes" }
func (notesCmd) Description() string {
	return "Показать все заметки (новые сверху)"
}
func (notesCmd) Usage() string { return "notes" }

func (notesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	list, err := newNoteService(cfg).List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет заметок")
		return nil
	}
	for _, n := range list {
		fmt.Fprintf(Out, "%s  %s  %s\n",
			color.CyanString("#%d", n.ID),
			n.Title,
			color.HiBlackString("(updated %s)", humanize.Time(n.UpdatedAt)),
		)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(notesCmd{}) }
