package commands

import (
	"NoteKeeper/internal/config"
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

type noteGetCmd struct{}

func (noteGetCmd) Name() string { return "note-get" }
func (noteGetCmd) Description() string {
	return "Показать заметку с текстом"
}
func (noteGetCmd) Usage() string { return "note-get <id>" }

func (noteGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	n, err := newNoteService(cfg).Get(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "id:       %d\n", n.ID)
	fmt.Fprintf(Out, "title:    %s\n", n.Title)
	fmt.Fprintf(Out, "created:  %s (%s)\n", n.CreatedAt.Format(time.RFC3339), humanize.Time(n.CreatedAt))
	fmt.Fprintf(Out, "updated:  %s (%s)\n", n.UpdatedAt.Format(time.RFC3339), humanize.Time(n.UpdatedAt))
	fmt.Fprintln(Out, "")
	fmt.Fprintln(Out, n.Body)
	return nil
}

func init() { RegisterCmd(noteGetCmd{}) }
