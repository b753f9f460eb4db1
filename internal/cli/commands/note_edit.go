package commands

import (
	"NoteKeeper/internal/config"
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/fatih/color"
)

type noteEditCmd struct{}

func (noteEditCmd) Name() string { return "note-edit" }
func (noteEditCmd) Description() string {
	return "Изменить заголовок и/или текст заметки"
}
func (noteEditCmd) Usage() string {
	return "note-edit [--title=<title>] [--body=<body>] <id>"
}

func (noteEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	// флаги разрешены только перед позиционным id
	fs := flag.NewFlagSet("note-edit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	title := fs.String("title", "", "новый заголовок")
	body := fs.String("body", "", "новый текст")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return ErrUsage
	}
	id, err := parseID(rest[0])
	if err != nil {
		return err
	}

	// пустое значение сервер трактует как «не менять», поэтому отправляем только заданные поля
	var titlePtr, bodyPtr *string
	if *title != "" {
		titlePtr = title
	}
	if *body != "" {
		bodyPtr = body
	}
	if titlePtr == nil && bodyPtr == nil {
		return ErrUsage
	}

	if err := newNoteService(cfg).Update(ctx, id, titlePtr, bodyPtr); err != nil {
		return err
	}
	fmt.Fprintln(Out, color.GreenString("✓ Заметка #%d обновлена", id))
	return nil
}

func init() { RegisterCmd(noteEditCmd{}) }
