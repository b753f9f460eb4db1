package commands

import (
	"NoteKeeper/internal/config"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// stdinIsTerminal сообщает, подключён ли stdin к терминалу. Подменяется в тестах.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

type noteAddCmd struct{}

func (noteAddCmd) Name() string { return "note-add" }
func (noteAddCmd) Description() string {
	return "Создать заметку; без <body> текст читается из stdin"
}
func (noteAddCmd) Usage() string { return "note-add <title> [body]" }

func (noteAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	title := args[0]
	if strings.TrimSpace(title) == "" {
		return ErrUsage
	}

	var body string
	if len(args) == 2 {
		body = args[1]
	} else if !stdinIsTerminal() {
		b, err := io.ReadAll(In)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		body = strings.TrimRight(string(b), "\r\n")
	}

	id, err := newNoteService(cfg).Create(ctx, title, body)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, color.GreenString("✓ Создана заметка #%d", id))
	return nil
}

func init() { RegisterCmd(noteAddCmd{}) }
