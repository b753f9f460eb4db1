package main

import (
	"NoteKeeper/internal/cli/commands"
	"NoteKeeper/internal/config"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// общий конфиг (env + flags); для клиента важны BASE_URL, ENABLE_HTTPS и AUTH_SECRET
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion()
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	exitCode := commands.Dispatch(ctx, cfg, flag.Args())
	if exitCode == 0 {
		return
	}
	os.Exit(exitCode)
}

func printVersion() {
	fmt.Printf("NoteKeeper CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
}
