package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/quillhq/quill/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override quill config path (optional)")
	sessionPath := flag.String("session", "", "override session file path (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, SessionPath: *sessionPath}

	if err := app.Run(ctx, opts); err != nil {
		if errors.Is(err, app.ErrNotLoggedIn) {
			fmt.Fprintln(os.Stderr, "quill: you need to log in to view account information")
			fmt.Fprintln(os.Stderr, "quill: log in from the blog web app, then copy the session into ~/.config/quill/session.toml")
			return 1
		}
		fmt.Fprintf(os.Stderr, "quill: %v\n", err)
		return 1
	}
	return 0
}
