package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/quillhq/quill/internal/blogapi"
	"github.com/quillhq/quill/internal/config"
	"github.com/quillhq/quill/internal/profile"
	"github.com/quillhq/quill/internal/session"
	"github.com/quillhq/quill/internal/ui"
)

// ErrNotLoggedIn reports that the session file carries no auth token. The
// entrypoint turns this into login guidance instead of launching the editor.
var ErrNotLoggedIn = errors.New("not logged in")

// Options configure the Quill application.
type Options struct {
	ConfigPath  string // empty uses default ~/.config/quill/config.toml
	SessionPath string // empty uses default ~/.config/quill/session.toml
}

// Run boots the account editor until the context is cancelled or the user
// leaves the page.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sessions, err := session.NewFileStore(opts.SessionPath)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}

	engine := profile.NewEngine(sessions)
	ok, err := engine.Mount()
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}
	if !ok {
		return ErrNotLoggedIn
	}

	client, err := blogapi.NewClient(cfg.APIBase, engine.Token())
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	return ui.Run(ui.Options{
		Context: ctx,
		Service: client,
		Engine:  engine,
	})
}
