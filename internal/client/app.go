// Package client wires the diary client together: remote API, auth session,
// state store, and the TUI.
package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/harudiary/haru/internal/client/config"
	"github.com/harudiary/haru/internal/client/prefs"
	"github.com/harudiary/haru/internal/client/remote"
	"github.com/harudiary/haru/internal/client/services"
	"github.com/harudiary/haru/internal/client/state"
	"github.com/harudiary/haru/internal/client/ui"
	"github.com/harudiary/haru/internal/common"
	"github.com/harudiary/haru/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	remote remote.Client
	auth   *services.Auth
	store  *state.Store

	logFile *os.File
}

func NewApp(cfg *config.Config) (*App, error) {
	logger, logFile, err := buildLogger(cfg)
	if err != nil {
		return nil, err
	}

	rc := remote.NewHTTPClient(cfg.ServerAddr, logger)
	auth := services.NewAuth(rc, logger)
	store := state.NewStore(rc, logger)
	store.BindAuth(auth)

	return &App{
		config:  cfg,
		logger:  logger,
		remote:  rc,
		auth:    auth,
		store:   store,
		logFile: logFile,
	}, nil
}

// buildLogger logs to the configured debug file, or nowhere: the terminal
// belongs to the TUI.
func buildLogger(cfg *config.Config) (logging.Logger, *os.File, error) {
	var w io.Writer = io.Discard
	var f *os.File
	if cfg.DebugLogFile != "" {
		var err error
		f, err = os.OpenFile(cfg.DebugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening debug log: %w", err)
		}
		w = f
	}
	return logging.NewSlogLogger(slog.New(slog.NewJSONHandler(w, nil))), f, nil
}

// Run signs the user in and hands the terminal to the TUI. It blocks until
// the UI exits.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	if err := a.signIn(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "sign-in failed: %v\n", err)
		return
	}

	p := prefs.Load("")
	err := ui.Run(ui.Options{
		Context:      ctx,
		Store:        a.store,
		Remote:       a.remote,
		ThemeName:    p.Theme,
		FirstWeekday: p.FirstWeekday(),
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
}

func (a *App) close() {
	a.auth.Logout(context.Background())
	a.store.Close()
	_ = a.remote.Close()
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

// signIn prompts for credentials on the terminal, offering registration for
// first-time users.
func (a *App) signIn(ctx context.Context) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("login or register? [l/r]: ")
	choice, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	registering := strings.TrimSpace(strings.ToLower(choice)) == "r"

	fmt.Print("username: ")
	username, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	username = strings.TrimSpace(username)

	fmt.Print("password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return err
	}

	if registering {
		if err := a.auth.Register(ctx, username, string(password)); err != nil {
			if errors.Is(err, common.ErrDuplicate) {
				return fmt.Errorf("username %q is taken", username)
			}
			return err
		}
		fmt.Println("registered")
	}

	if err := a.auth.Login(ctx, username, string(password)); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return errors.New("wrong username or password")
		}
		return err
	}
	return nil
}
