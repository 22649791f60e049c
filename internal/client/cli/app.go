// Package cli implements the interactive terminal client: a REPL whose
// command set depends on whether a session is active, with view commands
// for the explore grid, albums, profiles, chat, notifications and the
// admin panel.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/expotacna/internal/client/api"
	"github.com/dmitrijs2005/expotacna/internal/client/config"
	"github.com/dmitrijs2005/expotacna/internal/client/realtime"
	"github.com/dmitrijs2005/expotacna/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/expotacna/internal/client/services"
	"github.com/dmitrijs2005/expotacna/internal/client/session"
	"github.com/dmitrijs2005/expotacna/internal/client/storage"
	"github.com/dmitrijs2005/expotacna/internal/client/ui"
	"github.com/dmitrijs2005/expotacna/internal/logging"
)

// Mode is the server reachability state shown in the prompt.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

const probeTimeout = 3 * time.Second

type App struct {
	config      *config.Config
	authService services.AuthService
	chatService *services.ChatService
	apiClient   api.Client
	channel     *realtime.Channel
	session     *session.Session
	toasts      *ui.Toasts
	logger      logging.Logger

	reader *bufio.Reader
	out    io.Writer

	user *services.CurrentUser

	// presence keeps the realtime online flags shown in the admin tables.
	presenceMu sync.Mutex
	presence   map[int]bool

	// mode tracks server reachability as probed by the online status
	// watcher. Empty until the first probe completes.
	modeMu sync.Mutex
	mode   Mode

	// currentPage tracks the explore grid position between commands.
	currentPage int
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	sess := session.NewSession(metadata.NewSQLiteRepository(db))

	apiClient := api.NewHTTPClient(c.BaseURL, sess.Token)
	logger := logging.NewSlogLogger(slog.Default())

	a := &App{
		config:      c,
		apiClient:   apiClient,
		session:     sess,
		toasts:      ui.NewToasts(),
		logger:      logger,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		presence:    make(map[int]bool),
		currentPage: 1,
	}

	a.channel = realtime.NewChannel(c.SocketURL, realtime.Handlers{
		OnNewMessage:        a.onNewMessage,
		OnUserStatusChanged: a.onUserStatusChanged,
		OnDisconnect:        a.onChannelLost,
	}, logger)

	a.authService = services.NewAuthService(apiClient, sess)
	a.chatService = services.NewChatService(apiClient, a.channel)

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)
	defer a.channel.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// requireLogin gates mutations. For a guest it prompts to log in and
// reports false without any network traffic.
func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	ui.Alert(a.out, "Debes iniciar sesión para hacer esto. Usa 'login' o 'register'.")
	return false
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) currentMode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.modeMu.Lock()
	prev := a.mode
	a.mode = mode
	a.modeMu.Unlock()

	if prev == mode {
		return
	}
	a.logger.Info(ctx, "reachability changed", "mode", string(mode))
	if mode == ModeOffline {
		a.toasts.Error("Sin conexión con el servidor.")
	} else if prev == ModeOffline {
		a.toasts.Success("Conexión restablecida.")
	}
}

// startOnlineStatusWatcher probes the backend every interval and flips the
// reachability mode shown in the prompt.
func (a *App) startOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
			err := a.apiClient.Ping(probeCtx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
