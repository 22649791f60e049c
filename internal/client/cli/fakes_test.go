package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/dmitrijs2005/expotacna/internal/client/api"
	"github.com/dmitrijs2005/expotacna/internal/client/config"
	"github.com/dmitrijs2005/expotacna/internal/client/models"
	"github.com/dmitrijs2005/expotacna/internal/client/realtime"
	"github.com/dmitrijs2005/expotacna/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/expotacna/internal/client/services"
	"github.com/dmitrijs2005/expotacna/internal/client/session"
	"github.com/dmitrijs2005/expotacna/internal/client/ui"
	"github.com/dmitrijs2005/expotacna/internal/common"
	"github.com/dmitrijs2005/expotacna/internal/logging"
)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

type memRepo struct {
	data map[string][]byte
}

func newMemRepo() *memRepo { return &memRepo{data: make(map[string][]byte)} }

func (m *memRepo) Get(_ context.Context, key string) ([]byte, error) { return m.data[key], nil }
func (m *memRepo) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}
func (m *memRepo) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}
func (m *memRepo) List(_ context.Context) (map[string][]byte, error) { return m.data, nil }
func (m *memRepo) Clear(_ context.Context) error {
	m.data = make(map[string][]byte)
	return nil
}

func (m *memRepo) InTx(ctx context.Context, fn func(ctx context.Context, r metadata.Repository) error) error {
	return fn(ctx, m)
}

// newTestApp wires an App from fakes. The realtime endpoint is unreachable
// on purpose; nothing in these tests exercises the live channel.
func newTestApp(t *testing.T, apiClient api.Client, auth services.AuthService, in *bufio.Reader) (*App, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer

	cfg := &config.Config{}
	cfg.LoadDefaults()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	channel := realtime.NewChannel("ws://127.0.0.1:1", realtime.Handlers{}, logger)

	a := &App{
		config:      cfg,
		apiClient:   apiClient,
		authService: auth,
		chatService: services.NewChatService(apiClient, channel),
		channel:     channel,
		session:     session.NewSession(newMemRepo()),
		toasts:      ui.NewToasts(),
		logger:      logger,
		reader:      in,
		out:         &out,
		presence:    make(map[int]bool),
		currentPage: 1,
	}
	return a, &out
}

// flushed returns everything printed plus the queued toasts.
func flushed(a *App, out *bytes.Buffer) string {
	a.toasts.Flush(out)
	return out.String()
}

// ------------ fake auth service ------------

type fakeAuth struct {
	LoginFn    func(ctx context.Context, username, password string) (*services.CurrentUser, error)
	RestoreFn  func(ctx context.Context) (*services.CurrentUser, error)
	RegisterFn func(ctx context.Context, username, email, password string) error

	LogoutCalled bool
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) (*services.CurrentUser, error) {
	if f.LoginFn != nil {
		return f.LoginFn(ctx, username, password)
	}
	return &services.CurrentUser{ID: 1, Username: username}, nil
}

func (f *fakeAuth) Register(ctx context.Context, username, email, password string) error {
	if f.RegisterFn != nil {
		return f.RegisterFn(ctx, username, email, password)
	}
	return nil
}

func (f *fakeAuth) Restore(ctx context.Context) (*services.CurrentUser, error) {
	if f.RestoreFn != nil {
		return f.RestoreFn(ctx)
	}
	return nil, common.ErrNoSession
}

func (f *fakeAuth) Logout(context.Context) error {
	f.LogoutCalled = true
	return nil
}

func (f *fakeAuth) Close(context.Context) error { return nil }

// ------------ fake api client ------------

// fakeAPI records which operations ran; callCount covers every method so
// guest-gating tests can assert that no request went out at all.
type fakeAPI struct {
	callCount int

	AlbumsFn        func(ctx context.Context, page, perPage int) (*models.AlbumPage, error)
	AlbumFn         func(ctx context.Context, id int) (*models.Album, error)
	ToggleLikeFn    func(ctx context.Context, albumID int) (bool, int, error)
	NotificationsFn func(ctx context.Context) ([]models.Notification, error)
	AdminUsersFn    func(ctx context.Context) ([]models.AdminUser, error)
	SearchFn        func(ctx context.Context, query string) (*models.SearchResults, error)
	MessagesFn      func(ctx context.Context, otherUserID int) ([]models.Message, error)
	PingFn          func(ctx context.Context) error
}

var _ api.Client = (*fakeAPI)(nil)

func (f *fakeAPI) Close() error { return nil }

func (f *fakeAPI) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	return nil
}

func (f *fakeAPI) Login(context.Context, string, string) (*models.LoginResult, error) {
	f.callCount++
	return nil, nil
}

func (f *fakeAPI) Register(context.Context, string, string, string) error {
	f.callCount++
	return nil
}

func (f *fakeAPI) Albums(ctx context.Context, page, perPage int) (*models.AlbumPage, error) {
	f.callCount++
	if f.AlbumsFn != nil {
		return f.AlbumsFn(ctx, page, perPage)
	}
	return &models.AlbumPage{CurrentPage: page, TotalPages: 1}, nil
}

func (f *fakeAPI) Album(ctx context.Context, id int) (*models.Album, error) {
	f.callCount++
	if f.AlbumFn != nil {
		return f.AlbumFn(ctx, id)
	}
	return &models.Album{ID: id}, nil
}

func (f *fakeAPI) CreateAlbum(context.Context, string, string) (int, error) {
	f.callCount++
	return 1, nil
}

func (f *fakeAPI) UpdateAlbum(context.Context, int, string, string) error {
	f.callCount++
	return nil
}

func (f *fakeAPI) DeleteAlbum(context.Context, int) error {
	f.callCount++
	return nil
}

func (f *fakeAPI) UploadMedia(context.Context, int, string, string, io.Reader) error {
	f.callCount++
	return nil
}

func (f *fakeAPI) DeleteMedia(context.Context, int) error {
	f.callCount++
	return nil
}

func (f *fakeAPI) SetCover(context.Context, int, int) error {
	f.callCount++
	return nil
}

func (f *fakeAPI) ReorderMedia(context.Context, int, []int) error {
	f.callCount++
	return nil
}

func (f *fakeAPI) ToggleLike(ctx context.Context, albumID int) (bool, int, error) {
	f.callCount++
	if f.ToggleLikeFn != nil {
		return f.ToggleLikeFn(ctx, albumID)
	}
	return true, 1, nil
}

func (f *fakeAPI) ToggleSave(context.Context, int) (bool, int, error) {
	f.callCount++
	return true, 1, nil
}

func (f *fakeAPI) ToggleFollow(context.Context, int) (bool, error) {
	f.callCount++
	return true, nil
}

func (f *fakeAPI) AddComment(context.Context, int, string) error {
	f.callCount++
	return nil
}

func (f *fakeAPI) DeleteComment(context.Context, int) error {
	f.callCount++
	return nil
}

func (f *fakeAPI) ReportComment(context.Context, int, string) error {
	f.callCount++
	return nil
}

func (f *fakeAPI) ReportAlbum(context.Context, int, string, string) error {
	f.callCount++
	return nil
}

func (f *fakeAPI) Profile(ctx context.Context, username string) (*models.Profile, error) {
	f.callCount++
	return &models.Profile{Username: username}, nil
}

func (f *fakeAPI) UpdateBio(context.Context, string) error {
	f.callCount++
	return nil
}

func (f *fakeAPI) UploadProfileImage(context.Context, api.ProfileImageKind, string, string, io.Reader) (string, error) {
	f.callCount++
	return "", nil
}

func (f *fakeAPI) DeleteProfileImage(context.Context, api.ProfileImageKind) error {
	f.callCount++
	return nil
}

func (f *fakeAPI) Search(ctx context.Context, query string) (*models.SearchResults, error) {
	f.callCount++
	if f.SearchFn != nil {
		return f.SearchFn(ctx, query)
	}
	return &models.SearchResults{}, nil
}

func (f *fakeAPI) Notifications(ctx context.Context) ([]models.Notification, error) {
	f.callCount++
	if f.NotificationsFn != nil {
		return f.NotificationsFn(ctx)
	}
	return nil, nil
}

func (f *fakeAPI) MarkNotificationsRead(context.Context) error {
	f.callCount++
	return nil
}

func (f *fakeAPI) SavedAlbums(context.Context) ([]models.AlbumSummary, error) {
	f.callCount++
	return nil, nil
}

func (f *fakeAPI) Conversations(context.Context) ([]models.Conversation, error) {
	f.callCount++
	return nil, nil
}

func (f *fakeAPI) Messages(ctx context.Context, otherUserID int) ([]models.Message, error) {
	f.callCount++
	if f.MessagesFn != nil {
		return f.MessagesFn(ctx, otherUserID)
	}
	return nil, nil
}

func (f *fakeAPI) AdminUsers(ctx context.Context) ([]models.AdminUser, error) {
	f.callCount++
	if f.AdminUsersFn != nil {
		return f.AdminUsersFn(ctx)
	}
	return nil, nil
}

func (f *fakeAPI) ApproveUser(context.Context, int) error {
	f.callCount++
	return nil
}

func (f *fakeAPI) DeleteUser(context.Context, int) error {
	f.callCount++
	return nil
}
