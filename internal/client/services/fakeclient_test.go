package services

import (
	"context"
	"io"

	"github.com/dmitrijs2005/expotacna/internal/client/api"
	"github.com/dmitrijs2005/expotacna/internal/client/models"
)

// fakeClient implements api.Client for service unit tests. Function fields
// override the calls a test cares about; everything else is a no-op.
type fakeClient struct {
	LoginFn         func(ctx context.Context, username string, password string) (*models.LoginResult, error)
	RegisterFn      func(ctx context.Context, username string, email string, password string) error
	ConversationsFn func(ctx context.Context) ([]models.Conversation, error)
	MessagesFn      func(ctx context.Context, otherUserID int) ([]models.Message, error)

	CloseCalled bool
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) Close() error {
	f.CloseCalled = true
	return nil
}

func (f *fakeClient) Ping(context.Context) error { return nil }

func (f *fakeClient) Login(ctx context.Context, username string, password string) (*models.LoginResult, error) {
	if f.LoginFn != nil {
		return f.LoginFn(ctx, username, password)
	}
	return &models.LoginResult{}, nil
}

func (f *fakeClient) Register(ctx context.Context, username string, email string, password string) error {
	if f.RegisterFn != nil {
		return f.RegisterFn(ctx, username, email, password)
	}
	return nil
}

func (f *fakeClient) Conversations(ctx context.Context) ([]models.Conversation, error) {
	if f.ConversationsFn != nil {
		return f.ConversationsFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) Messages(ctx context.Context, otherUserID int) ([]models.Message, error) {
	if f.MessagesFn != nil {
		return f.MessagesFn(ctx, otherUserID)
	}
	return nil, nil
}

func (f *fakeClient) Albums(context.Context, int, int) (*models.AlbumPage, error) { return nil, nil }
func (f *fakeClient) Album(context.Context, int) (*models.Album, error)           { return nil, nil }
func (f *fakeClient) CreateAlbum(context.Context, string, string) (int, error)    { return 0, nil }
func (f *fakeClient) UpdateAlbum(context.Context, int, string, string) error      { return nil }
func (f *fakeClient) DeleteAlbum(context.Context, int) error                      { return nil }
func (f *fakeClient) UploadMedia(context.Context, int, string, string, io.Reader) error {
	return nil
}
func (f *fakeClient) DeleteMedia(context.Context, int) error             { return nil }
func (f *fakeClient) SetCover(context.Context, int, int) error           { return nil }
func (f *fakeClient) ReorderMedia(context.Context, int, []int) error     { return nil }
func (f *fakeClient) ToggleLike(context.Context, int) (bool, int, error) { return false, 0, nil }
func (f *fakeClient) ToggleSave(context.Context, int) (bool, int, error) { return false, 0, nil }
func (f *fakeClient) ToggleFollow(context.Context, int) (bool, error)    { return false, nil }
func (f *fakeClient) AddComment(context.Context, int, string) error      { return nil }
func (f *fakeClient) DeleteComment(context.Context, int) error           { return nil }
func (f *fakeClient) ReportComment(context.Context, int, string) error   { return nil }
func (f *fakeClient) ReportAlbum(context.Context, int, string, string) error {
	return nil
}
func (f *fakeClient) Profile(context.Context, string) (*models.Profile, error) { return nil, nil }
func (f *fakeClient) UpdateBio(context.Context, string) error                  { return nil }
func (f *fakeClient) UploadProfileImage(context.Context, api.ProfileImageKind, string, string, io.Reader) (string, error) {
	return "", nil
}
func (f *fakeClient) DeleteProfileImage(context.Context, api.ProfileImageKind) error { return nil }
func (f *fakeClient) Search(context.Context, string) (*models.SearchResults, error) {
	return nil, nil
}
func (f *fakeClient) Notifications(context.Context) ([]models.Notification, error) {
	return nil, nil
}
func (f *fakeClient) MarkNotificationsRead(context.Context) error { return nil }
func (f *fakeClient) SavedAlbums(context.Context) ([]models.AlbumSummary, error) {
	return nil, nil
}
func (f *fakeClient) AdminUsers(context.Context) ([]models.AdminUser, error) { return nil, nil }
func (f *fakeClient) ApproveUser(context.Context, int) error                 { return nil }
func (f *fakeClient) DeleteUser(context.Context, int) error                  { return nil }
