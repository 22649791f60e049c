// Package api implements the HTTP client for the Exponiendo Tacna REST
// backend. Every typed operation decodes the endpoint's payload and maps
// the auth-related status codes to the shared sentinels; everything else
// surfaces the server-supplied message.
package api

import (
	"context"
	"io"

	"github.com/dmitrijs2005/expotacna/internal/client/models"
)

// ProfileImageKind selects which of the two profile images an upload or
// delete targets.
type ProfileImageKind string

const (
	ProfileImagePicture ProfileImageKind = "picture"
	ProfileImageBanner  ProfileImageKind = "banner"
)

type Client interface {
	Close() error

	// Ping reports whether the backend is reachable at all.
	Ping(ctx context.Context) error

	Login(ctx context.Context, username string, password string) (*models.LoginResult, error)
	Register(ctx context.Context, username string, email string, password string) error

	Albums(ctx context.Context, page int, perPage int) (*models.AlbumPage, error)
	Album(ctx context.Context, id int) (*models.Album, error)
	CreateAlbum(ctx context.Context, title string, description string) (int, error)
	UpdateAlbum(ctx context.Context, id int, title string, description string) error
	DeleteAlbum(ctx context.Context, id int) error

	UploadMedia(ctx context.Context, albumID int, filename string, contentType string, data io.Reader) error
	DeleteMedia(ctx context.Context, mediaID int) error
	SetCover(ctx context.Context, albumID int, mediaID int) error
	ReorderMedia(ctx context.Context, albumID int, mediaIDs []int) error

	ToggleLike(ctx context.Context, albumID int) (liked bool, count int, err error)
	ToggleSave(ctx context.Context, albumID int) (saved bool, count int, err error)
	ToggleFollow(ctx context.Context, userID int) (followed bool, err error)

	AddComment(ctx context.Context, albumID int, text string) error
	DeleteComment(ctx context.Context, commentID int) error
	ReportComment(ctx context.Context, commentID int, reason string) error
	ReportAlbum(ctx context.Context, albumID int, reason string, description string) error

	Profile(ctx context.Context, username string) (*models.Profile, error)
	UpdateBio(ctx context.Context, bio string) error
	UploadProfileImage(ctx context.Context, kind ProfileImageKind, filename string, contentType string, data io.Reader) (string, error)
	DeleteProfileImage(ctx context.Context, kind ProfileImageKind) error

	Search(ctx context.Context, query string) (*models.SearchResults, error)
	Notifications(ctx context.Context) ([]models.Notification, error)
	MarkNotificationsRead(ctx context.Context) error
	SavedAlbums(ctx context.Context) ([]models.AlbumSummary, error)

	Conversations(ctx context.Context) ([]models.Conversation, error)
	Messages(ctx context.Context, otherUserID int) ([]models.Message, error)

	AdminUsers(ctx context.Context) ([]models.AdminUser, error)
	ApproveUser(ctx context.Context, userID int) error
	DeleteUser(ctx context.Context, userID int) error
}
