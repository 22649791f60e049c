// Package session keeps the authenticated user state between runs.
// The access token, the username and the admin flag are persisted in
// the metadata table so a restart does not require a new login.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/expotacna/internal/client/models"
	"github.com/dmitrijs2005/expotacna/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/expotacna/internal/common"
)

const (
	keyAccessToken = "accessToken"
	keyUsername    = "username"
	keyIsAdmin     = "is_admin"
	keyChatTarget  = "chat_with_user"
)

type Session struct {
	repo metadata.Repository
}

func NewSession(repo metadata.Repository) *Session {
	return &Session{repo: repo}
}

// Token returns the stored access token, or "" when nobody is logged in.
func (s *Session) Token(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, keyAccessToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *Session) Username(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, keyUsername)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *Session) IsAdmin(ctx context.Context) (bool, error) {
	v, err := s.repo.Get(ctx, keyIsAdmin)
	if err != nil {
		return false, err
	}
	return string(v) == "true", nil
}

// Save persists the login result. The three fields commit in a single
// transaction; a failed write must not leave a token behind without its
// username and admin flag.
func (s *Session) Save(ctx context.Context, token string, username string, isAdmin bool) error {
	admin := "false"
	if isAdmin {
		admin = "true"
	}
	return s.repo.InTx(ctx, func(ctx context.Context, r metadata.Repository) error {
		if err := r.Set(ctx, keyAccessToken, []byte(token)); err != nil {
			return err
		}
		if err := r.Set(ctx, keyUsername, []byte(username)); err != nil {
			return err
		}
		return r.Set(ctx, keyIsAdmin, []byte(admin))
	})
}

// Clear removes every stored session field, including the chat deep-link.
func (s *Session) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

// UserID decodes the stored token and returns the authenticated user id.
// A missing token yields ErrNoSession; an undecodable one yields
// ErrMalformedToken so the caller can clear the session and fall back to
// the anonymous state.
func (s *Session) UserID(ctx context.Context) (int64, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return 0, err
	}
	if token == "" {
		return 0, common.ErrNoSession
	}
	return DecodeUserID(token)
}

// SetChatTarget stores the user a chat view should open with.
func (s *Session) SetChatTarget(ctx context.Context, u models.ChatUser) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode chat target: %w", err)
	}
	return s.repo.Set(ctx, keyChatTarget, data)
}

// ChatTarget returns the stored chat deep-link, or nil when none is set.
func (s *Session) ChatTarget(ctx context.Context) (*models.ChatUser, error) {
	v, err := s.repo.Get(ctx, keyChatTarget)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	var u models.ChatUser
	if err := json.Unmarshal(v, &u); err != nil {
		// A corrupt value is treated as absent rather than breaking
		// the chat view.
		return nil, nil
	}
	return &u, nil
}

func (s *Session) ClearChatTarget(ctx context.Context) error {
	return s.repo.Delete(ctx, keyChatTarget)
}

// DecodeUserID extracts the numeric subject claim from a JWT without
// verifying the signature. Verification happens server side; the client
// only needs the id to tell own content apart from other users'.
func DecodeUserID(token string) (int64, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0, fmt.Errorf("%w: %s", common.ErrMalformedToken, err)
	}
	// The backend issues the subject as a string, but older tokens
	// carried a bare number.
	switch sub := claims["sub"].(type) {
	case string:
		id, err := strconv.ParseInt(sub, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: subject is not a user id", common.ErrMalformedToken)
		}
		return id, nil
	case float64:
		return int64(sub), nil
	default:
		return 0, fmt.Errorf("%w: no subject claim", common.ErrMalformedToken)
	}
}
