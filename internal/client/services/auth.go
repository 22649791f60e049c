// Package services contains application services for the expotacna client.
// This file defines the authentication service: login, register, session
// restore on startup, and logout housekeeping.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/expotacna/internal/client/api"
	"github.com/dmitrijs2005/expotacna/internal/client/session"
	"github.com/dmitrijs2005/expotacna/internal/common"
)

// CurrentUser is the restored local session projection.
type CurrentUser struct {
	ID       int64
	Username string
	IsAdmin  bool
	Token    string
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server and persist the session.
//   - Register: create a new (unapproved) account on the server.
//   - Restore: validate the stored session on startup; a missing session
//     yields ErrNoSession, an undecodable token clears the stored session
//     and yields ErrMalformedToken.
//   - Logout: wipe the stored session.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, username string, password string) (*CurrentUser, error)
	Register(ctx context.Context, username string, email string, password string) error
	Restore(ctx context.Context) (*CurrentUser, error)
	Logout(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client  api.Client
	session *session.Session
}

func NewAuthService(client api.Client, sess *session.Session) AuthService {
	return &authService{client: client, session: sess}
}

// Login authenticates and persists the resulting session. The user id is
// decoded from the token up front so a malformed response never leaves a
// half-usable session behind.
func (a *authService) Login(ctx context.Context, username string, password string) (*CurrentUser, error) {
	result, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	id, err := session.DecodeUserID(result.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("login response unusable: %w", err)
	}

	if err := a.session.Save(ctx, result.AccessToken, result.Username, result.IsAdmin); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	return &CurrentUser{
		ID:       id,
		Username: result.Username,
		IsAdmin:  result.IsAdmin,
		Token:    result.AccessToken,
	}, nil
}

func (a *authService) Register(ctx context.Context, username string, email string, password string) error {
	return a.client.Register(ctx, username, email, password)
}

// Restore rebuilds the current user from the stored session. A token that
// no longer decodes clears the whole session so the next start is a clean
// anonymous one.
func (a *authService) Restore(ctx context.Context) (*CurrentUser, error) {
	token, err := a.session.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, common.ErrNoSession
	}

	id, err := session.DecodeUserID(token)
	if err != nil {
		if errors.Is(err, common.ErrMalformedToken) {
			if clearErr := a.session.Clear(ctx); clearErr != nil {
				return nil, fmt.Errorf("failed to clear broken session: %w", clearErr)
			}
		}
		return nil, err
	}

	username, err := a.session.Username(ctx)
	if err != nil {
		return nil, err
	}
	isAdmin, err := a.session.IsAdmin(ctx)
	if err != nil {
		return nil, err
	}

	return &CurrentUser{ID: id, Username: username, IsAdmin: isAdmin, Token: token}, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
